package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestStoreError_Kinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind ErrorKind
	}{
		{
			name: "connection",
			err:  NewConnectionError("open store", errors.New("disk quota exceeded")),
			kind: ErrKindConnection,
		},
		{
			name: "read",
			err:  NewReadError("list groups", errors.New("i/o error")),
			kind: ErrKindRead,
		},
		{
			name: "write",
			err:  NewWriteError("create group", errors.New("database is locked")),
			kind: ErrKindWrite,
		},
		{
			name: "not found",
			err:  NewNotFoundError("rename group", 7),
			kind: ErrKindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.kind {
				t.Errorf("KindOf() = %q, want %q", got, tt.kind)
			}
		})
	}
}

func TestKindOf_Wrapped(t *testing.T) {
	inner := NewNotFoundError("rename image", 3)
	wrapped := fmt.Errorf("handling request: %w", inner)

	if !IsNotFound(wrapped) {
		t.Error("IsNotFound() should see through wrapping")
	}
	if KindOf(wrapped) != ErrKindNotFound {
		t.Errorf("KindOf() = %q, want %q", KindOf(wrapped), ErrKindNotFound)
	}
}

func TestKindOf_ForeignError(t *testing.T) {
	if KindOf(errors.New("plain")) != "" {
		t.Error("KindOf() on a non-store error should be empty")
	}
	if IsNotFound(nil) {
		t.Error("IsNotFound(nil) should be false")
	}
}

func TestStoreError_Message(t *testing.T) {
	err := NewWriteError("create group", errors.New("database is locked"))
	want := "write: create group failed: database is locked"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	// Fallback message when the engine gives no diagnostic
	bare := &StoreError{Kind: ErrKindRead, Op: "get group"}
	if bare.Error() != "read: get group failed" {
		t.Errorf("Error() = %q, want %q", bare.Error(), "read: get group failed")
	}
}

func TestValidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "plain", input: "Trip", want: true},
		{name: "inner whitespace", input: "Trip 2024", want: true},
		{name: "empty", input: "", want: false},
		{name: "spaces only", input: "   ", want: false},
		{name: "tab and newline", input: "\t\n", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidName(tt.input); got != tt.want {
				t.Errorf("ValidName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
