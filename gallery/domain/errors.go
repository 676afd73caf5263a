package domain

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes store failures.
type ErrorKind string

const (
	// ErrKindConnection indicates the store could not be opened or reached.
	ErrKindConnection ErrorKind = "connection"

	// ErrKindRead indicates a fetch or query failed.
	ErrKindRead ErrorKind = "read"

	// ErrKindWrite indicates an insert, update, or delete failed.
	ErrKindWrite ErrorKind = "write"

	// ErrKindNotFound indicates a mutation targeted a record that does not
	// exist. Only renames raise this; deletes are idempotent.
	ErrKindNotFound ErrorKind = "not-found"
)

// StoreError is the uniform failure value every repository operation returns.
// It wraps the underlying driver diagnostic so no raw engine error escapes
// the persistence layer.
type StoreError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s failed: %v", e.Kind, e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s failed", e.Kind, e.Op)
}

// Unwrap exposes the underlying driver error for errors.Is/As chains.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewConnectionError wraps a failure to open or reach the store.
func NewConnectionError(op string, err error) *StoreError {
	return &StoreError{Kind: ErrKindConnection, Op: op, Err: err}
}

// NewReadError wraps a failed fetch or query.
func NewReadError(op string, err error) *StoreError {
	return &StoreError{Kind: ErrKindRead, Op: op, Err: err}
}

// NewWriteError wraps a failed insert, update, or delete.
func NewWriteError(op string, err error) *StoreError {
	return &StoreError{Kind: ErrKindWrite, Op: op, Err: err}
}

// NewNotFoundError reports a mutation against a missing record.
func NewNotFoundError(op string, id int64) *StoreError {
	return &StoreError{Kind: ErrKindNotFound, Op: op, Err: fmt.Errorf("no record with id %d", id)}
}

// KindOf returns the error's kind, or "" if err is not a StoreError.
// Uses errors.As to handle wrapped errors.
func KindOf(err error) ErrorKind {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}

// IsNotFound returns true if the error is a missing-record error.
func IsNotFound(err error) bool {
	return KindOf(err) == ErrKindNotFound
}

// IsConnection returns true if the error came from opening or reaching the store.
func IsConnection(err error) bool {
	return KindOf(err) == ErrKindConnection
}
