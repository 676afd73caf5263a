package domain

import (
	"context"
	"strings"
	"time"
)

// Group represents a named collection of images.
// IDs are assigned by the store on creation and never change; UpdatedAt is
// refreshed on every successful rename.
type Group struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type GroupRepository interface {
	// CreateGroup inserts a new group and returns its assigned ID
	CreateGroup(ctx context.Context, name string) (int64, error)

	// GetAllGroups returns every group in store iteration order
	GetAllGroups(ctx context.Context) ([]*Group, error)

	// GetGroup returns the group with the given ID, or (nil, nil) if absent
	GetGroup(ctx context.Context, id int64) (*Group, error)

	// RenameGroup updates the group's name and UpdatedAt in one transaction
	RenameGroup(ctx context.Context, id int64, name string) error

	// DeleteGroup removes the group row only; deleting an absent ID is a no-op.
	// Callers that need member images removed as well go through the
	// application layer's cascade delete.
	DeleteGroup(ctx context.Context, id int64) error
}

// ValidName reports whether a display name is acceptable for a group or
// image: non-empty after trimming whitespace.
func ValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}
