package domain

import (
	"context"
	"time"
)

// Image represents one binary asset belonging to exactly one group.
// GroupID is fixed at creation; the store does not enforce that it references
// an existing group — delete ordering in the application layer keeps the two
// tables consistent.
type Image struct {
	ID          int64
	GroupID     int64
	Name        string
	Content     []byte
	ContentType string
	CreatedAt   time.Time
}

type ImageRepository interface {
	// AddImage inserts a new image under the given group and returns its ID.
	// The group's existence is not checked here.
	AddImage(ctx context.Context, groupID int64, name string, content []byte, contentType string) (int64, error)

	// GetImage returns the image with the given ID, or (nil, nil) if absent
	GetImage(ctx context.Context, id int64) (*Image, error)

	// GetImagesByGroup returns every image owned by the group, empty slice
	// when there are none (or the group does not exist)
	GetImagesByGroup(ctx context.Context, groupID int64) ([]*Image, error)

	// RenameImage updates the image's name in one transaction, leaving
	// group, content, and timestamps untouched
	RenameImage(ctx context.Context, id int64, name string) error

	// DeleteImage removes a single image; deleting an absent ID is a no-op
	DeleteImage(ctx context.Context, id int64) error

	// DeleteAllImagesInGroup removes every image owned by the group within
	// one transaction over the images table
	DeleteAllImagesInGroup(ctx context.Context, groupID int64) error
}
