package application

import (
	"context"

	"github.com/dfryer1193/shoebox/gallery/domain"
	"github.com/rs/zerolog/log"
)

// LibraryService fronts the group and image repositories for the transport
// layer and owns the one piece of cross-repository logic: the cascade delete.
// It holds no state of its own; every call hits the store.
type LibraryService struct {
	groups domain.GroupRepository
	images domain.ImageRepository
}

func NewLibraryService(groups domain.GroupRepository, images domain.ImageRepository) *LibraryService {
	return &LibraryService{
		groups: groups,
		images: images,
	}
}

// CreateGroup creates a new named group and returns its assigned ID
func (s *LibraryService) CreateGroup(ctx context.Context, name string) (int64, error) {
	id, err := s.groups.CreateGroup(ctx, name)
	if err != nil {
		return 0, err
	}

	log.Info().Int64("groupId", id).Str("name", name).Msg("Created group")
	return id, nil
}

// GetAllGroups lists every group
func (s *LibraryService) GetAllGroups(ctx context.Context) ([]*domain.Group, error) {
	return s.groups.GetAllGroups(ctx)
}

// GetGroup returns one group, or (nil, nil) if it does not exist
func (s *LibraryService) GetGroup(ctx context.Context, id int64) (*domain.Group, error) {
	return s.groups.GetGroup(ctx, id)
}

// RenameGroup changes a group's display name
func (s *LibraryService) RenameGroup(ctx context.Context, id int64, name string) error {
	return s.groups.RenameGroup(ctx, id, name)
}

// DeleteGroupCascade deletes a group and every image it owns. Member images
// are fully removed first; only on success does the group row go. The two
// phases are separate transactions, so a failure in between can leave an
// empty group behind - never an orphaned image. No retry here; that is the
// caller's call.
func (s *LibraryService) DeleteGroupCascade(ctx context.Context, groupID int64) error {
	if err := s.images.DeleteAllImagesInGroup(ctx, groupID); err != nil {
		log.Error().Err(err).Int64("groupId", groupID).Msg("Cascade delete failed during image sweep")
		return err
	}

	if err := s.groups.DeleteGroup(ctx, groupID); err != nil {
		log.Error().Err(err).Int64("groupId", groupID).Msg("Cascade delete removed images but not the group row")
		return err
	}

	log.Info().Int64("groupId", groupID).Msg("Deleted group and member images")
	return nil
}

// AddImage stores a new image under the given group. The group ID is taken
// on trust; selection is validated by the caller before upload.
func (s *LibraryService) AddImage(ctx context.Context, groupID int64, name string, content []byte, contentType string) (int64, error) {
	id, err := s.images.AddImage(ctx, groupID, name, content, contentType)
	if err != nil {
		return 0, err
	}

	log.Info().Int64("imageId", id).Int64("groupId", groupID).Str("name", name).Msg("Added image")
	return id, nil
}

// GetImage returns one image including content, or (nil, nil) if absent
func (s *LibraryService) GetImage(ctx context.Context, id int64) (*domain.Image, error) {
	return s.images.GetImage(ctx, id)
}

// GetImagesByGroup lists every image owned by the group
func (s *LibraryService) GetImagesByGroup(ctx context.Context, groupID int64) ([]*domain.Image, error) {
	return s.images.GetImagesByGroup(ctx, groupID)
}

// RenameImage changes an image's display name
func (s *LibraryService) RenameImage(ctx context.Context, id int64, name string) error {
	return s.images.RenameImage(ctx, id, name)
}

// DeleteImage removes a single image
func (s *LibraryService) DeleteImage(ctx context.Context, id int64) error {
	return s.images.DeleteImage(ctx, id)
}
