package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dfryer1193/shoebox/gallery/domain"
	"github.com/dfryer1193/shoebox/shared/db"
)

var _ domain.ImageRepository = (*SQLiteImageRepository)(nil)

// SQLiteImageRepository implements domain.ImageRepository using SQL database (SQLite)
type SQLiteImageRepository struct {
	db *sql.DB
}

// NewImageRepository creates a new SQLiteImageRepository from a standard sql.DB
func NewImageRepository(sqlDB *sql.DB) *SQLiteImageRepository {
	return &SQLiteImageRepository{
		db: sqlDB,
	}
}

const insertImageQuery = `
	INSERT INTO images (group_id, name, content, content_type, created_at)
	VALUES (?, ?, ?, ?, ?)
`

// AddImage inserts a new image under the given group and returns the
// store-assigned ID. Whether the group actually exists is the caller's
// responsibility.
func (r *SQLiteImageRepository) AddImage(ctx context.Context, groupID int64, name string, content []byte, contentType string) (int64, error) {
	if !domain.ValidName(name) {
		return 0, domain.NewWriteError("add image", errors.New("image name cannot be empty"))
	}

	if len(content) == 0 {
		return 0, domain.NewWriteError("add image", errors.New("image content cannot be empty"))
	}

	now := time.Now().UTC()

	result, err := r.db.ExecContext(ctx, insertImageQuery, groupID, name, content, contentType, now)
	if err != nil {
		return 0, writeErr("add image", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, writeErr("add image", err)
	}

	return id, nil
}

const getImageQuery = `
	SELECT id, group_id, name, content, content_type, created_at
	FROM images
	WHERE id = ?
`

// GetImage retrieves a single image by ID, including its content.
// A missing record is a normal (nil, nil) result, not a failure.
func (r *SQLiteImageRepository) GetImage(ctx context.Context, id int64) (*domain.Image, error) {
	var row imageRow
	err := r.db.QueryRowContext(ctx, getImageQuery, id).Scan(
		&row.ID,
		&row.GroupID,
		&row.Name,
		&row.Content,
		&row.ContentType,
		&row.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, readErr("get image", err)
	}

	return row.toDomain(), nil
}

const getImagesByGroupQuery = `
	SELECT id, group_id, name, content, content_type, created_at
	FROM images
	WHERE group_id = ?
	ORDER BY id ASC
`

// GetImagesByGroup returns every image owned by the group via the group_id
// index. An empty group (or a group that does not exist) yields an empty
// slice, not an error.
func (r *SQLiteImageRepository) GetImagesByGroup(ctx context.Context, groupID int64) ([]*domain.Image, error) {
	rows, err := r.db.QueryContext(ctx, getImagesByGroupQuery, groupID)
	if err != nil {
		return nil, readErr("list images", err)
	}
	defer rows.Close()

	images := []*domain.Image{}
	for rows.Next() {
		var row imageRow
		err := rows.Scan(
			&row.ID,
			&row.GroupID,
			&row.Name,
			&row.Content,
			&row.ContentType,
			&row.CreatedAt,
		)
		if err != nil {
			return nil, readErr("list images", err)
		}
		images = append(images, row.toDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, readErr("list images", err)
	}

	return images, nil
}

const renameImageQuery = `
	UPDATE images
	SET name = ?
	WHERE id = ?
`

const imageExistsQuery = `
	SELECT id FROM images WHERE id = ?
`

// RenameImage updates the image's display name in one transaction. Group,
// content, content type, and created_at are untouched.
func (r *SQLiteImageRepository) RenameImage(ctx context.Context, id int64, name string) error {
	if !domain.ValidName(name) {
		return domain.NewWriteError("rename image", errors.New("image name cannot be empty"))
	}

	return ensureWrite("rename image", db.RunInTransaction(ctx, r.db, func(txCtx context.Context) error {
		executor := db.GetExecutor(txCtx, r.db)

		var exists int64
		err := executor.QueryRowContext(txCtx, imageExistsQuery, id).Scan(&exists)

		if err == sql.ErrNoRows {
			return domain.NewNotFoundError("rename image", id)
		}

		if err != nil {
			return writeErr("rename image", err)
		}

		if _, err := executor.ExecContext(txCtx, renameImageQuery, name, id); err != nil {
			return writeErr("rename image", err)
		}

		return nil
	}))
}

const deleteImageQuery = `
	DELETE FROM images WHERE id = ?
`

// DeleteImage removes a single image. Deleting an absent ID is a no-op.
func (r *SQLiteImageRepository) DeleteImage(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, deleteImageQuery, id); err != nil {
		return writeErr("delete image", err)
	}
	return nil
}

const imageIDsByGroupQuery = `
	SELECT id FROM images WHERE group_id = ?
`

// DeleteAllImagesInGroup removes every image owned by the group: collect the
// matching keys via the group_id index, then delete each, all inside one
// transaction over the images table. Used by the cascade delete in
// gallery/application, which removes member images before the group row.
func (r *SQLiteImageRepository) DeleteAllImagesInGroup(ctx context.Context, groupID int64) error {
	return ensureWrite("delete group images", db.RunInTransaction(ctx, r.db, func(txCtx context.Context) error {
		executor := db.GetExecutor(txCtx, r.db)

		ids, err := collectImageIDs(txCtx, executor, groupID)
		if err != nil {
			return writeErr("delete group images", err)
		}

		for _, id := range ids {
			if _, err := executor.ExecContext(txCtx, deleteImageQuery, id); err != nil {
				return writeErr("delete group images", err)
			}
		}

		return nil
	}))
}

// collectImageIDs reads the full key set for a group up front. The rows must
// be closed before any delete runs on the same transaction, so this cannot
// be interleaved with the delete loop.
func collectImageIDs(ctx context.Context, executor db.Executor, groupID int64) ([]int64, error) {
	rows, err := executor.QueryContext(ctx, imageIDsByGroupQuery, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

// imageRow is a private struct used to scan database rows
type imageRow struct {
	ID          int64     `db:"id"`
	GroupID     int64     `db:"group_id"`
	Name        string    `db:"name"`
	Content     []byte    `db:"content"`
	ContentType string    `db:"content_type"`
	CreatedAt   time.Time `db:"created_at"`
}

// toDomain converts an imageRow to a domain.Image
func (ir *imageRow) toDomain() *domain.Image {
	return &domain.Image{
		ID:          ir.ID,
		GroupID:     ir.GroupID,
		Name:        ir.Name,
		Content:     ir.Content,
		ContentType: ir.ContentType,
		CreatedAt:   ir.CreatedAt,
	}
}
