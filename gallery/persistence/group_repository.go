package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dfryer1193/shoebox/gallery/domain"
	"github.com/dfryer1193/shoebox/shared/db"
)

var _ domain.GroupRepository = (*SQLiteGroupRepository)(nil)

// SQLiteGroupRepository implements domain.GroupRepository using SQL database (SQLite)
type SQLiteGroupRepository struct {
	db *sql.DB
}

// NewGroupRepository creates a new SQLiteGroupRepository from a standard sql.DB
func NewGroupRepository(sqlDB *sql.DB) *SQLiteGroupRepository {
	return &SQLiteGroupRepository{
		db: sqlDB,
	}
}

const insertGroupQuery = `
	INSERT INTO groups (name, created_at, updated_at)
	VALUES (?, ?, ?)
`

// CreateGroup inserts a new group and returns the store-assigned ID
func (r *SQLiteGroupRepository) CreateGroup(ctx context.Context, name string) (int64, error) {
	if !domain.ValidName(name) {
		return 0, domain.NewWriteError("create group", errors.New("group name cannot be empty"))
	}

	now := time.Now().UTC()

	result, err := r.db.ExecContext(ctx, insertGroupQuery, name, now, now)
	if err != nil {
		return 0, writeErr("create group", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, writeErr("create group", err)
	}

	return id, nil
}

const getAllGroupsQuery = `
	SELECT id, name, created_at, updated_at
	FROM groups
`

// GetAllGroups returns every group in store iteration order
func (r *SQLiteGroupRepository) GetAllGroups(ctx context.Context) ([]*domain.Group, error) {
	rows, err := r.db.QueryContext(ctx, getAllGroupsQuery)
	if err != nil {
		return nil, readErr("list groups", err)
	}
	defer rows.Close()

	groups := []*domain.Group{}
	for rows.Next() {
		var row groupRow
		if err := rows.Scan(&row.ID, &row.Name, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, readErr("list groups", err)
		}
		groups = append(groups, row.toDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, readErr("list groups", err)
	}

	return groups, nil
}

const getGroupQuery = `
	SELECT id, name, created_at, updated_at
	FROM groups
	WHERE id = ?
`

// GetGroup retrieves a single group by ID.
// A missing record is a normal (nil, nil) result, not a failure.
func (r *SQLiteGroupRepository) GetGroup(ctx context.Context, id int64) (*domain.Group, error) {
	var row groupRow
	err := r.db.QueryRowContext(ctx, getGroupQuery, id).Scan(
		&row.ID,
		&row.Name,
		&row.CreatedAt,
		&row.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, readErr("get group", err)
	}

	return row.toDomain(), nil
}

const renameGroupQuery = `
	UPDATE groups
	SET name = ?, updated_at = ?
	WHERE id = ?
`

// RenameGroup updates the group's name and refreshes updated_at. The fetch
// and the write happen in one transaction so concurrent renames never
// resurrect stale fields.
func (r *SQLiteGroupRepository) RenameGroup(ctx context.Context, id int64, name string) error {
	if !domain.ValidName(name) {
		return domain.NewWriteError("rename group", errors.New("group name cannot be empty"))
	}

	return ensureWrite("rename group", db.RunInTransaction(ctx, r.db, func(txCtx context.Context) error {
		executor := db.GetExecutor(txCtx, r.db)

		var current groupRow
		err := executor.QueryRowContext(txCtx, getGroupQuery, id).Scan(
			&current.ID,
			&current.Name,
			&current.CreatedAt,
			&current.UpdatedAt,
		)

		if err == sql.ErrNoRows {
			return domain.NewNotFoundError("rename group", id)
		}

		if err != nil {
			return writeErr("rename group", err)
		}

		now := time.Now().UTC()
		if _, err := executor.ExecContext(txCtx, renameGroupQuery, name, now, id); err != nil {
			return writeErr("rename group", err)
		}

		return nil
	}))
}

const deleteGroupQuery = `
	DELETE FROM groups WHERE id = ?
`

// DeleteGroup removes the group row only. Deleting an absent ID is a no-op.
func (r *SQLiteGroupRepository) DeleteGroup(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, deleteGroupQuery, id); err != nil {
		return writeErr("delete group", err)
	}
	return nil
}

// groupRow is a private struct used to scan database rows
type groupRow struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// toDomain converts a groupRow to a domain.Group
func (gr *groupRow) toDomain() *domain.Group {
	return &domain.Group{
		ID:        gr.ID,
		Name:      gr.Name,
		CreatedAt: gr.CreatedAt,
		UpdatedAt: gr.UpdatedAt,
	}
}
