package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dfryer1193/shoebox/gallery/domain"
	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}

	// Every pooled connection gets its own :memory: store, so pin to one
	db.SetMaxOpenConns(1)

	// Schema matches shared/db/sqlite migrations
	_, err = db.Exec(`
		CREATE TABLE groups (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		);

		CREATE TABLE images (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			group_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			content BLOB NOT NULL,
			content_type TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		);

		CREATE INDEX idx_images_group_id ON images(group_id);
	`)
	if err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})
	return db
}

func TestGroupRepository_CreateGroup(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGroupRepository(db)
	ctx := context.Background()

	id, err := repo.CreateGroup(ctx, "Trip")
	if err != nil {
		t.Fatalf("Failed to create group: %v", err)
	}
	if id != 1 {
		t.Errorf("id = %d, want 1", id)
	}

	// IDs are store-assigned and increase monotonically
	id2, err := repo.CreateGroup(ctx, "Trip")
	if err != nil {
		t.Fatalf("Failed to create second group: %v", err)
	}
	if id2 != 2 {
		t.Errorf("second id = %d, want 2", id2)
	}

	// createdAt and updatedAt start equal
	g, err := repo.GetGroup(ctx, id)
	if err != nil {
		t.Fatalf("Failed to get group: %v", err)
	}
	if g == nil {
		t.Fatal("Expected group, got nil")
	}
	if !g.CreatedAt.Equal(g.UpdatedAt) {
		t.Errorf("CreatedAt = %v, UpdatedAt = %v, want equal", g.CreatedAt, g.UpdatedAt)
	}
}

func TestGroupRepository_CreateGroup_EmptyName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGroupRepository(db)
	ctx := context.Background()

	tests := []struct {
		name      string
		groupName string
	}{
		{name: "empty string", groupName: ""},
		{name: "whitespace only", groupName: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.CreateGroup(ctx, tt.groupName)
			if err == nil {
				t.Fatal("Expected error for invalid name, got nil")
			}
			if domain.KindOf(err) != domain.ErrKindWrite {
				t.Errorf("error kind = %q, want %q", domain.KindOf(err), domain.ErrKindWrite)
			}
		})
	}

	// Nothing reached the store
	groups, err := repo.GetAllGroups(ctx)
	if err != nil {
		t.Fatalf("Failed to list groups: %v", err)
	}
	if len(groups) != 0 {
		t.Errorf("Expected 0 groups, got %d", len(groups))
	}
}

func TestGroupRepository_GetAllGroups(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGroupRepository(db)
	ctx := context.Background()

	// Empty store yields an empty slice, not an error
	groups, err := repo.GetAllGroups(ctx)
	if err != nil {
		t.Fatalf("Failed to list groups: %v", err)
	}
	if len(groups) != 0 {
		t.Errorf("Expected 0 groups, got %d", len(groups))
	}

	for _, name := range []string{"A", "B", "C"} {
		if _, err := repo.CreateGroup(ctx, name); err != nil {
			t.Fatalf("Failed to create group %q: %v", name, err)
		}
	}

	groups, err = repo.GetAllGroups(ctx)
	if err != nil {
		t.Fatalf("Failed to list groups: %v", err)
	}
	if len(groups) != 3 {
		t.Fatalf("Expected 3 groups, got %d", len(groups))
	}

	// Store iteration order is insertion order for this schema
	for i, want := range []string{"A", "B", "C"} {
		if groups[i].Name != want {
			t.Errorf("groups[%d].Name = %q, want %q", i, groups[i].Name, want)
		}
	}
}

func TestGroupRepository_GetGroup_Missing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGroupRepository(db)
	ctx := context.Background()

	// A missing record is an absent result, not a failure
	g, err := repo.GetGroup(ctx, 42)
	if err != nil {
		t.Fatalf("GetGroup on missing id returned error: %v", err)
	}
	if g != nil {
		t.Errorf("Expected nil group, got %+v", g)
	}
}

func TestGroupRepository_RenameGroup(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGroupRepository(db)
	ctx := context.Background()

	id, err := repo.CreateGroup(ctx, "Before")
	if err != nil {
		t.Fatalf("Failed to create group: %v", err)
	}

	before, err := repo.GetGroup(ctx, id)
	if err != nil {
		t.Fatalf("Failed to get group: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if err := repo.RenameGroup(ctx, id, "After"); err != nil {
		t.Fatalf("Failed to rename group: %v", err)
	}

	after, err := repo.GetGroup(ctx, id)
	if err != nil {
		t.Fatalf("Failed to get group after rename: %v", err)
	}

	// Rename changes only name and updatedAt
	if after.Name != "After" {
		t.Errorf("Name = %q, want %q", after.Name, "After")
	}
	if after.ID != before.ID {
		t.Errorf("ID changed: %d -> %d", before.ID, after.ID)
	}
	if !after.CreatedAt.Equal(before.CreatedAt) {
		t.Errorf("CreatedAt changed: %v -> %v", before.CreatedAt, after.CreatedAt)
	}
	if !after.UpdatedAt.After(before.UpdatedAt) {
		t.Errorf("UpdatedAt not refreshed: %v -> %v", before.UpdatedAt, after.UpdatedAt)
	}
}

func TestGroupRepository_RenameGroup_Missing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGroupRepository(db)
	ctx := context.Background()

	err := repo.RenameGroup(ctx, 99, "Whatever")
	if err == nil {
		t.Fatal("Expected error renaming missing group, got nil")
	}
	if !domain.IsNotFound(err) {
		t.Errorf("error kind = %q, want %q", domain.KindOf(err), domain.ErrKindNotFound)
	}
}

func TestGroupRepository_RenameGroup_EmptyName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGroupRepository(db)
	ctx := context.Background()

	id, err := repo.CreateGroup(ctx, "Keep")
	if err != nil {
		t.Fatalf("Failed to create group: %v", err)
	}

	if err := repo.RenameGroup(ctx, id, ""); err == nil {
		t.Fatal("Expected error for empty name, got nil")
	}

	// Prior value survives the rejected rename
	g, err := repo.GetGroup(ctx, id)
	if err != nil {
		t.Fatalf("Failed to get group: %v", err)
	}
	if g.Name != "Keep" {
		t.Errorf("Name = %q, want %q", g.Name, "Keep")
	}
}

func TestGroupRepository_DeleteGroup_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGroupRepository(db)
	ctx := context.Background()

	id, err := repo.CreateGroup(ctx, "Doomed")
	if err != nil {
		t.Fatalf("Failed to create group: %v", err)
	}

	if err := repo.DeleteGroup(ctx, id); err != nil {
		t.Fatalf("First delete failed: %v", err)
	}

	// Second delete of the same id is a no-op, not a failure
	if err := repo.DeleteGroup(ctx, id); err != nil {
		t.Errorf("Second delete failed: %v", err)
	}

	g, err := repo.GetGroup(ctx, id)
	if err != nil {
		t.Fatalf("Failed to get group: %v", err)
	}
	if g != nil {
		t.Errorf("Expected group gone, got %+v", g)
	}
}
