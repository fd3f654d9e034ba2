package services

import (
	"context"

	"jotdown/internal/domain/models"
)

// FolderService handles folder business logic: every mutation validates
// tree invariants before anything is written.
type FolderService interface {
	// CreateFolder creates a folder under the given parent (nil = root)
	CreateFolder(ctx context.Context, req *models.CreateFolderRequest) (*models.Folder, error)

	// ListFolders returns every folder as a flat list
	ListFolders(ctx context.Context) ([]models.Folder, error)

	// RenameFolder sets a folder's name
	RenameFolder(ctx context.Context, id int64, name string) (*models.Folder, error)

	// MoveFolder reparents a folder, rejecting self-parent and cycle moves
	MoveFolder(ctx context.Context, id int64, newParentID *int64) error

	// DeleteFolder deletes a folder; refused while child folders exist
	DeleteFolder(ctx context.Context, id int64) error
}
