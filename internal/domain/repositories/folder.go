package repositories

import (
	"context"

	"jotdown/internal/domain/models"
)

// FolderRepository defines data access operations for folders
type FolderRepository interface {
	// Create inserts a new folder and assigns its ID
	Create(ctx context.Context, folder *models.Folder) error

	// GetByID retrieves a folder by ID
	GetByID(ctx context.Context, id int64) (*models.Folder, error)

	// Update persists name and parent changes
	Update(ctx context.Context, folder *models.Folder) error

	// Delete removes a folder row
	Delete(ctx context.Context, id int64) error

	// ListChildren lists immediate child folders (nil parent = root level)
	ListChildren(ctx context.Context, parentID *int64) ([]models.Folder, error)

	// ListAll retrieves every folder as a flat list
	ListAll(ctx context.Context) ([]models.Folder, error)
}
