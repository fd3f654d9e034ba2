package repositories

import (
	"context"

	"jotdown/internal/domain/models"
)

// DocumentRepository defines data access operations for documents
type DocumentRepository interface {
	// Create inserts a new document and assigns its ID
	Create(ctx context.Context, doc *models.Document) error

	// GetByID retrieves a document by ID
	GetByID(ctx context.Context, id int64) (*models.Document, error)

	// Update persists name, text and parent changes
	Update(ctx context.Context, doc *models.Document) error

	// Delete removes a document row
	Delete(ctx context.Context, id int64) error

	// ListByFolder lists documents directly inside a folder (nil = root level)
	ListByFolder(ctx context.Context, folderID *int64) ([]models.Document, error)

	// ListAll retrieves every document as a flat list
	ListAll(ctx context.Context) ([]models.Document, error)
}
