package services

import (
	"context"

	"jotdown/internal/domain/models"
)

// DocumentService handles document business logic
type DocumentService interface {
	// CreateDocument creates a document under the given parent (nil = root)
	CreateDocument(ctx context.Context, req *models.CreateDocumentRequest) (*models.Document, error)

	// GetDocument retrieves a document by ID
	GetDocument(ctx context.Context, id int64) (*models.Document, error)

	// ListDocuments returns every document as a flat list
	ListDocuments(ctx context.Context) ([]models.Document, error)

	// UpdateDocument applies a partial update (name and/or text)
	UpdateDocument(ctx context.Context, id int64, req *models.UpdateDocumentRequest) (*models.Document, error)

	// MoveDocument reparents a document; documents cannot form cycles
	MoveDocument(ctx context.Context, id int64, newFolderID *int64) error

	// DeleteDocument deletes a document unconditionally
	DeleteDocument(ctx context.Context, id int64) error
}
