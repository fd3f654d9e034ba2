package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"jotdown/internal/domain"
	"jotdown/internal/domain/models"
	"jotdown/internal/domain/repositories"
	"jotdown/internal/domain/services"
)

type documentService struct {
	docRepo    repositories.DocumentRepository
	folderRepo repositories.FolderRepository
	logger     *slog.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(
	docRepo repositories.DocumentRepository,
	folderRepo repositories.FolderRepository,
	logger *slog.Logger,
) services.DocumentService {
	return &documentService{
		docRepo:    docRepo,
		folderRepo: folderRepo,
		logger:     logger,
	}
}

// CreateDocument creates a document under the given parent (nil = root)
func (s *documentService) CreateDocument(ctx context.Context, req *models.CreateDocumentRequest) (*models.Document, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateName(req.Name); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if req.ParentFolder != nil {
		if _, err := s.folderRepo.GetByID(ctx, *req.ParentFolder); err != nil {
			return nil, fmt.Errorf("folder %d: %w", *req.ParentFolder, domain.ErrParentNotFound)
		}
	}

	doc := &models.Document{
		Name:         req.Name,
		Text:         req.Text,
		ParentFolder: req.ParentFolder,
	}

	if err := s.docRepo.Create(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info("document created",
		"id", doc.ID,
		"name", doc.Name,
		"parent_folder", doc.ParentFolder,
	)

	return doc, nil
}

// GetDocument retrieves a document by ID
func (s *documentService) GetDocument(ctx context.Context, id int64) (*models.Document, error) {
	return s.docRepo.GetByID(ctx, id)
}

// ListDocuments returns every document as a flat list
func (s *documentService) ListDocuments(ctx context.Context) ([]models.Document, error) {
	return s.docRepo.ListAll(ctx)
}

// UpdateDocument applies a partial update: an absent field keeps the
// stored value, matching COALESCE semantics on the write path.
func (s *documentService) UpdateDocument(ctx context.Context, id int64, req *models.UpdateDocumentRequest) (*models.Document, error) {
	doc, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if err := validateName(name); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		doc.Name = name
	}
	if req.Text != nil {
		doc.Text = *req.Text
	}

	if err := s.docRepo.Update(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info("document updated", "id", id)
	return doc, nil
}

// MoveDocument reparents a document. Documents cannot be parents, so no
// cycle is possible; only the target folder's existence is checked.
func (s *documentService) MoveDocument(ctx context.Context, id int64, newFolderID *int64) error {
	doc, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if newFolderID != nil {
		if _, err := s.folderRepo.GetByID(ctx, *newFolderID); err != nil {
			return fmt.Errorf("folder %d: %w", *newFolderID, domain.ErrParentNotFound)
		}
	}

	doc.ParentFolder = newFolderID
	if err := s.docRepo.Update(ctx, doc); err != nil {
		return err
	}

	s.logger.Info("document moved", "id", id, "new_folder", newFolderID)
	return nil
}

// DeleteDocument deletes a document unconditionally
func (s *documentService) DeleteDocument(ctx context.Context, id int64) error {
	if err := s.docRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("document deleted", "id", id)
	return nil
}
