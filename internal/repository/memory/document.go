package memory

import (
	"context"
	"fmt"
	"sort"

	"jotdown/internal/domain"
	"jotdown/internal/domain/models"
)

type documentRepo struct {
	store *Store
}

func (r *documentRepo) Create(ctx context.Context, doc *models.Document) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if doc.ParentFolder != nil {
		if _, ok := s.folders[*doc.ParentFolder]; !ok {
			return fmt.Errorf("document %q: %w", doc.Name, domain.ErrParentNotFound)
		}
	}

	doc.ID = s.assignID()
	s.documents[doc.ID] = *doc
	return nil
}

func (r *documentRepo) GetByID(ctx context.Context, id int64) (*models.Document, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.documents[id]
	if !ok {
		return nil, fmt.Errorf("document %d: %w", id, domain.ErrNotFound)
	}
	return &doc, nil
}

func (r *documentRepo) Update(ctx context.Context, doc *models.Document) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.documents[doc.ID]; !ok {
		return fmt.Errorf("document %d: %w", doc.ID, domain.ErrNotFound)
	}
	if doc.ParentFolder != nil {
		if _, ok := s.folders[*doc.ParentFolder]; !ok {
			return fmt.Errorf("document %d: %w", doc.ID, domain.ErrParentNotFound)
		}
	}

	s.documents[doc.ID] = *doc
	return nil
}

func (r *documentRepo) Delete(ctx context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.documents[id]; !ok {
		return fmt.Errorf("document %d: %w", id, domain.ErrNotFound)
	}
	delete(s.documents, id)
	return nil
}

func (r *documentRepo) ListByFolder(ctx context.Context, folderID *int64) ([]models.Document, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var docs []models.Document
	for _, doc := range s.documents {
		if sameParent(doc.ParentFolder, folderID) {
			docs = append(docs, doc)
		}
	}
	sort.Slice(docs, func(i, j int) bool {
		if docs[i].Name != docs[j].Name {
			return docs[i].Name < docs[j].Name
		}
		return docs[i].ID < docs[j].ID
	})
	return docs, nil
}

func (r *documentRepo) ListAll(ctx context.Context) ([]models.Document, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := make([]models.Document, 0, len(s.documents))
	for _, doc := range s.documents {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}
