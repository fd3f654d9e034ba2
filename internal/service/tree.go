package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"jotdown/internal/domain"
	"jotdown/internal/domain/models"
	"jotdown/internal/domain/repositories"
	"jotdown/internal/domain/services"
)

type treeService struct {
	folderRepo repositories.FolderRepository
	docRepo    repositories.DocumentRepository
	logger     *slog.Logger
}

// NewTreeService creates a new tree service
func NewTreeService(
	folderRepo repositories.FolderRepository,
	docRepo repositories.DocumentRepository,
	logger *slog.Logger,
) services.TreeService {
	return &treeService{
		folderRepo: folderRepo,
		docRepo:    docRepo,
		logger:     logger,
	}
}

// HydrateFolder recursively expands the subtree rooted at id. A missing
// id hydrates to (nil, nil); callers render that as a null tree rather
// than an error.
func (s *treeService) HydrateFolder(ctx context.Context, id int64) (*models.FolderTree, error) {
	visited := make(map[int64]struct{})

	tree, err := s.hydrate(ctx, id, visited)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("subtree hydrated", "root_id", id, "folders_visited", len(visited))
	return tree, nil
}

// hydrate expands one folder. The visited set is shared across the whole
// call: a revisited id means the stored data contains a cycle, and the
// subtree is pruned there instead of recursing forever. Mutation-side
// validation should make that impossible, but hydration never hangs even
// when some other write path broke the forest invariant.
func (s *treeService) hydrate(ctx context.Context, id int64, visited map[int64]struct{}) (*models.FolderTree, error) {
	if _, seen := visited[id]; seen {
		return nil, nil
	}
	visited[id] = struct{}{}

	folder, err := s.folderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("hydrate folder %d: %w", id, err)
	}

	docs, err := s.docRepo.ListByFolder(ctx, &id)
	if err != nil {
		return nil, fmt.Errorf("hydrate documents of folder %d: %w", id, err)
	}
	if docs == nil {
		docs = []models.Document{}
	}

	node := &models.FolderTree{
		ID:           folder.ID,
		Name:         folder.Name,
		ParentFolder: folder.ParentFolder,
		Children:     []*models.FolderTree{},
		Documents:    docs,
	}

	children, err := s.folderRepo.ListChildren(ctx, &id)
	if err != nil {
		return nil, fmt.Errorf("hydrate children of folder %d: %w", id, err)
	}
	for _, child := range children {
		sub, err := s.hydrate(ctx, child.ID, visited)
		if err != nil {
			return nil, err
		}
		if sub != nil {
			node.Children = append(node.Children, sub)
		}
	}

	return node, nil
}
