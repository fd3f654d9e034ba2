package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"jotdown/internal/config"
	"jotdown/internal/domain"
	"jotdown/internal/domain/models"
	"jotdown/internal/domain/repositories"
	"jotdown/internal/domain/services"
)

type folderService struct {
	folderRepo repositories.FolderRepository
	txManager  repositories.TransactionManager
	logger     *slog.Logger
}

// NewFolderService creates a new folder service
func NewFolderService(
	folderRepo repositories.FolderRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) services.FolderService {
	return &folderService{
		folderRepo: folderRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// CreateFolder creates a folder under the given parent (nil = root)
func (s *folderService) CreateFolder(ctx context.Context, req *models.CreateFolderRequest) (*models.Folder, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateName(req.Name); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if req.ParentFolder != nil {
		if _, err := s.folderRepo.GetByID(ctx, *req.ParentFolder); err != nil {
			return nil, fmt.Errorf("folder %d: %w", *req.ParentFolder, domain.ErrParentNotFound)
		}
	}

	folder := &models.Folder{
		Name:         req.Name,
		ParentFolder: req.ParentFolder,
	}

	if err := s.folderRepo.Create(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("folder created",
		"id", folder.ID,
		"name", folder.Name,
		"parent_folder", folder.ParentFolder,
	)

	return folder, nil
}

// ListFolders returns every folder as a flat list
func (s *folderService) ListFolders(ctx context.Context) ([]models.Folder, error) {
	return s.folderRepo.ListAll(ctx)
}

// RenameFolder sets a folder's name; sibling names need not be unique
func (s *folderService) RenameFolder(ctx context.Context, id int64, name string) (*models.Folder, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	folder, err := s.folderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	folder.Name = name
	if err := s.folderRepo.Update(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("folder renamed", "id", id, "name", name)
	return folder, nil
}

// MoveFolder reparents a folder. Validation and the write run in one
// transaction so two concurrent moves cannot both pass validation
// against state the other is about to change.
func (s *folderService) MoveFolder(ctx context.Context, id int64, newParentID *int64) error {
	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		folder, err := s.folderRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		if newParentID != nil {
			if *newParentID == id {
				return fmt.Errorf("folder %d: %w", id, domain.ErrSelfParent)
			}
			if _, err := s.folderRepo.GetByID(txCtx, *newParentID); err != nil {
				return fmt.Errorf("folder %d: %w", *newParentID, domain.ErrParentNotFound)
			}
			descendant, err := s.isDescendant(txCtx, id, *newParentID)
			if err != nil {
				return err
			}
			if descendant {
				return fmt.Errorf("folder %d into %d: %w", id, *newParentID, domain.ErrCycle)
			}
		}

		folder.ParentFolder = newParentID
		return s.folderRepo.Update(txCtx, folder)
	})
	if err != nil {
		return err
	}

	s.logger.Info("folder moved", "id", id, "new_parent", newParentID)
	return nil
}

// DeleteFolder deletes a folder; refused while child folders exist.
// Documents inside the folder do not block: the store detaches them to
// root, as it does for user root-folder references.
func (s *folderService) DeleteFolder(ctx context.Context, id int64) error {
	folder, err := s.folderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	children, err := s.folderRepo.ListChildren(ctx, &id)
	if err != nil {
		return fmt.Errorf("check child folders: %w", err)
	}
	if len(children) > 0 {
		return fmt.Errorf("folder %d contains %d subfolders: %w", id, len(children), domain.ErrHasChildren)
	}

	if err := s.folderRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("folder deleted", "id", id, "name", folder.Name)
	return nil
}

// isDescendant reports whether candidate lies in the subtree rooted at
// id. The walk tracks visited ids so it terminates even when the stored
// data already contains a cycle; the forest invariant is never trusted
// blindly here.
func (s *folderService) isDescendant(ctx context.Context, id, candidate int64) (bool, error) {
	visited := map[int64]struct{}{id: {}}
	frontier := []int64{id}

	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]

		children, err := s.folderRepo.ListChildren(ctx, &current)
		if err != nil {
			return false, fmt.Errorf("walk descendants of folder %d: %w", current, err)
		}
		for _, child := range children {
			if child.ID == candidate {
				return true, nil
			}
			if _, seen := visited[child.ID]; seen {
				continue
			}
			visited[child.ID] = struct{}{}
			frontier = append(frontier, child.ID)
		}
	}

	return false, nil
}

// validateName enforces the shared name rules for folders and documents
func validateName(name string) error {
	return validation.Validate(name,
		validation.Required.Error("name must not be empty"),
		validation.Length(1, config.MaxNameLength),
	)
}
