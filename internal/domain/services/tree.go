package services

import (
	"context"

	"jotdown/internal/domain/models"
)

// TreeService materializes full subtrees from flat parent-pointer rows
type TreeService interface {
	// HydrateFolder recursively expands the subtree rooted at id.
	// A missing id hydrates to (nil, nil) rather than an error.
	HydrateFolder(ctx context.Context, id int64) (*models.FolderTree, error)
}
