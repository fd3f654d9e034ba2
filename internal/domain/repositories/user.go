package repositories

import (
	"context"

	"jotdown/internal/domain/models"
)

// UserRepository defines data access operations for users
type UserRepository interface {
	// Create inserts a new user and assigns its ID
	Create(ctx context.Context, user *models.User) error

	// ListAll retrieves every user
	ListAll(ctx context.Context) ([]models.User, error)
}
