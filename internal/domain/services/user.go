package services

import (
	"context"

	"jotdown/internal/domain/models"
)

// UserService handles the user collaborator surface
type UserService interface {
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}
