package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"jotdown/internal/domain/models"
	"jotdown/internal/domain/repositories"
)

// PostgresUserRepository implements the UserRepository interface
type PostgresUserRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(config *RepositoryConfig) repositories.UserRepository {
	return &PostgresUserRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create inserts a new user and assigns its ID
func (r *PostgresUserRepository) Create(ctx context.Context, user *models.User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, email, root_folder)
		VALUES ($1, $2, $3)
		RETURNING id
	`, r.tables.Users)

	err := GetExecutor(ctx, r.pool).QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.RootFolder,
	).Scan(&user.ID)

	if err != nil {
		r.logger.Error("create user failed", "email", user.Email, "error", err)
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// ListAll retrieves every user
func (r *PostgresUserRepository) ListAll(ctx context.Context) ([]models.User, error) {
	query := fmt.Sprintf(`
		SELECT id, name, email, root_folder
		FROM %s
		ORDER BY id ASC
	`, r.tables.Users)

	rows, err := GetExecutor(ctx, r.pool).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.RootFolder); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}
