package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"jotdown/internal/domain"
	"jotdown/internal/domain/models"
	"jotdown/internal/domain/repositories"
)

// PostgresDocumentRepository implements the DocumentRepository interface
type PostgresDocumentRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(config *RepositoryConfig) repositories.DocumentRepository {
	return &PostgresDocumentRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create inserts a new document and assigns its ID
func (r *PostgresDocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, text, parent_folder)
		VALUES ($1, $2, $3)
		RETURNING id
	`, r.tables.Documents)

	err := GetExecutor(ctx, r.pool).QueryRow(ctx, query,
		doc.Name,
		doc.Text,
		doc.ParentFolder,
	).Scan(&doc.ID)

	if err != nil {
		if isPgForeignKeyError(err) {
			return fmt.Errorf("document %q: %w", doc.Name, domain.ErrParentNotFound)
		}
		r.logger.Error("create document failed", "name", doc.Name, "error", err)
		return fmt.Errorf("create document: %w", err)
	}

	return nil
}

// GetByID retrieves a document by ID
func (r *PostgresDocumentRepository) GetByID(ctx context.Context, id int64) (*models.Document, error) {
	query := fmt.Sprintf(`
		SELECT id, name, text, parent_folder
		FROM %s
		WHERE id = $1
	`, r.tables.Documents)

	var doc models.Document
	err := GetExecutor(ctx, r.pool).QueryRow(ctx, query, id).Scan(
		&doc.ID,
		&doc.Name,
		&doc.Text,
		&doc.ParentFolder,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("document %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get document: %w", err)
	}

	return &doc, nil
}

// Update persists name, text and parent changes
func (r *PostgresDocumentRepository) Update(ctx context.Context, doc *models.Document) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, text = $2, parent_folder = $3
		WHERE id = $4
	`, r.tables.Documents)

	result, err := GetExecutor(ctx, r.pool).Exec(ctx, query,
		doc.Name,
		doc.Text,
		doc.ParentFolder,
		doc.ID,
	)

	if err != nil {
		if isPgForeignKeyError(err) {
			return fmt.Errorf("document %d: %w", doc.ID, domain.ErrParentNotFound)
		}
		r.logger.Error("update document failed", "id", doc.ID, "error", err)
		return fmt.Errorf("update document: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("document %d: %w", doc.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a document row
func (r *PostgresDocumentRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
	`, r.tables.Documents)

	result, err := GetExecutor(ctx, r.pool).Exec(ctx, query, id)
	if err != nil {
		r.logger.Error("delete document failed", "id", id, "error", err)
		return fmt.Errorf("delete document: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("document %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ListByFolder lists documents directly inside a folder (nil = root level)
func (r *PostgresDocumentRepository) ListByFolder(ctx context.Context, folderID *int64) ([]models.Document, error) {
	var query string
	var args []interface{}

	if folderID == nil {
		query = fmt.Sprintf(`
			SELECT id, name, text, parent_folder
			FROM %s
			WHERE parent_folder IS NULL
			ORDER BY name ASC
		`, r.tables.Documents)
	} else {
		query = fmt.Sprintf(`
			SELECT id, name, text, parent_folder
			FROM %s
			WHERE parent_folder = $1
			ORDER BY name ASC
		`, r.tables.Documents)
		args = append(args, *folderID)
	}

	rows, err := GetExecutor(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents in folder: %w", err)
	}
	defer rows.Close()

	var docs []models.Document
	for rows.Next() {
		var doc models.Document
		if err := rows.Scan(&doc.ID, &doc.Name, &doc.Text, &doc.ParentFolder); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}

	return docs, nil
}

// ListAll retrieves every document as a flat list
func (r *PostgresDocumentRepository) ListAll(ctx context.Context) ([]models.Document, error) {
	query := fmt.Sprintf(`
		SELECT id, name, text, parent_folder
		FROM %s
		ORDER BY id ASC
	`, r.tables.Documents)

	rows, err := GetExecutor(ctx, r.pool).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []models.Document
	for rows.Next() {
		var doc models.Document
		if err := rows.Scan(&doc.ID, &doc.Name, &doc.Text, &doc.ParentFolder); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}

	return docs, nil
}
