package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates the schema if it does not exist. Parent pointers are the
// only tree linkage. Documents and user root references detach to NULL when
// their folder goes away, so a folder delete never leaves dangling ids.
func Migrate(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	stmts := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id BIGSERIAL PRIMARY KEY,
				name TEXT NOT NULL,
				parent_folder BIGINT REFERENCES %s(id)
			)
		`, tables.Folders, tables.Folders),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id BIGSERIAL PRIMARY KEY,
				name TEXT NOT NULL,
				text TEXT NOT NULL DEFAULT '',
				parent_folder BIGINT REFERENCES %s(id) ON DELETE SET NULL
			)
		`, tables.Documents, tables.Folders),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id BIGSERIAL PRIMARY KEY,
				name TEXT NOT NULL,
				email TEXT NOT NULL,
				root_folder BIGINT REFERENCES %s(id) ON DELETE SET NULL
			)
		`, tables.Users, tables.Folders),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_parent_idx ON %s (parent_folder)`,
			tables.Folders, tables.Folders),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_parent_idx ON %s (parent_folder)`,
			tables.Documents, tables.Documents),
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate schema: %w", err)
		}
	}

	return nil
}
