// Command seed creates a small sample tree so a fresh database has
// something to look at.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"jotdown/internal/config"
	"jotdown/internal/domain/models"
	"jotdown/internal/repository/postgres"
	"jotdown/internal/service"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)
	if err := postgres.Migrate(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to run schema bootstrap: %v", err)
	}

	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	folderRepo := postgres.NewFolderRepository(repoConfig)
	docRepo := postgres.NewDocumentRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	folderService := service.NewFolderService(folderRepo, txManager, logger)
	docService := service.NewDocumentService(docRepo, folderRepo, logger)

	notes, err := folderService.CreateFolder(ctx, &models.CreateFolderRequest{Name: "Notes"})
	if err != nil {
		log.Fatalf("Failed to create folder: %v", err)
	}
	classes, err := folderService.CreateFolder(ctx, &models.CreateFolderRequest{
		Name:         "Classes",
		ParentFolder: &notes.ID,
	})
	if err != nil {
		log.Fatalf("Failed to create folder: %v", err)
	}

	docs := []models.CreateDocumentRequest{
		{Name: "Welcome", Text: "Start writing here.", ParentFolder: &notes.ID},
		{Name: "Biology", Text: "Cells are the basic unit of life.", ParentFolder: &classes.ID},
		{Name: "Scratch", Text: ""},
	}
	for i := range docs {
		if _, err := docService.CreateDocument(ctx, &docs[i]); err != nil {
			log.Fatalf("Failed to create document %q: %v", docs[i].Name, err)
		}
	}

	logger.Info("seeded sample tree",
		"root_folder", notes.ID,
		"child_folder", classes.ID,
		"documents", len(docs),
	)
}
