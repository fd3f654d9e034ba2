package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"jotdown/internal/config"
	"jotdown/internal/domain/repositories"
	"jotdown/internal/handler"
	"jotdown/internal/middleware"
	"jotdown/internal/repository/memory"
	"jotdown/internal/repository/postgres"
	"jotdown/internal/service"
	"jotdown/internal/service/ai"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
		"memory_store", cfg.MemoryStore,
	)

	var (
		folderRepo repositories.FolderRepository
		docRepo    repositories.DocumentRepository
		userRepo   repositories.UserRepository
		txManager  repositories.TransactionManager
	)

	if cfg.MemoryStore {
		store := memory.NewStore()
		folderRepo = store.Folders()
		docRepo = store.Documents()
		userRepo = store.Users()
		txManager = store.Tx()
		logger.Warn("running on the in-memory store; nothing will persist")
	} else {
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

		logger.Info("database connected")

		repoConfig := &postgres.RepositoryConfig{
			Pool:   pool,
			Tables: tables,
			Logger: logger,
		}
		folderRepo = postgres.NewFolderRepository(repoConfig)
		docRepo = postgres.NewDocumentRepository(repoConfig)
		userRepo = postgres.NewUserRepository(repoConfig)
		txManager = postgres.NewTransactionManager(pool)
	}

	// Services
	folderService := service.NewFolderService(folderRepo, txManager, logger)
	docService := service.NewDocumentService(docRepo, folderRepo, logger)
	treeService := service.NewTreeService(folderRepo, docRepo, logger)
	userService := service.NewUserService(userRepo, logger)
	summarizer := ai.NewGeminiClient(cfg.GeminiAPIKey)
	summaryService := service.NewSummaryService(docRepo, summarizer, logger)

	// Handlers and routes
	mux := handler.NewMux(handler.Handlers{
		Folder:   handler.NewFolderHandler(folderService, logger),
		Document: handler.NewDocumentHandler(docService, logger),
		Tree:     handler.NewTreeHandler(treeService, logger),
		User:     handler.NewUserHandler(userService, logger),
		AI:       handler.NewAIHandler(summaryService, cfg.GeminiAPIKey, logger),
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	var root http.Handler = mux
	root = middleware.Recovery(logger)(root)
	root = middleware.RequestID(logger)(root)
	root = corsHandler.Handler(root)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server failed: %v", err)
	}
}
