// Package memory provides in-memory implementations of the repository
// interfaces. The server can run against it for local development, and
// tests use it to exercise the services without Postgres - including
// deliberately corrupting parent pointers to simulate invariant
// violations the production constraints would normally prevent.
package memory

import (
	"context"
	"sync"

	"jotdown/internal/domain/models"
	"jotdown/internal/domain/repositories"
)

// Store holds all entity rows behind a single mutex
type Store struct {
	mu        sync.Mutex
	txMu      sync.Mutex
	folders   map[int64]models.Folder
	documents map[int64]models.Document
	users     map[int64]models.User
	nextID    int64
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		folders:   make(map[int64]models.Folder),
		documents: make(map[int64]models.Document),
		users:     make(map[int64]models.User),
	}
}

func (s *Store) assignID() int64 {
	s.nextID++
	return s.nextID
}

// Folders returns the folder repository view of the store
func (s *Store) Folders() repositories.FolderRepository {
	return &folderRepo{store: s}
}

// Documents returns the document repository view of the store
func (s *Store) Documents() repositories.DocumentRepository {
	return &documentRepo{store: s}
}

// Users returns the user repository view of the store
func (s *Store) Users() repositories.UserRepository {
	return &userRepo{store: s}
}

// Tx returns a transaction manager that serializes multi-step mutations
func (s *Store) Tx() repositories.TransactionManager {
	return &txManager{store: s}
}

type txManager struct {
	store *Store
}

// ExecTx serializes whole validate-then-write sequences against each
// other; individual repository calls inside fn take the row mutex as
// usual.
func (tm *txManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	tm.store.txMu.Lock()
	defer tm.store.txMu.Unlock()
	return fn(ctx)
}
