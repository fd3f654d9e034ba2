package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"jotdown/internal/domain/models"
	"jotdown/internal/domain/services"
	"jotdown/internal/repository/memory"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixture struct {
	store   *memory.Store
	folders services.FolderService
	docs    services.DocumentService
	tree    services.TreeService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	logger := testLogger()
	return &fixture{
		store:   store,
		folders: NewFolderService(store.Folders(), store.Tx(), logger),
		docs:    NewDocumentService(store.Documents(), store.Folders(), logger),
		tree:    NewTreeService(store.Folders(), store.Documents(), logger),
	}
}

func (f *fixture) mustCreateFolder(t *testing.T, name string, parent *int64) *models.Folder {
	t.Helper()
	folder, err := f.folders.CreateFolder(context.Background(), &models.CreateFolderRequest{
		Name:         name,
		ParentFolder: parent,
	})
	require.NoError(t, err)
	return folder
}

func (f *fixture) mustCreateDocument(t *testing.T, name, text string, parent *int64) *models.Document {
	t.Helper()
	doc, err := f.docs.CreateDocument(context.Background(), &models.CreateDocumentRequest{
		Name:         name,
		Text:         text,
		ParentFolder: parent,
	})
	require.NoError(t, err)
	return doc
}

// snapshotParents captures every folder's parent pointer so tests can
// assert a failed mutation left the tree untouched.
func (f *fixture) snapshotParents(t *testing.T) map[int64]*int64 {
	t.Helper()
	folders, err := f.folders.ListFolders(context.Background())
	require.NoError(t, err)

	parents := make(map[int64]*int64, len(folders))
	for _, folder := range folders {
		parents[folder.ID] = folder.ParentFolder
	}
	return parents
}
