package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"jotdown/internal/domain"
	"jotdown/internal/domain/models"
)

func TestCreateFolder(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	folder := f.mustCreateFolder(t, "Notes", nil)
	require.NotZero(t, folder.ID)
	require.Equal(t, "Notes", folder.Name)
	require.Nil(t, folder.ParentFolder)

	folders, err := f.folders.ListFolders(ctx)
	require.NoError(t, err)
	require.Len(t, folders, 1)
	require.Equal(t, folder.ID, folders[0].ID)
}

func TestCreateFolderTrimsName(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	folder := f.mustCreateFolder(t, "  Notes  ", nil)
	require.Equal(t, "Notes", folder.Name)
}

func TestCreateFolderEmptyName(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.folders.CreateFolder(context.Background(), &models.CreateFolderRequest{Name: "   "})
	require.ErrorIs(t, err, domain.ErrValidation)

	folders, err := f.folders.ListFolders(context.Background())
	require.NoError(t, err)
	require.Empty(t, folders)
}

func TestCreateFolderMissingParent(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	missing := int64(999)
	_, err := f.folders.CreateFolder(context.Background(), &models.CreateFolderRequest{
		Name:         "Orphan",
		ParentFolder: &missing,
	})
	require.ErrorIs(t, err, domain.ErrParentNotFound)
}

func TestRenameFolder(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	folder := f.mustCreateFolder(t, "Old", nil)

	renamed, err := f.folders.RenameFolder(ctx, folder.ID, "New")
	require.NoError(t, err)
	require.Equal(t, "New", renamed.Name)

	// Renaming to the same name again is a no-op, not an error
	again, err := f.folders.RenameFolder(ctx, folder.ID, "New")
	require.NoError(t, err)
	require.Equal(t, "New", again.Name)
	require.Equal(t, renamed.ParentFolder, again.ParentFolder)
}

func TestRenameFolderNotFound(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.folders.RenameFolder(context.Background(), 42, "Anything")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMoveFolderRoundTrip(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	a := f.mustCreateFolder(t, "A", nil)
	b := f.mustCreateFolder(t, "B", nil)

	require.NoError(t, f.folders.MoveFolder(ctx, b.ID, &a.ID))
	require.NoError(t, f.folders.MoveFolder(ctx, b.ID, nil))

	parents := f.snapshotParents(t)
	require.Nil(t, parents[b.ID])
	require.Nil(t, parents[a.ID])
}

func TestMoveFolderSelfParent(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	a := f.mustCreateFolder(t, "A", nil)

	err := f.folders.MoveFolder(context.Background(), a.ID, &a.ID)
	require.ErrorIs(t, err, domain.ErrSelfParent)
}

func TestMoveFolderIntoDescendant(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	a := f.mustCreateFolder(t, "A", nil)
	b := f.mustCreateFolder(t, "B", &a.ID)
	c := f.mustCreateFolder(t, "C", &b.ID)

	before := f.snapshotParents(t)

	err := f.folders.MoveFolder(ctx, a.ID, &c.ID)
	require.ErrorIs(t, err, domain.ErrCycle)

	// The failed move leaves every parent pointer exactly as it was
	require.Equal(t, before, f.snapshotParents(t))
}

func TestMoveFolderMissingParent(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	a := f.mustCreateFolder(t, "A", nil)
	missing := int64(999)

	err := f.folders.MoveFolder(context.Background(), a.ID, &missing)
	require.ErrorIs(t, err, domain.ErrParentNotFound)
}

func TestMoveFolderNotFound(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	err := f.folders.MoveFolder(context.Background(), 42, nil)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteFolderWithChildFolders(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	a := f.mustCreateFolder(t, "A", nil)
	f.mustCreateFolder(t, "B", &a.ID)

	err := f.folders.DeleteFolder(ctx, a.ID)
	require.ErrorIs(t, err, domain.ErrHasChildren)

	folders, err := f.folders.ListFolders(ctx)
	require.NoError(t, err)
	require.Len(t, folders, 2)
}

func TestDeleteFolderDetachesDocuments(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	a := f.mustCreateFolder(t, "A", nil)
	doc := f.mustCreateDocument(t, "Inside", "text", &a.ID)

	require.NoError(t, f.folders.DeleteFolder(ctx, a.ID))

	// The document survives, detached to root level
	got, err := f.docs.GetDocument(ctx, doc.ID)
	require.NoError(t, err)
	require.Nil(t, got.ParentFolder)
}

func TestDeleteFolderNotFound(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	err := f.folders.DeleteFolder(context.Background(), 42)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
