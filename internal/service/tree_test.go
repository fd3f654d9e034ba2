package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"jotdown/internal/domain/models"
)

func TestHydrateFolder(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	root := f.mustCreateFolder(t, "Root", nil)
	child := f.mustCreateFolder(t, "Child", &root.ID)
	grandchild := f.mustCreateFolder(t, "Grandchild", &child.ID)
	rootDoc := f.mustCreateDocument(t, "RootDoc", "r", &root.ID)
	childDoc := f.mustCreateDocument(t, "ChildDoc", "c", &child.ID)
	f.mustCreateDocument(t, "Unrelated", "u", nil)

	tree, err := f.tree.HydrateFolder(ctx, root.ID)
	require.NoError(t, err)
	require.NotNil(t, tree)

	require.Equal(t, root.ID, tree.ID)
	require.Len(t, tree.Documents, 1)
	require.Equal(t, rootDoc.ID, tree.Documents[0].ID)

	require.Len(t, tree.Children, 1)
	childNode := tree.Children[0]
	require.Equal(t, child.ID, childNode.ID)
	require.Len(t, childNode.Documents, 1)
	require.Equal(t, childDoc.ID, childNode.Documents[0].ID)

	require.Len(t, childNode.Children, 1)
	require.Equal(t, grandchild.ID, childNode.Children[0].ID)
	require.Empty(t, childNode.Children[0].Children)
	require.Empty(t, childNode.Children[0].Documents)
}

func TestHydrateFolderMissing(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	tree, err := f.tree.HydrateFolder(context.Background(), 999)
	require.NoError(t, err)
	require.Nil(t, tree)
}

func TestHydrateFolderEmptyCollectionsNotNil(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	root := f.mustCreateFolder(t, "Root", nil)

	tree, err := f.tree.HydrateFolder(context.Background(), root.ID)
	require.NoError(t, err)
	require.NotNil(t, tree.Children)
	require.NotNil(t, tree.Documents)
}

// The hydrator must terminate even when the stored parent pointers form
// a cycle. The mutation path refuses to create one, so the test corrupts
// the store directly through the repository.
func TestHydrateFolderTerminatesOnCycle(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	a := f.mustCreateFolder(t, "A", nil)
	b := f.mustCreateFolder(t, "B", &a.ID)

	corrupted := &models.Folder{ID: a.ID, Name: a.Name, ParentFolder: &b.ID}
	require.NoError(t, f.store.Folders().Update(ctx, corrupted))

	tree, err := f.tree.HydrateFolder(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, tree)

	// A contains B; the back edge to A is pruned instead of recursing
	require.Len(t, tree.Children, 1)
	require.Equal(t, b.ID, tree.Children[0].ID)
	require.Empty(t, tree.Children[0].Children)
}
