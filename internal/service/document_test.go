package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"jotdown/internal/domain"
	"jotdown/internal/domain/models"
)

func TestCreateDocument(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	folder := f.mustCreateFolder(t, "Notes", nil)
	doc := f.mustCreateDocument(t, "Todo", "milk, eggs", &folder.ID)

	got, err := f.docs.GetDocument(ctx, doc.ID)
	require.NoError(t, err)
	require.Equal(t, "Todo", got.Name)
	require.Equal(t, "milk, eggs", got.Text)
	require.Equal(t, folder.ID, *got.ParentFolder)
}

func TestCreateDocumentMissingParent(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	missing := int64(999)
	_, err := f.docs.CreateDocument(context.Background(), &models.CreateDocumentRequest{
		Name:         "Orphan",
		ParentFolder: &missing,
	})
	require.ErrorIs(t, err, domain.ErrParentNotFound)
}

func TestUpdateDocumentPartial(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	doc := f.mustCreateDocument(t, "Draft", "original text", nil)

	// Only the name: text keeps its stored value
	name := "Final"
	updated, err := f.docs.UpdateDocument(ctx, doc.ID, &models.UpdateDocumentRequest{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Final", updated.Name)
	require.Equal(t, "original text", updated.Text)

	// Only the text: name keeps its stored value
	text := "revised text"
	updated, err = f.docs.UpdateDocument(ctx, doc.ID, &models.UpdateDocumentRequest{Text: &text})
	require.NoError(t, err)
	require.Equal(t, "Final", updated.Name)
	require.Equal(t, "revised text", updated.Text)

	// Text can be cleared to empty explicitly
	empty := ""
	updated, err = f.docs.UpdateDocument(ctx, doc.ID, &models.UpdateDocumentRequest{Text: &empty})
	require.NoError(t, err)
	require.Equal(t, "", updated.Text)
}

func TestUpdateDocumentEmptyName(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	doc := f.mustCreateDocument(t, "Draft", "text", nil)

	blank := "   "
	_, err := f.docs.UpdateDocument(context.Background(), doc.ID, &models.UpdateDocumentRequest{Name: &blank})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestMoveDocument(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	folder := f.mustCreateFolder(t, "Notes", nil)
	doc := f.mustCreateDocument(t, "Todo", "", nil)

	require.NoError(t, f.docs.MoveDocument(ctx, doc.ID, &folder.ID))
	got, err := f.docs.GetDocument(ctx, doc.ID)
	require.NoError(t, err)
	require.Equal(t, folder.ID, *got.ParentFolder)

	require.NoError(t, f.docs.MoveDocument(ctx, doc.ID, nil))
	got, err = f.docs.GetDocument(ctx, doc.ID)
	require.NoError(t, err)
	require.Nil(t, got.ParentFolder)
}

func TestMoveDocumentMissingFolder(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	doc := f.mustCreateDocument(t, "Todo", "", nil)
	missing := int64(999)

	err := f.docs.MoveDocument(context.Background(), doc.ID, &missing)
	require.ErrorIs(t, err, domain.ErrParentNotFound)
}

func TestDeleteDocument(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	doc := f.mustCreateDocument(t, "Todo", "", nil)

	require.NoError(t, f.docs.DeleteDocument(ctx, doc.ID))

	_, err := f.docs.GetDocument(ctx, doc.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.ErrorIs(t, f.docs.DeleteDocument(ctx, doc.ID), domain.ErrNotFound)
}
