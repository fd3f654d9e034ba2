package mirror

import (
	"testing"

	"github.com/stretchr/testify/require"
	"jotdown/internal/domain/models"
)

func ptr(v int64) *int64 { return &v }

func sampleRows() ([]models.Folder, []models.Document) {
	folders := []models.Folder{
		{ID: 1, Name: "Work"},
		{ID: 2, Name: "archive", ParentFolder: ptr(1)},
		{ID: 3, Name: "Personal"},
	}
	documents := []models.Document{
		{ID: 10, Name: "todo", ParentFolder: ptr(1)},
		{ID: 11, Name: "Aardvark", ParentFolder: ptr(1)},
		{ID: 12, Name: "loose"},
	}
	return folders, documents
}

func TestBuild(t *testing.T) {
	t.Parallel()

	folders, documents := sampleRows()
	tree := Build(folders, documents)

	// Root level: folders first, case-insensitive by name, then the doc
	require.Len(t, tree, 3)
	require.Equal(t, "Personal", tree[0].Name)
	require.Equal(t, "Work", tree[1].Name)
	require.Equal(t, "loose", tree[2].Name)
	require.Equal(t, KindDocument, tree[2].Kind)

	work := tree[1]
	require.Len(t, work.Children, 3)
	require.Equal(t, "archive", work.Children[0].Name)
	require.Equal(t, KindFolder, work.Children[0].Kind)
	require.Equal(t, "Aardvark", work.Children[1].Name)
	require.Equal(t, "todo", work.Children[2].Name)
}

func TestBuildOrderIndependent(t *testing.T) {
	t.Parallel()

	folders, documents := sampleRows()

	// Children arriving before their parents must land in the same place
	reversedFolders := []models.Folder{folders[2], folders[1], folders[0]}
	reversedDocs := []models.Document{documents[2], documents[1], documents[0]}

	a := Build(folders, documents)
	b := Build(reversedFolders, reversedDocs)

	require.Equal(t, flatten(a), flatten(b))
}

func TestBuildOrphanSurfacesAtRoot(t *testing.T) {
	t.Parallel()

	folders := []models.Folder{{ID: 1, Name: "Stray", ParentFolder: ptr(999)}}
	documents := []models.Document{{ID: 2, Name: "lost", ParentFolder: ptr(999)}}

	tree := Build(folders, documents)
	require.Len(t, tree, 2)
	require.Equal(t, "Stray", tree[0].Name)
	require.Equal(t, "lost", tree[1].Name)
}

// flatten renders the tree as a deterministic list of (depth, kind, id)
// rows for structural comparison.
type flatRow struct {
	Depth int
	Kind  Kind
	ID    int64
}

func flatten(t Tree) []flatRow {
	var rows []flatRow
	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		rows = append(rows, flatRow{Depth: depth, Kind: n.Kind, ID: n.ID})
		for _, child := range n.Children {
			walk(child, depth+1)
		}
	}
	for _, n := range t {
		walk(n, 0)
	}
	return rows
}
