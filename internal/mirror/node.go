// Package mirror maintains a client-side copy of the server's document
// tree. The server stays authoritative: the mirror is rebuilt or patched
// only from confirmed responses, and every operation returns a new tree
// so callers can roll back to the previous one for free.
package mirror

import (
	"sort"
	"strings"

	"jotdown/internal/domain/models"
)

// Kind discriminates the two node types of the tree
type Kind int

const (
	KindFolder Kind = iota
	KindDocument
)

// Node is one entry in the mirrored tree. Only folders carry children;
// Text is populated for documents.
type Node struct {
	ID       int64
	Kind     Kind
	Name     string
	Text     string
	Children []*Node
}

// Tree is the root level of the mirror
type Tree []*Node

// FolderNode converts a confirmed folder row into a mirror node
func FolderNode(f models.Folder) *Node {
	return &Node{ID: f.ID, Kind: KindFolder, Name: f.Name}
}

// DocumentNode converts a confirmed document row into a mirror node
func DocumentNode(d models.Document) *Node {
	return &Node{ID: d.ID, Kind: KindDocument, Name: d.Name, Text: d.Text}
}

// Build assembles a tree from flat rows. Children are indexed by parent
// id in one pass, so input order does not matter and the whole build is
// linear in the number of rows. Rows pointing at a parent the input does
// not contain surface at root level rather than disappearing.
func Build(folders []models.Folder, documents []models.Document) Tree {
	byID := make(map[int64]*Node, len(folders))
	for _, f := range folders {
		byID[f.ID] = FolderNode(f)
	}

	var root Tree
	attach := func(parent *int64, node *Node) {
		if parent != nil {
			if p, ok := byID[*parent]; ok {
				p.Children = append(p.Children, node)
				return
			}
		}
		root = append(root, node)
	}

	for _, f := range folders {
		attach(f.ParentFolder, byID[f.ID])
	}
	for _, d := range documents {
		attach(d.ParentFolder, DocumentNode(d))
	}

	sortLevel(root)
	for _, n := range byID {
		sortLevel(n.Children)
	}
	return root
}

// sortLevel orders siblings for display: folders before documents, then
// case-insensitive name, then id for a stable tie-break.
func sortLevel(nodes []*Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		a, b := nodes[i], nodes[j]
		if a.Kind != b.Kind {
			return a.Kind == KindFolder
		}
		an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
		if an != bn {
			return an < bn
		}
		return a.ID < b.ID
	})
}
