package models

// FolderTree is a fully hydrated subtree: the folder itself, its child
// folders recursively expanded, and the documents attached directly to it.
type FolderTree struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	ParentFolder *int64        `json:"parent_folder"`
	Children     []*FolderTree `json:"children"`
	Documents    []Document    `json:"documents"`
}
