package models

// Folder is a container node in the document tree. ParentFolder is the
// single source of truth for tree linkage: nil means root level.
type Folder struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ParentFolder *int64 `json:"parent_folder"`
}

// CreateFolderRequest is the body of POST /folders.
type CreateFolderRequest struct {
	Name         string `json:"name"`
	ParentFolder *int64 `json:"parent_folder"`
}

// RenameFolderRequest is the body of PUT /folders/{id}/rename.
type RenameFolderRequest struct {
	Name string `json:"name"`
}

// MoveFolderRequest is the body of PUT /folders/{id}/move.
// null (or absent) newParentId moves the folder to root.
type MoveFolderRequest struct {
	NewParentID *int64 `json:"newParentId"`
}
