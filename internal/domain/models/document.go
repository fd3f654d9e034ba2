package models

// Document is a leaf node holding free-form note text.
type Document struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Text         string `json:"text"`
	ParentFolder *int64 `json:"parent_folder"`
}

// CreateDocumentRequest is the body of POST /documents.
type CreateDocumentRequest struct {
	Name         string `json:"name"`
	Text         string `json:"text"`
	ParentFolder *int64 `json:"parent_folder"`
}

// UpdateDocumentRequest is the body of PUT /documents/{id}.
// Both fields are optional; an absent field keeps the stored value.
type UpdateDocumentRequest struct {
	Name *string `json:"name,omitempty"`
	Text *string `json:"text,omitempty"`
}

// MoveDocumentRequest is the body of PUT /documents/{id}/move.
// The field name differs from the folder move body; the asymmetry is
// part of the published API surface.
type MoveDocumentRequest struct {
	NewFolder *int64 `json:"newFolder"`
}
