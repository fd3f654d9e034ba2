package mirror

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"jotdown/internal/domain/models"
)

// HTTPRemote implements Remote against the published HTTP API
type HTTPRemote struct {
	baseURL string
	http    *http.Client
}

// NewHTTPRemote creates a remote for the server at baseURL. The passed
// client controls transport concerns; nil means http.DefaultClient.
func NewHTTPRemote(baseURL string, client *http.Client) *HTTPRemote {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPRemote{baseURL: baseURL, http: client}
}

// Fetch retrieves the flat folder and document listings
func (r *HTTPRemote) Fetch(ctx context.Context) ([]models.Folder, []models.Document, error) {
	var folders []models.Folder
	if err := r.call(ctx, http.MethodGet, "/folders", nil, &folders); err != nil {
		return nil, nil, err
	}
	var documents []models.Document
	if err := r.call(ctx, http.MethodGet, "/documents", nil, &documents); err != nil {
		return nil, nil, err
	}
	return folders, documents, nil
}

func (r *HTTPRemote) CreateFolder(ctx context.Context, name string, parent *int64) (*models.Folder, error) {
	req := models.CreateFolderRequest{Name: name, ParentFolder: parent}
	var folder models.Folder
	if err := r.call(ctx, http.MethodPost, "/folders", req, &folder); err != nil {
		return nil, err
	}
	return &folder, nil
}

func (r *HTTPRemote) CreateDocument(ctx context.Context, name, text string, parent *int64) (*models.Document, error) {
	req := models.CreateDocumentRequest{Name: name, Text: text, ParentFolder: parent}
	var doc models.Document
	if err := r.call(ctx, http.MethodPost, "/documents", req, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *HTTPRemote) RenameFolder(ctx context.Context, id int64, name string) error {
	req := models.RenameFolderRequest{Name: name}
	return r.call(ctx, http.MethodPut, fmt.Sprintf("/folders/%d/rename", id), req, nil)
}

func (r *HTTPRemote) UpdateDocument(ctx context.Context, id int64, name, text *string) (*models.Document, error) {
	req := models.UpdateDocumentRequest{Name: name, Text: text}
	var doc models.Document
	if err := r.call(ctx, http.MethodPut, fmt.Sprintf("/documents/%d", id), req, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *HTTPRemote) MoveFolder(ctx context.Context, id int64, newParentID *int64) error {
	req := models.MoveFolderRequest{NewParentID: newParentID}
	return r.call(ctx, http.MethodPut, fmt.Sprintf("/folders/%d/move", id), req, nil)
}

func (r *HTTPRemote) MoveDocument(ctx context.Context, id int64, newFolderID *int64) error {
	req := models.MoveDocumentRequest{NewFolder: newFolderID}
	return r.call(ctx, http.MethodPut, fmt.Sprintf("/documents/%d/move", id), req, nil)
}

func (r *HTTPRemote) DeleteFolder(ctx context.Context, id int64) error {
	return r.call(ctx, http.MethodDelete, fmt.Sprintf("/folders/%d", id), nil, nil)
}

func (r *HTTPRemote) DeleteDocument(ctx context.Context, id int64) error {
	return r.call(ctx, http.MethodDelete, fmt.Sprintf("/documents/%d", id), nil, nil)
}

// call performs one JSON round trip. Non-2xx responses become errors
// carrying the problem detail, so the mirror client never patches its
// tree from a rejected mutation.
func (r *HTTPRemote) call(ctx context.Context, method, path string, body, dest interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%s %s: server returned %d: %s", method, path, resp.StatusCode, detail)
	}

	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}
