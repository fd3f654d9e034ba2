package handler

import "net/http"

// Handlers bundles everything NewMux needs to register routes
type Handlers struct {
	Folder   *FolderHandler
	Document *DocumentHandler
	Tree     *TreeHandler
	User     *UserHandler
	AI       *AIHandler
}

// NewMux registers the published route table. The paths and bodies are a
// wire contract with existing clients, including the different move body
// fields for folders (newParentId) and documents (newFolder).
func NewMux(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Document.HealthCheck)

	mux.HandleFunc("GET /folders", h.Folder.ListFolders)
	mux.HandleFunc("POST /folders", h.Folder.CreateFolder)
	mux.HandleFunc("PUT /folders/{id}/rename", h.Folder.RenameFolder)
	mux.HandleFunc("PUT /folders/{id}/move", h.Folder.MoveFolder)
	mux.HandleFunc("DELETE /folders/{id}", h.Folder.DeleteFolder)
	mux.HandleFunc("GET /folders/{id}/root", h.Tree.GetRoot)

	mux.HandleFunc("GET /documents", h.Document.ListDocuments)
	mux.HandleFunc("POST /documents", h.Document.CreateDocument)
	mux.HandleFunc("GET /documents/{id}", h.Document.GetDocument)
	mux.HandleFunc("PUT /documents/{id}", h.Document.UpdateDocument)
	mux.HandleFunc("PUT /documents/{id}/move", h.Document.MoveDocument)
	mux.HandleFunc("DELETE /documents/{id}", h.Document.DeleteDocument)
	mux.HandleFunc("POST /documents/{id}/review", h.AI.ReviewDocument)

	mux.HandleFunc("GET /users", h.User.ListUsers)
	mux.HandleFunc("POST /users", h.User.CreateUser)

	mux.HandleFunc("GET /gemini_key", h.AI.GetKey)

	return mux
}
