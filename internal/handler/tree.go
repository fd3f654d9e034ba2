package handler

import (
	"log/slog"
	"net/http"

	"jotdown/internal/domain/services"
	"jotdown/internal/httputil"
)

// TreeHandler serves hydrated subtrees
type TreeHandler struct {
	treeService services.TreeService
	logger      *slog.Logger
}

// NewTreeHandler creates a new tree handler
func NewTreeHandler(treeService services.TreeService, logger *slog.Logger) *TreeHandler {
	return &TreeHandler{
		treeService: treeService,
		logger:      logger,
	}
}

// GetRoot returns the fully hydrated subtree rooted at {id}. A missing
// folder is not an error: the body is a JSON null with 200.
// GET /folders/{id}/root
func (h *TreeHandler) GetRoot(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.ParseID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	tree, err := h.treeService.HydrateFolder(r.Context(), id)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, tree)
}
