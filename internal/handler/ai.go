package handler

import (
	"log/slog"
	"net/http"

	"jotdown/internal/domain/services"
	"jotdown/internal/httputil"
)

// AIHandler exposes the summarization surface: key delivery for clients
// that call the model directly, and server-side document review.
type AIHandler struct {
	summaryService services.SummaryService
	geminiKey      string
	logger         *slog.Logger
}

// NewAIHandler creates a new AI handler
func NewAIHandler(summaryService services.SummaryService, geminiKey string, logger *slog.Logger) *AIHandler {
	return &AIHandler{
		summaryService: summaryService,
		geminiKey:      geminiKey,
		logger:         logger,
	}
}

// GetKey hands the configured model key to the client
// GET /gemini_key
func (h *AIHandler) GetKey(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"key": h.geminiKey})
}

// ReviewDocument produces an AI study review of a stored document
// POST /documents/{id}/review
func (h *AIHandler) ReviewDocument(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.ParseID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	review, err := h.summaryService.ReviewDocument(r.Context(), id)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{"review": review})
}
