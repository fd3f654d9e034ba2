package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"jotdown/internal/domain"
	"jotdown/internal/httputil"
)

// handleError converts domain errors to HTTP responses. Tree-shape
// violations are client mistakes, so they map to 400 alongside plain
// validation failures.
func handleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrSelfParent),
		errors.Is(err, domain.ErrCycle),
		errors.Is(err, domain.ErrParentNotFound),
		errors.Is(err, domain.ErrHasChildren):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	default:
		logger.Error("unhandled error", "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// messageResponse is the body of mutation endpoints that do not return
// the affected row.
type messageResponse struct {
	Message string `json:"message"`
}
