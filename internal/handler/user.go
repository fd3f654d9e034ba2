package handler

import (
	"log/slog"
	"net/http"

	"jotdown/internal/domain/models"
	"jotdown/internal/domain/services"
	"jotdown/internal/httputil"
)

// UserHandler handles the external-collaborator user surface
type UserHandler struct {
	userService services.UserService
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService services.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// ListUsers returns every user
// GET /users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		handleError(w, h.logger, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}

	httputil.RespondJSON(w, http.StatusOK, users)
}

// CreateUser creates a new user
// POST /users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.userService.CreateUser(r.Context(), &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User created",
		"user":    user,
	})
}
