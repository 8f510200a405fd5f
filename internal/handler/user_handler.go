package handler

import (
	"net/http"

	"github.com/laurenrich/4111-Database-Project/internal/model"
	"github.com/laurenrich/4111-Database-Project/internal/service"

	"github.com/rs/zerolog"
)

// UserHandler handles user directory HTTP requests.
type UserHandler struct {
	service service.UserService
	logger  zerolog.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(service service.UserService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger.With().Str("handler", "user").Logger(),
	}
}

// List handles GET /users requests. Password hashes never serialise.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	if users == nil {
		users = []model.User{}
	}
	writeJSON(w, http.StatusOK, users)
}
