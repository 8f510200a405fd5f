package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/laurenrich/4111-Database-Project/internal/auth"
	"github.com/laurenrich/4111-Database-Project/internal/model"
	"github.com/laurenrich/4111-Database-Project/internal/service"

	"github.com/rs/zerolog"
)

// AuthHandler handles the session lifecycle routes.
type AuthHandler struct {
	service    service.AuthService
	sessionTTL time.Duration
	logger     zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service service.AuthService, sessionTTL time.Duration, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service:    service,
		sessionTTL: sessionTTL,
		logger:     logger.With().Str("handler", "auth").Logger(),
	}
}

// loginForm is the GET /login response body.
type loginForm struct {
	Form string `json:"form"`
	Next string `json:"next,omitempty"`
}

// LoginForm handles GET /login requests.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, loginForm{
		Form: "login",
		Next: sanitizeNext(r.URL.Query().Get("next")),
	})
}

// Login handles POST /login requests. On success the signed session token
// is set as an HttpOnly cookie and the client is redirected to the page it
// originally asked for.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeValidationFailed, "invalid form body", h.logger)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	next := sanitizeNext(r.FormValue("next"))

	user, token, err := h.service.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			writeError(w, r, http.StatusUnauthorized, model.ErrCodeInvalidCredentials,
				model.ErrInvalidCredentials.Message, h.logger)
			return
		}
		writeServiceError(w, r, err, h.logger)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.sessionTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Info().Str("username", user.Username).Str("next", next).Msg("session established")

	redirect(w, r, next)
}

// Logout handles GET /logout requests: the session cookie is expired and
// the client is sent home.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	redirect(w, r, "/")
}
