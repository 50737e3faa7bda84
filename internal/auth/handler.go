package auth

import (
	"context"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/velaris/seoforge/internal/models"
	"github.com/velaris/seoforge/internal/web"
)

// UserStore defines the interface for user persistence. Lookups return
// (nil, nil) when no user matches.
type UserStore interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UpdatePassword(ctx context.Context, id, hashedPassword string) error
}

// Handler holds auth-related HTTP handlers.
type Handler struct {
	users    UserStore
	sessions SessionStore
	validate *validator.Validate
}

func NewHandler(users UserStore, sessions SessionStore) *Handler {
	return &Handler{users: users, sessions: sessions, validate: validator.New()}
}

// Login verifies credentials and issues a bearer token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		web.Error(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := h.users.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		log.Error().Err(err).Msg("login lookup failed")
		web.Error(w, http.StatusInternalServerError, "Server error")
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		web.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.sessions.Create(r.Context(), user.ID, user.Username)
	if err != nil {
		log.Error().Err(err).Msg("session create failed")
		web.Error(w, http.StatusInternalServerError, "Server error")
		return
	}

	log.Info().Str("username", user.Username).Msg("login successful")
	web.OK(w, map[string]interface{}{
		"success": true,
		"message": "Login successful",
		"token":   token,
	})
}

// Logout destroys the presented session. A missing or unknown token is
// still a successful logout.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := BearerToken(r); token != "" {
		if err := h.sessions.Delete(r.Context(), token); err != nil {
			log.Warn().Err(err).Msg("session delete failed")
		}
	}
	web.OK(w, map[string]interface{}{
		"success": true,
		"message": "Logged out successfully",
	})
}

// ChangePassword verifies the current password and stores a new hash.
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		web.Error(w, http.StatusBadRequest, "New password must be at least 6 characters long")
		return
	}

	user, err := h.users.GetUserByID(r.Context(), sess.UserID)
	if err != nil {
		log.Error().Err(err).Msg("change-password lookup failed")
		web.Error(w, http.StatusInternalServerError, "Server error")
		return
	}
	if user == nil {
		web.Error(w, http.StatusNotFound, "User not found")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)) != nil {
		web.Error(w, http.StatusBadRequest, "Current password is incorrect")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		web.Error(w, http.StatusInternalServerError, "Server error")
		return
	}
	if err := h.users.UpdatePassword(r.Context(), user.ID, string(hashed)); err != nil {
		log.Error().Err(err).Msg("password update failed")
		web.Error(w, http.StatusInternalServerError, "Server error")
		return
	}

	log.Info().Str("username", user.Username).Msg("password changed")
	web.OK(w, map[string]interface{}{
		"success": true,
		"message": "Password changed successfully",
	})
}

// BearerToken extracts the token from an "Authorization: Bearer x" header.
// Returns "" when the header is missing or malformed.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
