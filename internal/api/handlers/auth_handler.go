package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/isdelr/brainstash-be/internal/auth"
	"github.com/isdelr/brainstash-be/internal/services"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles signup and signin requests.
type AuthHandler struct {
	service services.UserServiceProvider
	tokens  *auth.TokenManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.UserServiceProvider, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{service: service, tokens: tokens}
}

// CredentialsPayload defines the structure for signup and signin requests.
type CredentialsPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Signup handles new user registration.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload CredentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if payload.Username == "" || payload.Password == "" {
		respondMessage(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	_, err := h.service.CreateUser(payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUsername) {
			respondMessage(w, http.StatusBadRequest, "User already exists")
			return
		}
		log.Error().Err(err).Str("username", payload.Username).Msg("Failed to create user")
		respondMessage(w, http.StatusBadRequest, "Invalid input or internal error")
		return
	}

	respondMessage(w, http.StatusCreated, "User created successfully")
}

// Signin handles user authentication and token issuance.
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var payload CredentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if payload.Username == "" || payload.Password == "" {
		respondMessage(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := h.service.AuthenticateUser(payload.Username, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			respondMessage(w, http.StatusBadRequest, "User not found")
		case errors.Is(err, services.ErrInvalidPassword):
			log.Warn().Str("username", payload.Username).Msg("Failed authentication attempt")
			respondMessage(w, http.StatusBadRequest, "Invalid password")
		default:
			log.Error().Err(err).Str("username", payload.Username).Msg("Signin failed")
			respondMessage(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to issue token")
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}
