package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/isdelr/brainstash-be/internal/auth"
	"github.com/isdelr/brainstash-be/internal/models"
	"github.com/isdelr/brainstash-be/internal/services"
	"github.com/rs/zerolog/log"
)

// ContentHandler handles HTTP requests for user-owned content.
type ContentHandler struct {
	service services.ContentServiceProvider
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(service services.ContentServiceProvider) *ContentHandler {
	return &ContentHandler{service: service}
}

// CreateContentPayload defines the structure for content creation requests.
type CreateContentPayload struct {
	Title string   `json:"title"`
	Links []string `json:"links"`
}

// DeleteContentPayload defines the structure for content deletion requests.
type DeleteContentPayload struct {
	ContentID string `json:"contentId"`
}

// Create handles creating a content record owned by the caller.
func (h *ContentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var payload CreateContentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if payload.Title == "" {
		respondMessage(w, http.StatusBadRequest, "Title is required")
		return
	}

	content, err := h.service.CreateContent(userID, payload.Title, payload.Links)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to create content")
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]models.Content{"content": content})
}

// List handles listing all content owned by the caller.
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	contents, err := h.service.GetContentForUser(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to list content")
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string][]models.Content{"content": contents})
}

// Delete handles removing a content record after an ownership check.
func (h *ContentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var payload DeleteContentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if payload.ContentID == "" {
		respondMessage(w, http.StatusBadRequest, "Content ID is required")
		return
	}

	if err := h.service.DeleteContent(userID, payload.ContentID); err != nil {
		if errors.Is(err, services.ErrContentNotFound) {
			respondMessage(w, http.StatusNotFound, "Content not found")
			return
		}
		log.Error().Err(err).Str("user_id", userID).Str("content_id", payload.ContentID).Msg("Failed to delete content")
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondMessage(w, http.StatusOK, "Content deleted successfully")
}
