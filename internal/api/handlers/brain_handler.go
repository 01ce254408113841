package handlers

import (
	"net/http"
)

// BrainHandler holds the share-link endpoints. Sharing is not implemented;
// both routes answer with a static message so clients have a stable surface
// to build against.
type BrainHandler struct{}

// NewBrainHandler creates a new BrainHandler.
func NewBrainHandler() *BrainHandler {
	return &BrainHandler{}
}

// Share accepts a create-share request.
func (h *BrainHandler) Share(w http.ResponseWriter, r *http.Request) {
	respondMessage(w, http.StatusOK, "Sharing is not available yet")
}

// Resolve accepts a lookup-by-share-link request.
func (h *BrainHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	respondMessage(w, http.StatusOK, "Sharing is not available yet")
}
