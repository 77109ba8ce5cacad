package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bongo-productions/storefront-api/internal/models"
	"github.com/bongo-productions/storefront-api/internal/service"
)

// ContactHandler handles contact form HTTP requests
type ContactHandler struct {
	contacts *service.ContactService
	log      *slog.Logger
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contacts *service.ContactService, log *slog.Logger) *ContactHandler {
	return &ContactHandler{
		contacts: contacts,
		log:      log,
	}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode contact request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	message, err := h.contacts.Submit(r.Context(), req)
	if err != nil {
		switch err {
		case service.ErrMissingContactFields:
			WriteError(w, http.StatusBadRequest, "Required contact fields are missing", h.log)
		default:
			h.log.Error("failed to submit contact message", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	WriteJSON(w, http.StatusCreated, submittedResponse{Submitted: true, Record: message}, h.log)
	h.log.Info("contact message submitted", "message_id", message.ID)
}
