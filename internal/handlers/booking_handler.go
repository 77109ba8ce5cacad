package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bongo-productions/storefront-api/internal/models"
	"github.com/bongo-productions/storefront-api/internal/service"
)

// BookingHandler handles band-booking HTTP requests
type BookingHandler struct {
	bookings *service.BookingService
	log      *slog.Logger
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookings *service.BookingService, log *slog.Logger) *BookingHandler {
	return &BookingHandler{
		bookings: bookings,
		log:      log,
	}
}

// submittedResponse is the payload for form endpoints: the stored record
// plus the flag the pages key their confirmation views on.
type submittedResponse struct {
	Submitted bool        `json:"submitted"`
	Record    interface{} `json:"record"`
}

// Submit handles POST /api/booking
func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode booking request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	booking, err := h.bookings.Submit(r.Context(), req)
	if err != nil {
		switch err {
		case service.ErrMissingBookingFields:
			WriteError(w, http.StatusBadRequest, "Required booking fields are missing", h.log)
		case service.ErrInvalidEventType:
			WriteError(w, http.StatusBadRequest, "Unknown event type", h.log)
		default:
			h.log.Error("failed to submit booking", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	WriteJSON(w, http.StatusCreated, submittedResponse{Submitted: true, Record: booking}, h.log)
	h.log.Info("booking submitted", "booking_id", booking.ID, "event_type", booking.EventType)
}

// EventTypes handles GET /api/booking/event-types
func (h *BookingHandler) EventTypes(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, models.EventTypes, h.log)
}
