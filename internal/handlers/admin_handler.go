package handlers

import (
	"log/slog"
	"net/http"

	"github.com/bongo-productions/storefront-api/internal/service"
)

// AdminHandler lists the stored form submissions and orders. Routes using
// it sit behind the api_key middleware.
type AdminHandler struct {
	bookings *service.BookingService
	contacts *service.ContactService
	checkout *service.CheckoutService
	log      *slog.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(bookings *service.BookingService, contacts *service.ContactService, checkout *service.CheckoutService, log *slog.Logger) *AdminHandler {
	return &AdminHandler{
		bookings: bookings,
		contacts: contacts,
		checkout: checkout,
		log:      log,
	}
}

// ListBookings handles GET /api/admin/bookings
func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookings.List(r.Context())
	if err != nil {
		h.log.Error("failed to list bookings", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, bookings, h.log)
}

// ListMessages handles GET /api/admin/messages
func (h *AdminHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contacts.List(r.Context())
	if err != nil {
		h.log.Error("failed to list contact messages", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, messages, h.log)
}

// ListOrders handles GET /api/admin/orders
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.checkout.Orders(r.Context())
	if err != nil {
		h.log.Error("failed to list orders", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, orders, h.log)
}
