package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bongo-productions/storefront-api/internal/middleware"
	"github.com/bongo-productions/storefront-api/internal/models"
	"github.com/bongo-productions/storefront-api/internal/pricing"
	"github.com/bongo-productions/storefront-api/internal/repository"
	"github.com/bongo-productions/storefront-api/internal/service"
	"github.com/go-chi/chi/v5"
)

// CheckoutHandler handles checkout-related HTTP requests
type CheckoutHandler struct {
	checkout *service.CheckoutService
	log      *slog.Logger
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkout *service.CheckoutService, log *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		log:      log,
	}
}

type quoteRequest struct {
	CouponCode string `json:"couponCode"`
}

// quoteResponse carries the totals plus an inline coupon error, so an
// unknown code shows a message without blocking the order summary.
type quoteResponse struct {
	models.Quote
	CouponError string `json:"couponError,omitempty"`
}

// Quote handles POST /api/checkout/quote
// Prices the session cart with the optional coupon.
func (h *CheckoutHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode quote request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	sessionID := middleware.SessionID(r.Context())
	quote, err := h.checkout.Quote(r.Context(), sessionID, req.CouponCode)

	resp := quoteResponse{Quote: quote}
	if errors.Is(err, pricing.ErrCouponNotFound) {
		resp.CouponError = "Invalid coupon code"
	} else if err != nil {
		h.log.Error("failed to quote cart", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, resp, h.log)
}

// Start handles POST /api/checkout
func (h *CheckoutHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req models.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode checkout request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	sessionID := middleware.SessionID(r.Context())
	order, err := h.checkout.Start(r.Context(), sessionID, req)
	if err != nil {
		h.log.Error("failed to start checkout", "error", err)

		switch err {
		case service.ErrMissingFields:
			WriteError(w, http.StatusBadRequest, "Required checkout fields are missing", h.log)
		case service.ErrEmptyCart:
			WriteError(w, http.StatusUnprocessableEntity, "Cart is empty", h.log)
		case service.ErrCheckoutInProgress:
			WriteError(w, http.StatusConflict, "Checkout already in progress", h.log)
		default:
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	WriteJSON(w, http.StatusAccepted, order, h.log)
	h.log.Info("checkout started", "order_id", order.ID, "items_count", len(order.Items), "total", order.Quote.Total)
}

// GetOrder handles GET /api/checkout/{orderId}
// Poll for the processing → completed transition.
func (h *CheckoutHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	order, err := h.checkout.Get(r.Context(), orderID)
	if err != nil {
		if err == repository.ErrOrderNotFound {
			WriteError(w, http.StatusNotFound, "Order not found", h.log)
			return
		}
		h.log.Error("failed to get order", "order_id", orderID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, order, h.log)
}
