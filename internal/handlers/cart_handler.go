package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bongo-productions/storefront-api/internal/cart"
	"github.com/bongo-productions/storefront-api/internal/middleware"
	"github.com/bongo-productions/storefront-api/internal/models"
	"github.com/bongo-productions/storefront-api/internal/pricing"
	"github.com/bongo-productions/storefront-api/internal/repository"
	"github.com/bongo-productions/storefront-api/internal/service"
	"github.com/go-chi/chi/v5"
)

// CartHandler exposes the session cart over HTTP. The cart-page pricing
// variant computes the summary shown alongside the lines.
type CartHandler struct {
	carts    *cart.Manager
	products *service.ProductService
	pricing  pricing.Config
	log      *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts *cart.Manager, products *service.ProductService, cfg pricing.Config, log *slog.Logger) *CartHandler {
	return &CartHandler{
		carts:    carts,
		products: products,
		pricing:  cfg,
		log:      log,
	}
}

// cartResponse is the cart page payload: lines, badge count and summary
type cartResponse struct {
	Items   []models.CartItem `json:"items"`
	Count   int               `json:"count"`
	Summary models.Quote      `json:"summary"`
}

type addItemRequest struct {
	ProductID string `json:"productId"`
	IsRental  bool   `json:"isRental"`
}

type updateItemRequest struct {
	ProductID string `json:"productId"`
	IsRental  bool   `json:"isRental"`
	Quantity  int    `json:"quantity"`
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	store := h.store(r)
	h.respondCart(w, store)
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode add-item request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	product, err := h.products.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		if err == repository.ErrProductNotFound {
			WriteError(w, http.StatusNotFound, "Product not found", h.log)
			return
		}
		h.log.Error("failed to load product for cart", "productId", req.ProductID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	store := h.store(r)
	store.Add(*product, req.IsRental)
	h.log.Info("cart item added", "productId", req.ProductID, "isRental", req.IsRental, "count", store.Count())

	h.respondCart(w, store)
}

// UpdateItem handles PUT /api/cart/items
// A quantity of zero or below removes the line.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode update-item request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	if req.ProductID == "" {
		WriteError(w, http.StatusBadRequest, "productId is required", h.log)
		return
	}

	store := h.store(r)
	store.UpdateQuantity(req.ProductID, req.IsRental, req.Quantity)

	h.respondCart(w, store)
}

// RemoveItem handles DELETE /api/cart/items/{productId}
// The ?rental=true query addresses the rental line for the product.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	if productID == "" {
		WriteError(w, http.StatusBadRequest, "productId is required", h.log)
		return
	}
	isRental := r.URL.Query().Get("rental") == "true"

	store := h.store(r)
	store.Remove(productID, isRental)

	h.respondCart(w, store)
}

// ClearCart handles DELETE /api/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	store := h.store(r)
	store.Clear()

	h.respondCart(w, store)
}

func (h *CartHandler) store(r *http.Request) *cart.Store {
	return h.carts.Get(middleware.SessionID(r.Context()))
}

func (h *CartHandler) respondCart(w http.ResponseWriter, store *cart.Store) {
	// The cart summary never carries a coupon; coupons apply at checkout
	summary, _ := h.pricing.Quote(store.Total(), "")

	WriteJSON(w, http.StatusOK, cartResponse{
		Items:   store.Items(),
		Count:   store.Count(),
		Summary: summary,
	}, h.log)
}
