package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bongo-productions/storefront-api/internal/cart"
	"github.com/bongo-productions/storefront-api/internal/middleware"
	"github.com/bongo-productions/storefront-api/internal/models"
	"github.com/bongo-productions/storefront-api/internal/pricing"
	"github.com/bongo-productions/storefront-api/internal/repository"
	"github.com/bongo-productions/storefront-api/internal/service"
	"github.com/bongo-productions/storefront-api/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

const checkoutTestSession = "test-session"

func newCheckoutRouter(t *testing.T, delay time.Duration) (*chi.Mux, *cart.Manager) {
	t.Helper()

	carts := cart.NewManager()
	cfg := pricing.Config{
		FreeShippingThreshold: decimal.NewFromInt(500),
		ShippingFee:           decimal.NewFromInt(25),
		TaxRate:               decimal.RequireFromString("0.075"),
		Currency:              "USD",
	}
	checkout := service.NewCheckoutService(carts, repository.NewSubmissionRepository(), cfg, delay)
	handler := NewCheckoutHandler(checkout, logger.New("error"))

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middleware.Session("cart_session"))
		r.Post("/api/checkout/quote", handler.Quote)
		r.Post("/api/checkout", handler.Start)
		r.Get("/api/checkout/{orderId}", handler.GetOrder)
	})

	return r, carts
}

func checkoutRequest(t *testing.T, router *chi.Mux, method, url, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.AddCookie(&http.Cookie{Name: "cart_session", Value: checkoutTestSession})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func seedTestCart(carts *cart.Manager) {
	carts.Get(checkoutTestSession).Add(models.Product{
		ID:          "5",
		Name:        "Concert Violin",
		Price:       decimal.NewFromInt(899),
		RentalPrice: decimal.NewFromInt(30),
	}, false)
}

const validCheckoutBody = `{
	"firstName": "Ama",
	"lastName": "Mensah",
	"email": "ama@example.com",
	"address": "12 Oxford Street",
	"city": "Accra"
}`

func TestCheckoutHandler_Quote(t *testing.T) {
	router, carts := newCheckoutRouter(t, time.Millisecond)
	seedTestCart(carts)

	tests := []struct {
		name            string
		body            string
		wantDiscount    string
		wantCouponError bool
	}{
		{name: "no coupon", body: `{}`, wantDiscount: "0"},
		{name: "percentage coupon", body: `{"couponCode":"WELCOME10"}`, wantDiscount: "89.9"},
		{name: "unknown coupon surfaces message", body: `{"couponCode":"BADCODE"}`, wantDiscount: "0", wantCouponError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := checkoutRequest(t, router, http.MethodPost, "/api/checkout/quote", tt.body)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}

			var resp quoteResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if !resp.Discount.Equal(decimal.RequireFromString(tt.wantDiscount)) {
				t.Errorf("discount = %s, want %s", resp.Discount, tt.wantDiscount)
			}
			if (resp.CouponError != "") != tt.wantCouponError {
				t.Errorf("couponError = %q, wantCouponError = %v", resp.CouponError, tt.wantCouponError)
			}
			if !resp.Subtotal.Equal(decimal.NewFromInt(899)) {
				t.Errorf("subtotal = %s, want 899", resp.Subtotal)
			}
		})
	}
}

func TestCheckoutHandler_StartAndPoll(t *testing.T) {
	router, carts := newCheckoutRouter(t, 5*time.Millisecond)
	seedTestCart(carts)

	w := checkoutRequest(t, router, http.MethodPost, "/api/checkout", validCheckoutBody)
	if w.Code != http.StatusAccepted {
		t.Fatalf("Start status = %d, want 202; body: %s", w.Code, w.Body.String())
	}

	var order models.Order
	if err := json.NewDecoder(w.Body).Decode(&order); err != nil {
		t.Fatalf("failed to decode order: %v", err)
	}
	if order.Status != models.OrderStatusProcessing {
		t.Errorf("status = %s, want %s", order.Status, models.OrderStatusProcessing)
	}

	// Poll until the simulated processing completes
	deadline := time.Now().Add(2 * time.Second)
	for {
		w = checkoutRequest(t, router, http.MethodGet, "/api/checkout/"+order.ID, "")
		if w.Code != http.StatusOK {
			t.Fatalf("GetOrder status = %d, want 200", w.Code)
		}
		var polled models.Order
		if err := json.NewDecoder(w.Body).Decode(&polled); err != nil {
			t.Fatalf("failed to decode polled order: %v", err)
		}
		if polled.Status == models.OrderStatusCompleted {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("order still %s after deadline", polled.Status)
		}
		time.Sleep(time.Millisecond)
	}

	if count := carts.Get(checkoutTestSession).Count(); count != 0 {
		t.Errorf("cart Count = %d after completion, want 0", count)
	}
}

func TestCheckoutHandler_StartErrors(t *testing.T) {
	tests := []struct {
		name       string
		seed       bool
		body       string
		wantStatus int
	}{
		{name: "bad json", seed: true, body: `{`, wantStatus: http.StatusBadRequest},
		{name: "missing fields", seed: true, body: `{"firstName":"Ama"}`, wantStatus: http.StatusBadRequest},
		{name: "empty cart", seed: false, body: validCheckoutBody, wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, carts := newCheckoutRouter(t, time.Millisecond)
			if tt.seed {
				seedTestCart(carts)
			}

			w := checkoutRequest(t, router, http.MethodPost, "/api/checkout", tt.body)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestCheckoutHandler_ConcurrentStartConflicts(t *testing.T) {
	router, carts := newCheckoutRouter(t, 500*time.Millisecond)
	seedTestCart(carts)

	w := checkoutRequest(t, router, http.MethodPost, "/api/checkout", validCheckoutBody)
	if w.Code != http.StatusAccepted {
		t.Fatalf("first Start status = %d, want 202", w.Code)
	}

	w = checkoutRequest(t, router, http.MethodPost, "/api/checkout", validCheckoutBody)
	if w.Code != http.StatusConflict {
		t.Errorf("second Start status = %d, want 409", w.Code)
	}
}

func TestCheckoutHandler_GetOrderNotFound(t *testing.T) {
	router, _ := newCheckoutRouter(t, time.Millisecond)

	w := checkoutRequest(t, router, http.MethodGet, "/api/checkout/no-such-order", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
