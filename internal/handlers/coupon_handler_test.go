package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

func TestCouponHandler_ValidateCoupon(t *testing.T) {
	tests := []struct {
		name           string
		couponCode     string
		subtotal       string
		expectedStatus int
		expectedValid  bool
		wantDiscount   string
		wantShipFree   bool
	}{
		{
			name:           "percentage coupon with subtotal",
			couponCode:     "WELCOME10",
			subtotal:       "1000",
			expectedStatus: http.StatusOK,
			expectedValid:  true,
			wantDiscount:   "100",
		},
		{
			name:           "fixed coupon",
			couponCode:     "SAVE25",
			subtotal:       "50",
			expectedStatus: http.StatusOK,
			expectedValid:  true,
			wantDiscount:   "25",
		},
		{
			name:           "shipping coupon",
			couponCode:     "FREESHIP",
			subtotal:       "1000",
			expectedStatus: http.StatusOK,
			expectedValid:  true,
			wantDiscount:   "0",
			wantShipFree:   true,
		},
		{
			name:           "lowercase code is accepted",
			couponCode:     "welcome10",
			subtotal:       "1000",
			expectedStatus: http.StatusOK,
			expectedValid:  true,
			wantDiscount:   "100",
		},
		{
			name:           "unknown code",
			couponCode:     "BADCODE",
			subtotal:       "1000",
			expectedStatus: http.StatusNotFound,
			expectedValid:  false,
			wantDiscount:   "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewCouponHandler()

			url := "/api/coupon/" + tt.couponCode
			if tt.subtotal != "" {
				url += "?subtotal=" + tt.subtotal
			}
			req := httptest.NewRequest(http.MethodGet, url, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("couponCode", tt.couponCode)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()
			h.ValidateCoupon(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.expectedStatus)
			}

			var resp couponResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if resp.Valid != tt.expectedValid {
				t.Errorf("valid = %v, want %v", resp.Valid, tt.expectedValid)
			}
			if !resp.Discount.Equal(decimal.RequireFromString(tt.wantDiscount)) {
				t.Errorf("discount = %s, want %s", resp.Discount, tt.wantDiscount)
			}
			if resp.FreeShipping != tt.wantShipFree {
				t.Errorf("freeShipping = %v, want %v", resp.FreeShipping, tt.wantShipFree)
			}
		})
	}
}

func TestCouponHandler_InvalidSubtotal(t *testing.T) {
	h := NewCouponHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/coupon/WELCOME10?subtotal=abc", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("couponCode", "WELCOME10")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	w := httptest.NewRecorder()
	h.ValidateCoupon(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
