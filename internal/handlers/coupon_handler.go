package handlers

import (
	"net/http"

	"github.com/bongo-productions/storefront-api/internal/pricing"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// CouponHandler handles standalone coupon validation requests
type CouponHandler struct{}

// NewCouponHandler creates a new CouponHandler
func NewCouponHandler() *CouponHandler {
	return &CouponHandler{}
}

// couponResponse mirrors what the checkout form needs: validity, the
// discount for the given subtotal, and a user-facing message.
type couponResponse struct {
	Valid        bool            `json:"valid"`
	Coupon       string          `json:"coupon"`
	Discount     decimal.Decimal `json:"discount"`
	FreeShipping bool            `json:"freeShipping"`
	Message      string          `json:"message"`
}

// ValidateCoupon handles GET /api/coupon/{couponCode}
// An optional ?subtotal= query sizes percentage discounts; without it the
// discount for percentage coupons is zero.
func (h *CouponHandler) ValidateCoupon(w http.ResponseWriter, r *http.Request) {
	couponCode := chi.URLParam(r, "couponCode")

	subtotal := decimal.Zero
	if raw := r.URL.Query().Get("subtotal"); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid subtotal")
			return
		}
		subtotal = parsed
	}

	applied, err := pricing.ApplyCoupon(couponCode, subtotal)
	if err != nil {
		writeJSON(w, http.StatusNotFound, couponResponse{
			Valid:    false,
			Coupon:   applied.Code,
			Discount: decimal.Zero,
			Message:  "Invalid coupon code",
		})
		return
	}

	writeJSON(w, http.StatusOK, couponResponse{
		Valid:        true,
		Coupon:       applied.Code,
		Discount:     applied.Discount,
		FreeShipping: applied.FreeShipping,
		Message:      applied.Description + " applied!",
	})
}
