package pricing

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrCouponNotFound = errors.New("invalid coupon code")
)

// Coupon discount types
const (
	CouponPercentage = "percentage"
	CouponFixed      = "fixed"
	CouponShipping   = "shipping"
)

// CouponRule is one entry in the static coupon table
type CouponRule struct {
	Type        string
	Value       decimal.Decimal // rate for percentage, amount for fixed
	Description string
}

// couponCodes is the fixed coupon table. Codes are stored uppercase; lookup
// normalizes the input.
var couponCodes = map[string]CouponRule{
	"WELCOME10": {Type: CouponPercentage, Value: decimal.RequireFromString("0.1"), Description: "10% off your order"},
	"SAVE25":    {Type: CouponFixed, Value: decimal.NewFromInt(25), Description: "$25 off"},
	"FREESHIP":  {Type: CouponShipping, Value: decimal.Zero, Description: "Free shipping"},
}

// AppliedCoupon is the outcome of applying a coupon to a subtotal. At most
// one coupon is active at a time; applying a new code replaces the previous
// one rather than stacking.
type AppliedCoupon struct {
	Code         string          `json:"code"`
	Description  string          `json:"description"`
	Discount     decimal.Decimal `json:"discount"`
	FreeShipping bool            `json:"freeShipping"`
}

// ApplyCoupon normalizes the code (trimmed, case-insensitive) and resolves
// it against the coupon table. Percentage coupons discount subtotal × rate,
// fixed coupons a flat amount, shipping coupons nothing but force shipping
// to zero. Unknown codes return ErrCouponNotFound with a zero discount.
func ApplyCoupon(code string, subtotal decimal.Decimal) (AppliedCoupon, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))

	rule, exists := couponCodes[normalized]
	if !exists {
		return AppliedCoupon{Code: normalized, Discount: decimal.Zero}, ErrCouponNotFound
	}

	applied := AppliedCoupon{
		Code:        normalized,
		Description: rule.Description,
		Discount:    decimal.Zero,
	}

	switch rule.Type {
	case CouponPercentage:
		applied.Discount = subtotal.Mul(rule.Value)
	case CouponFixed:
		applied.Discount = rule.Value
	case CouponShipping:
		applied.FreeShipping = true
	}

	return applied, nil
}
