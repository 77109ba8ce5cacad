// Package pricing derives checkout totals from a cart subtotal and an
// optional coupon. Everything here is a pure function over decimal values;
// rounding for display happens at the presentation layer.
package pricing

import (
	"github.com/bongo-productions/storefront-api/internal/models"
	"github.com/shopspring/decimal"
)

// Config is one pricing variant. The cart summary and checkout page carry
// different thresholds and currencies but identical formulas.
type Config struct {
	FreeShippingThreshold decimal.Decimal
	ShippingFee           decimal.Decimal
	TaxRate               decimal.Decimal
	Currency              string
}

// Shipping returns zero when the subtotal strictly exceeds the free-shipping
// threshold, the flat fee otherwise.
func (c Config) Shipping(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(c.FreeShippingThreshold) {
		return decimal.Zero
	}
	return c.ShippingFee
}

// Tax returns subtotal × rate
func (c Config) Tax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(c.TaxRate)
}

// Total returns subtotal − discount + shipping + tax
func Total(subtotal, discount, shipping, tax decimal.Decimal) decimal.Decimal {
	return subtotal.Sub(discount).Add(shipping).Add(tax)
}

// Quote composes shipping, tax and the optional coupon into a full total
// breakdown. An unknown coupon code yields the couponless quote together
// with ErrCouponNotFound, so callers can surface the message inline without
// losing the totals.
func (c Config) Quote(subtotal decimal.Decimal, couponCode string) (models.Quote, error) {
	shipping := c.Shipping(subtotal)
	tax := c.Tax(subtotal)

	q := models.Quote{
		Subtotal: subtotal,
		Discount: decimal.Zero,
		Shipping: shipping,
		Tax:      tax,
		Currency: c.Currency,
	}

	var couponErr error
	if couponCode != "" {
		coupon, err := ApplyCoupon(couponCode, subtotal)
		if err != nil {
			couponErr = err
		} else {
			q.Discount = coupon.Discount
			q.CouponCode = coupon.Code
			if coupon.FreeShipping {
				q.Shipping = decimal.Zero
			}
		}
	}

	q.FreeShipping = q.Shipping.IsZero() && subtotal.IsPositive()
	q.Total = Total(q.Subtotal, q.Discount, q.Shipping, q.Tax)
	return q, couponErr
}
