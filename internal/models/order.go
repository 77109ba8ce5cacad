package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order status values. There is no failure state: checkout processing is
// simulated and always succeeds.
const (
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
)

// CheckoutRequest represents an incoming checkout submission
type CheckoutRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	CouponCode string `json:"couponCode,omitempty"`
}

// Quote is the derived order total breakdown. Total is always
// Subtotal − Discount + Shipping + Tax.
type Quote struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	Discount     decimal.Decimal `json:"discount"`
	Shipping     decimal.Decimal `json:"shipping"`
	Tax          decimal.Decimal `json:"tax"`
	Total        decimal.Decimal `json:"total"`
	Currency     string          `json:"currency"`
	CouponCode   string          `json:"couponCode,omitempty"`
	FreeShipping bool            `json:"freeShipping"`
}

// Order represents a submitted checkout. Items are a snapshot of the cart
// at submission time.
type Order struct {
	ID          string          `json:"id"`
	Status      string          `json:"status"`
	Items       []CartItem      `json:"items"`
	Quote       Quote           `json:"quote"`
	Customer    CheckoutRequest `json:"customer"`
	CreatedAt   time.Time       `json:"createdAt"`
	CompletedAt *time.Time      `json:"completedAt,omitempty"`
}
