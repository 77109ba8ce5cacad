package models

import "github.com/shopspring/decimal"

// CartItem is one line in a session cart. Buying and renting the same
// product are tracked as separate lines, so line identity is the
// (ProductID, IsRental) pair.
type CartItem struct {
	ProductID   string          `json:"productId"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	RentalPrice decimal.Decimal `json:"rentalPrice"`
	Image       string          `json:"image"`
	Quantity    int             `json:"quantity"`
	IsRental    bool            `json:"isRental"`
}

// UnitPrice returns the price this line is charged at: the daily rental
// price for rental lines, the buy price otherwise.
func (i CartItem) UnitPrice() decimal.Decimal {
	if i.IsRental {
		return i.RentalPrice
	}
	return i.Price
}

// LineTotal returns UnitPrice × Quantity.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.UnitPrice().Mul(decimal.NewFromInt(int64(i.Quantity)))
}
