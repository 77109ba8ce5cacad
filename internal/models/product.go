package models

import "github.com/shopspring/decimal"

// Product represents an instrument available for purchase or daily rental
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	RentalPrice   decimal.Decimal `json:"rentalPrice"`
	Image         string          `json:"image"`
	Category      string          `json:"category"`
	CategoryLabel string          `json:"categoryLabel"`
	Featured      bool            `json:"featured"`
}
