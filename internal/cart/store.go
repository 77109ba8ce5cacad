// Package cart implements the per-session shopping cart.
//
// A cart line is identified by the (product ID, rental flag) pair: buying and
// renting the same instrument are independent lines. Lines keep insertion
// order, and a quantity reduced to zero or below removes the line entirely.
package cart

import (
	"sync"

	"github.com/bongo-productions/storefront-api/internal/models"
	"github.com/shopspring/decimal"
)

// Store holds the cart lines for a single session. All operations are safe
// for concurrent use; each session has one logical writer, but HTTP handlers
// run on arbitrary goroutines.
type Store struct {
	mu    sync.RWMutex
	items []models.CartItem
}

// NewStore creates an empty cart
func NewStore() *Store {
	return &Store{}
}

// Add increments the quantity of the matching (product, rental) line, or
// appends a new line with quantity 1. It always succeeds.
func (s *Store) Add(product models.Product, isRental bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == product.ID && s.items[i].IsRental == isRental {
			s.items[i].Quantity++
			return
		}
	}

	s.items = append(s.items, models.CartItem{
		ProductID:   product.ID,
		Name:        product.Name,
		Price:       product.Price,
		RentalPrice: product.RentalPrice,
		Image:       product.Image,
		Quantity:    1,
		IsRental:    isRental,
	})
}

// UpdateQuantity sets the quantity of the matching line. A quantity of zero
// or below removes the line. Updating a line never changes its position.
// It is a no-op when no line matches.
func (s *Store) UpdateQuantity(productID string, isRental bool, quantity int) {
	if quantity <= 0 {
		s.Remove(productID, isRental)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID && s.items[i].IsRental == isRental {
			s.items[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes the matching line. It is a no-op when no line matches.
func (s *Store) Remove(productID string, isRental bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID && s.items[i].IsRental == isRental {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart unconditionally
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items returns a snapshot of the cart lines in insertion order
func (s *Store) Items() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Total returns the cart subtotal: the sum over all lines of the rental or
// buy price (per the line's mode) times quantity.
func (s *Store) Total() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// Count returns the total quantity across all lines
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}
