package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/bongo-productions/storefront-api/internal/models"
)

var (
	ErrOrderNotFound = errors.New("order not found")
)

// SubmissionRepository stores bookings, contact messages and orders for the
// lifetime of the process. Persistence is deliberately out of scope, so this
// is the whole storage layer.
type SubmissionRepository struct {
	mu       sync.RWMutex
	bookings []models.Booking
	messages []models.ContactMessage
	orders   map[string]models.Order
	orderIDs []string
}

// NewSubmissionRepository creates an empty in-memory submission store
func NewSubmissionRepository() *SubmissionRepository {
	return &SubmissionRepository{
		orders: make(map[string]models.Order),
	}
}

// AddBooking appends a booking request
func (r *SubmissionRepository) AddBooking(ctx context.Context, b models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append(r.bookings, b)
	return nil
}

// ListBookings returns all bookings in submission order
func (r *SubmissionRepository) ListBookings(ctx context.Context) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out, nil
}

// AddMessage appends a contact message
func (r *SubmissionRepository) AddMessage(ctx context.Context, m models.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, m)
	return nil
}

// ListMessages returns all contact messages in submission order
func (r *SubmissionRepository) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.ContactMessage, len(r.messages))
	copy(out, r.messages)
	return out, nil
}

// SaveOrder inserts or replaces an order by ID
func (r *SubmissionRepository) SaveOrder(ctx context.Context, o models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.orders[o.ID]; !exists {
		r.orderIDs = append(r.orderIDs, o.ID)
	}
	r.orders[o.ID] = o
	return nil
}

// GetOrder returns an order by ID
func (r *SubmissionRepository) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, exists := r.orders[id]
	if !exists {
		return nil, ErrOrderNotFound
	}
	return &o, nil
}

// ListOrders returns all orders in creation order
func (r *SubmissionRepository) ListOrders(ctx context.Context) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Order, 0, len(r.orderIDs))
	for _, id := range r.orderIDs {
		out = append(out, r.orders[id])
	}
	return out, nil
}
