package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/bongo-productions/storefront-api/internal/cart"
	"github.com/bongo-productions/storefront-api/internal/models"
	"github.com/bongo-productions/storefront-api/internal/pricing"
	"github.com/bongo-productions/storefront-api/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrMissingFields      = errors.New("required checkout fields are missing")
	ErrCheckoutInProgress = errors.New("checkout already in progress")
)

// CheckoutService runs the simulated checkout flow. Each session moves
// through Idle → Processing → Completed: a submission snapshots the cart
// into a processing order, a timer completes it after a fixed delay and
// clears the cart. There is no failure transition; payment always succeeds
// by construction. Real payment outcomes would plug in at finish.
type CheckoutService struct {
	carts   *cart.Manager
	orders  *repository.SubmissionRepository
	pricing pricing.Config
	delay   time.Duration

	mu         sync.Mutex
	processing map[string]bool // session IDs with an in-flight checkout
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(carts *cart.Manager, orders *repository.SubmissionRepository, cfg pricing.Config, delay time.Duration) *CheckoutService {
	return &CheckoutService{
		carts:      carts,
		orders:     orders,
		pricing:    cfg,
		delay:      delay,
		processing: make(map[string]bool),
	}
}

// Quote prices the session's cart with an optional coupon. An unknown
// coupon returns the couponless quote along with pricing.ErrCouponNotFound
// so the message can be surfaced inline; it never blocks checkout.
func (s *CheckoutService) Quote(ctx context.Context, sessionID, couponCode string) (models.Quote, error) {
	subtotal := s.carts.Get(sessionID).Total()
	return s.pricing.Quote(subtotal, couponCode)
}

// Start validates the submission and begins processing the order. The
// returned order is in processing status; poll Get for completion. A second
// Start for the same session while one is processing is rejected.
func (s *CheckoutService) Start(ctx context.Context, sessionID string, req models.CheckoutRequest) (*models.Order, error) {
	if err := validateCheckout(req); err != nil {
		return nil, err
	}

	store := s.carts.Get(sessionID)
	items := store.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	s.mu.Lock()
	if s.processing[sessionID] {
		s.mu.Unlock()
		return nil, ErrCheckoutInProgress
	}
	s.processing[sessionID] = true
	s.mu.Unlock()

	// An unknown coupon simply prices without a discount
	quote, err := s.pricing.Quote(store.Total(), req.CouponCode)
	if err != nil && !errors.Is(err, pricing.ErrCouponNotFound) {
		s.release(sessionID)
		return nil, err
	}

	order := models.Order{
		ID:        uuid.New().String(),
		Status:    models.OrderStatusProcessing,
		Items:     items,
		Quote:     quote,
		Customer:  req,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.orders.SaveOrder(ctx, order); err != nil {
		s.release(sessionID)
		return nil, err
	}

	go s.finish(sessionID, order)

	return &order, nil
}

// Get returns the current state of an order
func (s *CheckoutService) Get(ctx context.Context, orderID string) (*models.Order, error) {
	return s.orders.GetOrder(ctx, orderID)
}

// Orders returns every submitted order in creation order
func (s *CheckoutService) Orders(ctx context.Context) ([]models.Order, error) {
	return s.orders.ListOrders(ctx)
}

// finish completes the order after the simulated processing delay and
// clears the session cart.
func (s *CheckoutService) finish(sessionID string, order models.Order) {
	time.Sleep(s.delay)

	now := time.Now().UTC()
	order.Status = models.OrderStatusCompleted
	order.CompletedAt = &now
	_ = s.orders.SaveOrder(context.Background(), order)

	s.carts.Get(sessionID).Clear()
	s.release(sessionID)
}

func (s *CheckoutService) release(sessionID string) {
	s.mu.Lock()
	delete(s.processing, sessionID)
	s.mu.Unlock()
}

// validateCheckout enforces the required-field checks the browser form did
func validateCheckout(req models.CheckoutRequest) error {
	required := []string{req.FirstName, req.LastName, req.Email, req.Address, req.City}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return ErrMissingFields
		}
	}
	return nil
}
