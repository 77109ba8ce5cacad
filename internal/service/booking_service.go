package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bongo-productions/storefront-api/internal/models"
	"github.com/bongo-productions/storefront-api/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrMissingBookingFields = errors.New("required booking fields are missing")
	ErrInvalidEventType     = errors.New("unknown event type")
)

// BookingService handles band-booking requests
type BookingService struct {
	repo *repository.SubmissionRepository
}

// NewBookingService creates a new booking service
func NewBookingService(repo *repository.SubmissionRepository) *BookingService {
	return &BookingService{
		repo: repo,
	}
}

// Submit validates and stores a booking request
func (s *BookingService) Submit(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	required := []string{req.Name, req.Email, req.Phone, req.EventDate, req.EventType}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return nil, ErrMissingBookingFields
		}
	}

	valid := false
	for _, t := range models.EventTypes {
		if req.EventType == t {
			valid = true
			break
		}
	}
	if !valid {
		return nil, ErrInvalidEventType
	}

	booking := models.Booking{
		ID:             uuid.New().String(),
		BookingRequest: req,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.AddBooking(ctx, booking); err != nil {
		return nil, err
	}

	return &booking, nil
}

// List returns all submitted booking requests
func (s *BookingService) List(ctx context.Context) ([]models.Booking, error) {
	return s.repo.ListBookings(ctx)
}
