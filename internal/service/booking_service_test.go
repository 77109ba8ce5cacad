package service

import (
	"context"
	"testing"

	"github.com/bongo-productions/storefront-api/internal/models"
	"github.com/bongo-productions/storefront-api/internal/repository"
)

func validBooking() models.BookingRequest {
	return models.BookingRequest{
		Name:      "Kofi Boateng",
		Email:     "kofi@example.com",
		Phone:     "+233501234567",
		EventDate: "2026-10-18",
		EventType: "Wedding",
		Details:   "Outdoor reception, about 150 guests",
	}
}

func TestBookingService_Submit(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.BookingRequest)
		wantErr error
	}{
		{
			name:    "valid request",
			mutate:  func(r *models.BookingRequest) {},
			wantErr: nil,
		},
		{
			name:    "details are optional",
			mutate:  func(r *models.BookingRequest) { r.Details = "" },
			wantErr: nil,
		},
		{
			name:    "missing name",
			mutate:  func(r *models.BookingRequest) { r.Name = "" },
			wantErr: ErrMissingBookingFields,
		},
		{
			name:    "missing phone",
			mutate:  func(r *models.BookingRequest) { r.Phone = "" },
			wantErr: ErrMissingBookingFields,
		},
		{
			name:    "missing event date",
			mutate:  func(r *models.BookingRequest) { r.EventDate = "" },
			wantErr: ErrMissingBookingFields,
		},
		{
			name:    "unknown event type",
			mutate:  func(r *models.BookingRequest) { r.EventType = "Space Launch" },
			wantErr: ErrInvalidEventType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewBookingService(repository.NewSubmissionRepository())

			req := validBooking()
			tt.mutate(&req)

			booking, err := svc.Submit(context.Background(), req)

			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Fatalf("Submit() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Submit() unexpected error = %v", err)
			}
			if booking.ID == "" {
				t.Error("Submit() booking ID is empty")
			}

			stored, err := svc.List(context.Background())
			if err != nil {
				t.Fatalf("List() unexpected error = %v", err)
			}
			if len(stored) != 1 {
				t.Errorf("List() count = %d, want 1", len(stored))
			}
		})
	}
}

func TestContactService_Submit(t *testing.T) {
	svc := NewContactService(repository.NewSubmissionRepository())

	valid := models.ContactRequest{
		Name:    "Esi Owusu",
		Email:   "esi@example.com",
		Subject: "Saxophone rental",
		Message: "Do you rent tenor saxophones for weekend gigs?",
	}

	message, err := svc.Submit(context.Background(), valid)
	if err != nil {
		t.Fatalf("Submit() unexpected error = %v", err)
	}
	if message.ID == "" {
		t.Error("Submit() message ID is empty")
	}

	missing := valid
	missing.Subject = "  "
	if _, err := svc.Submit(context.Background(), missing); err != ErrMissingContactFields {
		t.Errorf("Submit() error = %v, want %v", err, ErrMissingContactFields)
	}

	stored, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() unexpected error = %v", err)
	}
	if len(stored) != 1 {
		t.Errorf("List() count = %d, want 1", len(stored))
	}
}
