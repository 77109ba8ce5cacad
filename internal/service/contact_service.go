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
	ErrMissingContactFields = errors.New("required contact fields are missing")
)

// ContactService handles contact form submissions
type ContactService struct {
	repo *repository.SubmissionRepository
}

// NewContactService creates a new contact service
func NewContactService(repo *repository.SubmissionRepository) *ContactService {
	return &ContactService{
		repo: repo,
	}
}

// Submit validates and stores a contact message
func (s *ContactService) Submit(ctx context.Context, req models.ContactRequest) (*models.ContactMessage, error) {
	required := []string{req.Name, req.Email, req.Subject, req.Message}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return nil, ErrMissingContactFields
		}
	}

	message := models.ContactMessage{
		ID:             uuid.New().String(),
		ContactRequest: req,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.AddMessage(ctx, message); err != nil {
		return nil, err
	}

	return &message, nil
}

// List returns all submitted contact messages
func (s *ContactService) List(ctx context.Context) ([]models.ContactMessage, error) {
	return s.repo.ListMessages(ctx)
}
