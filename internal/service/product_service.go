package service

import (
	"context"

	"github.com/bongo-productions/storefront-api/internal/models"
	"github.com/bongo-productions/storefront-api/internal/repository"
)

// ProductService handles business logic for the instrument catalog
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts returns the catalog, optionally filtered by category.
// An empty category or "All" returns everything.
func (s *ProductService) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	if category == "" || category == "All" {
		return s.repo.GetAll(ctx)
	}
	return s.repo.GetByCategory(ctx, category)
}

// FeaturedProducts returns the landing-page picks
func (s *ProductService) FeaturedProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetFeatured(ctx)
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Categories returns the category filter list
func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}
