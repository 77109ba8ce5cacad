package repository

import (
	"context"
	"errors"

	"github.com/bongo-productions/storefront-api/internal/models"
	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByCategory(ctx context.Context, category string) ([]models.Product, error)
	GetFeatured(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Categories(ctx context.Context) ([]string, error)
}

// InMemoryProductRepository implements ProductRepository with in-memory storage.
// The catalog is a fixed fixture; there is no runtime mutation.
type InMemoryProductRepository struct {
	products []models.Product
	byID     map[string]int
}

// NewInMemoryProductRepository creates a new in-memory product repository with
// the instrument catalog seed data
func NewInMemoryProductRepository() *InMemoryProductRepository {
	products := []models.Product{
		{
			ID:            "1",
			Name:          "Stratocaster Electric Guitar",
			Description:   "Professional-grade electric guitar with rich, warm tones and exceptional playability.",
			Price:         decimal.NewFromInt(1299),
			RentalPrice:   decimal.NewFromInt(45),
			Image:         "https://images.unsplash.com/photo-1510915361894-db8b60106cb1?w=600&auto=format&fit=crop&q=80",
			Category:      "Guitars",
			CategoryLabel: "GUITARS",
			Featured:      true,
		},
		{
			ID:            "2",
			Name:          "Pro Series Drum Kit",
			Description:   "Complete 5-piece drum kit with cymbals, hardware, and premium drumheads.",
			Price:         decimal.NewFromInt(2499),
			RentalPrice:   decimal.NewFromInt(85),
			Image:         "https://images.unsplash.com/photo-1519892300165-cb5542fb47c7?w=600&auto=format&fit=crop&q=80",
			Category:      "Drums & Percussion",
			CategoryLabel: "DRUMS & PERCUSSION",
			Featured:      true,
		},
		{
			ID:            "3",
			Name:          "Stage Keyboard 88-Key",
			Description:   "Weighted 88-key keyboard with authentic piano feel and versatile sound library.",
			Price:         decimal.NewFromInt(1899),
			RentalPrice:   decimal.NewFromInt(60),
			Image:         "https://images.unsplash.com/photo-1520523839897-bd0b52f945a0?w=600&auto=format&fit=crop&q=80",
			Category:      "Keyboards & Pianos",
			CategoryLabel: "KEYBOARDS & PIANOS",
			Featured:      true,
		},
		{
			ID:            "4",
			Name:          "Tenor Saxophone",
			Description:   "Professional tenor saxophone with exceptional intonation and rich tone.",
			Price:         decimal.NewFromInt(2199),
			RentalPrice:   decimal.NewFromInt(75),
			Image:         "https://images.unsplash.com/photo-1415201364774-f6f0bb35f28f?w=600&auto=format&fit=crop&q=80",
			Category:      "Wind & Brass",
			CategoryLabel: "WIND & BRASS",
			Featured:      true,
		},
		{
			ID:            "5",
			Name:          "Concert Violin",
			Description:   "Hand-crafted concert violin with warm, resonant tone and superior projection.",
			Price:         decimal.NewFromInt(899),
			RentalPrice:   decimal.NewFromInt(30),
			Image:         "https://images.unsplash.com/photo-1612225330812-01a9c6b355ec?w=600&auto=format&fit=crop&q=80",
			Category:      "Strings",
			CategoryLabel: "STRINGS",
			Featured:      false,
		},
		{
			ID:            "6",
			Name:          "Precision Bass Guitar",
			Description:   "Classic bass guitar delivering deep, punchy low-end and smooth playability.",
			Price:         decimal.NewFromInt(1050),
			RentalPrice:   decimal.NewFromInt(40),
			Image:         "https://images.unsplash.com/photo-1558098329-a11cff621064?w=600&auto=format&fit=crop&q=80",
			Category:      "Guitars",
			CategoryLabel: "GUITARS",
			Featured:      false,
		},
	}

	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}

	return &InMemoryProductRepository{
		products: products,
		byID:     byID,
	}
}

// GetAll returns all products in catalog order
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByCategory returns all products in the given category, in catalog order
func (r *InMemoryProductRepository) GetByCategory(ctx context.Context, category string) ([]models.Product, error) {
	out := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetFeatured returns the products flagged for the landing page
func (r *InMemoryProductRepository) GetFeatured(ctx context.Context) ([]models.Product, error) {
	out := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetByID returns a product by its ID
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	i, exists := r.byID[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	product := r.products[i]
	return &product, nil
}

// Categories returns the fixed category filter list, "All" first
func (r *InMemoryProductRepository) Categories(ctx context.Context) ([]string, error) {
	categories := []string{"All"}
	seen := make(map[string]bool)
	for _, p := range r.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories, nil
}
