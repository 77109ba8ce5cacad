package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bongo-productions/storefront-api/internal/models"
	"github.com/bongo-productions/storefront-api/internal/repository"
	"github.com/bongo-productions/storefront-api/internal/service"
	"github.com/bongo-productions/storefront-api/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

func newProductHandler() *ProductHandler {
	repo := repository.NewInMemoryProductRepository()
	svc := service.NewProductService(repo)
	log := logger.New("error")
	return NewProductHandler(svc, log)
}

func TestListProducts(t *testing.T) {
	handler := newProductHandler()

	tests := []struct {
		name      string
		url       string
		wantCount int
	}{
		{name: "whole catalog", url: "/api/product", wantCount: 6},
		{name: "All category", url: "/api/product?category=All", wantCount: 6},
		{name: "single category", url: "/api/product?category=Guitars", wantCount: 2},
		{name: "unknown category is empty", url: "/api/product?category=Theremins", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()

			handler.ListProducts(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("expected status 200, got %d", w.Code)
			}

			var products []models.Product
			if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if len(products) != tt.wantCount {
				t.Errorf("expected %d products, got %d", tt.wantCount, len(products))
			}
		})
	}
}

func TestFeaturedProducts(t *testing.T) {
	handler := newProductHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/product/featured", nil)
	w := httptest.NewRecorder()

	handler.FeaturedProducts(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var products []models.Product
	if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(products) != 4 {
		t.Errorf("expected 4 featured products, got %d", len(products))
	}
	for _, p := range products {
		if !p.Featured {
			t.Errorf("product %s is not featured", p.ID)
		}
	}
}

func TestGetProduct_Success(t *testing.T) {
	handler := newProductHandler()

	// Create router to handle URL params
	r := chi.NewRouter()
	r.Get("/api/product/{productId}", handler.GetProduct)

	req := httptest.NewRequest(http.MethodGet, "/api/product/1", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var product models.Product
	if err := json.NewDecoder(w.Body).Decode(&product); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if product.ID != "1" {
		t.Errorf("expected product ID 1, got %s", product.ID)
	}
	if product.Name != "Stratocaster Electric Guitar" {
		t.Errorf("expected product name 'Stratocaster Electric Guitar', got %s", product.Name)
	}
	if !product.Price.Equal(decimal.NewFromInt(1299)) {
		t.Errorf("expected product price 1299, got %s", product.Price)
	}
	if !product.RentalPrice.Equal(decimal.NewFromInt(45)) {
		t.Errorf("expected rental price 45, got %s", product.RentalPrice)
	}
	if product.Category != "Guitars" {
		t.Errorf("expected product category 'Guitars', got %s", product.Category)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	handler := newProductHandler()

	r := chi.NewRouter()
	r.Get("/api/product/{productId}", handler.GetProduct)

	req := httptest.NewRequest(http.MethodGet, "/api/product/999", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if response["error"] != "Product not found" {
		t.Errorf("expected 'Product not found', got %s", response["error"])
	}
}

func TestGetProduct_InvalidID(t *testing.T) {
	handler := newProductHandler()

	r := chi.NewRouter()
	r.Get("/api/product/{productId}", handler.GetProduct)

	req := httptest.NewRequest(http.MethodGet, "/api/product/not-a-number", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestListCategories(t *testing.T) {
	handler := newProductHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/category", nil)
	w := httptest.NewRecorder()

	handler.ListCategories(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var categories []string
	if err := json.NewDecoder(w.Body).Decode(&categories); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	want := []string{"All", "Guitars", "Drums & Percussion", "Keyboards & Pianos", "Wind & Brass", "Strings"}
	if len(categories) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(categories))
	}
	for i, c := range want {
		if categories[i] != c {
			t.Errorf("category %d = %s, want %s", i, categories[i], c)
		}
	}
}
