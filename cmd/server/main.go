package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bongo-productions/storefront-api/internal/cart"
	"github.com/bongo-productions/storefront-api/internal/config"
	"github.com/bongo-productions/storefront-api/internal/handlers"
	"github.com/bongo-productions/storefront-api/internal/middleware"
	"github.com/bongo-productions/storefront-api/internal/pricing"
	"github.com/bongo-productions/storefront-api/internal/repository"
	"github.com/bongo-productions/storefront-api/internal/service"
	"github.com/bongo-productions/storefront-api/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local development; environment variables win
	_ = godotenv.Load()

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting storefront api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Pricing variants: the cart summary and the checkout page carry
	// different thresholds and currencies
	cartPricing := pricing.Config{
		FreeShippingThreshold: cfg.Pricing.CartFreeShippingThreshold,
		ShippingFee:           cfg.Pricing.CartShippingFee,
		TaxRate:               cfg.Pricing.TaxRate,
		Currency:              cfg.Pricing.CartCurrency,
	}
	checkoutPricing := pricing.Config{
		FreeShippingThreshold: cfg.Pricing.CheckoutFreeShippingThreshold,
		ShippingFee:           cfg.Pricing.CheckoutShippingFee,
		TaxRate:               cfg.Pricing.TaxRate,
		Currency:              cfg.Pricing.CheckoutCurrency,
	}

	// Initialize repositories and session carts
	productRepo := repository.NewInMemoryProductRepository()
	blogRepo := repository.NewInMemoryBlogRepository()
	submissionRepo := repository.NewSubmissionRepository()
	carts := cart.NewManager()

	// Initialize services
	productService := service.NewProductService(productRepo)
	checkoutService := service.NewCheckoutService(
		carts,
		submissionRepo,
		checkoutPricing,
		time.Duration(cfg.Checkout.ProcessingDelayMillis)*time.Millisecond,
	)
	bookingService := service.NewBookingService(submissionRepo)
	contactService := service.NewContactService(submissionRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	productHandler := handlers.NewProductHandler(productService, log)
	cartHandler := handlers.NewCartHandler(carts, productService, cartPricing, log)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, log)
	couponHandler := handlers.NewCouponHandler()
	bookingHandler := handlers.NewBookingHandler(bookingService, log)
	contactHandler := handlers.NewContactHandler(contactService, log)
	blogHandler := handlers.NewBlogHandler(blogRepo, log)
	adminHandler := handlers.NewAdminHandler(bookingService, contactService, checkoutService, log)

	submissionLimiter := middleware.NewRateLimiter(cfg.Rate.SubmissionsPerMinute, cfg.Rate.Burst)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "api_key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Catalog endpoints
		r.Get("/product", productHandler.ListProducts)
		r.Get("/product/featured", productHandler.FeaturedProducts)
		r.Get("/product/{productId}", productHandler.GetProduct)
		r.Get("/category", productHandler.ListCategories)

		// Blog endpoints
		r.Get("/blog", blogHandler.ListPosts)
		r.Get("/blog/{slug}", blogHandler.GetPost)

		// Coupon validation
		r.Get("/coupon/{couponCode}", couponHandler.ValidateCoupon)

		// Session-scoped cart and checkout
		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(cfg.Session.CookieName))

			r.Get("/cart", cartHandler.GetCart)
			r.Post("/cart/items", cartHandler.AddItem)
			r.Put("/cart/items", cartHandler.UpdateItem)
			r.Delete("/cart/items/{productId}", cartHandler.RemoveItem)
			r.Delete("/cart", cartHandler.ClearCart)

			r.Post("/checkout/quote", checkoutHandler.Quote)
			r.Post("/checkout", checkoutHandler.Start)
			r.Get("/checkout/{orderId}", checkoutHandler.GetOrder)
		})

		// Form submissions, rate limited per IP
		r.Group(func(r chi.Router) {
			r.Use(submissionLimiter.Limit)

			r.Post("/booking", bookingHandler.Submit)
			r.Post("/contact", contactHandler.Submit)
		})
		r.Get("/booking/event-types", bookingHandler.EventTypes)

		// Back-office endpoints
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.APIKeyAuth(cfg.Auth))

			r.Get("/bookings", adminHandler.ListBookings)
			r.Get("/messages", adminHandler.ListMessages)
			r.Get("/orders", adminHandler.ListOrders)
		})
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
