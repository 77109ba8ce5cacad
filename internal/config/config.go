package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Pricing  PricingConfig
	Checkout CheckoutConfig
	Session  SessionConfig
	Rate     RateConfig
	LogLevel string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

type AuthConfig struct {
	APIKeys []string // Valid API keys for the back-office endpoints
}

// PricingConfig carries the two pricing variants: the cart summary and the
// checkout page evolved with different thresholds and currencies, but share
// one tax rate.
type PricingConfig struct {
	TaxRate decimal.Decimal

	CartFreeShippingThreshold decimal.Decimal
	CartShippingFee           decimal.Decimal
	CartCurrency              string

	CheckoutFreeShippingThreshold decimal.Decimal
	CheckoutShippingFee           decimal.Decimal
	CheckoutCurrency              string
}

type CheckoutConfig struct {
	// ProcessingDelayMillis is the simulated payment processing time.
	ProcessingDelayMillis int
}

type SessionConfig struct {
	CookieName string
}

type RateConfig struct {
	// SubmissionsPerMinute limits booking/contact form posts per client IP.
	SubmissionsPerMinute int
	Burst                int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	taxRate, err := getEnvAsDecimal("TAX_RATE", "0.075")
	if err != nil {
		return nil, err
	}
	cartThreshold, err := getEnvAsDecimal("CART_FREE_SHIPPING_THRESHOLD", "6000")
	if err != nil {
		return nil, err
	}
	cartFee, err := getEnvAsDecimal("CART_SHIPPING_FEE", "300")
	if err != nil {
		return nil, err
	}
	checkoutThreshold, err := getEnvAsDecimal("CHECKOUT_FREE_SHIPPING_THRESHOLD", "500")
	if err != nil {
		return nil, err
	}
	checkoutFee, err := getEnvAsDecimal("CHECKOUT_SHIPPING_FEE", "25")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		Auth: AuthConfig{
			APIKeys: getEnvAsSlice("API_KEYS", []string{"apitest"}),
		},
		Pricing: PricingConfig{
			TaxRate:                       taxRate,
			CartFreeShippingThreshold:     cartThreshold,
			CartShippingFee:               cartFee,
			CartCurrency:                  getEnv("CART_CURRENCY", "GHS"),
			CheckoutFreeShippingThreshold: checkoutThreshold,
			CheckoutShippingFee:           checkoutFee,
			CheckoutCurrency:              getEnv("CHECKOUT_CURRENCY", "USD"),
		},
		Checkout: CheckoutConfig{
			ProcessingDelayMillis: getEnvAsInt("CHECKOUT_PROCESSING_DELAY_MS", 2000),
		},
		Session: SessionConfig{
			CookieName: getEnv("SESSION_COOKIE_NAME", "cart_session"),
		},
		Rate: RateConfig{
			SubmissionsPerMinute: getEnvAsInt("SUBMISSIONS_PER_MINUTE", 5),
			Burst:                getEnvAsInt("SUBMISSIONS_BURST", 2),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if len(c.Auth.APIKeys) == 0 {
		return fmt.Errorf("at least one API key must be configured")
	}

	if c.Pricing.TaxRate.IsNegative() || c.Pricing.TaxRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("TAX_RATE must be in [0, 1), got %s", c.Pricing.TaxRate)
	}

	if c.Pricing.CartShippingFee.IsNegative() || c.Pricing.CheckoutShippingFee.IsNegative() {
		return fmt.Errorf("shipping fees must not be negative")
	}

	if c.Checkout.ProcessingDelayMillis < 0 {
		return fmt.Errorf("CHECKOUT_PROCESSING_DELAY_MS must not be negative")
	}

	if c.Rate.SubmissionsPerMinute <= 0 {
		return fmt.Errorf("SUBMISSIONS_PER_MINUTE must be positive")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	return strings.Split(valueStr, ",")
}

func getEnvAsDecimal(key, defaultValue string) (decimal.Decimal, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}
	value, err := decimal.NewFromString(valueStr)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", key, err)
	}
	return value, nil
}
