package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const defaultAPIBaseURL = "https://api.stripe.com/v1"

type Config struct {
	Host                 string
	Port                 string
	Environment          string
	StripeSecretKey      string
	StripePublishableKey string
	StripeAPIBaseURL     string
}

// Load reads configuration from a .env file when one exists and from the
// process environment otherwise. The secret key is the only hard requirement.
func Load() (*Config, error) {
	// .env is optional; system environment wins in production
	_ = godotenv.Load()

	secretKey := os.Getenv("STRIPE_SECRET_KEY")
	if secretKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY not defined")
	}

	return &Config{
		Host:                 getEnv("HOST", "0.0.0.0"),
		Port:                 getEnv("PORT", "8080"),
		Environment:          getEnv("ENVIRONMENT", "development"),
		StripeSecretKey:      secretKey,
		StripePublishableKey: os.Getenv("STRIPE_PUBLISHABLE_KEY"),
		StripeAPIBaseURL:     getEnv("STRIPE_API_BASE_URL", defaultAPIBaseURL),
	}, nil
}

func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
