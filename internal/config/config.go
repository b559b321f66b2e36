package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment string `env:"ENV" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"LOG_FILE"`

	// Client Configuration
	ClientURL string `env:"CLIENT_URL"`

	// Sanity Content Store Configuration
	SanityProjectID  string `env:"SANITY_PROJECT_ID"`
	SanityDataset    string `env:"SANITY_DATASET" envDefault:"production"`
	SanityAPIVersion string `env:"SANITY_API_VERSION" envDefault:"2025-01-01"`
	SanityWriteToken string `env:"SANITY_API_WRITE_TOKEN"`

	// Email Notification Configuration
	ResendAPIKey string `env:"RESEND_API_KEY"`
	InquiryEmail string `env:"MP_INQUIRY_EMAIL"`
	FromEmail    string `env:"MP_FROM_EMAIL" envDefault:"Maa's Production <no-reply@maasproduction.in>"`

	// Rate Limit Store Configuration (optional shared counter)
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// Telemetry Configuration
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	// Try multiple locations for a .env file; godotenv.Load never
	// overwrites variables that are already set.
	envLocations := []string{".env"}
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Set default log file if not set
	if cfg.LogFile == "" {
		if cfg.Environment == "production" {
			cfg.LogFile = "/app/logs/api.log"
		} else {
			cfg.LogFile = "./logs/api.log"
		}
	}

	// Ensure log directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return cfg, nil
}

// CanWriteToSanity reports whether the content store write path is
// configured. The persistence sink is skipped entirely when this is
// false; the request still proceeds to notification.
func (c *Config) CanWriteToSanity() bool {
	return c.SanityProjectID != "" && c.SanityDataset != "" && c.SanityWriteToken != ""
}

// CanSendEmail reports whether the outbound notification transport is
// configured. Unlike the persistence sink, a missing credential here is
// an error at send time, not a silent skip.
func (c *Config) CanSendEmail() bool {
	return c.ResendAPIKey != "" && c.InquiryEmail != ""
}
