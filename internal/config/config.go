// Package config handles application configuration from a .env file, an
// optional YAML file and environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/randytsao24/iss-tracker/internal/location"
	"github.com/randytsao24/iss-tracker/internal/oem"
)

// TracingConfig controls span export
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	ServiceName string  `yaml:"service_name" validate:"required"`
	Exporter    string  `yaml:"exporter" validate:"oneof=stdout otlp"`
	Endpoint    string  `yaml:"endpoint"`
	SampleRatio float64 `yaml:"sample_ratio" validate:"gte=0,lte=1"`
}

// Config holds all application configuration.
type Config struct {
	Port              string        `yaml:"port" validate:"required,numeric"`
	Env               string        `yaml:"env" validate:"oneof=development production test"`
	FeedURL           string        `yaml:"feed_url" validate:"required,url"`
	GeocoderURL       string        `yaml:"geocoder_url" validate:"required,url"`
	GeocoderUserAgent string        `yaml:"geocoder_user_agent" validate:"required"`
	HTTPTimeout       time.Duration `yaml:"http_timeout" validate:"gt=0"`
	RequestTimeout    time.Duration `yaml:"request_timeout" validate:"gt=0"`
	LogLevel          string        `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat         string        `yaml:"log_format" validate:"oneof=text json"`
	Tracing           TracingConfig `yaml:"tracing"`
}

// Default returns the configuration used when nothing overrides it
func Default() *Config {
	return &Config{
		Port:              "3000",
		Env:               "development",
		FeedURL:           oem.DefaultFeedURL,
		GeocoderURL:       location.DefaultGeocoderURL,
		GeocoderUserAgent: "iss-tracker/1.0",
		HTTPTimeout:       10 * time.Second,
		RequestTimeout:    30 * time.Second,
		LogLevel:          "info",
		LogFormat:         "text",
		Tracing: TracingConfig{
			ServiceName: "iss-tracker",
			Exporter:    "stdout",
			SampleRatio: 1,
		},
	}
}

// Load reads .env (if present), then the YAML file named by ISS_CONFIG_FILE
// (if set), then environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := Default()

	if path := os.Getenv("ISS_CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Env = getEnv("ENV", cfg.Env)
	cfg.FeedURL = getEnv("ISS_FEED_URL", cfg.FeedURL)
	cfg.GeocoderURL = getEnv("GEOCODER_URL", cfg.GeocoderURL)
	cfg.GeocoderUserAgent = getEnv("GEOCODER_USER_AGENT", cfg.GeocoderUserAgent)
	cfg.HTTPTimeout = getDurationEnv("HTTP_TIMEOUT_SECONDS", cfg.HTTPTimeout)
	cfg.RequestTimeout = getDurationEnv("REQUEST_TIMEOUT_SECONDS", cfg.RequestTimeout)
	cfg.LogLevel = strings.ToLower(getEnv("LOG_LEVEL", cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(getEnv("LOG_FORMAT", cfg.LogFormat))

	cfg.Tracing.Enabled = getBoolEnv("TRACING_ENABLED", cfg.Tracing.Enabled)
	cfg.Tracing.Exporter = strings.ToLower(getEnv("TRACING_EXPORTER", cfg.Tracing.Exporter))
	cfg.Tracing.Endpoint = getEnv("TRACING_ENDPOINT", cfg.Tracing.Endpoint)
	cfg.Tracing.SampleRatio = getFloatEnv("TRACING_SAMPLE_RATIO", cfg.Tracing.SampleRatio)

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
