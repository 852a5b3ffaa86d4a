package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Cfg is the global configuration loaded at startup.
var Cfg Config

// Config holds all application configuration.
type Config struct {
	// Server
	Port    string
	BaseURL string

	// Logging
	LogLevel string

	// Sentry
	SentryDSN         string
	SentryEnvironment string
	SentryRelease     string

	// Rate limiter
	RateLimitRPS   int
	RateLimitBurst int

	// Gzip
	GzipEnabled bool

	// Metrics
	MetricsEnabled bool

	// Check counter persistence
	CounterFlushInterval time.Duration
}

// Load reads .env (if present) and populates Cfg from environment variables.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment variables")
	}

	Cfg = Config{
		Port:    envOr("PORT", "8080"),
		BaseURL: envOr("BASE_URL", "https://nexora.example.com"),

		LogLevel: envOr("LOG_LEVEL", "info"),

		SentryDSN:         os.Getenv("SENTRY_DSN"),
		SentryEnvironment: envOr("SENTRY_ENVIRONMENT", "production"),
		SentryRelease:     envOr("SENTRY_RELEASE", "nexora@1.0.0"),

		RateLimitRPS:   envInt("RATE_LIMIT_RPS", 30),
		RateLimitBurst: envInt("RATE_LIMIT_BURST", 60),

		GzipEnabled: envBool("GZIP_ENABLED", true),

		MetricsEnabled: envBool("METRICS_ENABLED", true),

		CounterFlushInterval: envDuration("COUNTER_FLUSH_INTERVAL", 30*time.Second),
	}

	log.Printf("config: loaded (port=%s, metrics=%v, gzip=%v)",
		Cfg.Port, Cfg.MetricsEnabled, Cfg.GzipEnabled)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
