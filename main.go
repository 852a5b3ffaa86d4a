package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"nexora/internal/catalog"
	"nexora/internal/config"
	"nexora/internal/handlers"
	"nexora/internal/logger"
	"nexora/internal/middleware"
	sentryutil "nexora/internal/sentry"
)

func main() {
	// Load configuration from .env and environment variables
	config.Load()
	logger.SetLevel(config.Cfg.LogLevel)

	// Initialize Sentry (non-blocking if SENTRY_DSN is empty)
	sentryutil.Init()
	defer sentryutil.Flush()

	// Persistent eligibility-check counter
	handlers.InitCounter(config.Cfg.CounterFlushInterval)

	// Rate limiter from config
	limiter := handlers.NewRateLimiter(
		config.Cfg.RateLimitRPS,
		config.Cfg.RateLimitBurst,
		time.Second,
	)

	mux := http.NewServeMux()

	// API routes
	mux.HandleFunc("/api/eligibility", handlers.EligibilityHandler)
	mux.HandleFunc("/api/programs", handlers.ProgramsHandler)
	mux.HandleFunc("/api/programs/", handlers.ProgramDetailHandler)
	mux.HandleFunc("/api/countries", handlers.CountriesHandler)
	mux.HandleFunc("/api/currencies/convert", handlers.ConvertCurrencyHandler)
	mux.HandleFunc("/api/currencies/rates", handlers.RatesHandler)
	mux.HandleFunc("/api/encode-profile", handlers.EncodeProfileHandler)
	mux.HandleFunc("/api/decode-profile", handlers.DecodeProfileHandler)
	mux.HandleFunc("/api/stats", handlers.StatsHandler)
	mux.HandleFunc("/api/health", handlers.HealthHandler)

	if config.Cfg.MetricsEnabled {
		mux.Handle("/metrics", promhttp.Handler())
	}

	mux.HandleFunc("/", handlers.NotFoundHandler)

	// Wrap with middleware: Recovery → SecurityHeaders → Gzip (if enabled) → Rate Limiter
	var handler http.Handler = limiter.Middleware(mux)
	if config.Cfg.GzipEnabled {
		handler = middleware.Gzip(handler)
	}
	handler = middleware.SecurityHeaders(handler)
	handler = middleware.Recovery(handler)

	logger.Info("server starting", map[string]interface{}{
		"port":     config.Cfg.Port,
		"programs": len(catalog.All()),
	})
	fmt.Printf("Nexora running on http://localhost:%s\n", config.Cfg.Port)
	log.Fatal(http.ListenAndServe(":"+config.Cfg.Port, handler))
}
