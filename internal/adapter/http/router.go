package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/fintrack/internal/adapter/http/handler"
	"github.com/iho/fintrack/internal/adapter/http/middleware"
	"github.com/iho/fintrack/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	MessageHandler     *handler.MessageHandler
	TransactionHandler *handler.TransactionHandler
	PendingHandler     *handler.PendingHandler
	SettingsHandler    *handler.SettingsHandler
	HealthHandler      *handler.HealthHandler
	IdempotencyStore   usecase.IdempotencyStore
	Logger             zerolog.Logger
	RateLimiter        *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Raw message ingestion
		r.Post("/messages", cfg.MessageHandler.Ingest)

		// Transactions
		r.Route("/transactions", func(r chi.Router) {
			r.Post("/", cfg.TransactionHandler.Create)
			r.Get("/", cfg.TransactionHandler.List)
			r.Get("/month/{year}/{month}", cfg.TransactionHandler.ListByMonth)
		})

		// Review queue
		r.Route("/pending", func(r chi.Router) {
			r.Get("/", cfg.PendingHandler.List)
			r.Post("/{id}/confirm", cfg.PendingHandler.Confirm)
			r.Post("/{id}/reject", cfg.PendingHandler.Reject)
		})

		// Settings
		r.Route("/settings", func(r chi.Router) {
			r.Get("/auto-confirm", cfg.SettingsHandler.GetAutoConfirm)
			r.Put("/auto-confirm", cfg.SettingsHandler.SetAutoConfirm)
		})
	})

	return r
}
