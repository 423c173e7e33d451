package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/fintrack/internal/adapter/http"
	"github.com/iho/fintrack/internal/adapter/http/handler"
	postgresRepo "github.com/iho/fintrack/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/fintrack/internal/adapter/repository/redis"
	"github.com/iho/fintrack/internal/infrastructure/config"
	"github.com/iho/fintrack/internal/infrastructure/logger"
	"github.com/iho/fintrack/internal/infrastructure/logging"
	"github.com/iho/fintrack/internal/infrastructure/metrics"
	"github.com/iho/fintrack/internal/infrastructure/postgres"
	"github.com/iho/fintrack/internal/infrastructure/recordfeed"
	"github.com/iho/fintrack/internal/infrastructure/redis"
	"github.com/iho/fintrack/internal/infrastructure/smslistener"
	"github.com/iho/fintrack/internal/sms"
	"github.com/iho/fintrack/internal/usecase"
)

func main() {
	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup log level
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Request logger for the HTTP surface, slog for background workers.
	httpLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	appLog := logging.New(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	appMetrics := metrics.New()

	// Initialize repositories
	txRepo := postgresRepo.NewTransactionRepository(pool)
	stagingRepo := postgresRepo.NewStagingRepository(pool)
	retrier := postgresRepo.NewRetrier()
	idGen := postgresRepo.NewULIDGenerator()
	settingsStore := redisRepo.NewSettingsStore(redisClient)
	inboxSource := redisRepo.NewInboxSource(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)

	// Live record feed for confirmed transactions
	feed := recordfeed.New()

	// Initialize use cases
	extractor := sms.NewExtractor()
	ingestUC := usecase.NewIngestUseCase(extractor, txRepo, stagingRepo, settingsStore, feed, retrier)
	txUC := usecase.NewTransactionUseCase(txRepo, idGen, appMetrics)
	reviewUC := usecase.NewReviewUseCase(txRepo, stagingRepo, feed, appMetrics)

	// Initialize handlers
	messageHandler := handler.NewMessageHandler(ingestUC)
	transactionHandler := handler.NewTransactionHandler(txUC)
	pendingHandler := handler.NewPendingHandler(reviewUC)
	settingsHandler := handler.NewSettingsHandler(settingsStore)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		MessageHandler:     messageHandler,
		TransactionHandler: transactionHandler,
		PendingHandler:     pendingHandler,
		SettingsHandler:    settingsHandler,
		HealthHandler:      healthHandler,
		IdempotencyStore:   idempotencyStore,
		Logger:             httpLogger,
	})

	// Start the inbox listener
	listenerCtx, stopListener := context.WithCancel(ctx)
	defer stopListener()

	var listener *smslistener.Listener
	if cfg.SMSInboxEnabled {
		listener = smslistener.New(smslistener.Config{
			Source:    inboxSource,
			Handler:   ingestUC,
			Logger:    appLog.Logger,
			Observer:  appMetrics,
			Interval:  cfg.SMSPollInterval,
			BatchSize: cfg.SMSPollBatch,
		})
		if err := listener.Start(listenerCtx); err != nil {
			log.Fatal().Err(err).Msg("failed to start inbox listener")
		}

		if listener.IsActive() {
			log.Info().
				Dur("interval", cfg.SMSPollInterval).
				Int("batch", cfg.SMSPollBatch).
				Msg("inbox listener started")
		}
	}

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	if listener != nil {
		listener.Stop()
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
