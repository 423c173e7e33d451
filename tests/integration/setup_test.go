package integration

import (
	"context"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"

	adaptershttp "github.com/iho/fintrack/internal/adapter/http"
	"github.com/iho/fintrack/internal/adapter/http/handler"
	"github.com/iho/fintrack/internal/adapter/repository/postgres"
	redisrepo "github.com/iho/fintrack/internal/adapter/repository/redis"
	"github.com/iho/fintrack/internal/infrastructure/recordfeed"
	infraredis "github.com/iho/fintrack/internal/infrastructure/redis"
	"github.com/iho/fintrack/internal/sms"
	"github.com/iho/fintrack/internal/usecase"
	"github.com/iho/fintrack/tests/testutil"
)

// testEnv wires the full HTTP surface against real Postgres and Redis.
type testEnv struct {
	server      *httptest.Server
	db          *testutil.TestDB
	redisClient *redis.Client
	inbox       *redisrepo.InboxSource
	feed        *recordfeed.Feed
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	testDB.TruncateAll(ctx)

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	redisClient, err := infraredis.NewClient(ctx, redisURL)
	if err != nil {
		testDB.Cleanup()
		t.Fatalf("failed to connect to redis: %v", err)
	}

	// Reset state shared between integration runs.
	redisClient.Del(ctx, "settings:auto_confirm", "sms:inbox")

	pool := testDB.Pool
	txRepo := postgres.NewTransactionRepository(pool)
	stagingRepo := postgres.NewStagingRepository(pool)
	retrier := postgres.NewRetrier()
	idGen := postgres.NewULIDGenerator()
	settingsStore := redisrepo.NewSettingsStore(redisClient)
	inboxSource := redisrepo.NewInboxSource(redisClient)
	feed := recordfeed.New()

	extractor := sms.NewExtractor()
	ingestUC := usecase.NewIngestUseCase(extractor, txRepo, stagingRepo, settingsStore, feed, retrier)
	txUC := usecase.NewTransactionUseCase(txRepo, idGen, nil)
	reviewUC := usecase.NewReviewUseCase(txRepo, stagingRepo, feed, nil)

	router := adaptershttp.NewRouter(adaptershttp.RouterConfig{
		MessageHandler:     handler.NewMessageHandler(ingestUC),
		TransactionHandler: handler.NewTransactionHandler(txUC),
		PendingHandler:     handler.NewPendingHandler(reviewUC),
		SettingsHandler:    handler.NewSettingsHandler(settingsStore),
		HealthHandler:      handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore:   redisrepo.NewIdempotencyStore(redisClient),
	})

	server := httptest.NewServer(router)

	env := &testEnv{
		server:      server,
		db:          testDB,
		redisClient: redisClient,
		inbox:       inboxSource,
		feed:        feed,
	}

	t.Cleanup(func() {
		server.Close()
		redisClient.Close()
		testDB.Cleanup()
	})

	return env
}
