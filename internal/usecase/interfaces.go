package usecase

import (
	"context"
	"time"

	"github.com/iho/fintrack/internal/domain"
)

// TransactionRepository defines durable storage of confirmed transactions,
// keyed by identity.
type TransactionRepository interface {
	// Insert is idempotent: an identity collision is a silent no-op, not an
	// error and not an overwrite.
	Insert(ctx context.Context, tx *domain.Transaction) error
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Transaction, error)
	ListByMonth(ctx context.Context, year int, month time.Month) ([]*domain.Transaction, error)
}

// StagingRepository holds extracted records awaiting human confirmation. Its
// identity space is independent of the transaction repository's.
type StagingRepository interface {
	Enqueue(ctx context.Context, tx *domain.Transaction) error
	Get(ctx context.Context, id string) (*domain.Transaction, error)
	List(ctx context.Context) ([]*domain.Transaction, error)
	// Remove is a no-op if the identity is absent.
	Remove(ctx context.Context, id string) error
}

// SettingsStore persists runtime policy flags.
type SettingsStore interface {
	// AutoConfirm reports whether extracted records bypass staging. Defaults
	// to true when the flag was never set.
	AutoConfirm(ctx context.Context) (bool, error)
	SetAutoConfirm(ctx context.Context, enabled bool) error
}

// MessageExtractor parses a raw message into a candidate record. The boolean
// is false when the message is not a recognizable transaction.
type MessageExtractor interface {
	Extract(sender, body string) (*domain.Transaction, bool)
}

// RecordPublisher fans newly confirmed records out to live in-memory
// subscribers such as UI state.
type RecordPublisher interface {
	Publish(tx *domain.Transaction)
}

// InboxMessage is a raw (sender, body) pair from the platform inbox.
type InboxMessage struct {
	Sender     string
	Body       string
	ReceivedAt time.Time
}

// InboxSource is the polled message source collaborator. Delivery is
// at-least-once and possibly reordered.
type InboxSource interface {
	FetchLatest(ctx context.Context, limit int) ([]InboxMessage, error)
	Ping(ctx context.Context) error
}

// IDGenerator generates identities for manually entered transactions.
type IDGenerator interface {
	Generate() string
}

// Retrier retries an operation on transient storage errors.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IdempotencyStore handles idempotency key storage for the HTTP surface.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
