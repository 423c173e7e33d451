package usecase

import "time"

const (
	// DefaultListLimit is applied when the caller does not specify one.
	DefaultListLimit = 20

	// MaxListLimit caps page sizes to keep result sets bounded.
	MaxListLimit = 100

	// IdempotencyKeyTTL is how long idempotency keys are cached.
	IdempotencyKeyTTL = 24 * time.Hour
)
