package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const autoConfirmKey = "settings:auto_confirm"

// SettingsStore implements usecase.SettingsStore on Redis.
type SettingsStore struct {
	client *redis.Client
}

// NewSettingsStore creates a new SettingsStore.
func NewSettingsStore(client *redis.Client) *SettingsStore {
	return &SettingsStore{client: client}
}

// AutoConfirm reads the auto-confirm policy flag. The flag defaults to true:
// only the stored literal "false" disables it, any other value (or absence)
// leaves it on.
func (s *SettingsStore) AutoConfirm(ctx context.Context) (bool, error) {
	val, err := s.client.Get(ctx, autoConfirmKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return true, nil
		}

		return false, err
	}

	return val != "false", nil
}

// SetAutoConfirm persists the auto-confirm policy flag.
func (s *SettingsStore) SetAutoConfirm(ctx context.Context, enabled bool) error {
	val := "true"
	if !enabled {
		val = "false"
	}

	return s.client.Set(ctx, autoConfirmKey, val, 0).Err()
}
