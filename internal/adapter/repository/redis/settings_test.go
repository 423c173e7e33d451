package redis

import (
	"context"
	"testing"
)

func TestSettingsAutoConfirmDefaultsTrue(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewSettingsStore(client)

	enabled, err := store.AutoConfirm(context.Background())
	if err != nil {
		t.Fatalf("AutoConfirm failed: %v", err)
	}

	if !enabled {
		t.Fatal("expected auto-confirm to default to true when unset")
	}
}

func TestSettingsAutoConfirmOnlyLiteralFalseDisables(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   bool
	}{
		{"literal false disables", "false", false},
		{"literal true enables", "true", true},
		{"garbage value enables", "no", true},
		{"empty string enables", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, mr := newTestRedisClient(t)
			defer mr.Close()
			defer client.Close()

			ctx := context.Background()
			if err := client.Set(ctx, autoConfirmKey, tt.stored, 0).Err(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}

			store := NewSettingsStore(client)
			enabled, err := store.AutoConfirm(ctx)
			if err != nil {
				t.Fatalf("AutoConfirm failed: %v", err)
			}

			if enabled != tt.want {
				t.Fatalf("stored %q: expected %v, got %v", tt.stored, tt.want, enabled)
			}
		})
	}
}

func TestSettingsSetAutoConfirmRoundTrip(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()
	store := NewSettingsStore(client)

	if err := store.SetAutoConfirm(ctx, false); err != nil {
		t.Fatalf("SetAutoConfirm failed: %v", err)
	}

	enabled, err := store.AutoConfirm(ctx)
	if err != nil {
		t.Fatalf("AutoConfirm failed: %v", err)
	}
	if enabled {
		t.Fatal("expected auto-confirm disabled after SetAutoConfirm(false)")
	}

	if err := store.SetAutoConfirm(ctx, true); err != nil {
		t.Fatalf("SetAutoConfirm failed: %v", err)
	}

	enabled, err = store.AutoConfirm(ctx)
	if err != nil {
		t.Fatalf("AutoConfirm failed: %v", err)
	}
	if !enabled {
		t.Fatal("expected auto-confirm enabled after SetAutoConfirm(true)")
	}
}
