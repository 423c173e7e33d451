package sms_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/sms"
)

func TestIdentityDeterministic(t *testing.T) {
	amount := decimal.NewFromFloat(1234.50)

	first := sms.Identity("VM-HDFCBK", amount, 1757894400000)
	second := sms.Identity("VM-HDFCBK", amount, 1757894400000)

	if first != second {
		t.Fatalf("identity not deterministic: %q vs %q", first, second)
	}
}

func TestIdentityFormat(t *testing.T) {
	id := sms.Identity("VM-HDFCBK", decimal.NewFromInt(500), 1757894400000)

	if !strings.HasPrefix(id, "sms-") {
		t.Fatalf("expected sms- prefix, got %q", id)
	}

	suffix := strings.TrimPrefix(id, "sms-")
	if suffix == "" {
		t.Fatal("expected non-empty hash suffix")
	}

	for _, r := range suffix {
		if !strings.ContainsRune("0123456789abcdefghijklmnopqrstuvwxyz", r) {
			t.Fatalf("expected base-36 suffix, got %q", id)
		}
	}
}

func TestIdentityVariesByInput(t *testing.T) {
	amount := decimal.NewFromInt(500)
	base := sms.Identity("VM-HDFCBK", amount, 1757894400000)

	variants := []string{
		sms.Identity("AX-ICICIB", amount, 1757894400000),
		sms.Identity("VM-HDFCBK", decimal.NewFromInt(501), 1757894400000),
		sms.Identity("VM-HDFCBK", amount, 1757894400001),
	}

	for i, v := range variants {
		if v == base {
			t.Errorf("variant %d collided with base identity %q", i, base)
		}
	}
}
