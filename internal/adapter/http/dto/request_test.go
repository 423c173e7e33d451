package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

func TestAddTransactionRequest_ToUseCaseInput(t *testing.T) {
	now := time.Now()

	req := &AddTransactionRequest{
		Amount:           decimal.RequireFromString("450.75"),
		Direction:        "inflow",
		OccurredAt:       &now,
		Description:      "salary",
		CounterpartyBank: "HDFC Bank",
	}

	got := req.ToUseCaseInput()

	if !got.Amount.Equal(decimal.RequireFromString("450.75")) {
		t.Fatalf("Amount = %s, want 450.75", got.Amount)
	}
	if got.Direction != domain.DirectionInflow {
		t.Fatalf("Direction = %s, want inflow", got.Direction)
	}
	if got.OccurredAt != &now {
		t.Fatalf("OccurredAt not carried through")
	}
	if got.Description != "salary" || got.CounterpartyBank != "HDFC Bank" {
		t.Fatalf("text fields not carried through: %+v", got)
	}
}

func TestAddTransactionRequest_EmptyDirection(t *testing.T) {
	req := &AddTransactionRequest{Amount: decimal.NewFromInt(10)}

	got := req.ToUseCaseInput()
	if got.Direction != "" {
		t.Fatalf("Direction = %q, want empty (defaulting happens in the use case)", got.Direction)
	}
	if got.OccurredAt != nil {
		t.Fatalf("OccurredAt = %v, want nil", got.OccurredAt)
	}
}
