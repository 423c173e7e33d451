package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/usecase"
)

// IngestMessageRequest represents a raw message submitted for extraction.
type IngestMessageRequest struct {
	Sender string `json:"sender"`
	Body   string `json:"body"`
}

// AddTransactionRequest represents a manually entered transaction.
type AddTransactionRequest struct {
	Amount           decimal.Decimal `json:"amount"`
	Direction        string          `json:"direction,omitempty"`
	OccurredAt       *time.Time      `json:"occurred_at,omitempty"`
	Description      string          `json:"description,omitempty"`
	CounterpartyBank string          `json:"counterparty_bank,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *AddTransactionRequest) ToUseCaseInput() usecase.AddTransactionInput {
	return usecase.AddTransactionInput{
		Amount:           r.Amount,
		Direction:        domain.Direction(r.Direction),
		OccurredAt:       r.OccurredAt,
		Description:      r.Description,
		CounterpartyBank: r.CounterpartyBank,
	}
}

// UpdateAutoConfirmRequest toggles the auto-confirm flag.
type UpdateAutoConfirmRequest struct {
	Enabled bool `json:"enabled"`
}

// PaginationRequest represents pagination parameters.
type PaginationRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
