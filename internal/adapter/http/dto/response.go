package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID               string          `json:"id"`
	Amount           decimal.Decimal `json:"amount"`
	Direction        string          `json:"direction"`
	OccurredAt       time.Time       `json:"occurred_at"`
	Description      string          `json:"description,omitempty"`
	CounterpartyBank string          `json:"counterparty_bank,omitempty"`
	Origin           string          `json:"origin"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:               t.ID,
		Amount:           t.Amount,
		Direction:        string(t.Direction),
		OccurredAt:       t.OccurredAt,
		Description:      t.Description,
		CounterpartyBank: t.CounterpartyBank,
		Origin:           string(t.Origin),
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(txs []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(txs))
	for i, t := range txs {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// IngestResponse reports what happened to a submitted message.
type IngestResponse struct {
	Outcome string `json:"outcome"`
}

// AutoConfirmResponse represents the auto-confirm flag state.
type AutoConfirmResponse struct {
	Enabled bool `json:"enabled"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
