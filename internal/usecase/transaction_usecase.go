package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/infrastructure/metrics"
)

// TransactionUseCase handles manual entry and read queries.
type TransactionUseCase struct {
	txRepo  TransactionRepository
	idGen   IDGenerator
	metrics *metrics.Metrics
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(txRepo TransactionRepository, idGen IDGenerator, m *metrics.Metrics) *TransactionUseCase {
	return &TransactionUseCase{
		txRepo:  txRepo,
		idGen:   idGen,
		metrics: m,
	}
}

// AddTransactionInput represents a manually entered transaction.
type AddTransactionInput struct {
	Amount           decimal.Decimal
	Direction        domain.Direction
	OccurredAt       *time.Time
	Description      string
	CounterpartyBank string
}

// Add stores a manually entered transaction under a random identity.
func (uc *TransactionUseCase) Add(ctx context.Context, input AddTransactionInput) (*domain.Transaction, error) {
	now := time.Now().UTC()

	occurredAt := now
	if input.OccurredAt != nil {
		occurredAt = *input.OccurredAt
	}

	direction := input.Direction
	if direction == "" {
		direction = domain.DirectionOutflow
	}

	tx := &domain.Transaction{
		ID:               uc.idGen.Generate(),
		Amount:           input.Amount,
		Direction:        direction,
		OccurredAt:       occurredAt,
		Description:      input.Description,
		CounterpartyBank: input.CounterpartyBank,
		Origin:           domain.OriginManual,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := tx.Validate(); err != nil {
		return nil, err
	}

	if err := uc.txRepo.Insert(ctx, tx); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.TransactionsCreated.WithLabelValues(string(tx.Origin), string(tx.Direction)).Inc()
		uc.metrics.TransactionAmount.WithLabelValues(string(tx.Direction)).Observe(tx.Amount.InexactFloat64())
	}

	return tx, nil
}

// ListTransactionsInput represents pagination for listing.
type ListTransactionsInput struct {
	Limit  int
	Offset int
}

// List returns transactions ordered by occurrence date descending.
func (uc *TransactionUseCase) List(ctx context.Context, input ListTransactionsInput) ([]*domain.Transaction, error) {
	if input.Limit <= 0 {
		input.Limit = DefaultListLimit
	}

	if input.Limit > MaxListLimit {
		input.Limit = MaxListLimit
	}

	return uc.txRepo.List(ctx, input.Limit, input.Offset)
}

// ListByMonth returns all transactions within one calendar month.
func (uc *TransactionUseCase) ListByMonth(ctx context.Context, year int, month time.Month) ([]*domain.Transaction, error) {
	if month < time.January || month > time.December {
		return nil, domain.ErrInvalidMonth
	}

	return uc.txRepo.ListByMonth(ctx, year, month)
}
