package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/fintrack/internal/domain"
)

// StagingRepository implements usecase.StagingRepository. Staged records
// live in their own table so their identity space is independent of the
// confirmed transactions.
type StagingRepository struct {
	pool *pgxpool.Pool
}

// NewStagingRepository creates a new StagingRepository.
func NewStagingRepository(pool *pgxpool.Pool) *StagingRepository {
	return &StagingRepository{pool: pool}
}

const enqueueSQL = `
INSERT INTO staging_transactions (
	id, amount, direction, occurred_at, description, counterparty_bank,
	origin, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (id) DO NOTHING`

// Enqueue stores a record pending review. Re-enqueueing the same identity is
// a no-op, mirroring the repository's collision behavior.
func (r *StagingRepository) Enqueue(ctx context.Context, tx *domain.Transaction) error {
	_, err := r.pool.Exec(ctx, enqueueSQL,
		tx.ID,
		decimalToNumeric(tx.Amount),
		string(tx.Direction),
		timeToPgTimestamptz(tx.OccurredAt),
		tx.Description,
		tx.CounterpartyBank,
		string(tx.Origin),
		timeToPgTimestamptz(tx.CreatedAt),
		timeToPgTimestamptz(tx.UpdatedAt),
	)

	return err
}

const getStagedSQL = `
SELECT id, amount, direction, occurred_at, description, counterparty_bank,
	origin, created_at, updated_at
FROM staging_transactions
WHERE id = $1`

// Get retrieves a staged record by identity.
func (r *StagingRepository) Get(ctx context.Context, id string) (*domain.Transaction, error) {
	tx, err := scanTransaction(r.pool.QueryRow(ctx, getStagedSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotStaged
		}

		return nil, err
	}

	return tx, nil
}

const listStagedSQL = `
SELECT id, amount, direction, occurred_at, description, counterparty_bank,
	origin, created_at, updated_at
FROM staging_transactions
ORDER BY created_at DESC`

// List returns all records awaiting review.
func (r *StagingRepository) List(ctx context.Context) ([]*domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, listStagedSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// Remove deletes a staged record. Removing an absent identity is a no-op.
func (r *StagingRepository) Remove(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM staging_transactions WHERE id = $1`, id)
	return err
}
