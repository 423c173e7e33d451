package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/fintrack/internal/domain"
)

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

const insertTransactionSQL = `
INSERT INTO transactions (
	id, amount, direction, occurred_at, description, counterparty_bank,
	origin, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (id) DO NOTHING`

// Insert stores a transaction. An identity collision is a silent no-op.
func (r *TransactionRepository) Insert(ctx context.Context, tx *domain.Transaction) error {
	_, err := r.pool.Exec(ctx, insertTransactionSQL,
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

// Exists reports whether a transaction with the given identity is stored.
func (r *TransactionRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM transactions WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

const listTransactionsSQL = `
SELECT id, amount, direction, occurred_at, description, counterparty_bank,
	origin, created_at, updated_at
FROM transactions
ORDER BY occurred_at DESC, created_at DESC
LIMIT $1 OFFSET $2`

// List returns transactions ordered by occurrence date descending,
// tie-broken by creation time descending.
func (r *TransactionRepository) List(ctx context.Context, limit, offset int) ([]*domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, listTransactionsSQL, int32(limit), int32(offset))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

const listByMonthSQL = `
SELECT id, amount, direction, occurred_at, description, counterparty_bank,
	origin, created_at, updated_at
FROM transactions
WHERE occurred_at >= $1 AND occurred_at < $2
ORDER BY occurred_at DESC, created_at DESC`

// ListByMonth returns all transactions within one calendar month.
func (r *TransactionRepository) ListByMonth(ctx context.Context, year int, month time.Month) ([]*domain.Transaction, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	rows, err := r.pool.Query(ctx, listByMonthSQL,
		timeToPgTimestamptz(start), timeToPgTimestamptz(end))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func scanTransactions(rows pgx.Rows) ([]*domain.Transaction, error) {
	var out []*domain.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, tx)
	}

	return out, rows.Err()
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		tx         domain.Transaction
		amount     pgtype.Numeric
		direction  string
		origin     string
		occurredAt pgtype.Timestamptz
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
	)

	err := row.Scan(
		&tx.ID, &amount, &direction, &occurredAt, &tx.Description,
		&tx.CounterpartyBank, &origin, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	tx.Amount = numericToDecimal(amount)
	tx.Direction = domain.Direction(direction)
	tx.Origin = domain.Origin(origin)
	tx.OccurredAt = occurredAt.Time
	tx.CreatedAt = createdAt.Time
	tx.UpdatedAt = updatedAt.Time

	return &tx, nil
}
