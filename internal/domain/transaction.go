package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction indicates whether money left or entered the tracked account.
type Direction string

const (
	DirectionOutflow Direction = "outflow"
	DirectionInflow  Direction = "inflow"
)

// Origin indicates how a transaction entered the system.
type Origin string

const (
	OriginSMS    Origin = "sms"
	OriginManual Origin = "manual"
)

// Transaction is the canonical finance record. SMS-origin transactions carry a
// deterministic identity derived from the source message so that re-ingesting
// the same message yields the same record; manual entries get a random ULID.
type Transaction struct {
	ID               string
	Amount           decimal.Decimal
	Direction        Direction
	OccurredAt       time.Time
	Description      string
	CounterpartyBank string
	Origin           Origin
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Validate checks structural invariants of the record.
func (t *Transaction) Validate() error {
	if t.ID == "" {
		return ErrMissingIdentity
	}

	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}

	if t.Direction != DirectionOutflow && t.Direction != DirectionInflow {
		return ErrInvalidDirection
	}

	if t.Origin != OriginSMS && t.Origin != OriginManual {
		return ErrInvalidOrigin
	}

	return nil
}
