package domain

import "errors"

var (
	// Transaction errors
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrMissingIdentity     = errors.New("transaction identity is empty")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidDirection    = errors.New("direction must be outflow or inflow")
	ErrInvalidOrigin       = errors.New("origin must be sms or manual")
	ErrInvalidMonth        = errors.New("month must be between 1 and 12")

	// Staging errors
	ErrNotStaged = errors.New("transaction is not staged for review")
)
