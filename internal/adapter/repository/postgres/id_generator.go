package postgres

import (
	"github.com/oklog/ulid/v2"
)

// ULIDGenerator generates random ULID identities for manual entries. SMS
// records never go through it; their identity is derived in the sms package.
type ULIDGenerator struct{}

// NewULIDGenerator creates a new ULIDGenerator.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

// Generate generates a new ULID.
func (g *ULIDGenerator) Generate() string {
	return ulid.Make().String()
}
