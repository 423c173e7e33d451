package sms

import (
	"strconv"

	"github.com/shopspring/decimal"
)

const identityPrefix = "sms-"

// Identity derives a deterministic deduplication key from the extracted
// message fields. It is a pure function: the same (sender, amount, millis)
// triple always yields the same identifier. The underlying 32-bit rolling
// hash is collision-tolerant, not cryptographically unique; distinct triples
// can in principle collide, a tradeoff accepted for simplicity.
func Identity(sender string, amount decimal.Decimal, timestampMillis int64) string {
	seed := sender + amount.String() + strconv.FormatInt(timestampMillis, 10)

	var h int32
	for _, r := range seed {
		h = h*31 + int32(r)
	}

	v := int64(h)
	if v < 0 {
		v = -v
	}

	return identityPrefix + strconv.FormatInt(v, 36)
}
