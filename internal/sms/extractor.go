package sms

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

const descriptionLimit = 100

// Clock supplies the current time. Injected so date fallback behavior is
// testable.
type Clock func() time.Time

// Extractor turns raw bank notification messages into transaction records.
// Extraction is heuristic and best-effort: any message that does not look like
// a transaction yields absence, never an error.
type Extractor struct {
	now Clock
}

// NewExtractor creates an Extractor using the wall clock.
func NewExtractor() *Extractor {
	return NewExtractorWithClock(time.Now)
}

// NewExtractorWithClock creates an Extractor with a custom clock.
func NewExtractorWithClock(clock Clock) *Extractor {
	return &Extractor{now: clock}
}

// amountPattern matches the first currency marker followed by a numeric
// literal with optional comma grouping and an optional fractional part.
var amountPattern = regexp.MustCompile(`(?i)(?:\b(?:rs\.?|inr)|₹)\s*([0-9][0-9,]*(?:\.[0-9]+)?)`)

var outflowCues = []string{"debited", "spent", "withdrawn", "paid", "purchase", "purchased", "transaction"}

var inflowCues = []string{"credited", "received", "deposited", "refund", "refunded"}

// datePatterns are tried in order against the raw body; the first match wins.
// The slash and dash forms are day-first.
var datePatterns = []struct {
	re        *regexp.Regexp
	yearFirst bool
}{
	{regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`), false},
	{regexp.MustCompile(`(\d{1,2})-(\d{1,2})-(\d{4})`), false},
	{regexp.MustCompile(`(\d{4})-(\d{1,2})-(\d{1,2})`), true},
}

// Extract parses a raw message into a transaction record. The second return
// value is false when the message does not contain a recognizable transaction.
func (e *Extractor) Extract(sender, body string) (*domain.Transaction, bool) {
	amount, ok := parseAmount(body)
	if !ok {
		return nil, false
	}

	lower := strings.ToLower(body)
	occurredAt := e.parseDate(body, lower)
	now := e.now().UTC()

	tx := &domain.Transaction{
		ID:               Identity(sender, amount, occurredAt.UnixMilli()),
		Amount:           amount,
		Direction:        inferDirection(lower),
		OccurredAt:       occurredAt,
		Description:      truncate(strings.TrimSpace(body), descriptionLimit),
		CounterpartyBank: ResolveBank(sender),
		Origin:           domain.OriginSMS,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	return tx, true
}

// parseAmount finds the first currency-marked numeric literal. Only the first
// match is considered even when several amounts appear in the text.
func parseAmount(body string) (decimal.Decimal, bool) {
	m := amountPattern.FindStringSubmatch(body)
	if m == nil {
		return decimal.Zero, false
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, false
	}

	return amount, true
}

// inferDirection applies the keyword evidence policy. When both cue sets
// match, the product resolves the conflict by racing the literal substrings
// "credit" and "debit" through the text; the earlier one wins. That rule uses
// the raw substrings rather than the cue sets and is kept verbatim from the
// product definition, including its looseness.
func inferDirection(lower string) domain.Direction {
	out := containsAny(lower, outflowCues)
	in := containsAny(lower, inflowCues)

	switch {
	case in && out:
		ci := strings.Index(lower, "credit")
		di := strings.Index(lower, "debit")
		if ci >= 0 && (di < 0 || ci < di) {
			return domain.DirectionInflow
		}
		return domain.DirectionOutflow
	case in:
		return domain.DirectionInflow
	default:
		return domain.DirectionOutflow
	}
}

// parseDate resolves the occurrence time: an explicit date literal first,
// then the relative keywords "today"/"yesterday", then processing time.
func (e *Extractor) parseDate(body, lower string) time.Time {
	for _, p := range datePatterns {
		m := p.re.FindStringSubmatch(body)
		if m == nil {
			continue
		}

		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if p.yearFirst {
			year, day = day, year
		}

		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	}

	now := e.now().UTC()
	switch {
	case strings.Contains(lower, "yesterday"):
		return now.AddDate(0, 0, -1)
	case strings.Contains(lower, "today"):
		return now
	}

	return now
}

func containsAny(s string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(s, cue) {
			return true
		}
	}
	return false
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
