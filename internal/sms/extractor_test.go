package sms_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/sms"
)

var fixedNow = time.Date(2025, 3, 10, 12, 30, 0, 0, time.UTC)

func newFixedExtractor() *sms.Extractor {
	return sms.NewExtractorWithClock(func() time.Time { return fixedNow })
}

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantAmount string
		wantOK     bool
	}{
		{
			name:       "plain rupee amount",
			body:       "Rs 1,234.50 debited from your account",
			wantAmount: "1234.5",
			wantOK:     true,
		},
		{
			name:       "rs with period",
			body:       "Rs. 500 spent at BigBazaar",
			wantAmount: "500",
			wantOK:     true,
		},
		{
			name:       "inr marker",
			body:       "INR 2500.00 credited to your account",
			wantAmount: "2500",
			wantOK:     true,
		},
		{
			name:       "rupee symbol",
			body:       "₹750 paid to merchant",
			wantAmount: "750",
			wantOK:     true,
		},
		{
			name:       "lowercase marker",
			body:       "rs 99 debited",
			wantAmount: "99",
			wantOK:     true,
		},
		{
			name:       "first of multiple amounts wins",
			body:       "Rs 100 debited. Available balance Rs 9,900",
			wantAmount: "100",
			wantOK:     true,
		},
		{
			name:   "no currency marker",
			body:   "Your OTP is 482915. Do not share it.",
			wantOK: false,
		},
		{
			name:   "marker without number",
			body:   "Rs transfer declined",
			wantOK: false,
		},
		{
			name:   "zero amount",
			body:   "Rs 0 debited from your account",
			wantOK: false,
		},
		{
			name:   "empty body",
			body:   "",
			wantOK: false,
		},
	}

	ext := newFixedExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, ok := ext.Extract("VM-HDFCBK", tt.body)
			require.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Nil(t, tx)
				return
			}

			assert.Equal(t, tt.wantAmount, tx.Amount.String())
			assert.Equal(t, domain.OriginSMS, tx.Origin)
		})
	}
}

func TestExtractDirection(t *testing.T) {
	tests := []struct {
		name string
		body string
		want domain.Direction
	}{
		{
			name: "outflow cue only",
			body: "Rs 100 debited from your account",
			want: domain.DirectionOutflow,
		},
		{
			name: "inflow cue only",
			body: "Rs 100 credited to your account",
			want: domain.DirectionInflow,
		},
		{
			name: "no cue defaults to outflow",
			body: "Rs 100 towards your bill",
			want: domain.DirectionOutflow,
		},
		{
			name: "both cues, credit substring first",
			body: "Rs 100 credited after debited reversal",
			want: domain.DirectionInflow,
		},
		{
			name: "both cues, debit substring first",
			body: "Rs 100 debited, will be credited back",
			want: domain.DirectionOutflow,
		},
		{
			name: "both cue sets without credit or debit substrings",
			body: "Rs 100 received and spent",
			want: domain.DirectionOutflow,
		},
		{
			name: "refund is inflow",
			body: "Refund of Rs 320 processed",
			want: domain.DirectionInflow,
		},
	}

	ext := newFixedExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, ok := ext.Extract("AX-ICICIB", tt.body)
			require.True(t, ok)
			assert.Equal(t, tt.want, tx.Direction)
		})
	}
}

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name string
		body string
		want time.Time
	}{
		{
			name: "slash date, day first",
			body: "Rs 100 debited on 15/09/2025",
			want: time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "dash date, day first",
			body: "Rs 100 debited on 5-1-2025",
			want: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "iso date, year first",
			body: "Rs 100 debited on 2025-09-15",
			want: time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "today keyword",
			body: "Rs 100 debited today",
			want: fixedNow,
		},
		{
			name: "yesterday keyword",
			body: "Rs 100 debited Yesterday",
			want: fixedNow.AddDate(0, 0, -1),
		},
		{
			name: "no date falls back to processing time",
			body: "Rs 100 debited from your account",
			want: fixedNow,
		},
	}

	ext := newFixedExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, ok := ext.Extract("VM-HDFCBK", tt.body)
			require.True(t, ok)
			assert.True(t, tt.want.Equal(tx.OccurredAt),
				"expected %s, got %s", tt.want, tx.OccurredAt)
		})
	}
}

func TestResolveBank(t *testing.T) {
	tests := []struct {
		name   string
		sender string
		want   string
	}{
		{"hdfc short code", "VM-HDFCBK", "HDFC Bank"},
		{"icici short code", "AX-ICICIB", "ICICI Bank"},
		{"sbi short code", "QP-SBIINB", "State Bank of India"},
		{"lowercase sender", "vm-kotakb", "Kotak Mahindra Bank"},
		{"table order wins over position in sender", "BOBAXIS", "Axis Bank"},
		{"unknown short sender returned as is", "UNKNOWN-99", "UNKNOWN-99"},
		{
			name:   "unknown long sender truncated to 20",
			sender: "SOME-VERY-LONG-SENDER-LABEL",
			want:   "SOME-VERY-LONG-SENDE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sms.ResolveBank(tt.sender))
		})
	}
}

func TestExtractDescriptionTruncated(t *testing.T) {
	ext := newFixedExtractor()

	body := "Rs 100 debited. " + strings.Repeat("x", 200)
	tx, ok := ext.Extract("VM-HDFCBK", body)
	require.True(t, ok)

	assert.Len(t, tx.Description, 100)
	assert.Equal(t, body[:100], tx.Description)
}

func TestExtractDeterministicIdentity(t *testing.T) {
	ext := newFixedExtractor()

	first, ok := ext.Extract("VM-HDFCBK", "Rs 1,234.50 debited on 15/09/2025")
	require.True(t, ok)
	second, ok := ext.Extract("VM-HDFCBK", "Rs 1,234.50 debited on 15/09/2025")
	require.True(t, ok)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, strings.HasPrefix(first.ID, "sms-"))
}
