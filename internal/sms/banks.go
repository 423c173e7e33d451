package sms

import "strings"

const fallbackSenderLimit = 20

type bankAlias struct {
	code string
	name string
}

// bankAliases maps sender short-codes to display names. Order matters: the
// first code contained in the upper-cased sender wins.
var bankAliases = []bankAlias{
	{"HDFC", "HDFC Bank"},
	{"ICICI", "ICICI Bank"},
	{"SBI", "State Bank of India"},
	{"AXIS", "Axis Bank"},
	{"KOTAK", "Kotak Mahindra Bank"},
	{"PNB", "Punjab National Bank"},
	{"BOB", "Bank of Baroda"},
	{"IDFC", "IDFC First Bank"},
	{"YES", "Yes Bank"},
	{"CANARA", "Canara Bank"},
}

// ResolveBank maps a sender label to a bank display name, falling back to a
// truncated copy of the raw sender when no alias matches.
func ResolveBank(sender string) string {
	upper := strings.ToUpper(sender)
	for _, b := range bankAliases {
		if strings.Contains(upper, b.code) {
			return b.name
		}
	}

	return truncate(sender, fallbackSenderLimit)
}
