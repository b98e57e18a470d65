// Package parser converts raw bank notification text and loosely structured
// statement rows into validated, categorized transaction records. Every
// function here is pure: malformed input yields no candidate, or a candidate
// the validation gate rejects, never an error.
package parser

import (
	"strings"
	"time"

	"github.com/explainmymoney/emm_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RawCandidate is an unvalidated extracted record awaiting the validation
// gate. Amount is always non-negative here; direction is carried separately.
type RawCandidate struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Direction   domain.TransactionType // Debit or Credit
	Balance     decimal.Decimal        // Trailing balance, when the source exposes one
	HasBalance  bool
	ReferenceNo string // Extracted reference, when the source carries one
}

// noisePhrases filters statement header/footer rows that slip through
// column-based extraction.
var noisePhrases = []string{
	"opening balance", "closing balance", "total", "balance b/f", "balance c/f",
	"statement", "account number", "ifsc", "branch", "page", "date", "particulars",
	"debit", "credit", "amount", "narration", "transaction details", "sr no",
	"sl no", "serial", "beginning balance", "ending balance", "sub total",
}

// IsValid is the validation gate. A candidate passes iff its date is a real
// calendar date, its amount is strictly positive, its trimmed description is
// at least 3 characters, and the description is not a pure noise phrase.
func (c RawCandidate) IsValid() bool {
	if c.Date.IsZero() {
		return false
	}
	if c.Amount.Sign() <= 0 {
		return false
	}
	desc := strings.ToLower(strings.TrimSpace(c.Description))
	if len(desc) < 3 {
		return false
	}
	for _, phrase := range noisePhrases {
		if desc == phrase {
			return false
		}
		if c.Amount.IsZero() && strings.Contains(desc, phrase) {
			return false
		}
	}
	return true
}
