package parser

import (
	"regexp"
	"strings"

	"github.com/explainmymoney/emm_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	// Date tokens: 27-12-2024, 27/12/24, 2024-12-27, and the 27-Dec-24 shape
	// common in bank SMS bodies.
	dateTokenPattern = regexp.MustCompile(`\d{1,2}[-/](?:\d{1,2}|[A-Za-z]{3})[-/]\d{2,4}|\d{4}[-/]\d{1,2}[-/]\d{1,2}`)

	// Amounts with a thousands separator or a decimal fraction. Tried first so
	// that account suffixes and reference numbers ("XX8901", "3456789012") are
	// not mistaken for amounts.
	strictAmountPattern = regexp.MustCompile(`\d{1,3}(?:,\d{3})+(?:\.\d{1,2})?|\d+\.\d{1,2}`)

	// Any short digit grouping. Fallback for statement lines carrying whole
	// amounts with no separators.
	looseAmountPattern = regexp.MustCompile(`\d{1,3}(?:,\d{3})*(?:\.\d{2})?`)

	referencePattern = regexp.MustCompile(`\b\d{10,18}\b`)

	whitespacePattern = regexp.MustCompile(`\s+`)
)

var creditSignals = []string{"cr", "credit", "received"}

// ExtractLine locates a date, an amount, a direction signal and a free-text
// narration in one raw text line (SMS body, email snippet, PDF statement
// line). The first amount match is the primary amount; a second distinct
// match later in the line is treated as a trailing balance figure. Returns
// false when the line carries no date token or no amount at all. A line whose
// date token fails to normalize still yields a candidate (with a zero date)
// for the validation gate to reject.
func ExtractLine(line string) (RawCandidate, bool) {
	dateToken := dateTokenPattern.FindString(line)
	if dateToken == "" {
		return RawCandidate{}, false
	}
	date, _ := ParseDate(dateToken) // zero on failure, gate rejects

	// Scan amounts with the date token removed so its digits are never
	// misread as an amount.
	rest := strings.Replace(line, dateToken, " ", 1)
	amounts := strictAmountPattern.FindAllString(rest, -1)
	if len(amounts) == 0 {
		amounts = looseAmountPattern.FindAllString(rest, -1)
	}
	if len(amounts) == 0 {
		return RawCandidate{}, false
	}

	amount, ok := parseAmount(amounts[0])
	if !ok || amount.IsZero() {
		return RawCandidate{}, false
	}

	c := RawCandidate{
		Date:        date,
		Amount:      amount.Abs(),
		Direction:   domain.Debit,
		ReferenceNo: referencePattern.FindString(line),
	}

	// Best-effort heuristic: with no column boundaries to anchor on, the last
	// amount on a multi-amount line is assumed to be the running balance.
	if len(amounts) > 1 {
		if bal, ok := parseAmount(amounts[len(amounts)-1]); ok {
			c.Balance = bal
			c.HasBalance = true
		}
	}

	lower := strings.ToLower(line)
	for _, signal := range creditSignals {
		if strings.Contains(lower, signal) {
			c.Direction = domain.Credit
			break
		}
	}

	desc := strings.Replace(line, dateToken, " ", 1)
	desc = looseAmountPattern.ReplaceAllString(desc, " ")
	c.Description = strings.TrimSpace(whitespacePattern.ReplaceAllString(desc, " "))

	return c, true
}

// parseAmount strips every character outside [0-9.-] before conversion. A
// non-numeric result after stripping yields no value.
func parseAmount(s string) (decimal.Decimal, bool) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
