package parser

import (
	"fmt"
	"strings"

	"github.com/explainmymoney/emm_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Defaults used when no user locale settings are available.
var (
	DefaultLocale         = language.MustParse("en-IN")
	DefaultCurrencySymbol = "₹"
)

// FormatAmount renders an amount with the locale's thousands grouping,
// prefixed by the currency symbol. Trailing fraction zeros are dropped, so
// 450.00 renders as "₹450".
func FormatAmount(amount decimal.Decimal, symbol string, locale language.Tag) string {
	f, _ := amount.Float64()
	p := message.NewPrinter(locale)
	return symbol + p.Sprint(number.Decimal(f))
}

// Summarize renders a one-line natural-language sentence from already-derived
// fields. Currency symbol and locale are explicit parameters so the output
// follows the user's settings rather than a global default.
func Summarize(c RawCandidate, cls Classification, symbol string, locale language.Tag) string {
	amount := FormatAmount(c.Amount, symbol, locale)

	if cls.Category == domain.CategoryInvestment {
		return fmt.Sprintf("You invested %s in %s.", amount, cls.Merchant)
	}
	if strings.Contains(string(cls.Category), "EMI") {
		loan := strings.TrimPrefix(string(cls.Category), "EMI ")
		return fmt.Sprintf("Your %s EMI of %s was debited.", loan, amount)
	}

	verb := "paid"
	if c.Direction == domain.Credit {
		verb = "received"
	}
	return fmt.Sprintf("You %s %s to %s.", verb, amount, cls.Merchant)
}
