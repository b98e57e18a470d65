package parser

import (
	"fmt"
	"time"

	"github.com/explainmymoney/emm_backend/internal/core/domain"
	"github.com/google/uuid"
	"golang.org/x/text/language"
)

// ToTransaction enriches a validated candidate into a domain transaction:
// classification, method detection and summary generation in one pass.
// TransactionID and CreatedAt are left for the persistence layer to assign.
func (c RawCandidate) ToTransaction(source domain.Source, symbol string, locale language.Tag) domain.Transaction {
	cls := Classify(c.Description)

	ref := c.ReferenceNo
	if ref == "" {
		ref = newStatementReference()
	}

	balance := ""
	if c.HasBalance {
		balance = FormatAmount(c.Balance, symbol, locale)
	}

	return domain.Transaction{
		RawMessage:     c.Description,
		Source:         source,
		Timestamp:      c.Date,
		Category:       cls.Category,
		InvestmentType: cls.InvestmentType,
		Summary:        Summarize(c, cls, symbol, locale),
		Amount:         c.Amount.Round(2),
		Currency:       symbol,
		Type:           c.Direction,
		Merchant:       cls.Merchant,
		Method:         DetectMethod(c.Description),
		ReferenceNo:    ref,
		Balance:        balance,
	}
}

func newStatementReference() string {
	return fmt.Sprintf("STMT-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:6])
}
