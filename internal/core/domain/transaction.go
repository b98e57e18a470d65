package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of a transaction.
// "alert" marks informational notifications that carry no money movement.
type TransactionType string

const (
	Debit  TransactionType = "debit"
	Credit TransactionType = "credit"
	Alert  TransactionType = "alert"
)

// Source records where a transaction record originated.
type Source string

const (
	SourceSMS       Source = "SMS"
	SourceEmail     Source = "Email"
	SourceStatement Source = "Statement"
)

// Category is the spending bucket a transaction is classified into.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryEntertainment Category = "Entertainment"
	CategoryEMIHomeLoan   Category = "EMI Home Loan"
	CategoryEMICarLoan    Category = "EMI Car Loan"
	CategoryUtilities     Category = "Utilities"
	CategoryShopping      Category = "Shopping"
	CategoryInvestment    Category = "Investment"
	CategoryOther         Category = "Other"
)

// InvestmentType refines the Investment category. Empty unless the
// transaction's category is Investment.
type InvestmentType string

const (
	InvestmentSIP        InvestmentType = "SIP"
	InvestmentMutualFund InvestmentType = "Mutual Fund"
	InvestmentStocks     InvestmentType = "Stocks"
	InvestmentPPF        InvestmentType = "PPF"
	InvestmentNPS        InvestmentType = "NPS"
	InvestmentBonds      InvestmentType = "Bonds"
	InvestmentOther      InvestmentType = "Other"
)

// Transaction is a structured financial record derived from a bank
// notification or a statement row. Immutable once created; only deletion
// removes it.
type Transaction struct {
	TransactionID  string          `json:"transactionID"`  // Primary Key (UUID)
	RawMessage     string          `json:"rawMessage"`     // Original narration, immutable
	Source         Source          `json:"source"`         // SMS, Email or Statement
	Timestamp      time.Time       `json:"timestamp"`      // Normalized transaction date
	Category       Category        `json:"category"`       // Not Null
	InvestmentType InvestmentType  `json:"investmentType"` // Set iff Category == Investment
	Summary        string          `json:"summary"`        // Generated one-liner, not user-editable
	Amount         decimal.Decimal `json:"amount"`         // Always positive; direction lives in Type
	Currency       string          `json:"currency"`       // Display symbol, per user locale
	Type           TransactionType `json:"type"`           // debit, credit or alert
	Merchant       string          `json:"merchant"`       // Nullable
	Method         string          `json:"method"`         // Nullable payment method label
	ReferenceNo    string          `json:"referenceNo"`    // Nullable
	Balance        string          `json:"balance"`        // Nullable pre-formatted display string
	CreatedAt      time.Time       `json:"createdAt"`      // Set at persistence time
}
