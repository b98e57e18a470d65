package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the database representation of a categorized transaction
// record. Enrichment fields that the parser may not produce are nullable.
type Transaction struct {
	TransactionID  string          `db:"transaction_id"`
	RawMessage     string          `db:"raw_message"`
	Source         string          `db:"source"`
	Timestamp      time.Time       `db:"timestamp"`
	Category       string          `db:"category"`
	InvestmentType sql.NullString  `db:"investment_type"`
	Summary        string          `db:"summary"`
	Amount         decimal.Decimal `db:"amount"`
	Currency       string          `db:"currency"`
	Type           string          `db:"type"`
	Merchant       sql.NullString  `db:"merchant"`
	Method         sql.NullString  `db:"method"`
	ReferenceNo    sql.NullString  `db:"reference_no"`
	Balance        sql.NullString  `db:"balance"`
	CreatedAt      time.Time       `db:"created_at"`
}
