package dto

import (
	"time"

	"github.com/explainmymoney/emm_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the payload for manually creating a transaction.
// Summary is optional; when omitted the service derives one from the
// classified fields.
type CreateTransactionRequest struct {
	RawMessage     string          `json:"rawMessage" binding:"required"`
	Source         string          `json:"source" binding:"required,oneof=SMS Email Statement"`
	Timestamp      time.Time       `json:"timestamp" binding:"required"`
	Category       string          `json:"category" binding:"required"`
	InvestmentType string          `json:"investmentType"`
	Summary        string          `json:"summary"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Currency       string          `json:"currency"`
	Type           string          `json:"type" binding:"required,oneof=debit credit alert"`
	Merchant       string          `json:"merchant"`
	Method         string          `json:"method"`
	ReferenceNo    string          `json:"referenceNo"`
	Balance        string          `json:"balance"`
}

// TransactionResponse is the API representation of a transaction.
type TransactionResponse struct {
	TransactionID  string          `json:"transactionID"`
	RawMessage     string          `json:"rawMessage"`
	Source         string          `json:"source"`
	Timestamp      time.Time       `json:"timestamp"`
	Category       string          `json:"category"`
	InvestmentType string          `json:"investmentType,omitempty"`
	Summary        string          `json:"summary"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	Type           string          `json:"type"`
	Merchant       string          `json:"merchant,omitempty"`
	Method         string          `json:"method,omitempty"`
	ReferenceNo    string          `json:"referenceNo,omitempty"`
	Balance        string          `json:"balance,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ListTransactionsResponse wraps a transaction collection.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse maps a domain transaction to its API shape.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:  t.TransactionID,
		RawMessage:     t.RawMessage,
		Source:         string(t.Source),
		Timestamp:      t.Timestamp,
		Category:       string(t.Category),
		InvestmentType: string(t.InvestmentType),
		Summary:        t.Summary,
		Amount:         t.Amount,
		Currency:       t.Currency,
		Type:           string(t.Type),
		Merchant:       t.Merchant,
		Method:         t.Method,
		ReferenceNo:    t.ReferenceNo,
		Balance:        t.Balance,
		CreatedAt:      t.CreatedAt,
	}
}

// ToTransactionResponses maps a slice of domain transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i := range txns {
		out[i] = ToTransactionResponse(&txns[i])
	}
	return out
}
