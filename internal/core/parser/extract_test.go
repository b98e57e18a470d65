package parser_test

import (
	"testing"
	"time"

	"github.com/explainmymoney/emm_backend/internal/core/domain"
	"github.com/explainmymoney/emm_backend/internal/core/parser"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLine_BankSMS(t *testing.T) {
	line := "Acct XX8901 debited by Rs. 450.00 on 27-Dec-24. Info: UPI/3456789012/Starbucks. Avl Bal: Rs 12,450.50."

	c, ok := parser.ExtractLine(line)
	require.True(t, ok)

	assert.True(t, c.Date.Equal(time.Date(2024, time.December, 27, 0, 0, 0, 0, time.UTC)))
	assert.True(t, c.Amount.Equal(decimal.RequireFromString("450.00")), "got amount %s", c.Amount)
	assert.Equal(t, domain.Debit, c.Direction)
	assert.Equal(t, "3456789012", c.ReferenceNo)
	require.True(t, c.HasBalance)
	assert.True(t, c.Balance.Equal(decimal.RequireFromString("12450.50")), "got balance %s", c.Balance)
	assert.Contains(t, c.Description, "Starbucks")
	assert.True(t, c.IsValid())
}

func TestExtractLine_AccountSuffixNotMistakenForAmount(t *testing.T) {
	// The account suffix digits must never win over the real amount.
	c, ok := parser.ExtractLine("A/c XX8901 debited Rs.1,200.00 on 05-01-2025 at AMAZON")
	require.True(t, ok)
	assert.True(t, c.Amount.Equal(decimal.RequireFromString("1200.00")), "got amount %s", c.Amount)
}

func TestExtractLine_CreditSignal(t *testing.T) {
	c, ok := parser.ExtractLine("Rs. 5,000.00 credited to A/c XX1234 on 02/01/2025 by NEFT")
	require.True(t, ok)
	assert.Equal(t, domain.Credit, c.Direction)
	assert.True(t, c.Amount.Equal(decimal.RequireFromString("5000.00")))
}

func TestExtractLine_NoDateToken(t *testing.T) {
	_, ok := parser.ExtractLine("Your OTP is 482910. Do not share it with anyone.")
	assert.False(t, ok)
}

func TestExtractLine_NoAmount(t *testing.T) {
	_, ok := parser.ExtractLine("Statement for 27-12-2024 is ready")
	assert.False(t, ok)
}

func TestExtractLine_BadDateYieldsGateRejectedCandidate(t *testing.T) {
	c, ok := parser.ExtractLine("Rs. 450.00 debited on 31-02-2024 at SWIGGY")
	require.True(t, ok)
	assert.True(t, c.Date.IsZero())
	assert.False(t, c.IsValid())
}

func TestExtractLine_LastAmountTakenAsBalance(t *testing.T) {
	// With no column boundaries the last amount on the line is assumed to be
	// the running balance. A line carrying fee + principal + balance therefore
	// reads the middle figure as neither amount nor balance. This documents
	// the heuristic's known failure mode on multi-amount lines.
	line := "01-06-2024 LOAN PAYMENT fee 25.00 principal 9,975.00 50,000.00"

	c, ok := parser.ExtractLine(line)
	require.True(t, ok)
	assert.True(t, c.Amount.Equal(decimal.RequireFromString("25.00")), "first amount wins: got %s", c.Amount)
	require.True(t, c.HasBalance)
	assert.True(t, c.Balance.Equal(decimal.RequireFromString("50000.00")), "last amount read as balance: got %s", c.Balance)
}
