package parser_test

import (
	"testing"

	"github.com/explainmymoney/emm_backend/internal/core/domain"
	"github.com/explainmymoney/emm_backend/internal/core/parser"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFormatAmount_IndianGrouping(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"450.00", "₹450"},
		{"5000", "₹5,000"},
		{"150000", "₹1,50,000"},
		{"12450.50", "₹12,450.5"},
	}

	for _, tt := range tests {
		got := parser.FormatAmount(decimal.RequireFromString(tt.amount), "₹", parser.DefaultLocale)
		assert.Equal(t, tt.want, got, "amount %s", tt.amount)
	}
}

func TestFormatAmount_OtherLocale(t *testing.T) {
	got := parser.FormatAmount(decimal.RequireFromString("150000"), "$", language.MustParse("en-US"))
	assert.Equal(t, "$150,000", got)
}

func TestSummarize_Templates(t *testing.T) {
	tests := []struct {
		name      string
		candidate parser.RawCandidate
		cls       parser.Classification
		want      string
	}{
		{
			name:      "debit",
			candidate: parser.RawCandidate{Amount: decimal.RequireFromString("450.00"), Direction: domain.Debit},
			cls:       parser.Classification{Category: domain.CategoryFood, Merchant: "Starbucks"},
			want:      "You paid ₹450 to Starbucks.",
		},
		{
			name:      "credit",
			candidate: parser.RawCandidate{Amount: decimal.RequireFromString("5000"), Direction: domain.Credit},
			cls:       parser.Classification{Category: domain.CategoryOther, Merchant: "HDFC"},
			want:      "You received ₹5,000 to HDFC.",
		},
		{
			name:      "investment",
			candidate: parser.RawCandidate{Amount: decimal.RequireFromString("10000"), Direction: domain.Debit},
			cls:       parser.Classification{Category: domain.CategoryInvestment, InvestmentType: domain.InvestmentSIP, Merchant: "ICICI"},
			want:      "You invested ₹10,000 in ICICI.",
		},
		{
			name:      "home loan EMI",
			candidate: parser.RawCandidate{Amount: decimal.RequireFromString("25000"), Direction: domain.Debit},
			cls:       parser.Classification{Category: domain.CategoryEMIHomeLoan, Merchant: "HDFC"},
			want:      "Your Home Loan EMI of ₹25,000 was debited.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.Summarize(tt.candidate, tt.cls, "₹", parser.DefaultLocale)
			assert.Equal(t, tt.want, got)
		})
	}
}
