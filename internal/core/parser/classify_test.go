package parser_test

import (
	"testing"

	"github.com/explainmymoney/emm_backend/internal/core/domain"
	"github.com/explainmymoney/emm_backend/internal/core/parser"
	"github.com/stretchr/testify/assert"
)

func TestClassify_Categories(t *testing.T) {
	tests := []struct {
		desc     string
		category domain.Category
		invType  domain.InvestmentType
	}{
		{"UPI/swiggy order 8812", domain.CategoryFood, ""},
		{"NETFLIX.COM subscription", domain.CategoryEntertainment, ""},
		{"BESCOM electricity bill pay", domain.CategoryUtilities, ""},
		{"AMAZON PAY INDIA", domain.CategoryShopping, ""},
		{"SIP ICICIPRUMF", domain.CategoryInvestment, domain.InvestmentSIP},
		{"AXIS MUTUAL FUND purchase", domain.CategoryInvestment, domain.InvestmentMutualFund},
		{"ZERODHA BROKING LTD", domain.CategoryInvestment, domain.InvestmentStocks},
		{"PPF deposit SBI", domain.CategoryInvestment, domain.InvestmentPPF},
		{"NPS contribution", domain.CategoryInvestment, domain.InvestmentNPS},
		{"EMI HDFC LTD home loan", domain.CategoryEMIHomeLoan, ""},
		{"EMI car loan payment", domain.CategoryEMICarLoan, ""},
		{"CHEQUE DEPOSIT 110045", domain.CategoryOther, ""},
	}

	for _, tt := range tests {
		cls := parser.Classify(tt.desc)
		assert.Equal(t, tt.category, cls.Category, "desc %q", tt.desc)
		assert.Equal(t, tt.invType, cls.InvestmentType, "desc %q", tt.desc)
	}
}

func TestClassify_Idempotent(t *testing.T) {
	first := parser.Classify("UPI/swiggy order 8812")
	second := parser.Classify("UPI/swiggy order 8812")
	assert.Equal(t, first, second)
}

func TestClassify_RuleOrder(t *testing.T) {
	// Investment rules precede spending rules: "sip" beats "amazon".
	cls := parser.Classify("SIP via amazon pay")
	assert.Equal(t, domain.CategoryInvestment, cls.Category)
	assert.Equal(t, domain.InvestmentSIP, cls.InvestmentType)
}

func TestClassify_MerchantOverrides(t *testing.T) {
	assert.Equal(t, "Public Provident Fund", parser.Classify("PPF deposit").Merchant)
	assert.Equal(t, "NPS Trust", parser.Classify("NPS contribution").Merchant)
}

func TestClassify_EMIRequiresQualifier(t *testing.T) {
	// "emi" alone must not classify as a loan without a home/car qualifier.
	cls := parser.Classify("EMI payment received")
	assert.NotEqual(t, domain.CategoryEMIHomeLoan, cls.Category)
	assert.NotEqual(t, domain.CategoryEMICarLoan, cls.Category)
}

func TestExtractMerchant(t *testing.T) {
	tests := []struct {
		desc string
		want string
	}{
		{"UPI/3456789012/Starbucks", "Starbucks"},
		{"payment to swiggy bangalore", "Swiggy"},
		{"POS RELIANCE FRESH MUMBAI", "POS RELIANCE"},
		{"to", "Unknown"},
		{"", "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parser.ExtractMerchant(tt.desc), "desc %q", tt.desc)
	}
}

func TestDetectMethod(t *testing.T) {
	tests := []struct {
		desc string
		want string
	}{
		{"UPI/3456789012/Starbucks", "UPI"},
		{"paid to merchant@okaxis", "UPI"},
		{"NEFT CR HDFC0001", "NEFT"},
		{"IMPS transfer ref 881", "IMPS"},
		{"RTGS outward", "RTGS"},
		{"ATM WDL 4412", "ATM"},
		{"POS purchase 8891", "Card"},
		{"ECS mandate debit", "Auto-Debit"},
		{"cheque clearing 110045", "Bank Transfer"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parser.DetectMethod(tt.desc), "desc %q", tt.desc)
	}
}
