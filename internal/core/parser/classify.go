package parser

import (
	"strings"

	"github.com/explainmymoney/emm_backend/internal/core/domain"
)

// Classification is the categorization result for one description.
type Classification struct {
	Category       domain.Category
	InvestmentType domain.InvestmentType // set only for Investment
	Merchant       string                // never empty; "Unknown" when nothing matches
}

// categoryRule is one entry in the ordered classification table. A rule
// matches when every allOf keyword is present and, if anyOf is non-empty, at
// least one anyOf keyword is present. All matching is case-insensitive
// substring search on the description.
type categoryRule struct {
	anyOf    []string
	allOf    []string
	category domain.Category
	invType  domain.InvestmentType
	merchant string // fixed merchant, "" means derive from the description
}

// categoryRules is evaluated top to bottom; the first matching rule wins.
// Order matters: investment rules precede spending rules so that e.g. a
// description with both "sip" and "amazon" classifies as Investment/SIP.
var categoryRules = []categoryRule{
	{anyOf: []string{"sip", "systematic investment"}, category: domain.CategoryInvestment, invType: domain.InvestmentSIP},
	{anyOf: []string{"mutual fund", "mf ", "axis", "icici pru", "hdfc mf"}, category: domain.CategoryInvestment, invType: domain.InvestmentMutualFund},
	{anyOf: []string{"zerodha", "groww", "stock", "shares"}, category: domain.CategoryInvestment, invType: domain.InvestmentStocks},
	{anyOf: []string{"ppf", "provident fund"}, category: domain.CategoryInvestment, invType: domain.InvestmentPPF, merchant: "Public Provident Fund"},
	{anyOf: []string{"nps", "pension"}, category: domain.CategoryInvestment, invType: domain.InvestmentNPS, merchant: "NPS Trust"},
	{allOf: []string{"emi"}, anyOf: []string{"home", "housing", "hdfc ltd"}, category: domain.CategoryEMIHomeLoan},
	{allOf: []string{"emi"}, anyOf: []string{"car", "vehicle", "auto"}, category: domain.CategoryEMICarLoan},
	{anyOf: []string{"swiggy", "zomato", "food", "restaurant", "cafe", "starbucks"}, category: domain.CategoryFood},
	{anyOf: []string{"netflix", "spotify", "prime", "hotstar", "movie", "entertainment"}, category: domain.CategoryEntertainment},
	{anyOf: []string{"electricity", "water", "gas", "utility", "bill pay"}, category: domain.CategoryUtilities},
	{anyOf: []string{"amazon", "flipkart", "myntra", "shopping", "retail"}, category: domain.CategoryShopping},
}

var knownMerchants = []string{
	"Swiggy", "Zomato", "Amazon", "Flipkart", "Netflix", "Spotify", "Starbucks",
	"Zerodha", "Groww", "HDFC", "ICICI", "Axis", "SBI", "Kotak",
}

// Classify maps a free-text description to a category, optional investment
// subtype, and merchant. Deterministic and stateless: the same description
// always yields the same result.
func Classify(description string) Classification {
	desc := strings.ToLower(description)

	for _, rule := range categoryRules {
		if !rule.matches(desc) {
			continue
		}
		merchant := rule.merchant
		if merchant == "" {
			merchant = ExtractMerchant(description)
		}
		return Classification{
			Category:       rule.category,
			InvestmentType: rule.invType,
			Merchant:       merchant,
		}
	}

	return Classification{Category: domain.CategoryOther, Merchant: ExtractMerchant(description)}
}

func (r categoryRule) matches(desc string) bool {
	for _, kw := range r.allOf {
		if !strings.Contains(desc, kw) {
			return false
		}
	}
	if len(r.anyOf) == 0 {
		return true
	}
	for _, kw := range r.anyOf {
		if strings.Contains(desc, kw) {
			return true
		}
	}
	return false
}

// ExtractMerchant scans the known-merchant list for a case-insensitive hit;
// failing that, it takes the first two whitespace/slash/hyphen-delimited
// tokens longer than 2 characters, or "Unknown".
func ExtractMerchant(description string) string {
	lower := strings.ToLower(description)
	for _, merchant := range knownMerchants {
		if strings.Contains(lower, strings.ToLower(merchant)) {
			return merchant
		}
	}

	var words []string
	for _, w := range strings.FieldsFunc(description, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '/' || r == '-'
	}) {
		if len(w) > 2 {
			words = append(words, w)
			if len(words) == 2 {
				break
			}
		}
	}
	if len(words) == 0 {
		return "Unknown"
	}
	return strings.Join(words, " ")
}
