package parser

import "strings"

// methodRule pairs detection keywords with a payment-method label. Checked in
// order; the first hit wins.
type methodRule struct {
	keywords []string
	label    string
}

var methodRules = []methodRule{
	{keywords: []string{"upi", "@"}, label: "UPI"},
	{keywords: []string{"neft"}, label: "NEFT"},
	{keywords: []string{"imps"}, label: "IMPS"},
	{keywords: []string{"rtgs"}, label: "RTGS"},
	{keywords: []string{"atm"}, label: "ATM"},
	{keywords: []string{"pos", "card"}, label: "Card"},
	{keywords: []string{"auto", "ecs", "nach"}, label: "Auto-Debit"},
}

// DetectMethod maps a description to a payment-method label. Every
// transaction gets a label; the default is "Bank Transfer", not "unknown".
func DetectMethod(description string) string {
	desc := strings.ToLower(description)
	for _, rule := range methodRules {
		for _, kw := range rule.keywords {
			if strings.Contains(desc, kw) {
				return rule.label
			}
		}
	}
	return "Bank Transfer"
}
