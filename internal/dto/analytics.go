package dto

import "github.com/shopspring/decimal"

// CategoryTotal is one category's slice of total debit spend.
type CategoryTotal struct {
	Name       string          `json:"name"`
	Total      decimal.Decimal `json:"total"`
	Count      int             `json:"count"`
	Percentage float64         `json:"percentage"`
}

// CategoryAnalyticsResponse aggregates debit spend per category.
type CategoryAnalyticsResponse struct {
	TotalSpend decimal.Decimal `json:"totalSpend"`
	Categories []CategoryTotal `json:"categories"`
}

// InvestmentTotal is one investment subtype's share of total investment.
type InvestmentTotal struct {
	Type       string          `json:"type"`
	Total      decimal.Decimal `json:"total"`
	Count      int             `json:"count"`
	Percentage float64         `json:"percentage"`
}

// InvestmentAnalyticsResponse aggregates totals per investment subtype.
type InvestmentAnalyticsResponse struct {
	TotalInvestment decimal.Decimal       `json:"totalInvestment"`
	Investments     []InvestmentTotal     `json:"investments"`
	Transactions    []TransactionResponse `json:"transactions"`
}
