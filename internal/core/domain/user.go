package domain

import "time"

// User represents an application user together with the locale settings that
// drive currency display in generated summaries.
type User struct {
	UserID         string    `json:"userID"`   // Primary Key (UUID)
	Username       string    `json:"username"` // Unique
	PasswordHash   string    `json:"-"`        // bcrypt hash, never serialized
	Country        string    `json:"country"`
	Currency       string    `json:"currency"`       // ISO code, e.g. "INR"
	CurrencySymbol string    `json:"currencySymbol"` // Display symbol, e.g. "₹"
	CreatedAt      time.Time `json:"createdAt"`
	LastUpdatedAt  time.Time `json:"lastUpdatedAt"`
}
