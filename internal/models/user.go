package models

import "time"

// User is the database representation of an application user.
type User struct {
	UserID         string    `db:"user_id"`
	Username       string    `db:"username"`
	PasswordHash   string    `db:"password_hash"`
	Country        string    `db:"country"`
	Currency       string    `db:"currency"`
	CurrencySymbol string    `db:"currency_symbol"`
	CreatedAt      time.Time `db:"created_at"`
	LastUpdatedAt  time.Time `db:"last_updated_at"`
}
