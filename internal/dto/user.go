package dto

import (
	"time"

	"github.com/explainmymoney/emm_backend/internal/core/domain"
)

// RegisterRequest is the payload for creating a new user.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the signed JWT for an authenticated session.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateUserSettingsRequest changes the locale/currency display settings used
// for generated summaries.
type UpdateUserSettingsRequest struct {
	Country        string `json:"country" binding:"required,min=2,max=3"`
	Currency       string `json:"currency" binding:"required,len=3"`
	CurrencySymbol string `json:"currencySymbol" binding:"required,min=1,max=5"`
}

// UserResponse is the API representation of a user.
type UserResponse struct {
	UserID         string    `json:"userID"`
	Username       string    `json:"username"`
	Country        string    `json:"country"`
	Currency       string    `json:"currency"`
	CurrencySymbol string    `json:"currencySymbol"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToUserResponse maps a domain user to its API shape.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:         u.UserID,
		Username:       u.Username,
		Country:        u.Country,
		Currency:       u.Currency,
		CurrencySymbol: u.CurrencySymbol,
		CreatedAt:      u.CreatedAt,
	}
}
