package services

import (
	"context"

	"github.com/explainmymoney/emm_backend/internal/core/domain"
	"github.com/explainmymoney/emm_backend/internal/dto"
)

// UserSvcFacade defines user registration, authentication and settings.
type UserSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Authenticate verifies credentials and returns a signed JWT.
	Authenticate(ctx context.Context, username, password string) (string, *domain.User, error)

	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// UpdateSettings changes the user's country/currency display settings.
	UpdateSettings(ctx context.Context, userID string, req dto.UpdateUserSettingsRequest) (*domain.User, error)
}
