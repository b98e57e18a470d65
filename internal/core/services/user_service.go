package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/explainmymoney/emm_backend/internal/apperrors"
	"github.com/explainmymoney/emm_backend/internal/core/domain"
	portsrepo "github.com/explainmymoney/emm_backend/internal/core/ports/repositories"
	portssvc "github.com/explainmymoney/emm_backend/internal/core/ports/services"
	"github.com/explainmymoney/emm_backend/internal/dto"
	"github.com/explainmymoney/emm_backend/internal/middleware"
	"github.com/explainmymoney/emm_backend/internal/utils"
	"github.com/google/uuid"
)

// JWTConfig carries the signing parameters for issued tokens.
type JWTConfig struct {
	Secret         string
	ExpiryDuration time.Duration
	Issuer         string
}

// userServiceImpl implements the UserSvcFacade interface.
type userServiceImpl struct {
	userRepo portsrepo.UserRepositoryFacade
	jwtCfg   JWTConfig
}

// NewUserService creates a new user service.
func NewUserService(repo portsrepo.UserRepositoryFacade, jwtCfg JWTConfig) portssvc.UserSvcFacade {
	return &userServiceImpl{userRepo: repo, jwtCfg: jwtCfg}
}

// Ensure userServiceImpl implements the UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userServiceImpl)(nil)

// Register creates a new user with default Indian locale settings.
func (s *userServiceImpl) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if existing, err := s.userRepo.FindUserByUsername(ctx, req.Username); err == nil && existing != nil {
		return nil, fmt.Errorf("username %q already taken: %w", req.Username, apperrors.ErrDuplicate)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing username: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:         uuid.NewString(),
		Username:       req.Username,
		PasswordHash:   hash,
		Country:        "IN",
		Currency:       "INR",
		CurrencySymbol: "₹",
		CreatedAt:      now,
		LastUpdatedAt:  now,
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	logger.Info("User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

// Authenticate verifies credentials and returns a signed JWT with the user.
func (s *userServiceImpl) Authenticate(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrValidation)
		}
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrValidation)
	}

	token, err := utils.GenerateJWT(user.UserID, s.jwtCfg.Secret, s.jwtCfg.ExpiryDuration, s.jwtCfg.Issuer)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, user, nil
}

func (s *userServiceImpl) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// UpdateSettings changes the country/currency display settings that drive
// generated summary formatting.
func (s *userServiceImpl) UpdateSettings(ctx context.Context, userID string, req dto.UpdateUserSettingsRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Country = req.Country
	user.Currency = req.Currency
	user.CurrencySymbol = req.CurrencySymbol
	user.LastUpdatedAt = time.Now()

	if err := s.userRepo.UpdateUserSettings(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user settings: %w", err)
	}
	return user, nil
}
