package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-diary-keeper/internal/config"
	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/utils"
	"github.com/MKhiriev/go-diary-keeper/models"
)

// authService issues and verifies the HMAC-signed bearer tokens that scope
// every diary request to a user.
type authService struct {
	// tokenSignKey signs and verifies tokens.
	tokenSignKey string
	// tokenIssuer is the "iss" claim; tokens from another issuer are rejected.
	tokenIssuer string
	// tokenDuration is the lifetime of a new token.
	tokenDuration time.Duration

	logger *logger.Logger
}

func NewAuthService(cfg config.ServerApp, logger *logger.Logger) (AuthService, error) {
	if cfg.TokenSignKey == "" || cfg.TokenIssuer == "" {
		return nil, ErrInvalidTokenSettings
	}

	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}, nil
}

// CreateToken issues a token for userID that expires after the configured
// duration.
func (a *authService) CreateToken(ctx context.Context, userID int64) (models.Token, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		return models.Token{}, ErrValidationNoUserID
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, userID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates the signature, issuer and expiry of tokenString and
// returns the parsed token. Any failure is reported as
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("token rejected")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}
