package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	portssvc "github.com/SscSPs/taxbooks_app/internal/core/ports/services"
	"github.com/SscSPs/taxbooks_app/internal/platform/config"
	"github.com/SscSPs/taxbooks_app/internal/utils"
)

// tokenService issues HS256 access tokens carrying the user's role.
type tokenService struct {
	BaseService
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	token, expiresAt, err := utils.GenerateJWT(user.ID, string(user.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.ID))
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}
