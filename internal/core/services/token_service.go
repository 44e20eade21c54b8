package services

import (
	"context"
	"fmt"
	"time"

	"github.com/printkit/pricelist_backend/internal/core/domain"
	portssvc "github.com/printkit/pricelist_backend/internal/core/ports/services"
	"github.com/printkit/pricelist_backend/internal/platform/config"
	"github.com/printkit/pricelist_backend/internal/utils"
)

type tokenService struct {
	cfg *config.Config
	BaseService
}

// NewTokenService creates a new token service.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "failed to sign access token", "user_id", user.UserID)
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, expiresAt, nil
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)
