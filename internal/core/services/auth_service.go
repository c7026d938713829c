package services

import (
	"context"
	"log/slog"

	"github.com/RAVEN850972/cam/internal/apperrors"
	"github.com/RAVEN850972/cam/internal/platform/config"
	"github.com/RAVEN850972/cam/internal/utils"
)

// AuthService authenticates the single admin account and issues JWTs.
type AuthService struct {
	BaseService
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

// Login verifies admin credentials against the configured bcrypt hash and
// returns a signed access token. Wrong credentials always answer the same
// way, so the response does not reveal which part failed.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if s.cfg.AdminPasswordHash == "" {
		s.LogError(ctx, apperrors.ErrForbidden, "Login rejected: admin password hash not configured")
		return "", apperrors.NewAppError(403, "login is not configured", apperrors.ErrForbidden)
	}

	if username != s.cfg.AdminUsername || !utils.CheckPasswordHash(password, s.cfg.AdminPasswordHash) {
		s.LogInfo(ctx, "Login attempt rejected", slog.String("username", username))
		return "", apperrors.NewAppError(401, "invalid credentials", apperrors.ErrForbidden)
	}

	token, err := utils.GenerateJWT(s.cfg.AdminUsername, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token")
		return "", apperrors.NewAppError(500, "failed to issue token", err)
	}

	s.LogInfo(ctx, "Admin logged in", slog.String("username", username))
	return token, nil
}
