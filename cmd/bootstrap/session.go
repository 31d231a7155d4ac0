package bootstrap

import (
	"fmt"

	"delivery-admin/internal/pkg/config"
	"delivery-admin/internal/pkg/jwt"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(NewTokenService),
)

// NewTokenService signs session tokens. Tokens expire with their session, so
// a non-positive SESSION_DURATION would mint tokens that are dead on arrival.
func NewTokenService(cfg config.Config) (*jwt.Service, error) {
	if cfg.Session.Duration <= 0 {
		return nil, fmt.Errorf("invalid SESSION_DURATION %s: must be positive", cfg.Session.Duration)
	}
	if len(cfg.Session.Secret) < 16 {
		return nil, fmt.Errorf("SESSION_SECRET must be at least 16 bytes")
	}
	return jwt.NewService(cfg.Session.Secret), nil
}
