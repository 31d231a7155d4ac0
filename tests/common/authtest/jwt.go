//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"delivery-admin/internal/pkg/config"
	"delivery-admin/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.SessionConfig
}

func NewJWTHelper(cfg config.SessionConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

// GenerateToken signs a token for an existing session row. The session itself
// decides whether the token is accepted.
func (h *JWTHelper) GenerateToken(t *testing.T, sessionID, customerID int64) string {
	t.Helper()
	now := time.Now()
	token, err := jwt.NewService(h.cfg.Secret).GenerateToken(sessionID, customerID, "BUYER", now, now.Add(h.cfg.Duration))
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, sessionID, customerID int64) string {
	t.Helper()
	issued := time.Now().Add(-time.Hour)
	token, err := jwt.NewService(h.cfg.Secret).GenerateToken(sessionID, customerID, "BUYER", issued, issued.Add(time.Minute))
	require.NoError(t, err)
	return token
}
