//go:build e2e

package helper

import (
	"testing"
	"time"

	"smartwash/internal/domain/user"
	"smartwash/internal/pkg/config"
	"smartwash/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TokenHelper mints JWTs directly from the test config, so suites can
// authenticate without going through the rate-limited login endpoint.
type TokenHelper struct {
	cfg config.JWTConfig
}

func NewTokenHelper(cfg config.JWTConfig) *TokenHelper {
	return &TokenHelper{cfg: cfg}
}

func (h *TokenHelper) service(t *testing.T, accessDuration time.Duration) *jwt.Service {
	t.Helper()

	refreshDuration, err := time.ParseDuration(h.cfg.RefreshTokenDuration)
	require.NoError(t, err)
	return jwt.NewService(h.cfg.Secret, accessDuration, refreshDuration)
}

func (h *TokenHelper) AccessToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()

	duration, err := time.ParseDuration(h.cfg.AccessTokenDuration)
	require.NoError(t, err)

	token, err := h.service(t, duration).GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *TokenHelper) RefreshToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()

	duration, err := time.ParseDuration(h.cfg.AccessTokenDuration)
	require.NoError(t, err)

	token, err := h.service(t, duration).GenerateRefreshToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *TokenHelper) ExpiredAccessToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()

	token, err := h.service(t, time.Millisecond).GenerateAccessToken(userID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
