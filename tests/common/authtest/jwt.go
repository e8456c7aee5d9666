//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"
	"time"

	"stand-ledger/internal/pkg/config"
	"stand-ledger/internal/pkg/cookie"
	"stand-ledger/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, staffID string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(staffID)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, staffID string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, time.Millisecond).GenerateToken(staffID)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}

// CreateForeignToken is signed with a different secret and must be rejected.
func (h *JWTHelper) CreateForeignToken(t *testing.T, staffID string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret+"-other", time.Hour).GenerateToken(staffID)
	require.NoError(t, err)
	return token
}

// SessionCookie carries a token the way the session layer hands it to browsers.
func SessionCookie(token string) *http.Cookie {
	return &http.Cookie{Name: cookie.StaffSessionCookieName, Value: token}
}
