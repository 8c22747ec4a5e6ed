//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"station-booking/internal/pkg/config"
	"station-booking/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the way the identity provider would, signed with the test secret.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID, email string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, h.cfg.Issuer, duration)
	token, err := service.GenerateToken(userID, email)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID, email string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Issuer, -time.Minute)
	token, err := service.GenerateToken(userID, email)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateForeignToken(t *testing.T, userID, email string) string {
	t.Helper()
	service := jwt.NewService("someone-elses-secret", h.cfg.Issuer, time.Hour)
	token, err := service.GenerateToken(userID, email)
	require.NoError(t, err)
	return token
}
