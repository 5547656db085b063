//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"hotel-booking-core/internal/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// StaffToken mints an HS256 token the staff middleware accepts.
func StaffToken(t *testing.T, cfg config.AuthConfig, subject, role string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.StaffSecret))
	require.NoError(t, err)
	return token
}

// ExpiredStaffToken mints a token that is past its expiry.
func ExpiredStaffToken(t *testing.T, cfg config.AuthConfig, subject string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":  subject,
		"role": "staff",
		"exp":  time.Now().Add(-time.Hour).Unix(),
		"iat":  time.Now().Add(-2 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.StaffSecret))
	require.NoError(t, err)
	return token
}
