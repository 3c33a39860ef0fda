//go:build unit

package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/user"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/clock"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/jwt"
)

const secret = "test-secret-key-for-jwt-signing"

func TestService_RoundTrip(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC))
	svc := jwt.NewService(secret, 7*24*time.Hour, clk)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, user.RoleAdmin, "한라산러버")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "한라산러버", claims.Nickname)
	assert.Equal(t, jwt.Issuer, claims.Issuer)
	assert.Equal(t, clk.Now().Add(7*24*time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestService_Expired(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC))
	svc := jwt.NewService(secret, time.Hour, clk)

	token, err := svc.GenerateToken(uuid.New(), user.RoleUser, "")
	require.NoError(t, err)

	clk.Add(time.Hour + time.Second)
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestService_Rejects(t *testing.T) {
	svc := jwt.NewService(secret, time.Hour, nil)

	other := jwt.NewService("another-secret-key-entirely", time.Hour, nil)
	foreign, err := other.GenerateToken(uuid.New(), user.RoleUser, "")
	require.NoError(t, err)

	unsigned, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, jwt.Claims{
		UserID: uuid.New(),
		Role:   "admin",
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    jwt.Issuer,
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "signed with another key", token: foreign},
		{name: "alg none", token: unsigned},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token)
			assert.ErrorIs(t, err, jwt.ErrInvalidToken)
		})
	}
}
