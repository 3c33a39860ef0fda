//go:build unit

package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/password"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPasswordWithCost("jeju-olle-2025", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NoError(t, password.ComparePassword(hash, "jeju-olle-2025"))
	assert.ErrorIs(t, password.ComparePassword(hash, "jeju-olle-2024"), password.ErrComparisonFailed)
	assert.ErrorIs(t, password.ComparePassword("", "x"), password.ErrInvalidPassword)

	_, err = password.HashPassword("")
	assert.ErrorIs(t, err, password.ErrInvalidPassword)
}

func TestHashPassword_DefaultCost(t *testing.T) {
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, password.DefaultCost, cost)
}
