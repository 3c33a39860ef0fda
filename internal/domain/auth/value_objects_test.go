//go:build unit

package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/auth"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/user"
)

func TestNewRegistration(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		nickname string
		wantErr  error
	}{
		{name: "valid", email: "olle@example.com", password: "password123", nickname: "올레꾼"},
		{name: "bad email", email: "olle", password: "password123", nickname: "olle", wantErr: user.ErrInvalidEmail},
		{name: "short password", email: "olle@example.com", password: "short", nickname: "olle", wantErr: user.ErrPasswordTooWeak},
		{name: "empty nickname", email: "olle@example.com", password: "password123", nickname: "", wantErr: user.ErrInvalidNickname},
		{name: "nickname too long", email: "olle@example.com", password: "password123", nickname: strings.Repeat("가", 31), wantErr: user.ErrInvalidNickname},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := auth.NewRegistration(tt.email, tt.password, tt.nickname)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.email, reg.Email().Value())
			assert.Equal(t, tt.nickname, reg.Nickname().String())
		})
	}
}
