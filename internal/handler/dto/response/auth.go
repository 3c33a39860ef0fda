package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/commands"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/queries"
)

type AuthResponse struct {
	UserID      uuid.UUID `json:"userId"`
	Nickname    string    `json:"nickname"`
	AccessToken string    `json:"accessToken"`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expiresIn"`
}

func FromAuthResult(r *commands.AuthResult) *AuthResponse {
	return &AuthResponse{
		UserID:      r.UserID,
		Nickname:    r.Nickname,
		AccessToken: r.AccessToken,
		ExpiresIn:   int64(r.ExpiresIn / time.Second),
	}
}

type UserResponse struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	Nickname   string     `json:"nickname"`
	Role       string     `json:"role"`
	VisitCount int        `json:"visitCount"`
	LastVisit  *time.Time `json:"lastVisit,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func FromAuthorizedUserView(v *queries.AuthorizedUserView) (*UserResponse, error) {
	r, err := mapTo[UserResponse](v)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
