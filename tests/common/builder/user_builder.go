//go:build unit || e2e

package builder

import (
	"time"

	"github.com/google/uuid"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/user"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/queries"
)

type UserBuilder struct {
	Email        string
	Nickname     string
	PasswordHash string
	Role         string
	VisitCount   int
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:        "test@example.com",
		Nickname:     "한라산러버",
		PasswordHash: "hashed_password",
		Role:         "user",
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithNickname(nickname string) *UserBuilder {
	u.Nickname = nickname
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	nickname, err := user.NewNickname(u.Nickname)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, nickname, u.PasswordHash, role, time.Time{}), nil
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:         uuid.New(),
		Email:      u.Email,
		Nickname:   u.Nickname,
		Role:       u.Role,
		VisitCount: u.VisitCount,
		IsActive:   u.IsActive,
		CreatedAt:  time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}
}
