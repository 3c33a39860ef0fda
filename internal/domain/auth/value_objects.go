package auth

import (
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/user"
)

// Credentials is a syntactically valid login attempt.
type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}

// Registration is the validated input of a sign-up.
type Registration struct {
	Credentials
	nickname user.Nickname
}

func NewRegistration(emailStr, passwordStr, nicknameStr string) (Registration, error) {
	creds, err := NewCredentials(emailStr, passwordStr)
	if err != nil {
		return Registration{}, err
	}

	nickname, err := user.NewNickname(nicknameStr)
	if err != nil {
		return Registration{}, err
	}

	return Registration{Credentials: creds, nickname: nickname}, nil
}

func (r Registration) Nickname() user.Nickname {
	return r.nickname
}
