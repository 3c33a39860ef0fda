package usecase

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator.go -package=usecasemock

import (
	"github.com/google/uuid"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/user"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/jwt"
)

// Identity is what a verified access token says about its bearer.
type Identity struct {
	UserID   uuid.UUID
	Role     user.Role
	Nickname string
}

type TokenValidator interface {
	ValidateToken(tokenString string) (Identity, error)
}

type jwtTokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &jwtTokenValidator{jwtService: jwtService}
}

// ValidateToken rejects tokens whose role claim is not a known role.
func (v *jwtTokenValidator) ValidateToken(tokenString string) (Identity, error) {
	claims, err := v.jwtService.ValidateToken(tokenString)
	if err != nil {
		return Identity{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return Identity{}, jwt.ErrInvalidToken
	}
	if claims.UserID == uuid.Nil {
		return Identity{}, jwt.ErrInvalidToken
	}

	return Identity{UserID: claims.UserID, Role: role, Nickname: claims.Nickname}, nil
}
