package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/user"
	reqdto "github.com/Yanolja-Travel-Innovation-2025/backend/internal/handler/dto/request"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/clock"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/errs"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/jwt"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/password"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/queries"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/shared"
)

var (
	ErrTokenGeneration = errs.New("token generation failed")
)

type AuthResult struct {
	UserID      uuid.UUID
	Nickname    string
	AccessToken string
	ExpiresIn   time.Duration
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error) {
	registration, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	existing, _, err := a.readStore.FindByEmail(ctx, registration.Email().Value())
	switch {
	case err == nil && existing != nil:
		return nil, errs.ErrEmailAlreadyExists
	case err != nil && !infra.IsKind(err, infra.KindNotFound):
		return nil, err
	}

	hash, err := password.HashPassword(registration.Password().Value())
	if err != nil {
		return nil, err
	}

	u := user.NewUser(registration.Email(), registration.Nickname(), hash, user.RoleUser, a.clock.Now())

	var userID uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Users().Create(ctx, tx.DB(), u)
		if createErr != nil {
			return createErr
		}
		userID = id
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrEmailAlreadyExists
		}
		return nil, err
	}

	return a.issue(userID, u.Role(), u.Nickname().String())
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	userView, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a password mismatch to prevent user enumeration
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	if !userView.IsActive {
		return nil, errs.ErrUserInactive
	}

	role, err := user.NewRole(userView.Role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	return a.issue(userView.ID, role, userView.Nickname)
}

func (a *authCommandsImpl) issue(userID uuid.UUID, role user.Role, nickname string) (*AuthResult, error) {
	token, err := a.jwtService.GenerateToken(userID, role, nickname)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &AuthResult{
		UserID:      userID,
		Nickname:    nickname,
		AccessToken: token,
		ExpiresIn:   a.jwtService.TokenDuration(),
	}, nil
}
