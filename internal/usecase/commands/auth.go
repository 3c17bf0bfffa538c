package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"marina-ops/internal/domain/user"
	reqdto "marina-ops/internal/handler/dto/request"
	"marina-ops/internal/pkg/errs"
	"marina-ops/internal/pkg/jwt"
	"marina-ops/internal/pkg/password"
	"marina-ops/internal/usecase/queries"
	"marina-ops/internal/usecase/shared"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	userView, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(userView.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	accessToken, err := a.jwtService.GenerateAccessToken(userView.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userView.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Profiles().UpdateLastLogin(ctx, tx.DB(), userView.ID); updateErr != nil {
			slog.Warn("failed to update last login", "user_id", userView.ID, "error", updateErr.Error())
		}
		return nil
	})
	if err != nil {
		slog.Warn("transaction failed during login", "user_id", userView.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID: userView.ID,
		TokenPair: &TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	userView, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil || userView == nil {
		return nil, ErrUserNotFound
	}

	if !userView.IsActive {
		return nil, ErrUserInactive
	}

	accessToken, err := a.jwtService.GenerateAccessToken(claims.UserID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	newRefreshToken, err := a.jwtService.GenerateRefreshToken(claims.UserID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.AuthorizedUserView, error) {
	userView, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	if userView == nil {
		return nil, ErrUserNotFound
	}

	if !userView.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return userView, nil
}
