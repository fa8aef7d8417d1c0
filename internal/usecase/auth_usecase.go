package usecase

import (
	"context"
	"errors"

	"skill-swap/internal/domain/account"
	"skill-swap/internal/pkg/jwt"
	"skill-swap/internal/repository"
	ucauth "skill-swap/internal/usecase/auth"
)

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrInternal            = errors.New("internal error")
)

type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) (account.Account, string, string, error)
	Login(ctx context.Context, in ucauth.LoginInput) (account.Account, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type Auth struct {
	authSvc  *ucauth.Service
	accounts account.Repository
	cache    DirectoryCache
	jwt      jwt.Service
}

func NewAuthUsecase(accounts account.Repository, profiles repository.ProfileRepository, cache DirectoryCache, jwtSvc jwt.Service) *Auth {
	return &Auth{
		authSvc:  ucauth.NewService(accounts, profiles),
		accounts: accounts,
		cache:    cache,
		jwt:      jwtSvc,
	}
}

// Register creates the account and the initial users/{id} record. The record
// write makes the new member listable, so the directory snapshot is
// invalidated like any other profile write.
func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) (account.Account, string, string, error) {
	a, err := u.authSvc.Register(ctx, in)
	if err != nil {
		return account.Account{}, "", "", err
	}
	if u.cache != nil {
		_ = u.cache.Delete(ctx, directoryCacheKey)
	}
	return u.withTokens(a)
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (account.Account, string, string, error) {
	a, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return account.Account{}, "", "", err
	}
	return u.withTokens(a)
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	a, err := u.accounts.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return "", "", ErrInvalidRefreshToken
		}
		return "", "", ErrInternal
	}

	access, err := u.jwt.GenerateAccessToken(a.ID, a.Email)
	if err != nil {
		return "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(a.ID)
	if err != nil {
		return "", "", ErrInternal
	}
	return access, refresh, nil
}

func (u *Auth) withTokens(a account.Account) (account.Account, string, string, error) {
	access, err := u.jwt.GenerateAccessToken(a.ID, a.Email)
	if err != nil {
		return account.Account{}, "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(a.ID)
	if err != nil {
		return account.Account{}, "", "", ErrInternal
	}
	return a, access, refresh, nil
}
