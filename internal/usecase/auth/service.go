package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"skill-swap/internal/domain/account"
	"skill-swap/internal/repository"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// Service is the credential side of the identity gateway. Registration also
// writes the initial users/{id} record so the profile exists before the
// first edit.
type Service struct {
	accounts account.Repository
	profiles repository.ProfileRepository
}

func NewService(accounts account.Repository, profiles repository.ProfileRepository) *Service {
	return &Service{accounts: accounts, profiles: profiles}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (account.Account, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	if name == "" || email == "" {
		return account.Account{}, ErrInvalidInput
	}
	if !isValidPassword(in.Password) {
		return account.Account{}, ErrInvalidInput
	}

	exists, err := s.accounts.ExistsByEmail(ctx, email)
	if err != nil {
		return account.Account{}, ErrInternal
	}
	if exists {
		return account.Account{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return account.Account{}, ErrInternal
	}

	a := account.Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.accounts.Create(ctx, a); err != nil {
		exists, exErr := s.accounts.ExistsByEmail(ctx, email)
		if exErr == nil && exists {
			return account.Account{}, ErrEmailAlreadyRegistered
		}
		return account.Account{}, ErrInternal
	}

	if err := s.profiles.Init(ctx, a.ID, name, email); err != nil {
		return account.Account{}, ErrInternal
	}

	return sanitize(a), nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (account.Account, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return account.Account{}, ErrInvalidCredentials
	}

	a, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return account.Account{}, ErrInvalidCredentials
		}
		return account.Account{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(in.Password)); err != nil {
		return account.Account{}, ErrInvalidCredentials
	}

	return sanitize(a), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= 8
}

func sanitize(a account.Account) account.Account {
	a.PasswordHash = ""
	return a
}
