package account

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("account not found")

// Account is the identity record: credentials only, no profile data.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type Repository interface {
	Create(ctx context.Context, a Account) error
	GetByID(ctx context.Context, id string) (Account, error)
	GetByEmail(ctx context.Context, email string) (Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
