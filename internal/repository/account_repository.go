package repository

import (
	"context"
	"errors"

	"skill-swap/internal/database"
	"skill-swap/internal/domain/account"

	"github.com/jackc/pgx/v5"
)

type PostgresAccountRepository struct {
	db database.DB
}

func NewPostgresAccountRepository(db database.DB) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

func (r *PostgresAccountRepository) Create(ctx context.Context, a account.Account) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO accounts (id, email, password_hash) VALUES ($1, $2, $3)`,
		a.ID, a.Email, a.PasswordHash,
	)
	return err
}

func (r *PostgresAccountRepository) GetByID(ctx context.Context, id string) (account.Account, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, email, password_hash, created_at FROM accounts WHERE id = $1`,
		id,
	)
	return scanAccount(row)
}

func (r *PostgresAccountRepository) GetByEmail(ctx context.Context, email string) (account.Account, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, email, password_hash, created_at FROM accounts WHERE email = $1`,
		email,
	)
	return scanAccount(row)
}

func (r *PostgresAccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM accounts WHERE email = $1)`,
		email,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func scanAccount(row database.Row) (account.Account, error) {
	var a account.Account
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Account{}, account.ErrNotFound
		}
		return account.Account{}, err
	}
	return a, nil
}

var _ account.Repository = (*PostgresAccountRepository)(nil)
