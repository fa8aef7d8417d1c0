package dto

import (
	"time"

	"skill-swap/internal/domain/account"
)

type AccountResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

func NewAccountResponse(a account.Account) AccountResponse {
	return AccountResponse{ID: a.ID, Email: a.Email, CreatedAt: a.CreatedAt}
}
