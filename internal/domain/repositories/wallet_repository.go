package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletRepository operates on the per-user stored balance.
type WalletRepository interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
	// Deduct performs the check-and-decrement as one conditional update,
	// so concurrent deductions can never drive the balance negative.
	// Returns ErrNotFound for an unknown user and ErrInsufficientFunds
	// when the balance does not cover the amount; on success returns the
	// new balance.
	Deduct(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)
}
