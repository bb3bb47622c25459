package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	domainerrors "aeronest.backend/internal/domain/errors"
	"aeronest.backend/internal/domain/repositories"
)

// WalletUsecase handles wallet balance business logic
type WalletUsecase struct {
	walletRepo repositories.WalletRepository
}

// NewWalletUsecase creates a new wallet usecase
func NewWalletUsecase(walletRepo repositories.WalletRepository) *WalletUsecase {
	return &WalletUsecase{walletRepo: walletRepo}
}

// GetBalance returns the user's current balance
func (u *WalletUsecase) GetBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	return u.walletRepo.GetBalance(ctx, userID)
}

// Deduct withdraws amount from the user's balance and returns the new
// balance. The repository performs the check-and-decrement atomically.
func (u *WalletUsecase) Deduct(ctx context.Context, userID uuid.UUID, amount float64) (decimal.Decimal, error) {
	value := decimal.NewFromFloat(amount)
	if value.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, domainerrors.BadRequest("Сумма списания должна быть положительной")
	}

	newBalance, err := u.walletRepo.Deduct(ctx, userID, value)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInsufficientFunds) {
			return decimal.Zero, domainerrors.InsufficientFunds("Недостаточно средств")
		}
		return decimal.Zero, err
	}
	return newBalance, nil
}
