package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	domainerrors "aeronest.backend/internal/domain/errors"
	"aeronest.backend/internal/infrastructure/models"
)

// WalletRepository implements balance operations over the users table
type WalletRepository struct {
	db *gorm.DB
}

// NewWalletRepository creates a new wallet repository
func NewWalletRepository(db *gorm.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

// GetBalance returns the user's current balance
func (r *WalletRepository) GetBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	var m models.User
	err := GetDB(ctx, r.db).WithContext(ctx).
		Select("id", "balance").
		Where("id = ?", userID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, domainerrors.ErrNotFound
		}
		return decimal.Zero, err
	}
	return m.Balance, nil
}

// Deduct decrements the balance with the sufficiency check folded into the
// UPDATE itself. Two concurrent deductions serialize on the row write, so
// the second one re-evaluates the predicate against the committed balance
// and fails cleanly instead of overdrawing.
func (r *WalletRepository) Deduct(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, domainerrors.ErrInvalidInput
	}

	db := GetDB(ctx, r.db).WithContext(ctx)

	result := db.Model(&models.User{}).
		Where("id = ? AND balance >= ?", userID, amount).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance - ?", amount),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return decimal.Zero, result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
			return decimal.Zero, err
		}
		if count == 0 {
			return decimal.Zero, domainerrors.ErrNotFound
		}
		return decimal.Zero, domainerrors.ErrInsufficientFunds
	}

	return r.GetBalance(ctx, userID)
}
