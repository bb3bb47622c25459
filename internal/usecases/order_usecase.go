package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"aeronest.backend/internal/domain/entities"
	domainerrors "aeronest.backend/internal/domain/errors"
	"aeronest.backend/internal/domain/repositories"
	"aeronest.backend/pkg/logger"
	"aeronest.backend/pkg/utils"
	"go.uber.org/zap"
)

// myOrdersLimit caps the personal order history listing
const myOrdersLimit = 50

// autoAddressTitle names addresses created implicitly during checkout
const autoAddressTitle = "Адрес доставки"

// OrderUsecase handles order placement and tracking business logic
type OrderUsecase struct {
	orderRepo   repositories.OrderRepository
	addressRepo repositories.AddressRepository
	walletRepo  repositories.WalletRepository
	uow         repositories.UnitOfWork
}

// NewOrderUsecase creates a new order usecase
func NewOrderUsecase(
	orderRepo repositories.OrderRepository,
	addressRepo repositories.AddressRepository,
	walletRepo repositories.WalletRepository,
	uow repositories.UnitOfWork,
) *OrderUsecase {
	return &OrderUsecase{
		orderRepo:   orderRepo,
		addressRepo: addressRepo,
		walletRepo:  walletRepo,
		uow:         uow,
	}
}

// Create places an order. Address resolution, the wallet deduction and
// the order insert run in one transaction; a failed deduction leaves no
// order and a failed insert restores the balance.
func (u *OrderUsecase) Create(ctx context.Context, userID uuid.UUID, input *entities.CreateOrderInput) (uuid.UUID, error) {
	if len(input.Items) == 0 {
		return uuid.Nil, domainerrors.BadRequest("Заказ не содержит товаров")
	}
	amount := decimal.NewFromFloat(input.Amount)
	if amount.LessThanOrEqual(decimal.Zero) {
		return uuid.Nil, domainerrors.BadRequest("Сумма заказа должна быть положительной")
	}

	order := &entities.Order{
		ID:        utils.GenerateUUIDv7(),
		UserID:    userID,
		Amount:    amount,
		Status:    entities.OrderStatusConfirmed,
		Items:     input.Items,
		CreatedAt: time.Now(),
	}

	err := u.uow.Do(ctx, func(ctx context.Context) error {
		addressID, err := u.resolveAddress(ctx, userID, input)
		if err != nil {
			return err
		}
		order.AddressID = &addressID

		if _, err := u.walletRepo.Deduct(ctx, userID, amount); err != nil {
			if errors.Is(err, domainerrors.ErrInsufficientFunds) {
				return domainerrors.InsufficientFunds("Недостаточно средств")
			}
			return err
		}

		return u.orderRepo.Create(ctx, order)
	})
	if err != nil {
		return uuid.Nil, err
	}

	logger.Info(ctx, "order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("amount", amount.StringFixed(2)),
	)
	return order.ID, nil
}

// My returns the user's latest orders
func (u *OrderUsecase) My(ctx context.Context, userID uuid.UUID) ([]*entities.OrderSummary, error) {
	return u.orderRepo.ListByUser(ctx, userID, myOrdersLimit)
}

// Active returns the user's current undelivered order, or nil
func (u *OrderUsecase) Active(ctx context.Context, userID uuid.UUID) (*entities.OrderSummary, error) {
	return u.orderRepo.ActiveByUser(ctx, userID)
}

// resolveAddress finds the delivery address for the order: the explicit
// addressId when given, else an existing address with the same street,
// else a new row created on the fly.
func (u *OrderUsecase) resolveAddress(ctx context.Context, userID uuid.UUID, input *entities.CreateOrderInput) (uuid.UUID, error) {
	if input.AddressID != nil {
		addr, err := u.addressRepo.GetByIDForUser(ctx, *input.AddressID, userID)
		if err == nil {
			return addr.ID, nil
		}
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return uuid.Nil, err
		}
	}

	addr, err := u.addressRepo.FindByUserAndStreet(ctx, userID, input.Address)
	if err == nil {
		return addr.ID, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return uuid.Nil, err
	}

	created := &entities.DeliveryAddress{
		ID:        utils.GenerateUUIDv7(),
		UserID:    userID,
		Title:     autoAddressTitle,
		Street:    input.Address,
		Coords:    "[]",
		CreatedAt: time.Now(),
	}
	if err := u.addressRepo.Create(ctx, created); err != nil {
		return uuid.Nil, err
	}
	return created.ID, nil
}
