package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"aeronest.backend/internal/domain/entities"
	domainerrors "aeronest.backend/internal/domain/errors"
	"aeronest.backend/internal/domain/repositories"
	"aeronest.backend/pkg/logger"
	"aeronest.backend/pkg/utils"
	"go.uber.org/zap"
)

// Bounds for the back-office recent orders listing
const (
	defaultRecentOrdersLimit = 10
	maxRecentOrdersLimit     = 100
)

// AdminUsecase handles the back-office business logic
type AdminUsecase struct {
	orderRepo    repositories.OrderRepository
	userRepo     repositories.UserRepository
	referralRepo repositories.ReferralRepository
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(
	orderRepo repositories.OrderRepository,
	userRepo repositories.UserRepository,
	referralRepo repositories.ReferralRepository,
) *AdminUsecase {
	return &AdminUsecase{
		orderRepo:    orderRepo,
		userRepo:     userRepo,
		referralRepo: referralRepo,
	}
}

// UpdateOrderStatus overwrites an order's status. Any of the five known
// statuses is accepted regardless of the current one; dispatchers use
// this to reopen and cancel orders freely.
func (u *AdminUsecase) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, rawStatus string) (*entities.Order, error) {
	status, ok := entities.ParseOrderStatus(rawStatus)
	if !ok {
		return nil, domainerrors.BadRequest("Неизвестный статус заказа")
	}

	order, err := u.orderRepo.UpdateStatus(ctx, orderID, status)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Заказ не найден")
		}
		return nil, err
	}

	logger.Info(ctx, "order status updated",
		zap.String("order_id", orderID.String()),
		zap.String("status", string(status)),
	)
	return order, nil
}

// RecentOrders returns the latest orders with customer and address info.
// rawLimit comes straight from the query string; out-of-range values fall
// back to the default.
func (u *AdminUsecase) RecentOrders(ctx context.Context, rawLimit string) ([]*entities.AdminOrderView, error) {
	limit := utils.ClampLimit(rawLimit, defaultRecentOrdersLimit, maxRecentOrdersLimit)
	return u.orderRepo.ListRecent(ctx, limit)
}

// ConfirmedOrdersCount counts orders awaiting dispatch
func (u *AdminUsecase) ConfirmedOrdersCount(ctx context.Context) (int, error) {
	return u.orderRepo.CountByStatus(ctx, entities.OrderStatusConfirmed)
}

// DashboardStats aggregates the admin dashboard numbers
func (u *AdminUsecase) DashboardStats(ctx context.Context) (*entities.DashboardStats, error) {
	return u.orderRepo.DashboardStats(ctx, time.Now())
}

// ListUsers returns every user with order activity
func (u *AdminUsecase) ListUsers(ctx context.Context) ([]*entities.AdminUserView, error) {
	return u.userRepo.ListWithOrderCounts(ctx)
}

// DeleteUser removes a user from the back office. The acting admin can
// never delete themselves, and ADMIN accounts are not deletable at all.
func (u *AdminUsecase) DeleteUser(ctx context.Context, actorID, targetID uuid.UUID) error {
	if targetID == actorID {
		return domainerrors.BadRequest("Нельзя удалить самого себя")
	}

	target, err := u.userRepo.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("Пользователь не найден")
		}
		return err
	}
	if target.Role == entities.UserRoleAdmin {
		return domainerrors.BadRequest("Нельзя удалить администратора")
	}

	if err := u.userRepo.Delete(ctx, targetID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("Пользователь не найден")
		}
		return err
	}

	logger.Info(ctx, "user deleted",
		zap.String("user_id", targetID.String()),
		zap.String("deleted_by", actorID.String()),
	)
	return nil
}

// ListReferrals returns every referral code with usage stats
func (u *AdminUsecase) ListReferrals(ctx context.Context) ([]*entities.ReferralWithStats, error) {
	return u.referralRepo.ListWithStats(ctx)
}

// CreateReferral mints a referral code for an existing user
func (u *AdminUsecase) CreateReferral(ctx context.Context, input *entities.CreateReferralInput) (*entities.Referral, error) {
	code, ok := entities.NormalizeReferralCode(input.RefCode)
	if !ok {
		return nil, domainerrors.BadRequest("Неверный формат реферального кода")
	}

	if _, err := u.userRepo.GetByID(ctx, input.UserID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Пользователь не найден")
		}
		return nil, err
	}

	var maxUses null.Int64
	if input.MaxUses != nil {
		maxUses = null.Int64From(int64(*input.MaxUses))
	}

	referral := &entities.Referral{
		ID:         utils.GenerateUUIDv7(),
		RefCode:    code,
		UserID:     input.UserID,
		Date:       time.Now(),
		Conditions: null.NewString(input.Conditions, input.Conditions != ""),
		MaxUses:    maxUses,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := u.referralRepo.Create(ctx, referral); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.BadRequest("Реферальный код уже существует")
		}
		return nil, err
	}

	logger.Info(ctx, "referral created",
		zap.String("ref_code", code),
		zap.String("owner_id", input.UserID.String()),
	)
	return referral, nil
}
