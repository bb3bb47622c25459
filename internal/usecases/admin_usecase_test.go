package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"aeronest.backend/internal/domain/entities"
	domainerrors "aeronest.backend/internal/domain/errors"
	"aeronest.backend/internal/usecases"
)

func newAdminUsecase() (*usecases.AdminUsecase, *MockOrderRepository, *MockUserRepository, *MockReferralRepository) {
	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	referralRepo := new(MockReferralRepository)
	return usecases.NewAdminUsecase(orderRepo, userRepo, referralRepo), orderRepo, userRepo, referralRepo
}

func TestAdminUsecase_UpdateOrderStatus(t *testing.T) {
	uc, orderRepo, _, _ := newAdminUsecase()
	orderID := uuid.New()

	orderRepo.On("UpdateStatus", mock.Anything, orderID, entities.OrderStatusInFlight).
		Return(&entities.Order{ID: orderID, Status: entities.OrderStatusInFlight}, nil)

	// lowercase input is accepted
	order, err := uc.UpdateOrderStatus(context.Background(), orderID, "in_flight")
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusInFlight, order.Status)
}

func TestAdminUsecase_UpdateOrderStatus_Unknown(t *testing.T) {
	uc, orderRepo, _, _ := newAdminUsecase()

	_, err := uc.UpdateOrderStatus(context.Background(), uuid.New(), "TELEPORTED")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminUsecase_UpdateOrderStatus_NotFound(t *testing.T) {
	uc, orderRepo, _, _ := newAdminUsecase()
	orderID := uuid.New()

	orderRepo.On("UpdateStatus", mock.Anything, orderID, entities.OrderStatusCancelled).
		Return(nil, domainerrors.ErrNotFound)

	_, err := uc.UpdateOrderStatus(context.Background(), orderID, "CANCELLED")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAdminUsecase_DeleteUser(t *testing.T) {
	uc, _, userRepo, _ := newAdminUsecase()
	actorID := uuid.New()
	targetID := uuid.New()

	userRepo.On("GetByID", mock.Anything, targetID).
		Return(&entities.User{ID: targetID, Role: entities.UserRoleUser}, nil)
	userRepo.On("Delete", mock.Anything, targetID).Return(nil)

	require.NoError(t, uc.DeleteUser(context.Background(), actorID, targetID))
	userRepo.AssertCalled(t, "Delete", mock.Anything, targetID)
}

func TestAdminUsecase_DeleteUser_SelfRejected(t *testing.T) {
	uc, _, userRepo, _ := newAdminUsecase()
	actorID := uuid.New()

	err := uc.DeleteUser(context.Background(), actorID, actorID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestAdminUsecase_DeleteUser_AdminRejected(t *testing.T) {
	uc, _, userRepo, _ := newAdminUsecase()
	targetID := uuid.New()

	userRepo.On("GetByID", mock.Anything, targetID).
		Return(&entities.User{ID: targetID, Role: entities.UserRoleAdmin}, nil)

	err := uc.DeleteUser(context.Background(), uuid.New(), targetID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestAdminUsecase_DeleteUser_NotFound(t *testing.T) {
	uc, _, userRepo, _ := newAdminUsecase()
	targetID := uuid.New()

	userRepo.On("GetByID", mock.Anything, targetID).
		Return(nil, domainerrors.ErrNotFound)

	err := uc.DeleteUser(context.Background(), uuid.New(), targetID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAdminUsecase_CreateReferral(t *testing.T) {
	uc, _, userRepo, referralRepo := newAdminUsecase()
	ownerID := uuid.New()
	maxUses := 5

	userRepo.On("GetByID", mock.Anything, ownerID).
		Return(&entities.User{ID: ownerID, Email: "owner@mail.com"}, nil)
	referralRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *entities.Referral) bool {
		return r.RefCode == "SUMMER25" && r.UserID == ownerID && r.MaxUses.Int64 == 5
	})).Return(nil)

	referral, err := uc.CreateReferral(context.Background(), &entities.CreateReferralInput{
		RefCode: " summer25 ",
		UserID:  ownerID,
		MaxUses: &maxUses,
	})
	require.NoError(t, err)
	assert.Equal(t, "SUMMER25", referral.RefCode)
	referralRepo.AssertExpectations(t)
}

func TestAdminUsecase_CreateReferral_UnknownOwner(t *testing.T) {
	uc, _, userRepo, referralRepo := newAdminUsecase()
	ownerID := uuid.New()

	userRepo.On("GetByID", mock.Anything, ownerID).Return(nil, domainerrors.ErrNotFound)

	_, err := uc.CreateReferral(context.Background(), &entities.CreateReferralInput{
		RefCode: "SUMMER25",
		UserID:  ownerID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	referralRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdminUsecase_CreateReferral_Duplicate(t *testing.T) {
	uc, _, userRepo, referralRepo := newAdminUsecase()
	ownerID := uuid.New()

	userRepo.On("GetByID", mock.Anything, ownerID).
		Return(&entities.User{ID: ownerID}, nil)
	referralRepo.On("Create", mock.Anything, mock.Anything).
		Return(domainerrors.ErrAlreadyExists)

	_, err := uc.CreateReferral(context.Background(), &entities.CreateReferralInput{
		RefCode: "SUMMER25",
		UserID:  ownerID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestAdminUsecase_DashboardAndListings(t *testing.T) {
	uc, orderRepo, userRepo, referralRepo := newAdminUsecase()

	stats := &entities.DashboardStats{ActiveOrders: 3, ActiveUsers: 2, SuccessRate: "75.0"}
	orderRepo.On("DashboardStats", mock.Anything, mock.Anything).Return(stats, nil)
	orderRepo.On("CountByStatus", mock.Anything, entities.OrderStatusConfirmed).Return(7, nil)
	orderRepo.On("ListRecent", mock.Anything, 10).Return([]*entities.AdminOrderView{}, nil)
	userRepo.On("ListWithOrderCounts", mock.Anything).Return([]*entities.AdminUserView{}, nil)
	referralRepo.On("ListWithStats", mock.Anything).Return([]*entities.ReferralWithStats{}, nil)

	got, err := uc.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stats, got)

	count, err := uc.ConfirmedOrdersCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, count)

	_, err = uc.RecentOrders(context.Background(), "")
	require.NoError(t, err)

	// out-of-range limit falls back to the max
	orderRepo.On("ListRecent", mock.Anything, 100).Return([]*entities.AdminOrderView{}, nil)
	_, err = uc.RecentOrders(context.Background(), "5000")
	require.NoError(t, err)
	_, err = uc.ListUsers(context.Background())
	require.NoError(t, err)
	_, err = uc.ListReferrals(context.Background())
	require.NoError(t, err)
}
