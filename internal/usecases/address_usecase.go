package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"aeronest.backend/internal/domain/entities"
	domainerrors "aeronest.backend/internal/domain/errors"
	"aeronest.backend/internal/domain/repositories"
	"aeronest.backend/pkg/utils"
)

// AddressUsecase handles delivery address business logic
type AddressUsecase struct {
	addressRepo repositories.AddressRepository
	orderRepo   repositories.OrderRepository
}

// NewAddressUsecase creates a new address usecase
func NewAddressUsecase(addressRepo repositories.AddressRepository, orderRepo repositories.OrderRepository) *AddressUsecase {
	return &AddressUsecase{addressRepo: addressRepo, orderRepo: orderRepo}
}

// List returns the user's addresses, default first
func (u *AddressUsecase) List(ctx context.Context, userID uuid.UUID) ([]*entities.DeliveryAddress, error) {
	return u.addressRepo.ListByUser(ctx, userID)
}

// Create saves a new delivery address
func (u *AddressUsecase) Create(ctx context.Context, userID uuid.UUID, input *entities.CreateAddressInput) (*entities.DeliveryAddress, error) {
	coords := input.Coords
	if coords == "" {
		coords = "[]"
	}

	addr := &entities.DeliveryAddress{
		ID:        utils.GenerateUUIDv7(),
		UserID:    userID,
		Title:     input.Title,
		Street:    input.Street,
		Building:  null.NewString(input.Building, input.Building != ""),
		Entrance:  null.NewString(input.Entrance, input.Entrance != ""),
		Floor:     null.NewString(input.Floor, input.Floor != ""),
		Apartment: null.NewString(input.Apartment, input.Apartment != ""),
		Comment:   null.NewString(input.Comment, input.Comment != ""),
		Coords:    coords,
		IsDefault: input.IsDefault,
		CreatedAt: time.Now(),
	}
	if err := u.addressRepo.Create(ctx, addr); err != nil {
		return nil, err
	}
	return addr, nil
}

// Delete removes an address unless undelivered orders still reference it.
// Delivered orders keep their history; the FK nulls their address_id.
func (u *AddressUsecase) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := u.addressRepo.GetByIDForUser(ctx, id, userID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("Адрес не найден")
		}
		return err
	}

	blocking, _, err := u.orderRepo.CountBlockingForAddress(ctx, id)
	if err != nil {
		return err
	}
	if blocking > 0 {
		return domainerrors.Conflict(
			fmt.Sprintf("Нельзя удалить адрес: он используется в заказах, которые ещё не доставлены (%d)", blocking))
	}

	return u.addressRepo.Delete(ctx, id, userID)
}
