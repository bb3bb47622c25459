package repositories

import (
	"context"

	"github.com/google/uuid"
	"aeronest.backend/internal/domain/entities"
)

// AddressRepository defines delivery address data operations
type AddressRepository interface {
	// Create inserts an address; when addr.IsDefault is set it unsets the
	// default flag on the user's other addresses first.
	Create(ctx context.Context, addr *entities.DeliveryAddress) error
	GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entities.DeliveryAddress, error)
	FindByUserAndStreet(ctx context.Context, userID uuid.UUID, street string) (*entities.DeliveryAddress, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.DeliveryAddress, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
