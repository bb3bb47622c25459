package repositories

import (
	"context"

	"github.com/google/uuid"
	"aeronest.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	// ListWithOrderCounts returns every user joined with the number of
	// orders they have placed, newest user first.
	ListWithOrderCounts(ctx context.Context) ([]*entities.AdminUserView, error)
	// Delete removes a user; dependent rows go away via FK cascade.
	Delete(ctx context.Context, id uuid.UUID) error
}
