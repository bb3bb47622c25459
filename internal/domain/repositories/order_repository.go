package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"aeronest.backend/internal/domain/entities"
)

// OrderRepository defines order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entities.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	// ListByUser returns the user's newest orders joined with the
	// delivery street, capped at limit.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.OrderSummary, error)
	// ActiveByUser returns the user's most recent order that is neither
	// delivered nor cancelled, or nil when none exists.
	ActiveByUser(ctx context.Context, userID uuid.UUID) (*entities.OrderSummary, error)
	// UpdateStatus overwrites the status unconditionally and returns the
	// updated order. ErrNotFound when the order does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.OrderStatus) (*entities.Order, error)
	// CountBlockingForAddress counts orders referencing the address whose
	// status is not DELIVERED, plus the total referencing order count.
	CountBlockingForAddress(ctx context.Context, addressID uuid.UUID) (blocking, total int, err error)

	// Back-office queries
	ListRecent(ctx context.Context, limit int) ([]*entities.AdminOrderView, error)
	CountByStatus(ctx context.Context, status entities.OrderStatus) (int, error)
	DashboardStats(ctx context.Context, now time.Time) (*entities.DashboardStats, error)
}
