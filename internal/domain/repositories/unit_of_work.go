package repositories

import (
	"context"
)

// UnitOfWork defines the interface for atomic operations.
// Repository calls made with the context passed to fn join the same
// database transaction; any error rolls the whole transaction back.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
