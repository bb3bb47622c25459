package repositories

import (
	"context"

	"github.com/google/uuid"
	"aeronest.backend/internal/domain/entities"
)

// CatalogRepository defines storefront catalog data operations
type CatalogRepository interface {
	ListEntries(ctx context.Context, category string) ([]*entities.CatalogEntry, error)
	ListItems(ctx context.Context, catalogID uuid.UUID) ([]*entities.Item, error)
	ListPartners(ctx context.Context) ([]*entities.Partner, error)

	// Seeding support
	CreateEntry(ctx context.Context, entry *entities.CatalogEntry) error
	CreateItem(ctx context.Context, item *entities.Item) error
	CreatePartner(ctx context.Context, partner *entities.Partner) error
	CountEntries(ctx context.Context) (int64, error)
}
