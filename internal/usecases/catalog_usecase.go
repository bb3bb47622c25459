package usecases

import (
	"context"

	"github.com/google/uuid"
	"aeronest.backend/internal/domain/entities"
	"aeronest.backend/internal/domain/repositories"
)

// CatalogUsecase handles storefront catalog reads
type CatalogUsecase struct {
	catalogRepo repositories.CatalogRepository
}

// NewCatalogUsecase creates a new catalog usecase
func NewCatalogUsecase(catalogRepo repositories.CatalogRepository) *CatalogUsecase {
	return &CatalogUsecase{catalogRepo: catalogRepo}
}

// ListEntries lists merchant cards, optionally filtered by category
func (u *CatalogUsecase) ListEntries(ctx context.Context, category string) ([]*entities.CatalogEntry, error) {
	return u.catalogRepo.ListEntries(ctx, category)
}

// ListItems lists one merchant's items
func (u *CatalogUsecase) ListItems(ctx context.Context, catalogID uuid.UUID) ([]*entities.Item, error) {
	return u.catalogRepo.ListItems(ctx, catalogID)
}

// ListPartners lists delivery partners
func (u *CatalogUsecase) ListPartners(ctx context.Context) ([]*entities.Partner, error) {
	return u.catalogRepo.ListPartners(ctx)
}
