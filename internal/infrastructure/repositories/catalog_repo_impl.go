package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"aeronest.backend/internal/domain/entities"
	"aeronest.backend/internal/infrastructure/models"
)

// CatalogRepository implements storefront catalog data operations
type CatalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListEntries lists merchant cards, optionally filtered by category
func (r *CatalogRepository) ListEntries(ctx context.Context, category string) ([]*entities.CatalogEntry, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Order("created_at DESC")
	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}

	var ms []models.CatalogEntry
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}

	entries := make([]*entities.CatalogEntry, 0, len(ms))
	for i := range ms {
		entries = append(entries, catalogEntryToEntity(&ms[i]))
	}
	return entries, nil
}

// ListItems lists one merchant's items ordered by name
func (r *CatalogRepository) ListItems(ctx context.Context, catalogID uuid.UUID) ([]*entities.Item, error) {
	var ms []models.Item
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("catalog_id = ?", catalogID).
		Order("name").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	items := make([]*entities.Item, 0, len(ms))
	for i := range ms {
		m := &ms[i]
		items = append(items, &entities.Item{
			ID:        m.ID,
			CatalogID: m.CatalogID,
			Name:      m.Name,
			Price:     m.Price,
			Ves:       m.Ves,
			Date:      m.Date,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		})
	}
	return items, nil
}

// ListPartners lists delivery partners, newest cooperation first
func (r *CatalogRepository) ListPartners(ctx context.Context) ([]*entities.Partner, error) {
	var ms []models.Partner
	err := GetDB(ctx, r.db).WithContext(ctx).
		Order("cooperation_date DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	partners := make([]*entities.Partner, 0, len(ms))
	for i := range ms {
		m := &ms[i]
		partners = append(partners, &entities.Partner{
			ID:              m.ID,
			Name:            m.Name,
			Image:           m.Image,
			CooperationDate: m.CooperationDate,
			Description:     m.Description,
			CreatedAt:       m.CreatedAt,
			UpdatedAt:       m.UpdatedAt,
		})
	}
	return partners, nil
}

// CreateEntry inserts a merchant card
func (r *CatalogRepository) CreateEntry(ctx context.Context, entry *entities.CatalogEntry) error {
	m := &models.CatalogEntry{
		ID:           entry.ID,
		Name:         entry.Name,
		Category:     string(entry.Category),
		MinOrder:     entry.MinOrder,
		DeliveryTime: entry.DeliveryTime,
		IconName:     entry.IconName.Ptr(),
		Description:  entry.Description,
		CreatedAt:    entry.CreatedAt,
		UpdatedAt:    entry.UpdatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// CreateItem inserts a product row
func (r *CatalogRepository) CreateItem(ctx context.Context, item *entities.Item) error {
	m := &models.Item{
		ID:        item.ID,
		CatalogID: item.CatalogID,
		Name:      item.Name,
		Price:     item.Price,
		Ves:       item.Ves,
		Date:      item.Date,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// CreatePartner inserts a partner row
func (r *CatalogRepository) CreatePartner(ctx context.Context, partner *entities.Partner) error {
	m := &models.Partner{
		ID:              partner.ID,
		Name:            partner.Name,
		Image:           partner.Image,
		CooperationDate: partner.CooperationDate,
		Description:     partner.Description,
		CreatedAt:       partner.CreatedAt,
		UpdatedAt:       partner.UpdatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// CountEntries counts merchant cards
func (r *CatalogRepository) CountEntries(ctx context.Context) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.CatalogEntry{}).Count(&count).Error
	return count, err
}

func catalogEntryToEntity(m *models.CatalogEntry) *entities.CatalogEntry {
	return &entities.CatalogEntry{
		ID:           m.ID,
		Name:         m.Name,
		Category:     entities.CatalogCategory(m.Category),
		MinOrder:     m.MinOrder,
		DeliveryTime: m.DeliveryTime,
		IconName:     null.StringFromPtr(m.IconName),
		Description:  m.Description,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
