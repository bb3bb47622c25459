package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"aeronest.backend/internal/domain/entities"
)

func seedEntry(t *testing.T, repo *CatalogRepository, name string, category entities.CatalogCategory, createdAt time.Time) uuid.UUID {
	t.Helper()
	entry := &entities.CatalogEntry{
		ID:           uuid.New(),
		Name:         name,
		Category:     category,
		MinOrder:     "500 ₽",
		DeliveryTime: "30-45 мин",
		Description:  "Доставка дроном",
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
	require.NoError(t, repo.CreateEntry(context.Background(), entry))
	return entry.ID
}

func TestCatalogRepository_ListEntries_CategoryFilter(t *testing.T) {
	db := newTestDB(t)
	createCatalogTables(t, db)
	repo := NewCatalogRepository(db)

	seedEntry(t, repo, "Суши Мастер", entities.CatalogCategoryFood, time.Now().Add(-2*time.Hour))
	seedEntry(t, repo, "Аптека 36.6", entities.CatalogCategoryMed, time.Now().Add(-time.Hour))
	seedEntry(t, repo, "Пицца Хаус", entities.CatalogCategoryFood, time.Now())

	food, err := repo.ListEntries(context.Background(), "food")
	require.NoError(t, err)
	require.Len(t, food, 2)
	assert.Equal(t, "Пицца Хаус", food[0].Name, "newest first")

	all, err := repo.ListEntries(context.Background(), "all")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	unfiltered, err := repo.ListEntries(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, unfiltered, 3)

	count, err := repo.CountEntries(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

func TestCatalogRepository_ListItems_OrderedByName(t *testing.T) {
	db := newTestDB(t)
	createCatalogTables(t, db)
	repo := NewCatalogRepository(db)

	catalogID := seedEntry(t, repo, "Суши Мастер", entities.CatalogCategoryFood, time.Now())
	otherID := seedEntry(t, repo, "Пицца Хаус", entities.CatalogCategoryFood, time.Now())

	for _, name := range []string{"Сет Филадельфия", "Ролл Калифорния"} {
		require.NoError(t, repo.CreateItem(context.Background(), &entities.Item{
			ID:        uuid.New(),
			CatalogID: catalogID,
			Name:      name,
			Price:     decimal.RequireFromString("890.00"),
			Ves:       "450 г",
			Date:      time.Now(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}))
	}

	items, err := repo.ListItems(context.Background(), catalogID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Ролл Калифорния", items[0].Name)
	assert.Equal(t, "Сет Филадельфия", items[1].Name)

	none, err := repo.ListItems(context.Background(), otherID)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCatalogRepository_ListPartners_NewestCooperationFirst(t *testing.T) {
	db := newTestDB(t)
	createCatalogTables(t, db)
	repo := NewCatalogRepository(db)

	older := &entities.Partner{
		ID:              uuid.New(),
		Name:            "СДЭК",
		Image:           "/partners/cdek.png",
		CooperationDate: time.Now().Add(-48 * time.Hour),
		Description:     "Логистический партнёр",
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	newer := &entities.Partner{
		ID:              uuid.New(),
		Name:            "Вкусвилл",
		Image:           "/partners/vkusvill.png",
		CooperationDate: time.Now(),
		Description:     "Продуктовый партнёр",
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	require.NoError(t, repo.CreatePartner(context.Background(), older))
	require.NoError(t, repo.CreatePartner(context.Background(), newer))

	partners, err := repo.ListPartners(context.Background())
	require.NoError(t, err)
	require.Len(t, partners, 2)
	assert.Equal(t, "Вкусвилл", partners[0].Name)
}
