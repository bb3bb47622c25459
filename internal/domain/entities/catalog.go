package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// CatalogCategory buckets merchants on the storefront
type CatalogCategory string

const (
	CatalogCategoryFood  CatalogCategory = "food"
	CatalogCategoryRest  CatalogCategory = "rest"
	CatalogCategoryMed   CatalogCategory = "med"
	CatalogCategoryOther CatalogCategory = "other"
)

// CatalogEntry represents a merchant card in the storefront catalog
type CatalogEntry struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Category     CatalogCategory `json:"category"`
	MinOrder     string          `json:"minOrder"`
	DeliveryTime string          `json:"deliveryTime"`
	IconName     null.String     `json:"iconName,omitempty"`
	Description  string          `json:"description"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// Item represents one product sold by a catalog merchant
type Item struct {
	ID        uuid.UUID       `json:"id"`
	CatalogID uuid.UUID       `json:"catalogId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Ves       string          `json:"ves"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Partner represents a delivery partner shown on the landing page
type Partner struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Image           string    `json:"image"`
	CooperationDate time.Time `json:"cooperationDate"`
	Description     string    `json:"description"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
