package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CatalogEntry struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(200);not null"`
	Category     string    `gorm:"type:varchar(50);not null;index"`
	MinOrder     string    `gorm:"type:varchar(50);not null"`
	DeliveryTime string    `gorm:"type:varchar(50);not null"`
	IconName     *string   `gorm:"type:varchar(100)"`
	Description  string    `gorm:"type:text;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (CatalogEntry) TableName() string { return "catalog" }

type Item struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CatalogID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(200);not null"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Ves       string          `gorm:"type:varchar(50);not null"`
	Date      time.Time       `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Catalog CatalogEntry `gorm:"foreignKey:CatalogID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Item) TableName() string { return "items" }

type Partner struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"type:varchar(200);not null"`
	Image           string    `gorm:"type:varchar(500);not null"`
	CooperationDate time.Time `gorm:"not null"`
	Description     string    `gorm:"type:text;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Partner) TableName() string { return "partners" }
