package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order persists a placed order. Items is the JSON snapshot captured at
// order time; address_id is nulled by the FK when the address is deleted.
type Order struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	AddressID *uuid.UUID      `gorm:"type:uuid;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status    string          `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Items     string          `gorm:"type:json;not null"`
	CreatedAt time.Time       `gorm:"index"`

	User    User             `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Address *DeliveryAddress `gorm:"foreignKey:AddressID;references:ID;constraint:OnDelete:SET NULL"`
}

func (Order) TableName() string { return "orders" }
