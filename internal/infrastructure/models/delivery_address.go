package models

import (
	"time"

	"github.com/google/uuid"
)

type DeliveryAddress struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(100);not null"`
	Street    string    `gorm:"type:varchar(200);not null"`
	Building  *string   `gorm:"type:varchar(20)"`
	Entrance  *string   `gorm:"type:varchar(10)"`
	Floor     *string   `gorm:"type:varchar(10)"`
	Apartment *string   `gorm:"type:varchar(20)"`
	Comment   *string   `gorm:"type:varchar(500)"`
	Coords    string    `gorm:"type:text;not null"`
	IsDefault bool      `gorm:"not null;default:false"`
	CreatedAt time.Time

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

func (DeliveryAddress) TableName() string { return "delivery_addresses" }
