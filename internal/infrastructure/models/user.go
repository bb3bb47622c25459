package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Email        string          `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         *string         `gorm:"type:varchar(100)"`
	PasswordHash string          `gorm:"type:varchar(255);not null"`
	Role         string          `gorm:"type:varchar(50);not null;default:'USER'"`
	Balance      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	ReferrerID   *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string { return "users" }
