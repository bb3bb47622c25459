package models

import (
	"time"

	"github.com/google/uuid"
)

type Referral struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RefCode        string     `gorm:"type:varchar(50);uniqueIndex;not null"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	ReferredUserID *uuid.UUID `gorm:"type:uuid"`
	Date           time.Time  `gorm:"not null"`
	Conditions     *string    `gorm:"type:text"`
	MaxUses        *int64
	CreatedAt      time.Time
	UpdatedAt      time.Time

	User         User  `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	ReferredUser *User `gorm:"foreignKey:ReferredUserID;references:ID;constraint:OnDelete:SET NULL"`
}

func (Referral) TableName() string { return "referrals" }

type ReferralUse struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ReferralID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time

	Referral Referral `gorm:"foreignKey:ReferralID;references:ID;constraint:OnDelete:CASCADE"`
	User     User     `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

func (ReferralUse) TableName() string { return "referral_uses" }
