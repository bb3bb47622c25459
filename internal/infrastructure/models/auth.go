package models

import (
	"time"

	"github.com/google/uuid"
)

// The accounts/sessions/verification_tokens tables follow the standard
// auth.js schema the original deployment used. The Go service issues JWTs
// and never writes them, but the models keep schema migrations complete.

type Account struct {
	UserID            uuid.UUID `gorm:"type:uuid;not null;index"`
	Type              string    `gorm:"type:varchar(50);not null"`
	Provider          string    `gorm:"type:varchar(100);primaryKey"`
	ProviderAccountID string    `gorm:"type:varchar(255);primaryKey;column:provider_account_id"`
	RefreshToken      *string   `gorm:"type:text"`
	AccessToken       *string   `gorm:"type:text"`
	ExpiresAt         *time.Time
	TokenType         *string `gorm:"type:varchar(50)"`
	Scope             *string `gorm:"type:varchar(255)"`
	IDToken           *string `gorm:"type:text;column:id_token"`
	SessionState      *string `gorm:"type:varchar(255)"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Account) TableName() string { return "accounts" }

type Session struct {
	SessionToken string    `gorm:"type:varchar(255);primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Expires      time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Session) TableName() string { return "sessions" }

type VerificationToken struct {
	Identifier string    `gorm:"type:varchar(255);primaryKey"`
	Token      string    `gorm:"type:varchar(255);primaryKey"`
	Expires    time.Time `gorm:"not null"`
}

func (VerificationToken) TableName() string { return "verification_tokens" }
