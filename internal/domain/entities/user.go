package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleAdmin UserRole = "ADMIN"
	UserRoleUser  UserRole = "USER"
)

// User represents a user entity
type User struct {
	ID           uuid.UUID       `json:"id"`
	Email        string          `json:"email"`
	Name         null.String     `json:"name,omitempty"`
	PasswordHash string          `json:"-"`
	Role         UserRole        `json:"role"`
	Balance      decimal.Decimal `json:"balance"`
	ReferrerID   *uuid.UUID      `json:"referrerId,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// IsAdmin reports whether the user holds the admin role.
// All admin gating goes through this check, never through email literals.
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// RegisterInput represents input for user registration
type RegisterInput struct {
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6,max=128"`
	Name         string `json:"name" binding:"omitempty,min=2,max=100"`
	ReferralCode string `json:"referralCode" binding:"required,min=3,max=50"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user"`
}

// AdminUserView is the admin user listing row: order activity drives the
// displayed level and role badge.
type AdminUserView struct {
	ID          uuid.UUID       `json:"id"`
	Email       string          `json:"email"`
	Name        string          `json:"name"`
	Balance     decimal.Decimal `json:"balance"`
	OrdersCount int             `json:"ordersCount"`
	UserLevel   int             `json:"userLevel"`
	Role        string          `json:"role"`
	CreatedAt   time.Time       `json:"createdAt"`
}
