package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// DeliveryAddress represents a user's saved delivery address
type DeliveryAddress struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"userId"`
	Title     string      `json:"title"`
	Street    string      `json:"street"`
	Building  null.String `json:"building,omitempty"`
	Entrance  null.String `json:"entrance,omitempty"`
	Floor     null.String `json:"floor,omitempty"`
	Apartment null.String `json:"apartment,omitempty"`
	Comment   null.String `json:"comment,omitempty"`
	Coords    string      `json:"coords"`
	IsDefault bool        `json:"isDefault"`
	CreatedAt time.Time   `json:"createdAt"`
}

// CreateAddressInput represents input for creating a delivery address
type CreateAddressInput struct {
	Title     string `json:"title" binding:"required,max=100"`
	Street    string `json:"street" binding:"required,max=200"`
	Building  string `json:"building" binding:"omitempty,max=20"`
	Entrance  string `json:"entrance" binding:"omitempty,max=10"`
	Floor     string `json:"floor" binding:"omitempty,max=10"`
	Apartment string `json:"apartment" binding:"omitempty,max=20"`
	Comment   string `json:"comment" binding:"omitempty,max=500"`
	Coords    string `json:"coords" binding:"omitempty"`
	IsDefault bool   `json:"isDefault"`
}
