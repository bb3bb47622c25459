package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents order delivery status
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusInFlight  OrderStatus = "IN_FLIGHT"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// ValidOrderStatuses lists every status an order may hold
var ValidOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusInFlight,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// ParseOrderStatus normalizes a status string (case-insensitive) and
// reports whether it names a known status.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	status := OrderStatus(normalizeUpper(s))
	for _, valid := range ValidOrderStatuses {
		if status == valid {
			return status, true
		}
	}
	return "", false
}

// IsTerminal reports whether the status is an end state.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// OrderItem is one line of the order's point-in-time item snapshot.
// Captured at order creation; later catalog changes do not affect it.
type OrderItem struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Weight string          `json:"weight,omitempty"`
	Ves    string          `json:"ves,omitempty"`
	Count  int             `json:"count"`
}

// Order represents a placed order
type Order struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"userId"`
	AddressID *uuid.UUID      `json:"addressId,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Status    OrderStatus     `json:"status"`
	Items     []OrderItem     `json:"items"`
	CreatedAt time.Time       `json:"createdAt"`
}

// OrderSummary is an order joined with its delivery street for listings
type OrderSummary struct {
	ID        uuid.UUID       `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Status    OrderStatus     `json:"status"`
	Items     []OrderItem     `json:"items"`
	CreatedAt time.Time       `json:"createdAt"`
	Address   string          `json:"address"`
}

// AdminOrderView is the back-office order row with customer and full address
type AdminOrderView struct {
	ID        uuid.UUID       `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Status    OrderStatus     `json:"status"`
	Items     []OrderItem     `json:"items"`
	CreatedAt time.Time       `json:"createdAt"`
	UserEmail string          `json:"userEmail"`
	UserName  string          `json:"userName"`
	Address   string          `json:"address"`
}

// CreateOrderInput represents input for placing an order
type CreateOrderInput struct {
	Address   string      `json:"address" binding:"required"`
	AddressID *uuid.UUID  `json:"addressId"`
	Items     []OrderItem `json:"items" binding:"required,min=1"`
	Amount    float64     `json:"amount" binding:"required,gt=0"`
}

// UpdateOrderStatusInput represents the admin status override request
type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// DashboardStats aggregates the admin dashboard numbers
type DashboardStats struct {
	ActiveOrders int             `json:"activeOrders"`
	ActiveUsers  int             `json:"activeUsers"`
	SuccessRate  string          `json:"successRate"`
	Revenue24h   decimal.Decimal `json:"revenue24h"`
}
