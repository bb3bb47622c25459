package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"aeronest.backend/internal/domain/entities"
	domainerrors "aeronest.backend/internal/domain/errors"
	"aeronest.backend/internal/infrastructure/models"
)

const noAddressPlaceholder = "Адрес не указан"

// OrderRepository implements order data operations
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts an order with its JSON item snapshot
func (r *OrderRepository) Create(ctx context.Context, order *entities.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to encode order items: %w", err)
	}

	m := &models.Order{
		ID:        order.ID,
		UserID:    order.UserID,
		AddressID: order.AddressID,
		Amount:    order.Amount,
		Status:    string(order.Status),
		Items:     string(items),
		CreatedAt: order.CreatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets an order by ID
func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	var m models.Order
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return orderToEntity(&m)
}

type orderSummaryRow struct {
	models.Order
	Street *string
}

// ListByUser lists the user's newest orders with the delivery street
func (r *OrderRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.OrderSummary, error) {
	var rows []orderSummaryRow
	err := GetDB(ctx, r.db).WithContext(ctx).
		Table("orders").
		Select("orders.*, delivery_addresses.street AS street").
		Joins("LEFT JOIN delivery_addresses ON delivery_addresses.id = orders.address_id").
		Where("orders.user_id = ?", userID).
		Order("orders.created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]*entities.OrderSummary, 0, len(rows))
	for i := range rows {
		s, err := summaryFromRow(&rows[i])
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// ActiveByUser returns the newest order still in flight, or nil
func (r *OrderRepository) ActiveByUser(ctx context.Context, userID uuid.UUID) (*entities.OrderSummary, error) {
	var rows []orderSummaryRow
	err := GetDB(ctx, r.db).WithContext(ctx).
		Table("orders").
		Select("orders.*, delivery_addresses.street AS street").
		Joins("LEFT JOIN delivery_addresses ON delivery_addresses.id = orders.address_id").
		Where("orders.user_id = ? AND orders.status NOT IN ?", userID,
			[]string{string(entities.OrderStatusDelivered), string(entities.OrderStatusCancelled)}).
		Order("orders.created_at DESC").
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return summaryFromRow(&rows[0])
}

// UpdateStatus overwrites the status unconditionally and returns the order
func (r *OrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.OrderStatus) (*entities.Order, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	result := db.Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}

	return r.GetByID(ctx, id)
}

// CountBlockingForAddress counts referencing orders that are not yet
// delivered, plus every referencing order.
func (r *OrderRepository) CountBlockingForAddress(ctx context.Context, addressID uuid.UUID) (int, int, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var blocking int64
	err := db.Model(&models.Order{}).
		Where("address_id = ? AND status != ?", addressID, string(entities.OrderStatusDelivered)).
		Count(&blocking).Error
	if err != nil {
		return 0, 0, err
	}

	var total int64
	err = db.Model(&models.Order{}).
		Where("address_id = ?", addressID).
		Count(&total).Error
	if err != nil {
		return 0, 0, err
	}

	return int(blocking), int(total), nil
}

type adminOrderRow struct {
	models.Order
	UserEmail    *string
	UserName     *string
	Street       *string
	Building     *string
	Entrance     *string
	Floor        *string
	Apartment    *string
	AddressTitle *string
}

// ListRecent lists the latest orders with customer and full address
func (r *OrderRepository) ListRecent(ctx context.Context, limit int) ([]*entities.AdminOrderView, error) {
	var rows []adminOrderRow
	err := GetDB(ctx, r.db).WithContext(ctx).
		Table("orders").
		Select(`orders.*,
			users.email AS user_email,
			users.name AS user_name,
			delivery_addresses.street AS street,
			delivery_addresses.building AS building,
			delivery_addresses.entrance AS entrance,
			delivery_addresses.floor AS floor,
			delivery_addresses.apartment AS apartment,
			delivery_addresses.title AS address_title`).
		Joins("LEFT JOIN users ON users.id = orders.user_id").
		Joins("LEFT JOIN delivery_addresses ON delivery_addresses.id = orders.address_id").
		Order("orders.created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]*entities.AdminOrderView, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		items, err := decodeItems(row.Items)
		if err != nil {
			return nil, err
		}

		views = append(views, &entities.AdminOrderView{
			ID:        row.ID,
			Amount:    row.Amount,
			Status:    entities.OrderStatus(row.Status),
			Items:     items,
			CreatedAt: row.CreatedAt,
			UserEmail: strFromPtr(row.UserEmail),
			UserName:  strFromPtr(row.UserName),
			Address:   composeFullAddress(row),
		})
	}
	return views, nil
}

// CountByStatus counts orders holding the given status
func (r *OrderRepository) CountByStatus(ctx context.Context, status entities.OrderStatus) (int, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Order{}).
		Where("status = ?", string(status)).
		Count(&count).Error
	return int(count), err
}

// DashboardStats aggregates the admin dashboard numbers as of now
func (r *OrderRepository) DashboardStats(ctx context.Context, now time.Time) (*entities.DashboardStats, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var active int64
	err := db.Model(&models.Order{}).
		Where("status IN ?", []string{
			string(entities.OrderStatusConfirmed),
			string(entities.OrderStatusInFlight),
		}).
		Count(&active).Error
	if err != nil {
		return nil, err
	}

	var activeUsers int64
	err = db.Model(&models.Order{}).
		Where("created_at >= ?", now.AddDate(0, 0, -7)).
		Distinct("user_id").
		Count(&activeUsers).Error
	if err != nil {
		return nil, err
	}

	var delivered, completed int64
	err = db.Model(&models.Order{}).
		Where("status = ?", string(entities.OrderStatusDelivered)).
		Count(&delivered).Error
	if err != nil {
		return nil, err
	}
	err = db.Model(&models.Order{}).
		Where("status IN ?", []string{
			string(entities.OrderStatusDelivered),
			string(entities.OrderStatusCancelled),
		}).
		Count(&completed).Error
	if err != nil {
		return nil, err
	}

	successRate := "0"
	if completed > 0 {
		successRate = fmt.Sprintf("%.1f", float64(delivered)/float64(completed)*100)
	}

	var revenueRows []struct{ Amount decimal.Decimal }
	err = db.Model(&models.Order{}).
		Select("amount").
		Where("created_at >= ? AND status != ?", now.Add(-24*time.Hour), string(entities.OrderStatusCancelled)).
		Find(&revenueRows).Error
	if err != nil {
		return nil, err
	}
	revenue := decimal.Zero
	for _, row := range revenueRows {
		revenue = revenue.Add(row.Amount)
	}

	return &entities.DashboardStats{
		ActiveOrders: int(active),
		ActiveUsers:  int(activeUsers),
		SuccessRate:  successRate,
		Revenue24h:   revenue,
	}, nil
}

func orderToEntity(m *models.Order) (*entities.Order, error) {
	items, err := decodeItems(m.Items)
	if err != nil {
		return nil, err
	}
	return &entities.Order{
		ID:        m.ID,
		UserID:    m.UserID,
		AddressID: m.AddressID,
		Amount:    m.Amount,
		Status:    entities.OrderStatus(m.Status),
		Items:     items,
		CreatedAt: m.CreatedAt,
	}, nil
}

func summaryFromRow(row *orderSummaryRow) (*entities.OrderSummary, error) {
	items, err := decodeItems(row.Items)
	if err != nil {
		return nil, err
	}
	address := noAddressPlaceholder
	if row.Street != nil && *row.Street != "" {
		address = *row.Street
	}
	return &entities.OrderSummary{
		ID:        row.ID,
		Amount:    row.Amount,
		Status:    entities.OrderStatus(row.Status),
		Items:     items,
		CreatedAt: row.CreatedAt,
		Address:   address,
	}, nil
}

func decodeItems(raw string) ([]entities.OrderItem, error) {
	if raw == "" {
		return nil, nil
	}
	var items []entities.OrderItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("failed to decode order items: %w", err)
	}
	return items, nil
}

func composeFullAddress(row *adminOrderRow) string {
	if row.Street == nil || *row.Street == "" {
		return noAddressPlaceholder
	}

	parts := []string{*row.Street}
	if v := strFromPtr(row.Building); v != "" {
		parts = append(parts, "д. "+v)
	}
	if v := strFromPtr(row.Entrance); v != "" {
		parts = append(parts, "подъезд "+v)
	}
	if v := strFromPtr(row.Floor); v != "" {
		parts = append(parts, "эт. "+v)
	}
	if v := strFromPtr(row.Apartment); v != "" {
		parts = append(parts, "кв. "+v)
	}
	return strings.Join(parts, ", ")
}

func strFromPtr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
