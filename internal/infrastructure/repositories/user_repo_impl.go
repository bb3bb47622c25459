package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"aeronest.backend/internal/domain/entities"
	domainerrors "aeronest.backend/internal/domain/errors"
	"aeronest.backend/internal/infrastructure/models"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := &models.User{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name.Ptr(),
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		Balance:      user.Balance,
		ReferrerID:   user.ReferrerID,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE") || strings.Contains(err.Error(), "duplicate") {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// Delete removes a user. Orders, addresses and referral rows follow via
// the FK cascade declared on the models.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListWithOrderCounts lists every user with their order count, newest first
func (r *UserRepository) ListWithOrderCounts(ctx context.Context) ([]*entities.AdminUserView, error) {
	type row struct {
		models.User
		OrdersCount int
	}

	var rows []row
	err := GetDB(ctx, r.db).WithContext(ctx).
		Table("users").
		Select("users.*, COUNT(orders.id) AS orders_count").
		Joins("LEFT JOIN orders ON orders.user_id = users.id").
		Group("users.id").
		Order("users.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]*entities.AdminUserView, 0, len(rows))
	for _, rec := range rows {
		name := rec.Email
		if at := strings.Index(name, "@"); at > 0 {
			name = name[:at]
		}
		if rec.Name != nil && *rec.Name != "" {
			name = *rec.Name
		}

		level := 1 + rec.OrdersCount/8
		role := string(entities.UserRoleUser)
		switch {
		case rec.Role == string(entities.UserRoleAdmin):
			role = string(entities.UserRoleAdmin)
		case level >= 5:
			role = "VIP"
		}

		views = append(views, &entities.AdminUserView{
			ID:          rec.ID,
			Email:       rec.Email,
			Name:        name,
			Balance:     rec.Balance,
			OrdersCount: rec.OrdersCount,
			UserLevel:   level,
			Role:        role,
			CreatedAt:   rec.CreatedAt,
		})
	}
	return views, nil
}

func userToEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:           m.ID,
		Email:        m.Email,
		Name:         null.StringFromPtr(m.Name),
		PasswordHash: m.PasswordHash,
		Role:         entities.UserRole(m.Role),
		Balance:      m.Balance,
		ReferrerID:   m.ReferrerID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
