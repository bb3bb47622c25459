package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"aeronest.backend/internal/domain/entities"
	domainerrors "aeronest.backend/internal/domain/errors"
	"aeronest.backend/internal/infrastructure/models"
)

// AddressRepository implements delivery address data operations
type AddressRepository struct {
	db *gorm.DB
}

// NewAddressRepository creates a new address repository
func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{db: db}
}

// Create inserts an address. A new default unsets the user's other
// defaults inside one transaction, keeping at most one default per user.
func (r *AddressRepository) Create(ctx context.Context, addr *entities.DeliveryAddress) error {
	m := addressToModel(addr)

	db := GetDB(ctx, r.db).WithContext(ctx)
	return db.Transaction(func(tx *gorm.DB) error {
		if addr.IsDefault {
			err := tx.Model(&models.DeliveryAddress{}).
				Where("user_id = ?", addr.UserID).
				Update("is_default", false).Error
			if err != nil {
				return err
			}
		}
		return tx.Create(m).Error
	})
}

// GetByIDForUser fetches an address owned by the given user
func (r *AddressRepository) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entities.DeliveryAddress, error) {
	var m models.DeliveryAddress
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return addressToEntity(&m), nil
}

// FindByUserAndStreet finds the user's address with an exact street match
func (r *AddressRepository) FindByUserAndStreet(ctx context.Context, userID uuid.UUID, street string) (*entities.DeliveryAddress, error) {
	var m models.DeliveryAddress
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ? AND street = ?", userID, street).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return addressToEntity(&m), nil
}

// ListByUser lists the user's addresses, default first, newest first
func (r *AddressRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.DeliveryAddress, error) {
	var ms []models.DeliveryAddress
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC").
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	addrs := make([]*entities.DeliveryAddress, 0, len(ms))
	for i := range ms {
		addrs = append(addrs, addressToEntity(&ms[i]))
	}
	return addrs, nil
}

// Delete removes an address owned by the given user
func (r *AddressRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.DeliveryAddress{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func addressToModel(a *entities.DeliveryAddress) *models.DeliveryAddress {
	return &models.DeliveryAddress{
		ID:        a.ID,
		UserID:    a.UserID,
		Title:     a.Title,
		Street:    a.Street,
		Building:  a.Building.Ptr(),
		Entrance:  a.Entrance.Ptr(),
		Floor:     a.Floor.Ptr(),
		Apartment: a.Apartment.Ptr(),
		Comment:   a.Comment.Ptr(),
		Coords:    a.Coords,
		IsDefault: a.IsDefault,
		CreatedAt: a.CreatedAt,
	}
}

func addressToEntity(m *models.DeliveryAddress) *entities.DeliveryAddress {
	return &entities.DeliveryAddress{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Street:    m.Street,
		Building:  null.StringFromPtr(m.Building),
		Entrance:  null.StringFromPtr(m.Entrance),
		Floor:     null.StringFromPtr(m.Floor),
		Apartment: null.StringFromPtr(m.Apartment),
		Comment:   null.StringFromPtr(m.Comment),
		Coords:    m.Coords,
		IsDefault: m.IsDefault,
		CreatedAt: m.CreatedAt,
	}
}
