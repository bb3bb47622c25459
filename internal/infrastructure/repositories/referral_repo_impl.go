package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"aeronest.backend/internal/domain/entities"
	domainerrors "aeronest.backend/internal/domain/errors"
	"aeronest.backend/internal/infrastructure/models"
	"aeronest.backend/pkg/utils"
)

// ReferralRepository implements referral code data operations
type ReferralRepository struct {
	db *gorm.DB
}

// NewReferralRepository creates a new referral repository
func NewReferralRepository(db *gorm.DB) *ReferralRepository {
	return &ReferralRepository{db: db}
}

// Create inserts a referral code
func (r *ReferralRepository) Create(ctx context.Context, referral *entities.Referral) error {
	m := &models.Referral{
		ID:             referral.ID,
		RefCode:        referral.RefCode,
		UserID:         referral.UserID,
		ReferredUserID: referral.ReferredUserID,
		Date:           referral.Date,
		Conditions:     referral.Conditions.Ptr(),
		MaxUses:        referral.MaxUses.Ptr(),
		CreatedAt:      referral.CreatedAt,
		UpdatedAt:      referral.UpdatedAt,
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE") || strings.Contains(err.Error(), "duplicate") {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByCode looks up a referral by its normalized code
func (r *ReferralRepository) GetByCode(ctx context.Context, code string) (*entities.Referral, error) {
	var m models.Referral
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("ref_code = ?", code).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return referralToEntity(&m), nil
}

// CountUses counts redemption rows for a referral
func (r *ReferralRepository) CountUses(ctx context.Context, referralID uuid.UUID) (int, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.ReferralUse{}).
		Where("referral_id = ?", referralID).
		Count(&count).Error
	return int(count), err
}

// InsertUseIfBelowCap inserts a redemption row. For capped referrals the
// referral row is updated first, taking its row lock for the enclosing
// transaction; concurrent redeemers of the same code then serialize, so
// the count inside the INSERT's WHERE clause always includes every
// committed redemption and can never pass max_uses.
func (r *ReferralRepository) InsertUseIfBelowCap(ctx context.Context, referral *entities.Referral, userID uuid.UUID) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	if !referral.MaxUses.Valid {
		use := &models.ReferralUse{
			ID:         utils.GenerateUUIDv7(),
			ReferralID: referral.ID,
			UserID:     userID,
			CreatedAt:  time.Now(),
		}
		return db.Create(use).Error
	}

	lock := db.Exec(`UPDATE referrals SET updated_at = ? WHERE id = ?`,
		time.Now(), referral.ID)
	if lock.Error != nil {
		return lock.Error
	}
	if lock.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}

	result := db.Exec(
		`INSERT INTO referral_uses (id, referral_id, user_id, created_at)
		 SELECT ?, ?, ?, ?
		 WHERE (SELECT COUNT(*) FROM referral_uses WHERE referral_id = ?) < ?`,
		utils.GenerateUUIDv7(), referral.ID, userID, time.Now(),
		referral.ID, referral.MaxUses.Int64,
	)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrReferralLimitReached
	}
	return nil
}

// MarkFirstRedeemer sets the legacy pointer only when still unset
func (r *ReferralRepository) MarkFirstRedeemer(ctx context.Context, referralID, userID uuid.UUID) error {
	return GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Referral{}).
		Where("id = ? AND referred_user_id IS NULL", referralID).
		Updates(map[string]interface{}{
			"referred_user_id": userID,
			"updated_at":       time.Now(),
		}).Error
}

type referralStatsRow struct {
	models.Referral
	UsesCount     int
	OwnerEmail    *string
	OwnerName     *string
	ReferredEmail *string
	ReferredName  *string
}

// ListWithStats lists codes with owner, legacy redeemer and usage count
func (r *ReferralRepository) ListWithStats(ctx context.Context) ([]*entities.ReferralWithStats, error) {
	var rows []referralStatsRow
	err := GetDB(ctx, r.db).WithContext(ctx).
		Table("referrals").
		Select(`referrals.*,
			COUNT(referral_uses.id) AS uses_count,
			owners.email AS owner_email,
			owners.name AS owner_name,
			redeemers.email AS referred_email,
			redeemers.name AS referred_name`).
		Joins("LEFT JOIN users AS owners ON owners.id = referrals.user_id").
		Joins("LEFT JOIN users AS redeemers ON redeemers.id = referrals.referred_user_id").
		Joins("LEFT JOIN referral_uses ON referral_uses.referral_id = referrals.id").
		Group("referrals.id, owners.email, owners.name, redeemers.email, redeemers.name").
		Order("referrals.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := make([]*entities.ReferralWithStats, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		stats = append(stats, &entities.ReferralWithStats{
			Referral:      *referralToEntity(&row.Referral),
			UsesCount:     row.UsesCount,
			OwnerEmail:    strFromPtr(row.OwnerEmail),
			OwnerName:     null.StringFromPtr(row.OwnerName),
			ReferredEmail: null.StringFromPtr(row.ReferredEmail),
			ReferredName:  null.StringFromPtr(row.ReferredName),
		})
	}
	return stats, nil
}

func referralToEntity(m *models.Referral) *entities.Referral {
	return &entities.Referral{
		ID:             m.ID,
		RefCode:        m.RefCode,
		UserID:         m.UserID,
		ReferredUserID: m.ReferredUserID,
		Date:           m.Date,
		Conditions:     null.StringFromPtr(m.Conditions),
		MaxUses:        null.Int64FromPtr(m.MaxUses),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
