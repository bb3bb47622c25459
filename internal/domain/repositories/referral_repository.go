package repositories

import (
	"context"

	"github.com/google/uuid"
	"aeronest.backend/internal/domain/entities"
)

// ReferralRepository defines referral code data operations
type ReferralRepository interface {
	Create(ctx context.Context, referral *entities.Referral) error
	// GetByCode looks up a referral by its exact (already normalized) code.
	GetByCode(ctx context.Context, code string) (*entities.Referral, error)
	CountUses(ctx context.Context, referralID uuid.UUID) (int, error)
	// InsertUseIfBelowCap inserts a redemption row guarded by the usage
	// cap inside a single statement; the count check and the insert cannot
	// interleave with a concurrent redemption. Returns
	// ErrReferralLimitReached when the cap is already met. A referral
	// without a cap always inserts.
	InsertUseIfBelowCap(ctx context.Context, referral *entities.Referral, userID uuid.UUID) error
	// MarkFirstRedeemer sets the legacy referred_user_id pointer only when
	// it is still unset.
	MarkFirstRedeemer(ctx context.Context, referralID, userID uuid.UUID) error
	ListWithStats(ctx context.Context) ([]*entities.ReferralWithStats, error)
}
