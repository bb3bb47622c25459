package entities

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

var refCodePattern = regexp.MustCompile(`^[A-Z0-9]{3,50}$`)

// NormalizeReferralCode trims and uppercases a candidate code and reports
// whether the result is a well-formed code (3-50 chars, A-Z and digits).
func NormalizeReferralCode(code string) (string, bool) {
	normalized := normalizeUpper(code)
	return normalized, refCodePattern.MatchString(normalized)
}

func normalizeUpper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Referral represents a referral code owned by a user.
// ReferredUserID is the legacy first-redeemer pointer; the referral_uses
// rows are authoritative for usage counting.
type Referral struct {
	ID             uuid.UUID   `json:"id"`
	RefCode        string      `json:"refCode"`
	UserID         uuid.UUID   `json:"userId"`
	ReferredUserID *uuid.UUID  `json:"referredUserId,omitempty"`
	Date           time.Time   `json:"date"`
	Conditions     null.String `json:"conditions,omitempty"`
	MaxUses        null.Int64  `json:"maxUses,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// ReferralUse records one successful redemption of a referral code
type ReferralUse struct {
	ID         uuid.UUID `json:"id"`
	ReferralID uuid.UUID `json:"referralId"`
	UserID     uuid.UUID `json:"userId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ReferralWithStats is the admin listing row: a referral joined with its
// owner, legacy redeemer and current usage count.
type ReferralWithStats struct {
	Referral
	UsesCount     int         `json:"usesCount"`
	OwnerEmail    string      `json:"ownerEmail"`
	OwnerName     null.String `json:"ownerName,omitempty"`
	ReferredEmail null.String `json:"referredEmail,omitempty"`
	ReferredName  null.String `json:"referredName,omitempty"`
}

// CreateReferralInput represents the admin request to mint a code
type CreateReferralInput struct {
	RefCode    string    `json:"refCode" binding:"required,min=3,max=50"`
	UserID     uuid.UUID `json:"userId" binding:"required"`
	Conditions string    `json:"conditions" binding:"omitempty,max=500"`
	MaxUses    *int      `json:"maxUses" binding:"omitempty,gt=0"`
}
