package handlers

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"aeronest.backend/internal/domain/entities"
	domainerrors "aeronest.backend/internal/domain/errors"
	"aeronest.backend/pkg/utils"
)

// uowStub runs the unit inline; handler tests assert behavior, the
// transactional guarantees are covered by the repository tests.
type uowStub struct{}

func (uowStub) Do(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// throttleStub never blocks
type throttleStub struct {
	failures int
	resets   int
}

func (s *throttleStub) Allow(context.Context, string) (bool, time.Duration, error) {
	return true, 0, nil
}

func (s *throttleStub) RecordFailure(context.Context, string) error {
	s.failures++
	return nil
}

func (s *throttleStub) Reset(context.Context, string) error {
	s.resets++
	return nil
}

func userWith(email, passwordHash string) *entities.User {
	return &entities.User{
		ID:           utils.GenerateUUIDv7(),
		Email:        email,
		PasswordHash: passwordHash,
		Role:         entities.UserRoleUser,
		Balance:      decimal.Zero,
	}
}

type userRepoStub struct {
	users map[uuid.UUID]*entities.User
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{users: map[uuid.UUID]*entities.User{}}
}

func (s *userRepoStub) Create(_ context.Context, user *entities.User) error {
	for _, u := range s.users {
		if u.Email == user.Email {
			return domainerrors.ErrAlreadyExists
		}
	}
	cpy := *user
	s.users[user.ID] = &cpy
	return nil
}

func (s *userRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cpy := *u
	return &cpy, nil
}

func (s *userRepoStub) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			cpy := *u
			return &cpy, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.users[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *userRepoStub) ListWithOrderCounts(context.Context) ([]*entities.AdminUserView, error) {
	out := make([]*entities.AdminUserView, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, &entities.AdminUserView{
			ID: u.ID, Email: u.Email, Balance: u.Balance, UserLevel: 1, Role: string(u.Role),
		})
	}
	return out, nil
}

type walletRepoStub struct {
	users *userRepoStub
}

func (s *walletRepoStub) GetBalance(_ context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	u, ok := s.users.users[userID]
	if !ok {
		return decimal.Zero, domainerrors.ErrNotFound
	}
	return u.Balance, nil
}

func (s *walletRepoStub) Deduct(_ context.Context, userID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, domainerrors.ErrInvalidInput
	}
	u, ok := s.users.users[userID]
	if !ok {
		return decimal.Zero, domainerrors.ErrNotFound
	}
	if u.Balance.LessThan(amount) {
		return decimal.Zero, domainerrors.ErrInsufficientFunds
	}
	u.Balance = u.Balance.Sub(amount)
	return u.Balance, nil
}

type orderRepoStub struct {
	orders []*entities.Order
}

func (s *orderRepoStub) Create(_ context.Context, order *entities.Order) error {
	cpy := *order
	s.orders = append(s.orders, &cpy)
	return nil
}

func (s *orderRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Order, error) {
	for _, o := range s.orders {
		if o.ID == id {
			cpy := *o
			return &cpy, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *orderRepoStub) ListByUser(_ context.Context, userID uuid.UUID, limit int) ([]*entities.OrderSummary, error) {
	out := []*entities.OrderSummary{}
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, &entities.OrderSummary{
				ID: o.ID, Amount: o.Amount, Status: o.Status, Items: o.Items, CreatedAt: o.CreatedAt,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *orderRepoStub) ActiveByUser(_ context.Context, userID uuid.UUID) (*entities.OrderSummary, error) {
	var latest *entities.Order
	for _, o := range s.orders {
		if o.UserID == userID && !o.Status.IsTerminal() {
			if latest == nil || o.CreatedAt.After(latest.CreatedAt) {
				latest = o
			}
		}
	}
	if latest == nil {
		return nil, nil
	}
	return &entities.OrderSummary{ID: latest.ID, Amount: latest.Amount, Status: latest.Status}, nil
}

func (s *orderRepoStub) UpdateStatus(_ context.Context, id uuid.UUID, status entities.OrderStatus) (*entities.Order, error) {
	for _, o := range s.orders {
		if o.ID == id {
			o.Status = status
			cpy := *o
			return &cpy, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *orderRepoStub) CountBlockingForAddress(_ context.Context, addressID uuid.UUID) (int, int, error) {
	blocking, total := 0, 0
	for _, o := range s.orders {
		if o.AddressID != nil && *o.AddressID == addressID {
			total++
			if o.Status != entities.OrderStatusDelivered {
				blocking++
			}
		}
	}
	return blocking, total, nil
}

func (s *orderRepoStub) ListRecent(_ context.Context, limit int) ([]*entities.AdminOrderView, error) {
	out := []*entities.AdminOrderView{}
	for _, o := range s.orders {
		out = append(out, &entities.AdminOrderView{ID: o.ID, Amount: o.Amount, Status: o.Status})
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *orderRepoStub) CountByStatus(_ context.Context, status entities.OrderStatus) (int, error) {
	n := 0
	for _, o := range s.orders {
		if o.Status == status {
			n++
		}
	}
	return n, nil
}

func (s *orderRepoStub) DashboardStats(context.Context, time.Time) (*entities.DashboardStats, error) {
	return &entities.DashboardStats{SuccessRate: "0.0", Revenue24h: decimal.Zero}, nil
}

type addressRepoStub struct {
	addresses map[uuid.UUID]*entities.DeliveryAddress
}

func newAddressRepoStub() *addressRepoStub {
	return &addressRepoStub{addresses: map[uuid.UUID]*entities.DeliveryAddress{}}
}

func (s *addressRepoStub) Create(_ context.Context, addr *entities.DeliveryAddress) error {
	if addr.IsDefault {
		for _, a := range s.addresses {
			if a.UserID == addr.UserID {
				a.IsDefault = false
			}
		}
	}
	cpy := *addr
	s.addresses[addr.ID] = &cpy
	return nil
}

func (s *addressRepoStub) GetByIDForUser(_ context.Context, id, userID uuid.UUID) (*entities.DeliveryAddress, error) {
	a, ok := s.addresses[id]
	if !ok || a.UserID != userID {
		return nil, domainerrors.ErrNotFound
	}
	cpy := *a
	return &cpy, nil
}

func (s *addressRepoStub) FindByUserAndStreet(_ context.Context, userID uuid.UUID, street string) (*entities.DeliveryAddress, error) {
	for _, a := range s.addresses {
		if a.UserID == userID && a.Street == street {
			cpy := *a
			return &cpy, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *addressRepoStub) ListByUser(_ context.Context, userID uuid.UUID) ([]*entities.DeliveryAddress, error) {
	out := []*entities.DeliveryAddress{}
	for _, a := range s.addresses {
		if a.UserID == userID {
			cpy := *a
			out = append(out, &cpy)
		}
	}
	return out, nil
}

func (s *addressRepoStub) Delete(_ context.Context, id, userID uuid.UUID) error {
	a, ok := s.addresses[id]
	if !ok || a.UserID != userID {
		return domainerrors.ErrNotFound
	}
	delete(s.addresses, id)
	return nil
}

type referralRepoStub struct {
	referrals map[uuid.UUID]*entities.Referral
	uses      map[uuid.UUID][]uuid.UUID
}

func newReferralRepoStub() *referralRepoStub {
	return &referralRepoStub{
		referrals: map[uuid.UUID]*entities.Referral{},
		uses:      map[uuid.UUID][]uuid.UUID{},
	}
}

func (s *referralRepoStub) add(code string, ownerID uuid.UUID, maxUses int64) *entities.Referral {
	r := &entities.Referral{ID: utils.GenerateUUIDv7(), RefCode: code, UserID: ownerID}
	if maxUses > 0 {
		r.MaxUses.SetValid(maxUses)
	}
	s.referrals[r.ID] = r
	return r
}

func (s *referralRepoStub) Create(_ context.Context, referral *entities.Referral) error {
	for _, r := range s.referrals {
		if r.RefCode == referral.RefCode {
			return domainerrors.ErrAlreadyExists
		}
	}
	cpy := *referral
	s.referrals[referral.ID] = &cpy
	return nil
}

func (s *referralRepoStub) GetByCode(_ context.Context, code string) (*entities.Referral, error) {
	for _, r := range s.referrals {
		if r.RefCode == code {
			cpy := *r
			return &cpy, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *referralRepoStub) CountUses(_ context.Context, referralID uuid.UUID) (int, error) {
	return len(s.uses[referralID]), nil
}

func (s *referralRepoStub) InsertUseIfBelowCap(_ context.Context, referral *entities.Referral, userID uuid.UUID) error {
	if referral.MaxUses.Valid && int64(len(s.uses[referral.ID])) >= referral.MaxUses.Int64 {
		return domainerrors.ErrReferralLimitReached
	}
	s.uses[referral.ID] = append(s.uses[referral.ID], userID)
	return nil
}

func (s *referralRepoStub) MarkFirstRedeemer(_ context.Context, referralID, userID uuid.UUID) error {
	r, ok := s.referrals[referralID]
	if ok && r.ReferredUserID == nil {
		r.ReferredUserID = &userID
	}
	return nil
}

func (s *referralRepoStub) ListWithStats(context.Context) ([]*entities.ReferralWithStats, error) {
	out := []*entities.ReferralWithStats{}
	for _, r := range s.referrals {
		out = append(out, &entities.ReferralWithStats{
			Referral:  *r,
			UsesCount: len(s.uses[r.ID]),
		})
	}
	return out, nil
}

type catalogRepoStub struct {
	entries  []*entities.CatalogEntry
	items    []*entities.Item
	partners []*entities.Partner
}

func (s *catalogRepoStub) ListEntries(_ context.Context, category string) ([]*entities.CatalogEntry, error) {
	if category == "" || category == "all" {
		return s.entries, nil
	}
	out := []*entities.CatalogEntry{}
	for _, e := range s.entries {
		if string(e.Category) == category {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *catalogRepoStub) ListItems(_ context.Context, catalogID uuid.UUID) ([]*entities.Item, error) {
	out := []*entities.Item{}
	for _, it := range s.items {
		if it.CatalogID == catalogID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *catalogRepoStub) ListPartners(context.Context) ([]*entities.Partner, error) {
	return s.partners, nil
}

func (s *catalogRepoStub) CreateEntry(_ context.Context, entry *entities.CatalogEntry) error {
	s.entries = append(s.entries, entry)
	return nil
}

func (s *catalogRepoStub) CreateItem(_ context.Context, item *entities.Item) error {
	s.items = append(s.items, item)
	return nil
}

func (s *catalogRepoStub) CreatePartner(_ context.Context, partner *entities.Partner) error {
	s.partners = append(s.partners, partner)
	return nil
}

func (s *catalogRepoStub) CountEntries(context.Context) (int64, error) {
	return int64(len(s.entries)), nil
}
