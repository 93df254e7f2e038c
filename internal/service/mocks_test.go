package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

// mockTripRepo is a hand-written test double for repo.TripRepo.
// Each method is a function field: set only the ones your test needs.
type mockTripRepo struct {
	create     func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID    func(ctx context.Context, userID, id uuid.UUID) (domain.Trip, error)
	listByUser func(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error)
	update     func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete     func(ctx context.Context, userID, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, userID, id)
}
func (m *mockTripRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error) {
	return m.listByUser(ctx, userID)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.delete(ctx, userID, id)
}

// compile-time check: mockTripRepo must satisfy repo.TripRepo.
var _ repo.TripRepo = (*mockTripRepo)(nil)

// ownedTrips returns a trip repo whose GetByID succeeds only for owner.
func ownedTrips(owner uuid.UUID) *mockTripRepo {
	return &mockTripRepo{
		getByID: func(_ context.Context, userID, id uuid.UUID) (domain.Trip, error) {
			if userID != owner {
				return domain.Trip{}, domain.ErrNotFound
			}
			return domain.Trip{ID: id, UserID: userID}, nil
		},
	}
}

// mockActivityRepo is a hand-written test double for repo.ActivityRepo.
type mockActivityRepo struct {
	create       func(ctx context.Context, a domain.Activity) (domain.Activity, error)
	getByID      func(ctx context.Context, tripID, activityID uuid.UUID) (domain.Activity, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
	update       func(ctx context.Context, a domain.Activity) (domain.Activity, error)
	delete       func(ctx context.Context, tripID, activityID uuid.UUID) error
}

func (m *mockActivityRepo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	return m.create(ctx, a)
}
func (m *mockActivityRepo) GetByID(ctx context.Context, tripID, activityID uuid.UUID) (domain.Activity, error) {
	return m.getByID(ctx, tripID, activityID)
}
func (m *mockActivityRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockActivityRepo) Update(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	return m.update(ctx, a)
}
func (m *mockActivityRepo) Delete(ctx context.Context, tripID, activityID uuid.UUID) error {
	return m.delete(ctx, tripID, activityID)
}

var _ repo.ActivityRepo = (*mockActivityRepo)(nil)

// mockPackingItemRepo is a hand-written test double for repo.PackingItemRepo.
type mockPackingItemRepo struct {
	create           func(ctx context.Context, item domain.PackingItem) (domain.PackingItem, error)
	getByID          func(ctx context.Context, tripID, itemID uuid.UUID) (domain.PackingItem, error)
	listByTripID     func(ctx context.Context, tripID uuid.UUID) ([]domain.PackingItem, error)
	setChecked       func(ctx context.Context, tripID, itemID uuid.UUID, checked bool) (domain.PackingItem, error)
	delete           func(ctx context.Context, tripID, itemID uuid.UUID) error
	nextDisplayOrder func(ctx context.Context, tripID uuid.UUID) (int, error)
}

func (m *mockPackingItemRepo) Create(ctx context.Context, item domain.PackingItem) (domain.PackingItem, error) {
	return m.create(ctx, item)
}
func (m *mockPackingItemRepo) GetByID(ctx context.Context, tripID, itemID uuid.UUID) (domain.PackingItem, error) {
	return m.getByID(ctx, tripID, itemID)
}
func (m *mockPackingItemRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.PackingItem, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockPackingItemRepo) SetChecked(ctx context.Context, tripID, itemID uuid.UUID, checked bool) (domain.PackingItem, error) {
	return m.setChecked(ctx, tripID, itemID, checked)
}
func (m *mockPackingItemRepo) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	return m.delete(ctx, tripID, itemID)
}
func (m *mockPackingItemRepo) NextDisplayOrder(ctx context.Context, tripID uuid.UUID) (int, error) {
	return m.nextDisplayOrder(ctx, tripID)
}

var _ repo.PackingItemRepo = (*mockPackingItemRepo)(nil)
