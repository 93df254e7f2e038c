// Package service contains the business logic for the trip planner.
// Services validate inputs, enforce ownership, orchestrate repo calls and
// assemble the planner views. No SQL lives here: services depend on repo
// interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/planner"
	"github.com/pkordes/trip-planner/internal/repo"
)

// TripList is one page of a user's trips under a tab.
type TripList struct {
	Tab   planner.Tab
	Trips []domain.Trip
	// Total is the number of trips in the tab before paging.
	Total int
}

// TripDetail is everything the trip page shows: the trip, its per-day
// itinerary and its categorized packing list.
type TripDetail struct {
	Trip      domain.Trip
	Itinerary planner.Itinerary
	Packing   []planner.CategoryGroup
}

// TripService implements business logic for Trip operations.
// It holds the activity and packing item repos because the detail view
// combines all three collections.
type TripService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
	items      repo.PackingItemRepo
	now        func() time.Time
}

// NewTripService constructs a TripService. now supplies the reference date
// for the upcoming/past tabs; nil means time.Now.
func NewTripService(trips repo.TripRepo, activities repo.ActivityRepo, items repo.PackingItemRepo, now func() time.Time) *TripService {
	if now == nil {
		now = time.Now
	}
	return &TripService{trips: trips, activities: activities, items: items, now: now}
}

// Create validates and persists a new trip.
// Returns domain.ErrValidation (as *domain.ValidationError) for invalid input.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	trip = trip.Normalize()
	if err := trip.Validate(); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	result, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip owned by userID.
func (s *TripService) GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Trip, error) {
	result, err := s.trips.GetByID(ctx, userID, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// List returns one page of the user's trips filtered and sorted for tab.
// An unrecognized tab is treated as planner.TabAll.
func (s *TripService) List(ctx context.Context, userID uuid.UUID, tab planner.Tab, p domain.PaginationParams) (TripList, error) {
	trips, err := s.trips.ListByUser(ctx, userID)
	if err != nil {
		return TripList{}, fmt.Errorf("service.TripService.List: %w", err)
	}

	tab = planner.ParseTab(string(tab))
	filtered := planner.FilterTrips(trips, tab, s.today())
	return TripList{
		Tab:   tab,
		Trips: domain.Paginate(filtered, p),
		Total: len(filtered),
	}, nil
}

// Detail loads a trip with its activities and packing items and arranges
// them into the itinerary and packing views.
func (s *TripService) Detail(ctx context.Context, userID, id uuid.UUID) (TripDetail, error) {
	trip, err := s.trips.GetByID(ctx, userID, id)
	if err != nil {
		return TripDetail{}, fmt.Errorf("service.TripService.Detail: %w", err)
	}
	activities, err := s.activities.ListByTripID(ctx, trip.ID)
	if err != nil {
		return TripDetail{}, fmt.Errorf("service.TripService.Detail: %w", err)
	}
	items, err := s.items.ListByTripID(ctx, trip.ID)
	if err != nil {
		return TripDetail{}, fmt.Errorf("service.TripService.Detail: %w", err)
	}

	return TripDetail{
		Trip:      trip,
		Itinerary: planner.BuildItinerary(trip, activities),
		Packing:   planner.GroupByCategory(items),
	}, nil
}

// Update validates and persists changes to an existing trip.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// trip does not exist or belongs to another user.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	trip = trip.Normalize()
	if err := trip.Validate(); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	result, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip and everything it owns.
func (s *TripService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.trips.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

func (s *TripService) today() time.Time {
	return domain.DateOf(s.now())
}
