package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/planner"
	"github.com/pkordes/trip-planner/internal/repo"
)

// ActivityService implements business logic for Activity operations.
// Every operation first resolves the parent trip for the current user, so
// an activity under someone else's trip reads as not found.
type ActivityService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
}

// NewActivityService constructs an ActivityService backed by the provided repos.
func NewActivityService(trips repo.TripRepo, activities repo.ActivityRepo) *ActivityService {
	return &ActivityService{trips: trips, activities: activities}
}

// Create verifies the parent trip, validates the activity, then persists.
// The activity date is not checked against the trip's range.
func (s *ActivityService) Create(ctx context.Context, userID uuid.UUID, a domain.Activity) (domain.Activity, error) {
	if _, err := s.trips.GetByID(ctx, userID, a.TripID); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	a = a.Normalize()
	if err := a.Validate(); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	result, err := s.activities.Create(ctx, a)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single activity of a trip owned by userID.
func (s *ActivityService) GetByID(ctx context.Context, userID, tripID, activityID uuid.UUID) (domain.Activity, error) {
	if _, err := s.trips.GetByID(ctx, userID, tripID); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.GetByID: %w", err)
	}
	result, err := s.activities.GetByID(ctx, tripID, activityID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.GetByID: %w", err)
	}
	return result, nil
}

// List returns the trip's activities in timeline order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ActivityService) List(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Activity, error) {
	if _, err := s.trips.GetByID(ctx, userID, tripID); err != nil {
		return nil, fmt.Errorf("service.ActivityService.List: %w", err)
	}
	activities, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.List: %w", err)
	}
	if activities == nil {
		return []domain.Activity{}, nil
	}
	planner.SortTimeline(activities)
	return activities, nil
}

// Update validates and persists changes to an existing activity.
func (s *ActivityService) Update(ctx context.Context, userID uuid.UUID, a domain.Activity) (domain.Activity, error) {
	if _, err := s.trips.GetByID(ctx, userID, a.TripID); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	a = a.Normalize()
	if err := a.Validate(); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	result, err := s.activities.Update(ctx, a)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	return result, nil
}

// Delete removes an activity from a trip owned by userID.
func (s *ActivityService) Delete(ctx context.Context, userID, tripID, activityID uuid.UUID) error {
	if _, err := s.trips.GetByID(ctx, userID, tripID); err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}
	if err := s.activities.Delete(ctx, tripID, activityID); err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}
	return nil
}
