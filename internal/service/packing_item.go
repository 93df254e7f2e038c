package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/planner"
	"github.com/pkordes/trip-planner/internal/repo"
)

// PackingItemService implements business logic for the packing checklist.
// After creation only the checked flag of an item can change.
type PackingItemService struct {
	trips repo.TripRepo
	items repo.PackingItemRepo
}

// NewPackingItemService constructs a PackingItemService backed by the provided repos.
func NewPackingItemService(trips repo.TripRepo, items repo.PackingItemRepo) *PackingItemService {
	return &PackingItemService{trips: trips, items: items}
}

// Create verifies the parent trip, validates and persists a new item.
// A zero DisplayOrder places the item after the trip's existing items.
func (s *PackingItemService) Create(ctx context.Context, userID uuid.UUID, item domain.PackingItem) (domain.PackingItem, error) {
	if _, err := s.trips.GetByID(ctx, userID, item.TripID); err != nil {
		return domain.PackingItem{}, fmt.Errorf("service.PackingItemService.Create: %w", err)
	}
	item = item.Normalize()
	if item.DisplayOrder == 0 {
		next, err := s.items.NextDisplayOrder(ctx, item.TripID)
		if err != nil {
			return domain.PackingItem{}, fmt.Errorf("service.PackingItemService.Create: %w", err)
		}
		item.DisplayOrder = next
	}
	if err := item.Validate(); err != nil {
		return domain.PackingItem{}, fmt.Errorf("service.PackingItemService.Create: %w", err)
	}
	result, err := s.items.Create(ctx, item)
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("service.PackingItemService.Create: %w", err)
	}
	return result, nil
}

// List returns the trip's packing list grouped by category.
func (s *PackingItemService) List(ctx context.Context, userID, tripID uuid.UUID) ([]planner.CategoryGroup, error) {
	if _, err := s.trips.GetByID(ctx, userID, tripID); err != nil {
		return nil, fmt.Errorf("service.PackingItemService.List: %w", err)
	}
	items, err := s.items.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.PackingItemService.List: %w", err)
	}
	return planner.GroupByCategory(items), nil
}

// SetChecked marks an item packed or unpacked.
func (s *PackingItemService) SetChecked(ctx context.Context, userID, tripID, itemID uuid.UUID, checked bool) (domain.PackingItem, error) {
	if _, err := s.trips.GetByID(ctx, userID, tripID); err != nil {
		return domain.PackingItem{}, fmt.Errorf("service.PackingItemService.SetChecked: %w", err)
	}
	result, err := s.items.SetChecked(ctx, tripID, itemID, checked)
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("service.PackingItemService.SetChecked: %w", err)
	}
	return result, nil
}

// Delete removes an item from a trip owned by userID.
func (s *PackingItemService) Delete(ctx context.Context, userID, tripID, itemID uuid.UUID) error {
	if _, err := s.trips.GetByID(ctx, userID, tripID); err != nil {
		return fmt.Errorf("service.PackingItemService.Delete: %w", err)
	}
	if err := s.items.Delete(ctx, tripID, itemID); err != nil {
		return fmt.Errorf("service.PackingItemService.Delete: %w", err)
	}
	return nil
}
