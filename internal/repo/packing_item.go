package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trip-planner/internal/domain"
)

// PackingItemRepo defines the persistence operations for PackingItems.
// All write and single-read operations are scoped by tripID to enforce ownership.
type PackingItemRepo interface {
	// Create inserts a new packing item and returns the persisted record.
	Create(ctx context.Context, item domain.PackingItem) (domain.PackingItem, error)

	// GetByID retrieves a single item, scoped to the given tripID.
	// Returns domain.ErrNotFound if no item with that ID exists under that trip.
	GetByID(ctx context.Context, tripID, itemID uuid.UUID) (domain.PackingItem, error)

	// ListByTripID returns all packing items of a trip.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.PackingItem, error)

	// SetChecked flips the checked flag of an item and returns the updated record.
	// Returns domain.ErrNotFound if no item with that ID exists under that trip.
	SetChecked(ctx context.Context, tripID, itemID uuid.UUID, checked bool) (domain.PackingItem, error)

	// Delete removes an item by ID, scoped to the given tripID.
	// Returns domain.ErrNotFound if no item with that ID exists under that trip.
	Delete(ctx context.Context, tripID, itemID uuid.UUID) error

	// NextDisplayOrder returns one past the highest display_order in the trip,
	// or 1 when the trip has no items.
	NextDisplayOrder(ctx context.Context, tripID uuid.UUID) (int, error)
}

// pgPackingItemRepo is the Postgres implementation of PackingItemRepo.
type pgPackingItemRepo struct {
	db db
}

// NewPackingItemRepo constructs a PackingItemRepo backed by the provided db connection.
func NewPackingItemRepo(db db) PackingItemRepo {
	return &pgPackingItemRepo{db: db}
}

const packingItemColumns = `id, trip_id, name, category, checked, display_order, created_at, updated_at`

func (r *pgPackingItemRepo) Create(ctx context.Context, item domain.PackingItem) (domain.PackingItem, error) {
	const q = `
		INSERT INTO packing_items (id, trip_id, name, category, checked, display_order)
		VALUES (@id, @trip_id, @name, @category, @checked, @display_order)
		RETURNING ` + packingItemColumns

	id, err := newID(item.ID)
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("repo.PackingItemRepo.Create: %w", err)
	}

	args := pgx.NamedArgs{
		"id":            id,
		"trip_id":       item.TripID,
		"name":          item.Name,
		"category":      string(item.Category),
		"checked":       item.Checked,
		"display_order": item.DisplayOrder,
	}

	result, err := scanPackingItem(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("repo.PackingItemRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgPackingItemRepo) GetByID(ctx context.Context, tripID, itemID uuid.UUID) (domain.PackingItem, error) {
	const q = `
		SELECT ` + packingItemColumns + `
		FROM packing_items
		WHERE id = @id AND trip_id = @trip_id`

	result, err := scanPackingItem(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": itemID, "trip_id": tripID}))
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("repo.PackingItemRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgPackingItemRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.PackingItem, error) {
	const q = `
		SELECT ` + packingItemColumns + `
		FROM packing_items
		WHERE trip_id = @trip_id
		ORDER BY category, checked, display_order, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.PackingItemRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	items := []domain.PackingItem{}
	for rows.Next() {
		it, err := scanPackingItem(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PackingItemRepo.ListByTripID: scan: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PackingItemRepo.ListByTripID: rows: %w", err)
	}
	return items, nil
}

func (r *pgPackingItemRepo) SetChecked(ctx context.Context, tripID, itemID uuid.UUID, checked bool) (domain.PackingItem, error) {
	const q = `
		UPDATE packing_items
		SET checked    = @checked,
		    updated_at = now()
		WHERE id = @id AND trip_id = @trip_id
		RETURNING ` + packingItemColumns

	args := pgx.NamedArgs{"id": itemID, "trip_id": tripID, "checked": checked}
	result, err := scanPackingItem(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("repo.PackingItemRepo.SetChecked: %w", err)
	}
	return result, nil
}

func (r *pgPackingItemRepo) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	const q = `DELETE FROM packing_items WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": itemID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.PackingItemRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.PackingItemRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgPackingItemRepo) NextDisplayOrder(ctx context.Context, tripID uuid.UUID) (int, error) {
	const q = `SELECT COALESCE(MAX(display_order), 0) + 1 FROM packing_items WHERE trip_id = @trip_id`

	var next int
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"trip_id": tripID}).Scan(&next); err != nil {
		return 0, fmt.Errorf("repo.PackingItemRepo.NextDisplayOrder: %w", err)
	}
	return next, nil
}

// scanPackingItem maps a single database row into a domain.PackingItem.
func scanPackingItem(s scanner) (domain.PackingItem, error) {
	var (
		it       domain.PackingItem
		id       pgtype.UUID
		tripID   pgtype.UUID
		category string
	)

	err := s.Scan(&id, &tripID, &it.Name, &category, &it.Checked, &it.DisplayOrder, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.PackingItem{}, domain.ErrNotFound
		}
		return domain.PackingItem{}, err
	}

	it.ID = uuid.UUID(id.Bytes)
	it.TripID = uuid.UUID(tripID.Bytes)
	it.Category = domain.Category(category)
	return it, nil
}
