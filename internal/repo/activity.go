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

// ActivityRepo defines the persistence operations for Activities.
// All write and single-read operations are scoped by tripID to enforce ownership.
type ActivityRepo interface {
	// Create inserts a new activity and returns the persisted record.
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)

	// GetByID retrieves a single activity, scoped to the given tripID.
	// Returns domain.ErrNotFound if no activity with that ID exists under that trip.
	GetByID(ctx context.Context, tripID, activityID uuid.UUID) (domain.Activity, error)

	// ListByTripID returns all activities of a trip. The order is the
	// database's; callers apply the timeline order.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)

	// Update overwrites the mutable fields of an activity, scoped to activity.TripID.
	// Returns domain.ErrNotFound if no activity with that ID exists under that trip.
	Update(ctx context.Context, activity domain.Activity) (domain.Activity, error)

	// Delete removes an activity by ID, scoped to the given tripID.
	// Returns domain.ErrNotFound if no activity with that ID exists under that trip.
	Delete(ctx context.Context, tripID, activityID uuid.UUID) error
}

// pgActivityRepo is the Postgres implementation of ActivityRepo.
type pgActivityRepo struct {
	db db
}

// NewActivityRepo constructs an ActivityRepo backed by the provided db connection.
func NewActivityRepo(db db) ActivityRepo {
	return &pgActivityRepo{db: db}
}

const activityColumns = `id, trip_id, title, date, start_time, end_time, location, address, url,
	booking_code, cost, memo, display_order, created_at, updated_at`

func (r *pgActivityRepo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	const q = `
		INSERT INTO activities (id, trip_id, title, date, start_time, end_time, location, address,
		                        url, booking_code, cost, memo, display_order)
		VALUES (@id, @trip_id, @title, @date, @start_time, @end_time, @location, @address,
		        @url, @booking_code, @cost, @memo, @display_order)
		RETURNING ` + activityColumns

	id, err := newID(a.ID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: %w", err)
	}
	a.ID = id

	result, err := scanActivity(r.db.QueryRow(ctx, q, activityArgs(a)))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) GetByID(ctx context.Context, tripID, activityID uuid.UUID) (domain.Activity, error) {
	const q = `
		SELECT ` + activityColumns + `
		FROM activities
		WHERE id = @id AND trip_id = @trip_id`

	result, err := scanActivity(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": activityID, "trip_id": tripID}))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	const q = `
		SELECT ` + activityColumns + `
		FROM activities
		WHERE trip_id = @trip_id
		ORDER BY date, start_time NULLS LAST, display_order, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	activities := []domain.Activity{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ActivityRepo.ListByTripID: scan: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByTripID: rows: %w", err)
	}
	return activities, nil
}

func (r *pgActivityRepo) Update(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	const q = `
		UPDATE activities
		SET title         = @title,
		    date          = @date,
		    start_time    = @start_time,
		    end_time      = @end_time,
		    location      = @location,
		    address       = @address,
		    url           = @url,
		    booking_code  = @booking_code,
		    cost          = @cost,
		    memo          = @memo,
		    display_order = @display_order,
		    updated_at    = now()
		WHERE id = @id AND trip_id = @trip_id
		RETURNING ` + activityColumns

	result, err := scanActivity(r.db.QueryRow(ctx, q, activityArgs(a)))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) Delete(ctx context.Context, tripID, activityID uuid.UUID) error {
	const q = `DELETE FROM activities WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": activityID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// activityArgs maps an activity onto the named parameters shared by insert and update.
func activityArgs(a domain.Activity) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":            a.ID,
		"trip_id":       a.TripID,
		"title":         a.Title,
		"date":          a.Date,
		"start_time":    timeParam(a.StartTime),
		"end_time":      timeParam(a.EndTime),
		"location":      a.Location,
		"address":       a.Address,
		"url":           a.URL,
		"booking_code":  a.BookingCode,
		"cost":          a.Cost, // nil becomes NULL
		"memo":          a.Memo,
		"display_order": a.DisplayOrder,
	}
}

// timeParam converts an optional time of day to a Postgres time value.
func timeParam(t *domain.TimeOfDay) pgtype.Time {
	if t == nil {
		return pgtype.Time{}
	}
	return pgtype.Time{Microseconds: t.Microseconds(), Valid: true}
}

// timeOfDay converts a scanned Postgres time back to an optional TimeOfDay.
func timeOfDay(t pgtype.Time) *domain.TimeOfDay {
	if !t.Valid {
		return nil
	}
	tod := domain.TimeOfDay(t.Microseconds * 1000)
	return &tod
}

// scanActivity maps a single database row into a domain.Activity.
// It handles the UUID, nullable time and nullable cost conversions.
func scanActivity(s scanner) (domain.Activity, error) {
	var (
		a         domain.Activity
		id        pgtype.UUID
		tripID    pgtype.UUID
		date      pgtype.Date
		startTime pgtype.Time
		endTime   pgtype.Time
		cost      pgtype.Int8
	)

	err := s.Scan(&id, &tripID, &a.Title, &date, &startTime, &endTime, &a.Location, &a.Address,
		&a.URL, &a.BookingCode, &cost, &a.Memo, &a.DisplayOrder, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Activity{}, domain.ErrNotFound
		}
		return domain.Activity{}, err
	}

	a.ID = uuid.UUID(id.Bytes)
	a.TripID = uuid.UUID(tripID.Bytes)
	if date.Valid {
		a.Date = domain.DateOf(date.Time)
	}
	a.StartTime = timeOfDay(startTime)
	a.EndTime = timeOfDay(endTime)
	if cost.Valid {
		c := cost.Int64
		a.Cost = &c
	}
	return a, nil
}
