// Package domain contains the core data types for the trip planner.
// It has no database or transport dependencies and is imported by every
// other internal package (planner, repo, service, handler).
package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Trip is a user's planned journey with a date range.
// It is the top-level aggregate: activities and packing items belong to a trip
// and are deleted with it.
//
// StartDate and EndDate are calendar dates at midnight UTC. Both are required
// when persisting, but read paths treat a zero value as "absent" rather than
// failing.
type Trip struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Color       string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate enforces the field rules shared by create and update.
func (t Trip) Validate() error {
	var v ValidationError
	if strings.TrimSpace(t.Title) == "" {
		v.Add("title", "is required")
	}
	if t.StartDate.IsZero() {
		v.Add("start_date", "is required")
	}
	if t.EndDate.IsZero() {
		v.Add("end_date", "is required")
	}
	if !t.StartDate.IsZero() && !t.EndDate.IsZero() && t.EndDate.Before(t.StartDate) {
		v.Add("end_date", "must be on or after start_date")
	}
	if t.Color != "" && !colorPattern.MatchString(t.Color) {
		v.Add("color", "must be a #rrggbb hex color")
	}
	return v.Err()
}

// Normalize trims text fields and truncates dates to calendar days.
func (t Trip) Normalize() Trip {
	t.Title = strings.TrimSpace(t.Title)
	t.Destination = strings.TrimSpace(t.Destination)
	t.Color = strings.TrimSpace(t.Color)
	t.StartDate = DateOf(t.StartDate)
	t.EndDate = DateOf(t.EndDate)
	return t
}
