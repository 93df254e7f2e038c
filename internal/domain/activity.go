package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Activity is a single scheduled entry in a trip's itinerary.
// Date may fall outside the parent trip's range; that is allowed.
// StartTime and EndTime are optional and no ordering between them is enforced.
type Activity struct {
	ID           uuid.UUID
	TripID       uuid.UUID
	Title        string
	Date         time.Time
	StartTime    *TimeOfDay
	EndTime      *TimeOfDay
	Location     string
	Address      string
	URL          string
	BookingCode  string
	Cost         *int64
	Memo         string
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate enforces the field rules shared by create and update. Call it
// after Normalize, which fills the default display order.
func (a Activity) Validate() error {
	var v ValidationError
	if strings.TrimSpace(a.Title) == "" {
		v.Add("title", "is required")
	}
	if a.Date.IsZero() {
		v.Add("date", "is required")
	}
	if a.Cost != nil && *a.Cost < 0 {
		v.Add("cost", "must be greater than or equal to 0")
	}
	if a.DisplayOrder < 1 {
		v.Add("display_order", "must be greater than or equal to 1")
	}
	return v.Err()
}

// Normalize trims text fields, truncates Date to a calendar day and fills
// the default display order.
func (a Activity) Normalize() Activity {
	a.Title = strings.TrimSpace(a.Title)
	a.Location = strings.TrimSpace(a.Location)
	a.Address = strings.TrimSpace(a.Address)
	a.URL = strings.TrimSpace(a.URL)
	a.BookingCode = strings.TrimSpace(a.BookingCode)
	a.Date = DateOf(a.Date)
	if a.DisplayOrder == 0 {
		a.DisplayOrder = 1
	}
	return a
}
