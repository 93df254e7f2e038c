package planner

import (
	"slices"
	"time"

	"github.com/pkordes/trip-planner/internal/domain"
)

// TripDays returns the calendar days a trip spans.
//
// With a valid range (both dates set, start <= end) the result is every day
// from start to end inclusive. Otherwise it falls back to the distinct dates
// used by the activities, ascending; activities without a date are skipped.
func TripDays(start, end time.Time, activities []domain.Activity) []time.Time {
	start, end = domain.DateOf(start), domain.DateOf(end)
	if !start.IsZero() && !end.IsZero() && !start.After(end) {
		days := make([]time.Time, 0, int(end.Sub(start).Hours()/24)+1)
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			days = append(days, d)
		}
		return days
	}

	days := []time.Time{}
	for _, a := range activities {
		d := domain.DateOf(a.Date)
		if d.IsZero() || slices.ContainsFunc(days, d.Equal) {
			continue
		}
		days = append(days, d)
	}
	slices.SortFunc(days, time.Time.Compare)
	return days
}
