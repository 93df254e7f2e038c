package planner

import (
	"bytes"
	"slices"
	"time"

	"github.com/pkordes/trip-planner/internal/domain"
)

// Tab selects a view of the trip list.
type Tab string

// Tabs of the trip list.
const (
	TabAll      Tab = "all"
	TabUpcoming Tab = "upcoming"
	TabPast     Tab = "past"
)

// Tabs lists the valid tab identifiers.
var Tabs = []Tab{TabAll, TabUpcoming, TabPast}

// ParseTab normalizes an untrusted tab parameter. Unknown values map to TabAll.
func ParseTab(s string) Tab {
	if t := Tab(s); slices.Contains(Tabs, t) {
		return t
	}
	return TabAll
}

// FilterTrips applies a tab to a user's trips relative to today.
//
//   - upcoming: end_date >= today, by start_date ascending
//   - past:     end_date <  today, by end_date descending
//   - all:      every trip, by start_date descending
//
// Trips without an end date belong to neither upcoming nor past. Missing
// sort keys sort last. The input slice is not modified.
func FilterTrips(trips []domain.Trip, tab Tab, today time.Time) []domain.Trip {
	today = domain.DateOf(today)
	out := make([]domain.Trip, 0, len(trips))

	switch ParseTab(string(tab)) {
	case TabUpcoming:
		for _, t := range trips {
			if !t.EndDate.IsZero() && !domain.DateOf(t.EndDate).Before(today) {
				out = append(out, t)
			}
		}
		slices.SortStableFunc(out, byDate(func(t domain.Trip) time.Time { return t.StartDate }, false))
	case TabPast:
		for _, t := range trips {
			if !t.EndDate.IsZero() && domain.DateOf(t.EndDate).Before(today) {
				out = append(out, t)
			}
		}
		slices.SortStableFunc(out, byDate(func(t domain.Trip) time.Time { return t.EndDate }, true))
	default:
		out = append(out, trips...)
		slices.SortStableFunc(out, byDate(func(t domain.Trip) time.Time { return t.StartDate }, true))
	}
	return out
}

// byDate builds a comparator on one date field. Zero dates sort last in
// either direction; ties fall back to ID.
func byDate(key func(domain.Trip) time.Time, desc bool) func(a, b domain.Trip) int {
	return func(a, b domain.Trip) int {
		c := compareDates(key(a), key(b))
		if desc && !key(a).IsZero() && !key(b).IsZero() {
			c = -c
		}
		if c != 0 {
			return c
		}
		return bytes.Compare(a.ID[:], b.ID[:])
	}
}
