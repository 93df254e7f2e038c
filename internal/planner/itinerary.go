package planner

import (
	"bytes"
	"cmp"
	"slices"
	"time"

	"github.com/pkordes/trip-planner/internal/domain"
)

// DayActivities is one date bucket of an itinerary. Date is zero for the
// bucket of activities without a date.
type DayActivities struct {
	Date       time.Time
	Activities []domain.Activity
}

// Itinerary is the per-day view of a trip.
// Days has one entry per trip day, in order, even when a day is empty.
// Unscheduled holds the buckets whose date is not a trip day, in date order
// with the undated bucket last.
type Itinerary struct {
	Days        []DayActivities
	Unscheduled []DayActivities
}

// CompareTimeline orders activities for the itinerary: by date, timed
// before untimed, by start time, by display order, then by ID. IDs are
// time-ordered UUIDs so the last key is creation order.
func CompareTimeline(a, b domain.Activity) int {
	if c := compareDates(a.Date, b.Date); c != 0 {
		return c
	}
	switch {
	case a.StartTime != nil && b.StartTime == nil:
		return -1
	case a.StartTime == nil && b.StartTime != nil:
		return 1
	case a.StartTime != nil && b.StartTime != nil:
		if c := cmp.Compare(*a.StartTime, *b.StartTime); c != 0 {
			return c
		}
	}
	if c := cmp.Compare(a.DisplayOrder, b.DisplayOrder); c != 0 {
		return c
	}
	return bytes.Compare(a.ID[:], b.ID[:])
}

// SortTimeline sorts activities in place in timeline order.
// The sort is stable, so records that tie on every key keep their input order.
func SortTimeline(activities []domain.Activity) {
	slices.SortStableFunc(activities, CompareTimeline)
}

// GroupByDate partitions activities into one bucket per distinct date.
// Buckets are in date order with the undated bucket last, and each bucket
// is in timeline order. The input slice is not modified.
func GroupByDate(activities []domain.Activity) []DayActivities {
	sorted := slices.Clone(activities)
	SortTimeline(sorted)

	groups := []DayActivities{}
	for _, a := range sorted {
		d := domain.DateOf(a.Date)
		if n := len(groups); n > 0 && groups[n-1].Date.Equal(d) {
			groups[n-1].Activities = append(groups[n-1].Activities, a)
			continue
		}
		groups = append(groups, DayActivities{Date: d, Activities: []domain.Activity{a}})
	}
	return groups
}

// BuildItinerary combines TripDays and GroupByDate into the trip detail view.
func BuildItinerary(trip domain.Trip, activities []domain.Activity) Itinerary {
	days := TripDays(trip.StartDate, trip.EndDate, activities)
	groups := GroupByDate(activities)

	it := Itinerary{
		Days:        make([]DayActivities, 0, len(days)),
		Unscheduled: []DayActivities{},
	}
	used := make([]bool, len(groups))
	for _, day := range days {
		bucket := DayActivities{Date: day, Activities: []domain.Activity{}}
		if i := slices.IndexFunc(groups, func(g DayActivities) bool { return g.Date.Equal(day) }); i >= 0 {
			bucket.Activities = groups[i].Activities
			used[i] = true
		}
		it.Days = append(it.Days, bucket)
	}
	for i, g := range groups {
		if !used[i] {
			it.Unscheduled = append(it.Unscheduled, g)
		}
	}
	return it
}

// compareDates orders calendar dates ascending with the zero date last.
func compareDates(a, b time.Time) int {
	a, b = domain.DateOf(a), domain.DateOf(b)
	switch {
	case a.IsZero() && b.IsZero():
		return 0
	case a.IsZero():
		return 1
	case b.IsZero():
		return -1
	}
	return a.Compare(b)
}
