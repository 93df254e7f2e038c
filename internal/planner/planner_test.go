package planner_test

import (
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
)

// ---- helpers ---------------------------------------------------------------

func date(s string) time.Time {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func clock(s string) *domain.TimeOfDay {
	t, err := domain.ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return &t
}

// newID returns a UUIDv7 so IDs created later compare greater.
func newID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

func titles(acts []domain.Activity) []string {
	out := make([]string, len(acts))
	for i, a := range acts {
		out[i] = a.Title
	}
	return out
}

func names(items []domain.PackingItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}
