package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/trip-planner/internal/domain"
)

func intPtr(i int) *int { return &i }

func TestNewPaginationParams_Defaults(t *testing.T) {
	p := domain.NewPaginationParams(nil, nil)

	assert.Equal(t, domain.PaginationParams{Page: 1, Limit: 20}, p)
}

func TestNewPaginationParams_CapsLimit(t *testing.T) {
	p := domain.NewPaginationParams(intPtr(2), intPtr(500))

	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 100, p.Limit)
	assert.Equal(t, 100, p.Offset())
}

func TestNewPaginationParams_IgnoresNonPositive(t *testing.T) {
	p := domain.NewPaginationParams(intPtr(0), intPtr(-5))

	assert.Equal(t, domain.PaginationParams{Page: 1, Limit: 20}, p)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, domain.Paginate(items, domain.PaginationParams{Page: 1, Limit: 2}))
	assert.Equal(t, []int{5}, domain.Paginate(items, domain.PaginationParams{Page: 3, Limit: 2}))
	assert.Empty(t, domain.Paginate(items, domain.PaginationParams{Page: 4, Limit: 2}))
}

func TestNewPaginationParams_CapsPage(t *testing.T) {
	p := domain.NewPaginationParams(intPtr(92233720368547760), intPtr(100))

	assert.Equal(t, math.MaxInt/100, p.Page)
	assert.Positive(t, p.Offset())
}

func TestPaginate_HugePageIsEmpty(t *testing.T) {
	items := []int{1, 2, 3}

	p := domain.NewPaginationParams(intPtr(92233720368547760), intPtr(100))
	assert.NotPanics(t, func() {
		assert.Empty(t, domain.Paginate(items, p))
	})

	// Unclamped params straight from a caller must not overflow either.
	raw := domain.PaginationParams{Page: math.MaxInt, Limit: 100}
	assert.NotPanics(t, func() {
		assert.Empty(t, domain.Paginate(items, raw))
	})
}

func TestPaginate_LastPartialPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6}

	assert.Equal(t, []int{5, 6}, domain.Paginate(items, domain.PaginationParams{Page: 3, Limit: 2}))
	assert.Empty(t, domain.Paginate(items, domain.PaginationParams{Page: 4, Limit: 2}))
}
