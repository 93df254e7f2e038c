package domain

import "math"

const (
	maxLimit = 100
	// maxPage keeps Offset within int at the largest limit.
	maxPage = math.MaxInt / maxLimit
)

// PaginationParams carries page/limit values from the HTTP layer to the service layer.
// Page is 1-indexed. Limit is capped at 100 by NewPaginationParams.
type PaginationParams struct {
	// Page is the current page number, starting at 1.
	Page int
	// Limit is the maximum number of items to return.
	Limit int
}

// NewPaginationParams builds a PaginationParams from optional HTTP query params.
// Nil pointers fall back to sane defaults (page=1, limit=20).
// The limit is capped at 100 and the page at maxPage.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: 20}
	if page != nil && *page >= 1 {
		p.Page = min(*page, maxPage)
	}
	if limit != nil && *limit >= 1 {
		p.Limit = min(*limit, maxLimit)
	}
	return p
}

// Offset returns the zero-based index of the first item on the page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Paginate returns the window of items selected by p. Trip lists are
// filtered and sorted in memory, so paging happens after the tab is applied.
// A page past the end yields an empty window.
func Paginate[T any](items []T, p PaginationParams) []T {
	if p.Page < 1 || p.Limit < 1 || p.Page-1 > len(items)/p.Limit {
		return items[len(items):]
	}
	start := min(p.Offset(), len(items))
	end := min(start+p.Limit, len(items))
	return items[start:end]
}
