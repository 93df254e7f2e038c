package planner

import (
	"bytes"
	"cmp"
	"slices"

	"github.com/pkordes/trip-planner/internal/domain"
)

// CategoryGroup is one category of the packing list with its items in
// checklist order.
type CategoryGroup struct {
	Category domain.Category
	Items    []domain.PackingItem
	Checked  int
	Total    int
}

// CompareChecklist orders items within a category: unchecked first, then by
// display order, then by ID.
func CompareChecklist(a, b domain.PackingItem) int {
	if a.Checked != b.Checked {
		if a.Checked {
			return 1
		}
		return -1
	}
	if c := cmp.Compare(a.DisplayOrder, b.DisplayOrder); c != 0 {
		return c
	}
	return bytes.Compare(a.ID[:], b.ID[:])
}

// CategoryOrder returns the categories in use, in display order:
// recognized categories in their declared order, then other categories
// sorted by byte order, then Uncategorized. Categories without items are
// omitted.
func CategoryOrder(items []domain.PackingItem) []domain.Category {
	present := make(map[domain.Category]bool)
	for _, it := range items {
		present[domain.CategoryKey(it)] = true
	}

	order := make([]domain.Category, 0, len(present))
	for c := range present {
		order = append(order, c)
	}
	slices.SortFunc(order, compareCategories)
	return order
}

// compareCategories orders recognized categories by Rank, then other
// categories by byte order, then Uncategorized.
func compareCategories(a, b domain.Category) int {
	return cmp.Or(
		cmp.Compare(categoryTier(a), categoryTier(b)),
		cmp.Compare(a.Rank(), b.Rank()),
		cmp.Compare(a, b),
	)
}

func categoryTier(c domain.Category) int {
	switch {
	case c == domain.Uncategorized:
		return 2
	case c.Rank() >= 0:
		return 0
	default:
		return 1
	}
}

// GroupByCategory buckets items by CategoryKey. Groups follow CategoryOrder
// and every item lands in exactly one group.
func GroupByCategory(items []domain.PackingItem) []CategoryGroup {
	byKey := make(map[domain.Category][]domain.PackingItem)
	for _, it := range items {
		k := domain.CategoryKey(it)
		byKey[k] = append(byKey[k], it)
	}

	order := CategoryOrder(items)
	groups := make([]CategoryGroup, 0, len(order))
	for _, c := range order {
		members := byKey[c]
		slices.SortStableFunc(members, CompareChecklist)
		g := CategoryGroup{Category: c, Items: members, Total: len(members)}
		for _, it := range members {
			if it.Checked {
				g.Checked++
			}
		}
		groups = append(groups, g)
	}
	return groups
}
