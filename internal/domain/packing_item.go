package domain

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category labels a packing item. The values in Categories are the
// recognized set; any other non-blank string is an "other" category that
// only reaches the grouping engine through legacy or imported data.
type Category string

// Recognized categories in their display order.
const (
	CategoryClothing   Category = "衣類"
	CategoryToiletries Category = "洗面・バス用品"
	CategoryElectronic Category = "電子機器"
	CategoryValuables  Category = "貴重品・書類"
	CategoryHealth     Category = "薬・ヘルスケア"
	CategoryOther      Category = "その他"
)

// Uncategorized is the bucket for items with a blank category.
const Uncategorized Category = "未分類"

// Categories is the fixed preferred list, used for validation and as the
// default display order of packing groups.
var Categories = []Category{
	CategoryClothing,
	CategoryToiletries,
	CategoryElectronic,
	CategoryValuables,
	CategoryHealth,
	CategoryOther,
}

// Known reports whether c is one of Categories.
func (c Category) Known() bool {
	return slices.Contains(Categories, c)
}

// Rank returns the position of c in Categories, or -1 for other categories.
func (c Category) Rank() int {
	return slices.Index(Categories, c)
}

// PackingItem is a checklist entry of a trip.
type PackingItem struct {
	ID           uuid.UUID
	TripID       uuid.UUID
	Name         string
	Category     Category
	Checked      bool
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CategoryKey is the grouping key of an item: its category, or
// Uncategorized when the category is blank.
func CategoryKey(item PackingItem) Category {
	c := Category(strings.TrimSpace(string(item.Category)))
	if c == "" {
		return Uncategorized
	}
	return c
}

// Validate enforces the field rules for a packing item.
func (p PackingItem) Validate() error {
	var v ValidationError
	if strings.TrimSpace(p.Name) == "" {
		v.Add("name", "is required")
	}
	if c := strings.TrimSpace(string(p.Category)); c != "" && !Category(c).Known() {
		v.Add("category", "is not included in the list")
	}
	if p.DisplayOrder < 1 {
		v.Add("display_order", "must be greater than or equal to 1")
	}
	return v.Err()
}

// Normalize trims the name and category.
func (p PackingItem) Normalize() PackingItem {
	p.Name = strings.TrimSpace(p.Name)
	p.Category = Category(strings.TrimSpace(string(p.Category)))
	return p
}
