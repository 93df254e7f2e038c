package handler

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/planner"
	"github.com/pkordes/trip-planner/internal/service"
)

// Wire types. Field names and JSON tags follow api/openapi.yaml.

// Pagination describes the page returned by a list endpoint.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// TripRequest is the body of POST /trips and PUT /trips/{id}.
type TripRequest struct {
	Title       string              `json:"title"`
	Destination *string             `json:"destination,omitempty"`
	StartDate   *openapi_types.Date `json:"start_date,omitempty"`
	EndDate     *openapi_types.Date `json:"end_date,omitempty"`
	Color       *string             `json:"color,omitempty"`
	Notes       *string             `json:"notes,omitempty"`
}

// Trip is the wire form of domain.Trip.
type Trip struct {
	Id          openapi_types.UUID `json:"id"`
	Title       string             `json:"title"`
	Destination *string            `json:"destination,omitempty"`
	StartDate   openapi_types.Date `json:"start_date"`
	EndDate     openapi_types.Date `json:"end_date"`
	Color       *string            `json:"color,omitempty"`
	Notes       *string            `json:"notes,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// TripList is the body of GET /trips.
type TripList struct {
	Tab        string     `json:"tab"`
	Data       []Trip     `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// DayActivities is one date of the itinerary. Date is null for activities
// that have no date.
type DayActivities struct {
	Date       *openapi_types.Date `json:"date"`
	Activities []Activity          `json:"activities"`
}

// Itinerary is the per-day view of a trip.
type Itinerary struct {
	Days        []DayActivities `json:"days"`
	Unscheduled []DayActivities `json:"unscheduled"`
}

// TripDetail is the body of GET /trips/{id}.
type TripDetail struct {
	Trip      Trip            `json:"trip"`
	Itinerary Itinerary       `json:"itinerary"`
	Packing   []CategoryGroup `json:"packing"`
}

// ActivityRequest is the body of POST and PUT on activities.
// Times are "15:04" strings.
type ActivityRequest struct {
	Title        string              `json:"title"`
	Date         *openapi_types.Date `json:"date,omitempty"`
	StartTime    *string             `json:"start_time,omitempty"`
	EndTime      *string             `json:"end_time,omitempty"`
	Location     *string             `json:"location,omitempty"`
	Address      *string             `json:"address,omitempty"`
	Url          *string             `json:"url,omitempty"`
	BookingCode  *string             `json:"booking_code,omitempty"`
	Cost         *int64              `json:"cost,omitempty"`
	Memo         *string             `json:"memo,omitempty"`
	DisplayOrder *int                `json:"display_order,omitempty"`
}

// Activity is the wire form of domain.Activity.
type Activity struct {
	Id           openapi_types.UUID `json:"id"`
	TripId       openapi_types.UUID `json:"trip_id"`
	Title        string             `json:"title"`
	Date         openapi_types.Date `json:"date"`
	StartTime    *string            `json:"start_time,omitempty"`
	EndTime      *string            `json:"end_time,omitempty"`
	Location     *string            `json:"location,omitempty"`
	Address      *string            `json:"address,omitempty"`
	Url          *string            `json:"url,omitempty"`
	BookingCode  *string            `json:"booking_code,omitempty"`
	Cost         *int64             `json:"cost,omitempty"`
	Memo         *string            `json:"memo,omitempty"`
	DisplayOrder int                `json:"display_order"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// PackingItemRequest is the body of POST /trips/{id}/packing-items.
type PackingItemRequest struct {
	Name         string  `json:"name"`
	Category     *string `json:"category,omitempty"`
	Checked      *bool   `json:"checked,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty"`
}

// PackingItemPatch is the body of PATCH /trips/{id}/packing-items/{itemID}.
type PackingItemPatch struct {
	Checked *bool `json:"checked"`
}

// PackingItem is the wire form of domain.PackingItem.
type PackingItem struct {
	Id           openapi_types.UUID `json:"id"`
	TripId       openapi_types.UUID `json:"trip_id"`
	Name         string             `json:"name"`
	Category     *string            `json:"category,omitempty"`
	Checked      bool               `json:"checked"`
	DisplayOrder int                `json:"display_order"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// CategoryGroup is one category of the packing list.
type CategoryGroup struct {
	Category string        `json:"category"`
	Checked  int           `json:"checked"`
	Total    int           `json:"total"`
	Items    []PackingItem `json:"items"`
}

// PackingList is the body of GET /trips/{id}/packing-items.
type PackingList struct {
	Categories []CategoryGroup `json:"categories"`
}

// --- mapping helpers --------------------------------------------------------

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func dateValue(d *openapi_types.Date) time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.Time
}

func dateRef(t time.Time) *openapi_types.Date {
	if t.IsZero() {
		return nil
	}
	return &openapi_types.Date{Time: t}
}

func tripFromRequest(body TripRequest) domain.Trip {
	return domain.Trip{
		Title:       body.Title,
		Destination: deref(body.Destination),
		StartDate:   dateValue(body.StartDate),
		EndDate:     dateValue(body.EndDate),
		Color:       deref(body.Color),
		Notes:       deref(body.Notes),
	}
}

func tripToResponse(t domain.Trip) Trip {
	return Trip{
		Id:          t.ID,
		Title:       t.Title,
		Destination: optional(t.Destination),
		StartDate:   openapi_types.Date{Time: t.StartDate},
		EndDate:     openapi_types.Date{Time: t.EndDate},
		Color:       optional(t.Color),
		Notes:       optional(t.Notes),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// activityFromRequest maps the body onto a domain.Activity. Time strings are
// parsed here; a malformed one is reported as a field error.
func activityFromRequest(body ActivityRequest) (domain.Activity, error) {
	a := domain.Activity{
		Title:       body.Title,
		Date:        dateValue(body.Date),
		Location:    deref(body.Location),
		Address:     deref(body.Address),
		URL:         deref(body.Url),
		BookingCode: deref(body.BookingCode),
		Cost:        body.Cost,
		Memo:        deref(body.Memo),
	}
	if body.DisplayOrder != nil {
		a.DisplayOrder = *body.DisplayOrder
	}

	var verr domain.ValidationError
	for field, f := range map[string]struct {
		raw *string
		dst **domain.TimeOfDay
	}{
		"start_time": {body.StartTime, &a.StartTime},
		"end_time":   {body.EndTime, &a.EndTime},
	} {
		if f.raw == nil || *f.raw == "" {
			continue
		}
		t, err := domain.ParseTimeOfDay(*f.raw)
		if err != nil {
			verr.Add(field, "must be a time of day (HH:MM)")
			continue
		}
		*f.dst = &t
	}
	if body.DisplayOrder != nil && *body.DisplayOrder < 1 {
		verr.Add("display_order", "must be greater than or equal to 1")
	}
	return a, verr.Err()
}

func timeString(t *domain.TimeOfDay) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}

func activityToResponse(a domain.Activity) Activity {
	return Activity{
		Id:           a.ID,
		TripId:       a.TripID,
		Title:        a.Title,
		Date:         openapi_types.Date{Time: a.Date},
		StartTime:    timeString(a.StartTime),
		EndTime:      timeString(a.EndTime),
		Location:     optional(a.Location),
		Address:      optional(a.Address),
		Url:          optional(a.URL),
		BookingCode:  optional(a.BookingCode),
		Cost:         a.Cost,
		Memo:         optional(a.Memo),
		DisplayOrder: a.DisplayOrder,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func activitiesToResponse(acts []domain.Activity) []Activity {
	out := make([]Activity, len(acts))
	for i, a := range acts {
		out[i] = activityToResponse(a)
	}
	return out
}

func daysToResponse(days []planner.DayActivities) []DayActivities {
	out := make([]DayActivities, len(days))
	for i, d := range days {
		out[i] = DayActivities{
			Date:       dateRef(d.Date),
			Activities: activitiesToResponse(d.Activities),
		}
	}
	return out
}

// packingItemFromRequest maps a create body. An omitted display_order stays
// zero so the service appends the item; an explicit one must be positive.
func packingItemFromRequest(body PackingItemRequest) (domain.PackingItem, *domain.ValidationError) {
	item := domain.PackingItem{
		Name:     body.Name,
		Category: domain.Category(deref(body.Category)),
	}
	if body.Checked != nil {
		item.Checked = *body.Checked
	}
	if body.DisplayOrder != nil {
		if *body.DisplayOrder < 1 {
			verr := &domain.ValidationError{}
			verr.Add("display_order", "must be greater than or equal to 1")
			return domain.PackingItem{}, verr
		}
		item.DisplayOrder = *body.DisplayOrder
	}
	return item, nil
}

func packingItemToResponse(it domain.PackingItem) PackingItem {
	return PackingItem{
		Id:           it.ID,
		TripId:       it.TripID,
		Name:         it.Name,
		Category:     optional(string(it.Category)),
		Checked:      it.Checked,
		DisplayOrder: it.DisplayOrder,
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
	}
}

func groupsToResponse(groups []planner.CategoryGroup) []CategoryGroup {
	out := make([]CategoryGroup, len(groups))
	for i, g := range groups {
		items := make([]PackingItem, len(g.Items))
		for j, it := range g.Items {
			items[j] = packingItemToResponse(it)
		}
		out[i] = CategoryGroup{
			Category: string(g.Category),
			Checked:  g.Checked,
			Total:    g.Total,
			Items:    items,
		}
	}
	return out
}

func detailToResponse(d service.TripDetail) TripDetail {
	return TripDetail{
		Trip: tripToResponse(d.Trip),
		Itinerary: Itinerary{
			Days:        daysToResponse(d.Itinerary.Days),
			Unscheduled: daysToResponse(d.Itinerary.Unscheduled),
		},
		Packing: groupsToResponse(d.Packing),
	}
}
