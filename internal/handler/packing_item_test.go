package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/handler"
	"github.com/pkordes/trip-planner/internal/planner"
)

func itemsPath(tripID uuid.UUID, rest ...string) string {
	p := "/trips/" + tripID.String() + "/packing-items"
	for _, r := range rest {
		p += "/" + r
	}
	return p
}

func TestCreatePackingItem_201(t *testing.T) {
	tripID := uuid.New()
	var got domain.PackingItem
	svc := &mockPackingItemServicer{
		create: func(_ context.Context, userID uuid.UUID, item domain.PackingItem) (domain.PackingItem, error) {
			assert.Equal(t, testUser, userID)
			got = item
			item.ID = uuid.New()
			item.DisplayOrder = 5
			return item, nil
		},
	}

	rec := do(t, newHTTPHandler(services{items: svc}), http.MethodPost, itemsPath(tripID), map[string]any{
		"name":     "charger",
		"category": "電子機器",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, tripID, got.TripID)
	assert.Equal(t, domain.CategoryElectronic, got.Category)
	assert.Zero(t, got.DisplayOrder, "omitted display_order is left for the service to fill")

	resp := decode[handler.PackingItem](t, rec)
	assert.Equal(t, "charger", resp.Name)
	assert.Equal(t, 5, resp.DisplayOrder)
	assert.False(t, resp.Checked)
}

func TestCreatePackingItem_422_UnknownCategory(t *testing.T) {
	svc := &mockPackingItemServicer{
		create: func(_ context.Context, _ uuid.UUID, item domain.PackingItem) (domain.PackingItem, error) {
			item.DisplayOrder = 1
			return domain.PackingItem{}, item.Validate()
		},
	}

	rec := do(t, newHTTPHandler(services{items: svc}), http.MethodPost, itemsPath(uuid.New()), map[string]any{
		"name":     "kite",
		"category": "toys",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "is not included in the list", decode[handler.ErrorResponse](t, rec).Error.Fields["category"])
}

func TestCreatePackingItem_422_NonPositiveDisplayOrder(t *testing.T) {
	for _, order := range []int{0, -1} {
		t.Run(fmt.Sprint(order), func(t *testing.T) {
			svc := &mockPackingItemServicer{
				create: func(context.Context, uuid.UUID, domain.PackingItem) (domain.PackingItem, error) {
					t.Fatal("service must not be called")
					return domain.PackingItem{}, nil
				},
			}

			rec := do(t, newHTTPHandler(services{items: svc}), http.MethodPost, itemsPath(uuid.New()), map[string]any{
				"name":          "socks",
				"display_order": order,
			})

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			resp := decode[handler.ErrorResponse](t, rec)
			assert.Equal(t, "validation_error", resp.Error.Code)
			assert.Equal(t, "must be greater than or equal to 1", resp.Error.Fields["display_order"])
		})
	}
}

func TestListPackingItems_200(t *testing.T) {
	tripID := uuid.New()
	svc := &mockPackingItemServicer{
		list: func(_ context.Context, _, _ uuid.UUID) ([]planner.CategoryGroup, error) {
			return planner.GroupByCategory([]domain.PackingItem{
				{ID: uuid.New(), TripID: tripID, Name: "umbrella", DisplayOrder: 1},
				{ID: uuid.New(), TripID: tripID, Name: "passport", Category: domain.CategoryValuables, Checked: true, DisplayOrder: 1},
				{ID: uuid.New(), TripID: tripID, Name: "shirt", Category: domain.CategoryClothing, DisplayOrder: 1},
			}), nil
		},
	}

	rec := do(t, newHTTPHandler(services{items: svc}), http.MethodGet, itemsPath(tripID), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[handler.PackingList](t, rec)
	var cats []string
	for _, g := range resp.Categories {
		cats = append(cats, g.Category)
	}
	assert.Equal(t, []string{"衣類", "貴重品・書類", "未分類"}, cats)
	assert.Equal(t, 1, resp.Categories[1].Checked)
	assert.Nil(t, resp.Categories[2].Items[0].Category)
}

func TestListPackingItems_200_Empty(t *testing.T) {
	svc := &mockPackingItemServicer{
		list: func(_ context.Context, _, _ uuid.UUID) ([]planner.CategoryGroup, error) { return nil, nil },
	}

	rec := do(t, newHTTPHandler(services{items: svc}), http.MethodGet, itemsPath(uuid.New()), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"categories":[]}`, rec.Body.String())
}

func TestUpdatePackingItem_200(t *testing.T) {
	tripID, itemID := uuid.New(), uuid.New()
	svc := &mockPackingItemServicer{
		setChecked: func(_ context.Context, _, tid, iid uuid.UUID, checked bool) (domain.PackingItem, error) {
			assert.Equal(t, tripID, tid)
			assert.Equal(t, itemID, iid)
			return domain.PackingItem{ID: iid, TripID: tid, Name: "socks", Checked: checked, DisplayOrder: 1}, nil
		},
	}

	rec := do(t, newHTTPHandler(services{items: svc}), http.MethodPatch, itemsPath(tripID, itemID.String()), map[string]any{"checked": true})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[handler.PackingItem](t, rec).Checked)
}

func TestUpdatePackingItem_422_MissingChecked(t *testing.T) {
	rec := do(t, newHTTPHandler(services{}), http.MethodPatch, itemsPath(uuid.New(), uuid.New().String()), map[string]any{"name": "renamed"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decode[handler.ErrorResponse](t, rec).Error.Fields, "checked")
}

func TestUpdatePackingItem_404(t *testing.T) {
	svc := &mockPackingItemServicer{
		setChecked: func(_ context.Context, _, _, _ uuid.UUID, _ bool) (domain.PackingItem, error) {
			return domain.PackingItem{}, domain.ErrNotFound
		},
	}

	rec := do(t, newHTTPHandler(services{items: svc}), http.MethodPatch, itemsPath(uuid.New(), uuid.New().String()), map[string]any{"checked": false})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "trip or packing item not found", decode[handler.ErrorResponse](t, rec).Error.Message)
}

func TestDeletePackingItem_204(t *testing.T) {
	svc := &mockPackingItemServicer{
		delete: func(_ context.Context, _, _, _ uuid.UUID) error { return nil },
	}

	rec := do(t, newHTTPHandler(services{items: svc}), http.MethodDelete, itemsPath(uuid.New(), uuid.New().String()), nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
