package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/handler"
	"github.com/pkordes/trip-planner/internal/middleware"
	"github.com/pkordes/trip-planner/internal/planner"
	"github.com/pkordes/trip-planner/internal/service"
)

// mockTripServicer is a test double for handler.TripServicer.
// Set only the method fields your test needs.
type mockTripServicer struct {
	create  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID func(ctx context.Context, userID, id uuid.UUID) (domain.Trip, error)
	list    func(ctx context.Context, userID uuid.UUID, tab planner.Tab, p domain.PaginationParams) (service.TripList, error)
	detail  func(ctx context.Context, userID, id uuid.UUID) (service.TripDetail, error)
	update  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete  func(ctx context.Context, userID, id uuid.UUID) error
}

func (m *mockTripServicer) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.create(ctx, t)
}
func (m *mockTripServicer) GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, userID, id)
}
func (m *mockTripServicer) List(ctx context.Context, userID uuid.UUID, tab planner.Tab, p domain.PaginationParams) (service.TripList, error) {
	return m.list(ctx, userID, tab, p)
}
func (m *mockTripServicer) Detail(ctx context.Context, userID, id uuid.UUID) (service.TripDetail, error) {
	return m.detail(ctx, userID, id)
}
func (m *mockTripServicer) Update(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.update(ctx, t)
}
func (m *mockTripServicer) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.delete(ctx, userID, id)
}

// compile-time check: mockTripServicer must satisfy handler.TripServicer.
var _ handler.TripServicer = (*mockTripServicer)(nil)

// mockActivityServicer is a test double for handler.ActivityServicer.
type mockActivityServicer struct {
	create  func(ctx context.Context, userID uuid.UUID, a domain.Activity) (domain.Activity, error)
	getByID func(ctx context.Context, userID, tripID, activityID uuid.UUID) (domain.Activity, error)
	list    func(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Activity, error)
	update  func(ctx context.Context, userID uuid.UUID, a domain.Activity) (domain.Activity, error)
	delete  func(ctx context.Context, userID, tripID, activityID uuid.UUID) error
}

func (m *mockActivityServicer) Create(ctx context.Context, userID uuid.UUID, a domain.Activity) (domain.Activity, error) {
	return m.create(ctx, userID, a)
}
func (m *mockActivityServicer) GetByID(ctx context.Context, userID, tripID, activityID uuid.UUID) (domain.Activity, error) {
	return m.getByID(ctx, userID, tripID, activityID)
}
func (m *mockActivityServicer) List(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Activity, error) {
	return m.list(ctx, userID, tripID)
}
func (m *mockActivityServicer) Update(ctx context.Context, userID uuid.UUID, a domain.Activity) (domain.Activity, error) {
	return m.update(ctx, userID, a)
}
func (m *mockActivityServicer) Delete(ctx context.Context, userID, tripID, activityID uuid.UUID) error {
	return m.delete(ctx, userID, tripID, activityID)
}

var _ handler.ActivityServicer = (*mockActivityServicer)(nil)

// mockPackingItemServicer is a test double for handler.PackingItemServicer.
type mockPackingItemServicer struct {
	create     func(ctx context.Context, userID uuid.UUID, item domain.PackingItem) (domain.PackingItem, error)
	list       func(ctx context.Context, userID, tripID uuid.UUID) ([]planner.CategoryGroup, error)
	setChecked func(ctx context.Context, userID, tripID, itemID uuid.UUID, checked bool) (domain.PackingItem, error)
	delete     func(ctx context.Context, userID, tripID, itemID uuid.UUID) error
}

func (m *mockPackingItemServicer) Create(ctx context.Context, userID uuid.UUID, item domain.PackingItem) (domain.PackingItem, error) {
	return m.create(ctx, userID, item)
}
func (m *mockPackingItemServicer) List(ctx context.Context, userID, tripID uuid.UUID) ([]planner.CategoryGroup, error) {
	return m.list(ctx, userID, tripID)
}
func (m *mockPackingItemServicer) SetChecked(ctx context.Context, userID, tripID, itemID uuid.UUID, checked bool) (domain.PackingItem, error) {
	return m.setChecked(ctx, userID, tripID, itemID, checked)
}
func (m *mockPackingItemServicer) Delete(ctx context.Context, userID, tripID, itemID uuid.UUID) error {
	return m.delete(ctx, userID, tripID, itemID)
}

var _ handler.PackingItemServicer = (*mockPackingItemServicer)(nil)

// ---- helpers ---------------------------------------------------------------

const userHeader = "X-User-ID"

// testUser is the identity every request in this package is made as.
var testUser = uuid.MustParse("0190b6c4-7a3e-7c1d-9b2a-4f5e6d7c8b9a")

// services bundles the mocks; nil fields get empty mocks.
type services struct {
	trips      *mockTripServicer
	activities *mockActivityServicer
	items      *mockPackingItemServicer
}

// newHTTPHandler wires a Server with the given mocks into the chi router
// behind the identity middleware. This mirrors how main.go wires it.
func newHTTPHandler(svcs services) http.Handler {
	if svcs.trips == nil {
		svcs.trips = &mockTripServicer{}
	}
	if svcs.activities == nil {
		svcs.activities = &mockActivityServicer{}
	}
	if svcs.items == nil {
		svcs.items = &mockPackingItemServicer{}
	}
	srv := handler.NewServer(svcs.trips, svcs.activities, svcs.items, nil)
	return handler.HandlerWithOptions(srv, handler.ChiServerOptions{
		Middlewares: []handler.MiddlewareFunc{middleware.NewUserIdentity(userHeader)},
	})
}

// do sends a request as testUser and returns the recorder.
func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf *bytes.Buffer
	if body != nil {
		buf = jsonBody(t, body)
	}
	var req *http.Request
	if buf != nil {
		req = httptest.NewRequest(method, path, buf)
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set(userHeader, testUser.String())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dateStr(t time.Time) string {
	return t.Format("2006-01-02")
}
