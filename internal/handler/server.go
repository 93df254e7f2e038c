// Package handler implements the HTTP handlers for the trip planner API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, trip.go, etc.) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/planner"
	"github.com/pkordes/trip-planner/internal/service"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Trip, error)
	List(ctx context.Context, userID uuid.UUID, tab planner.Tab, p domain.PaginationParams) (service.TripList, error)
	Detail(ctx context.Context, userID, id uuid.UUID) (service.TripDetail, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// ActivityServicer defines the operations the activity handlers depend on.
type ActivityServicer interface {
	Create(ctx context.Context, userID uuid.UUID, a domain.Activity) (domain.Activity, error)
	GetByID(ctx context.Context, userID, tripID, activityID uuid.UUID) (domain.Activity, error)
	List(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Activity, error)
	Update(ctx context.Context, userID uuid.UUID, a domain.Activity) (domain.Activity, error)
	Delete(ctx context.Context, userID, tripID, activityID uuid.UUID) error
}

// PackingItemServicer defines the operations the packing list handlers depend on.
type PackingItemServicer interface {
	Create(ctx context.Context, userID uuid.UUID, item domain.PackingItem) (domain.PackingItem, error)
	List(ctx context.Context, userID, tripID uuid.UUID) ([]planner.CategoryGroup, error)
	SetChecked(ctx context.Context, userID, tripID, itemID uuid.UUID, checked bool) (domain.PackingItem, error)
	Delete(ctx context.Context, userID, tripID, itemID uuid.UUID) error
}

// Server holds the services behind every API endpoint.
type Server struct {
	trips      TripServicer
	activities ActivityServicer
	items      PackingItemServicer
	log        *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default().
func NewServer(trips TripServicer, activities ActivityServicer, items PackingItemServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{trips: trips, activities: activities, items: items, log: log}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil)
}

// MiddlewareFunc wraps the API routes.
type MiddlewareFunc func(http.Handler) http.Handler

// ChiServerOptions configures HandlerWithOptions.
type ChiServerOptions struct {
	// BaseRouter receives the routes. A new chi router is used when nil.
	BaseRouter chi.Router
	// Middlewares apply to the /trips routes only, outermost first.
	// Identity and idempotency middleware belong here; health and
	// OpenAPI routes stay public.
	Middlewares []MiddlewareFunc
}

// Handler returns the API routes with no extra middleware.
func Handler(s *Server) http.Handler {
	return HandlerWithOptions(s, ChiServerOptions{})
}

// HandlerWithOptions registers every endpoint on a chi router.
func HandlerWithOptions(s *Server, options ChiServerOptions) http.Handler {
	r := options.BaseRouter
	if r == nil {
		r = chi.NewRouter()
	}

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Group(func(r chi.Router) {
		for _, m := range options.Middlewares {
			r.Use(m)
		}

		r.Get("/trips", s.ListTrips)
		r.Post("/trips", s.CreateTrip)
		r.Get("/trips/{id}", s.GetTrip)
		r.Put("/trips/{id}", s.UpdateTrip)
		r.Delete("/trips/{id}", s.DeleteTrip)

		r.Get("/trips/{id}/activities", s.ListActivities)
		r.Post("/trips/{id}/activities", s.CreateActivity)
		r.Get("/trips/{id}/activities/{activityID}", s.GetActivity)
		r.Put("/trips/{id}/activities/{activityID}", s.UpdateActivity)
		r.Delete("/trips/{id}/activities/{activityID}", s.DeleteActivity)

		r.Get("/trips/{id}/packing-items", s.ListPackingItems)
		r.Post("/trips/{id}/packing-items", s.CreatePackingItem)
		r.Patch("/trips/{id}/packing-items/{itemID}", s.UpdatePackingItem)
		r.Delete("/trips/{id}/packing-items/{itemID}", s.DeletePackingItem)
	})

	return r
}
