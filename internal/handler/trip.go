package handler

import (
	"net/http"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/planner"
)

const tripNotFound = "trip not found"

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var body TripRequest
	if !decodeBody(w, r, &body) {
		return
	}

	trip := tripFromRequest(body)
	trip.UserID = userID
	created, err := s.trips.Create(r.Context(), trip)
	if err != nil {
		s.serviceError(w, r, err, tripNotFound)
		return
	}

	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// ListTrips handles GET /trips.
// Supports ?tab=all|upcoming|past plus ?page= and ?limit= (defaults: page=1,
// limit=20, max=100). The tab actually applied is echoed back.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	params, ok := bindListTripsParams(w, r)
	if !ok {
		return
	}

	tab := planner.TabAll
	if params.Tab != nil {
		tab = planner.ParseTab(*params.Tab)
	}
	page := domain.NewPaginationParams(params.Page, params.Limit)

	list, err := s.trips.List(r.Context(), userID, tab, page)
	if err != nil {
		s.serviceError(w, r, err, tripNotFound)
		return
	}

	data := make([]Trip, len(list.Trips))
	for i, t := range list.Trips {
		data[i] = tripToResponse(t)
	}
	writeJSON(w, http.StatusOK, TripList{
		Tab:  string(list.Tab),
		Data: data,
		Pagination: Pagination{
			Page:  page.Page,
			Limit: page.Limit,
			Total: list.Total,
		},
	})
}

// GetTrip handles GET /trips/{id}. The response carries the trip with its
// per-day itinerary and grouped packing list.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	userID, ids, ok := scope(w, r, "id")
	if !ok {
		return
	}

	detail, err := s.trips.Detail(r.Context(), userID, ids[0])
	if err != nil {
		s.serviceError(w, r, err, tripNotFound)
		return
	}

	writeJSON(w, http.StatusOK, detailToResponse(detail))
}

// UpdateTrip handles PUT /trips/{id}. The body replaces every editable field.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	userID, ids, ok := scope(w, r, "id")
	if !ok {
		return
	}
	var body TripRequest
	if !decodeBody(w, r, &body) {
		return
	}

	trip := tripFromRequest(body)
	trip.ID = ids[0]
	trip.UserID = userID
	updated, err := s.trips.Update(r.Context(), trip)
	if err != nil {
		s.serviceError(w, r, err, tripNotFound)
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// DeleteTrip handles DELETE /trips/{id}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	userID, ids, ok := scope(w, r, "id")
	if !ok {
		return
	}

	if err := s.trips.Delete(r.Context(), userID, ids[0]); err != nil {
		s.serviceError(w, r, err, tripNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
