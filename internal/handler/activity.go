package handler

import (
	"errors"
	"net/http"

	"github.com/pkordes/trip-planner/internal/domain"
)

const activityNotFound = "trip or activity not found"

// ListActivities handles GET /trips/{id}/activities.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	userID, ids, ok := scope(w, r, "id")
	if !ok {
		return
	}

	acts, err := s.activities.List(r.Context(), userID, ids[0])
	if err != nil {
		s.serviceError(w, r, err, tripNotFound)
		return
	}

	writeJSON(w, http.StatusOK, activitiesToResponse(acts))
}

// CreateActivity handles POST /trips/{id}/activities.
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	userID, ids, ok := scope(w, r, "id")
	if !ok {
		return
	}
	a, ok := decodeActivity(w, r)
	if !ok {
		return
	}

	a.TripID = ids[0]
	created, err := s.activities.Create(r.Context(), userID, a)
	if err != nil {
		s.serviceError(w, r, err, tripNotFound)
		return
	}

	writeJSON(w, http.StatusCreated, activityToResponse(created))
}

// GetActivity handles GET /trips/{id}/activities/{activityID}.
func (s *Server) GetActivity(w http.ResponseWriter, r *http.Request) {
	userID, ids, ok := scope(w, r, "id", "activityID")
	if !ok {
		return
	}

	a, err := s.activities.GetByID(r.Context(), userID, ids[0], ids[1])
	if err != nil {
		s.serviceError(w, r, err, activityNotFound)
		return
	}

	writeJSON(w, http.StatusOK, activityToResponse(a))
}

// UpdateActivity handles PUT /trips/{id}/activities/{activityID}.
func (s *Server) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	userID, ids, ok := scope(w, r, "id", "activityID")
	if !ok {
		return
	}
	a, ok := decodeActivity(w, r)
	if !ok {
		return
	}

	a.TripID = ids[0]
	a.ID = ids[1]
	updated, err := s.activities.Update(r.Context(), userID, a)
	if err != nil {
		s.serviceError(w, r, err, activityNotFound)
		return
	}

	writeJSON(w, http.StatusOK, activityToResponse(updated))
}

// DeleteActivity handles DELETE /trips/{id}/activities/{activityID}.
func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	userID, ids, ok := scope(w, r, "id", "activityID")
	if !ok {
		return
	}

	if err := s.activities.Delete(r.Context(), userID, ids[0], ids[1]); err != nil {
		s.serviceError(w, r, err, activityNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func decodeActivity(w http.ResponseWriter, r *http.Request) (domain.Activity, bool) {
	var body ActivityRequest
	if !decodeBody(w, r, &body) {
		return domain.Activity{}, false
	}
	a, err := activityFromRequest(body)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			invalid(w, verr)
		} else {
			badRequest(w, err.Error())
		}
		return domain.Activity{}, false
	}
	return a, true
}
