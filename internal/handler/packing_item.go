package handler

import (
	"net/http"

	"github.com/pkordes/trip-planner/internal/domain"
)

const packingItemNotFound = "trip or packing item not found"

// ListPackingItems handles GET /trips/{id}/packing-items.
// Items come back grouped by category in checklist order.
func (s *Server) ListPackingItems(w http.ResponseWriter, r *http.Request) {
	userID, ids, ok := scope(w, r, "id")
	if !ok {
		return
	}

	groups, err := s.items.List(r.Context(), userID, ids[0])
	if err != nil {
		s.serviceError(w, r, err, tripNotFound)
		return
	}

	writeJSON(w, http.StatusOK, PackingList{Categories: groupsToResponse(groups)})
}

// CreatePackingItem handles POST /trips/{id}/packing-items.
func (s *Server) CreatePackingItem(w http.ResponseWriter, r *http.Request) {
	userID, ids, ok := scope(w, r, "id")
	if !ok {
		return
	}
	var body PackingItemRequest
	if !decodeBody(w, r, &body) {
		return
	}

	item, verr := packingItemFromRequest(body)
	if verr != nil {
		invalid(w, verr)
		return
	}
	item.TripID = ids[0]
	created, err := s.items.Create(r.Context(), userID, item)
	if err != nil {
		s.serviceError(w, r, err, tripNotFound)
		return
	}

	writeJSON(w, http.StatusCreated, packingItemToResponse(created))
}

// UpdatePackingItem handles PATCH /trips/{id}/packing-items/{itemID}.
// Only the checked flag can change.
func (s *Server) UpdatePackingItem(w http.ResponseWriter, r *http.Request) {
	userID, ids, ok := scope(w, r, "id", "itemID")
	if !ok {
		return
	}
	var body PackingItemPatch
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Checked == nil {
		var verr domain.ValidationError
		verr.Add("checked", "is required")
		invalid(w, &verr)
		return
	}

	updated, err := s.items.SetChecked(r.Context(), userID, ids[0], ids[1], *body.Checked)
	if err != nil {
		s.serviceError(w, r, err, packingItemNotFound)
		return
	}

	writeJSON(w, http.StatusOK, packingItemToResponse(updated))
}

// DeletePackingItem handles DELETE /trips/{id}/packing-items/{itemID}.
func (s *Server) DeletePackingItem(w http.ResponseWriter, r *http.Request) {
	userID, ids, ok := scope(w, r, "id", "itemID")
	if !ok {
		return
	}

	if err := s.items.Delete(r.Context(), userID, ids[0], ids[1]); err != nil {
		s.serviceError(w, r, err, packingItemNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
