package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/trip-planner/internal/middleware"
)

// currentUser returns the user set by the identity middleware, or writes 401.
func currentUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "user identity required")
		return uuid.Nil, false
	}
	return id, true
}

// pathUUID binds a UUID path parameter, writing 400 when it is malformed.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		badRequest(w, "invalid format for parameter "+name+": "+err.Error())
		return uuid.Nil, false
	}
	return id, true
}

// scope resolves the current user and the path IDs named in params, in order.
func scope(w http.ResponseWriter, r *http.Request, params ...string) (uuid.UUID, []uuid.UUID, bool) {
	userID, ok := currentUser(w, r)
	if !ok {
		return uuid.Nil, nil, false
	}
	ids := make([]uuid.UUID, len(params))
	for i, p := range params {
		if ids[i], ok = pathUUID(w, r, p); !ok {
			return uuid.Nil, nil, false
		}
	}
	return userID, ids, true
}

// listTripsParams are the query parameters of GET /trips.
type listTripsParams struct {
	Tab   *string
	Page  *int
	Limit *int
}

func bindListTripsParams(w http.ResponseWriter, r *http.Request) (listTripsParams, bool) {
	var params listTripsParams
	q := r.URL.Query()
	for name, dest := range map[string]any{"tab": &params.Tab, "page": &params.Page, "limit": &params.Limit} {
		if err := runtime.BindQueryParameter("form", true, false, name, q, dest); err != nil {
			badRequest(w, "invalid format for parameter "+name+": "+err.Error())
			return listTripsParams{}, false
		}
	}
	return params, true
}
