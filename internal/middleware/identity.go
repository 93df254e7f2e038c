package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type userIDKey struct{}

// NewUserIdentity returns a middleware that reads the current user's ID from
// header and stores it in the request context. Authentication happens
// upstream; this service trusts the header and only checks it is a UUID.
// Requests without a valid ID are rejected with 401.
func NewUserIdentity(header string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(header)
			if raw == "" {
				writeError(w, http.StatusUnauthorized, "unauthorized", "missing "+header+" header")
				return
			}
			id, err := uuid.Parse(raw)
			if err != nil || id == uuid.Nil {
				writeError(w, http.StatusUnauthorized, "unauthorized", "invalid "+header+" header")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), id)))
		})
	}
}

// WithUserID returns a copy of ctx carrying id as the current user.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserID returns the current user set by NewUserIdentity.
func UserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	return id, ok
}
