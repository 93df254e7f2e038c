// Package middleware provides reusable HTTP middleware for the trip planner API.
package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// NewCORSHandler returns a middleware that applies CORS headers based on allowedOrigins.
// Each entry in allowedOrigins must be a full origin (scheme + host, no trailing slash).
// userHeader is the identity header the browser client sends with every API call.
func NewCORSHandler(allowedOrigins []string, userHeader string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", IdempotencyKeyHeader, userHeader},
		ExposedHeaders: []string{IdempotencyReplayedHeader},
	})
	return func(next http.Handler) http.Handler {
		return c.Handler(next)
	}
}
