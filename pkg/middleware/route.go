package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// routePattern returns the matched chi route pattern, or "unmatched".
// It must be called after the router has served the request.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}
