// internal/auth/policy.go
package auth

import (
	"net/http"
	"strings"
)

// PublicPath reports whether a request path may be served without a token:
// API documentation and health checks only.
func PublicPath(path string) bool {
	if path == "/health" || strings.HasPrefix(path, "/health/") {
		return true
	}
	if strings.HasPrefix(path, "/swagger") || strings.HasPrefix(path, "/api-docs") {
		return true
	}
	return false
}

// Allow decides whether an authenticated caller's normalized role set
// permits the given method on a protected resource route. Mutating methods
// are reserved for fleet admins; reads require authentication only, which
// the caller has already established.
func Allow(roles []string, method string) bool {
	switch method {
	case http.MethodDelete, http.MethodPost, http.MethodPut:
		return HasRole(roles, AdminRole)
	default:
		return true
	}
}
