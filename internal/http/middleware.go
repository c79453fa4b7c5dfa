package http

import (
	"net/http"
	"strings"

	"github.com/tallyapp/tally/internal/auth"
	"github.com/tallyapp/tally/internal/http/respond"
)

// Authenticate extracts the bearer token, verifies it, and attaches the
// actor to the request context. Everything behind it can trust
// auth.ActorFrom.
func Authenticate(a *auth.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				respond.Fail(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			actor, err := a.ParseToken(token)
			if err != nil {
				respond.Fail(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithActor(r.Context(), actor)))
		})
	}
}

// RequireRole guards a route subtree to the given roles.
func RequireRole(roles ...auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := auth.ActorFrom(r.Context())
			if !ok {
				respond.Fail(w, http.StatusUnauthorized, "not authenticated")
				return
			}

			for _, role := range roles {
				if actor.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			respond.Fail(w, http.StatusForbidden, "insufficient role")
		})
	}
}
