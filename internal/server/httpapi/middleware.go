package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/avolkov/dogshelter/internal/server/models"
)

type ctxKey string

const userKey ctxKey = "user"

// requireUser guards mutating endpoints. It extracts the bearer token from
// the Authorization header, resolves it to a user, and rejects disabled
// accounts. The authenticated user is stored in the request context.
func (s *Server) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		header := r.Header.Get("Authorization")
		if header == "" {
			s.respondUnauthorized(w, "Not authenticated")
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			s.respondUnauthorized(w, "Invalid authentication credentials")
			return
		}

		user, err := s.users.ResolveToken(r.Context(), token)
		if err != nil {
			s.respondError(w, r, err, "", "")
			return
		}

		if err := s.users.RequireActive(user); err != nil {
			s.respondError(w, r, err, "", "")
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userFrom returns the authenticated user stored by requireUser, or nil when
// the request went through an unguarded route.
func userFrom(r *http.Request) *models.User {
	user, _ := r.Context().Value(userKey).(*models.User)
	return user
}
