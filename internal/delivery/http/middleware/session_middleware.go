package middleware

import (
	"net/http"

	"medibook-portal/internal/store"
	"medibook-portal/pkg/response"
)

// SessionMiddleware gates routes on the in-memory portal session.
type SessionMiddleware struct {
	session *store.SessionStore
}

func NewSessionMiddleware(session *store.SessionStore) *SessionMiddleware {
	return &SessionMiddleware{session: session}
}

func (m *SessionMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.session.IsAuthenticated() {
			response.Unauthorized(w, "Please login first")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *SessionMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.session.IsAuthenticated() {
			response.Unauthorized(w, "Please login first")
			return
		}
		if !m.session.IsAdmin() {
			response.Forbidden(w, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
