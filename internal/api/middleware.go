package api

import (
	"net/http"

	"github.com/viettrungIT3/inventory-admin/internal/session"
)

// RequireSession is the route guard for protected pages. Each request checks
// the session store; unauthenticated visitors get a single redirect to the
// login page and the protected handler is never invoked.
func RequireSession(sessions *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sessions.IsAuthenticated() {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
