package middleware

import (
	"net/http"

	"github.com/insuredesk/insure-backend/internal/session"
)

type SessionStore interface {
	Get(token string) (session.Session, bool)
}

// SessionGuard rejects requests that do not carry a live session cookie.
// Expiry is handled inside the store lookup, so an expired token behaves
// exactly like an unknown one.
func SessionGuard(store SessionStore, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if _, ok := store.Get(cookie.Value); !ok {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
