package middleware

import (
	"crypto/subtle"
	"net/http"
)

// AdminAuth gates the admin routes on a shared token header. This mirrors
// the session-presence gating of the original site; there is no per-role
// enforcement behind it, which is a known gap.
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("X-Admin-Token")
			if token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
