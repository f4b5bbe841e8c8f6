package auth

import (
	"encoding/json"
	"net/http"
)

// SessionCookieName is the cookie the login flow sets.
const SessionCookieName = "session"

// RequireSession rejects requests without a valid session cookie and
// injects the verified identity into the request context. An absent or
// invalid session is always a 401, never an empty page.
func RequireSession(secret []byte) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				Unauthorized(w)
				return
			}

			identity, err := VerifySessionToken(secret, cookie.Value)
			if err != nil {
				Unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// Unauthorized writes the canonical 401 response.
func Unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}
