package middleware

import (
	"encoding/json"
	"net/http"

	"chorejar/internal/auth"
	"chorejar/internal/store"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "chorejar_session"

// RequireAuth validates the session cookie and populates the request context
// with the authenticated principal. Requests without a valid session get a
// 401 JSON error.
func RequireAuth(sessions *store.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				unauthorized(w)
				return
			}

			sess, err := sessions.GetByToken(cookie.Value)
			if err != nil || sess == nil {
				unauthorized(w)
				return
			}

			p := auth.Principal{
				UserID:    sess.UserID,
				SessionID: sess.ID,
			}

			ctx := auth.WithPrincipal(r.Context(), p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "not authenticated"})
}
