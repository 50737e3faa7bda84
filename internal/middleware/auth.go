package middleware

import (
	"net/http"

	"github.com/velaris/seoforge/internal/auth"
	"github.com/velaris/seoforge/internal/web"
)

// RequireAuth validates the bearer token against the session store and
// attaches the resolved session to the request context. Missing or unknown
// tokens never reach the wrapped handler.
func RequireAuth(sessions auth.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := auth.BearerToken(r)
			if token == "" {
				web.Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			sess, err := sessions.Get(r.Context(), token)
			if err != nil || sess == nil {
				web.Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.ContextWithSession(r.Context(), sess)))
		})
	}
}
