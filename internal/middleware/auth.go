package middleware

import (
	"context"
	"net/http"
)

// AuthTokenHeader carries the opaque session token on every protected route.
const AuthTokenHeader = "X-Auth-Token"

const usernameKey contextKey = "username"

// SessionValidator resolves an opaque session token to a username.
type SessionValidator interface {
	Validate(token string) (string, bool)
}

// RequireSession rejects requests without a valid session token before any
// handler work happens, so no upstream provider is ever contacted for an
// unauthorized request.
func RequireSession(sessions SessionValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(AuthTokenHeader)
			if token == "" {
				unauthorized(w)
				return
			}
			username, ok := sessions.Validate(token)
			if !ok {
				unauthorized(w)
				return
			}
			ctx := context.WithValue(r.Context(), usernameKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"status":"error","error":"Unauthorized"}`))
}

// UsernameFromContext returns the authenticated username, if any.
func UsernameFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(usernameKey).(string); ok {
		return v
	}
	return ""
}
