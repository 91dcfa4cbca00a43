package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/telswitch/isdnc/internal/crypto"
)

type contextKey string

const userIDKey contextKey = "userID"

// SessionCookie is the fallback credential channel for browser page loads;
// API clients send the token in the Authorization header.
const SessionCookie = "isdnc_session"

// SessionAuth returns the route guard: it extracts the session token from
// the request, verifies it, and either attaches the resolved user ID to the
// request context or refuses with 401 before any further work happens.
func SessionAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := sessionToken(r)
			if !ok {
				writeUnauthorized(w, "authentication required")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				// Expired vs tampered is server-side diagnostics only.
				if errors.Is(err, crypto.ErrTokenExpired) {
					slog.Debug("session rejected", "reason", "expired")
				} else {
					slog.Debug("session rejected", "reason", "invalid token")
				}
				writeUnauthorized(w, "invalid or expired session")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the authenticated user ID from the request context.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// WithUserID returns a context carrying an authenticated user ID. Intended
// for tests exercising protected handlers directly.
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

func sessionToken(r *http.Request) (string, bool) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || token == "" {
			return "", false
		}
		return token, true
	}

	if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}

	return "", false
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]any{"success": false, "error": msg})
}
