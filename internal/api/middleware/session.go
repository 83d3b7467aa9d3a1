package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/auth"
)

// SessionCookieName is the cookie carrying the fernet session token.
const SessionCookieName = "nw_session"

type contextKey string

// userIDKey is the request-context key under which the authenticated user ID is stored.
const userIDKey contextKey = "userID"

// Session returns a middleware that verifies the session cookie and injects
// the user ID into the request context. Requests without a valid cookie are
// rejected with 401 before reaching any handler.
func Session(issuer *auth.TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				respondUnauthorized(w, "Missing session cookie")
				return
			}

			userID, err := issuer.Verify(cookie.Value)
			if err != nil {
				respondUnauthorized(w, "Invalid or expired session")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// respondUnauthorized writes a 401 in the same error shape the handlers use.
func respondUnauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	err := json.NewEncoder(w).Encode(map[string]string{
		"error":  "authentication required",
		"detail": detail,
	})
	if err != nil {
		log.Printf("Failed to encode JSON: %v", err)
	}
}

// UserID extracts the authenticated user ID from the request context.
// Returns an empty string when the request did not pass the Session middleware.
func UserID(r *http.Request) string {
	userID, _ := r.Context().Value(userIDKey).(string)
	return userID
}

// WithUserID returns a request whose context carries the given user ID.
// Test helper for exercising handlers without the middleware chain.
func WithUserID(r *http.Request, userID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userIDKey, userID))
}
