package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/api/middleware"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/testutil"
)

func TestSessionMiddleware(t *testing.T) {
	t.Run("rejects request without session cookie", func(t *testing.T) {
		issuer := testutil.NewTestTokenIssuer(t)

		handlerCalled := false
		testHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			handlerCalled = true
			w.WriteHeader(http.StatusOK)
		})

		mw := middleware.Session(issuer)(testHandler)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, req)

		if handlerCalled {
			t.Error("Expected request not to complete.")
		}
		if w.Code != http.StatusUnauthorized {
			t.Errorf("Expected 401, got %d", w.Code)
		}
	})

	t.Run("rejects request with an invalid token", func(t *testing.T) {
		issuer := testutil.NewTestTokenIssuer(t)

		handlerCalled := false
		testHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			handlerCalled = true
			w.WriteHeader(http.StatusOK)
		})

		mw := middleware.Session(issuer)(testHandler)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "garbage"})
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, req)

		if handlerCalled {
			t.Error("Expected request not to complete.")
		}
		if w.Code != http.StatusUnauthorized {
			t.Errorf("Expected 401, got %d", w.Code)
		}
	})

	t.Run("injects the user ID for a valid token", func(t *testing.T) {
		issuer := testutil.NewTestTokenIssuer(t)

		token, err := issuer.Issue("user-123")
		if err != nil {
			t.Fatalf("Issue() returned unexpected error: %v", err)
		}

		var gotUserID string
		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUserID = middleware.UserID(r)
			w.WriteHeader(http.StatusOK)
		})

		mw := middleware.Session(issuer)(testHandler)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d", w.Code)
		}
		if gotUserID != "user-123" {
			t.Errorf("Expected user-123 in context, got %q", gotUserID)
		}
	})
}
