package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/api/middleware"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/api/request"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/service"
)

// SessionHandler handles demo-session HTTP requests
type SessionHandler struct {
	sessionService *service.SessionService
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// CreateDemo handles POST /api/session/demo: creates a throwaway demo user
// and sets the session cookie. The demo account and everything recorded
// under it disappear when the cookie's TTL lapses and the nightly purge runs.
func (h *SessionHandler) CreateDemo(w http.ResponseWriter, r *http.Request) {
	var req request.CreateDemoSessionRequest
	// An empty body is fine; defaults apply.
	_ = json.NewDecoder(r.Body).Decode(&req)

	user, token, err := h.sessionService.CreateDemoSession(req.DisplayName, req.DefaultCurrency)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create demo session", err.Error())
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  *user.ExpiresAt,
	})

	respondJSON(w, http.StatusCreated, user)
}

// Me handles GET /api/session/me, returning the user behind the session.
func (h *SessionHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.sessionService.GetUser(middleware.UserID(r))
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Session user not found", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, user)
}
