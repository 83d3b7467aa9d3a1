package handlers

import (
	"net/http"
	"strconv"

	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/api/middleware"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/service"
)

// DashboardHandler handles dashboard analytics HTTP requests
type DashboardHandler struct {
	analyticsService *service.AnalyticsService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(analyticsService *service.AnalyticsService) *DashboardHandler {
	return &DashboardHandler{
		analyticsService: analyticsService,
	}
}

// Analytics handles GET /api/dashboard/analytics?months=N. The window size
// defaults to 12 and is clamped to [1, 24]; an unparseable months parameter
// falls back to the default rather than erroring, since the dashboard is a
// read-only view.
func (h *DashboardHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	months := 12
	if raw := r.URL.Query().Get("months"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			months = parsed
		}
	}
	if months < 1 {
		months = 1
	}
	if months > service.MaxAnalyticsWindow {
		months = service.MaxAnalyticsWindow
	}

	analytics, err := h.analyticsService.GetDashboardAnalytics(middleware.UserID(r), months)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to compute analytics", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, analytics)
}
