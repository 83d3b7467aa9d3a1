package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/api/middleware"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/api/request"
	apperrors "github.com/nwtracker/Net-Worth-Tracker-Backend/internal/errors"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/service"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/validation"
)

// ValueHandler handles monthly-value HTTP requests
type ValueHandler struct {
	valueService *service.ValueService
}

// NewValueHandler creates a new ValueHandler
func NewValueHandler(valueService *service.ValueService) *ValueHandler {
	return &ValueHandler{
		valueService: valueService,
	}
}

// Snapshot handles GET /api/values?month&year. It returns the complete
// valuation snapshot for the requested month: every asset's effective value
// (explicit or inherited), the summed total and the change against the
// previous month.
//
// Validation: month must be in [1, 12] and year at least 2000; anything else
// is a 400 before any data is touched.
func (h *ValueHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid month parameter", "month must be an integer")
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid year parameter", "year must be an integer")
		return
	}

	if err := validation.ValidateMonthYear(month, year); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid month or year", err.Error())
		return
	}

	snapshot, err := h.valueService.GetSnapshot(middleware.UserID(r), month, year)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to build snapshot", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, snapshot)
}

// RecordValue handles POST /api/values: upserts one monthly valuation and
// returns the persisted record. Recording the same (asset, month, year)
// twice overwrites the earlier value.
func (h *ValueHandler) RecordValue(w http.ResponseWriter, r *http.Request) {
	var req request.RecordValueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := validation.ValidateRecordValue(req); err != nil {
		respondError(w, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	value, err := h.valueService.RecordValue(middleware.UserID(r), req.AssetID, req.Month, req.Year, req.Value)
	if err != nil {
		if errors.Is(err, apperrors.ErrAssetNotFound) {
			respondError(w, http.StatusNotFound, "Asset not found", req.AssetID)
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to record value", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, value)
}

// ExportCSV handles GET /api/export/values.csv, streaming every recorded
// value of the user as a CSV attachment.
func (h *ValueHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="values.csv"`)

	if err := h.valueService.ExportValuesCSV(middleware.UserID(r), w); err != nil {
		// Headers are already out; the truncated body is the best signal left.
		respondError(w, http.StatusInternalServerError, "Failed to export values", err.Error())
	}
}
