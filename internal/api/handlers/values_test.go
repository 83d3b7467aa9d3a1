package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/api/handlers"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/api/middleware"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/model"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/testutil"
)

// TestValueHandler_Snapshot tests the GET /api/values endpoint.
//
// WHY: This is the primary read path of the application. The frontend
// depends on correct status codes and on malformed month/year parameters
// being rejected before any data access.
func TestValueHandler_Snapshot(t *testing.T) {
	t.Run("returns 200 with the snapshot", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestValueService(t, db)
		handler := handlers.NewValueHandler(svc)

		h := testutil.CreateHierarchy(t, db)
		asset := testutil.NewAsset(h.Provider.ID).Build(t, db)
		testutil.CreateMonthlyValue(t, db, asset.ID, 1, 2026, "1000")

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/values",
			map[string]string{"month": "1", "year": "2026"})
		req = middleware.WithUserID(req, h.User.ID)
		w := httptest.NewRecorder()

		handler.Snapshot(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		var snapshot model.Snapshot
		if err := json.NewDecoder(w.Body).Decode(&snapshot); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if snapshot.TotalBalance != "1000" {
			t.Errorf("Expected total 1000, got %s", snapshot.TotalBalance)
		}
		if len(snapshot.Values) != 1 {
			t.Errorf("Expected 1 effective value, got %d", len(snapshot.Values))
		}
	})

	t.Run("returns 400 for missing parameters", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewValueHandler(testutil.NewTestValueService(t, db))

		req := httptest.NewRequest(http.MethodGet, "/api/values", nil)
		req = middleware.WithUserID(req, testutil.MakeID())
		w := httptest.NewRecorder()

		handler.Snapshot(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("returns 400 for an out-of-range month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewValueHandler(testutil.NewTestValueService(t, db))

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/values",
			map[string]string{"month": "13", "year": "2026"})
		req = middleware.WithUserID(req, testutil.MakeID())
		w := httptest.NewRecorder()

		handler.Snapshot(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

// TestValueHandler_RecordValue tests the POST /api/values endpoint.
//
// WHY: The write path must reject invalid payloads with a 400 carrying the
// failing fields, return 404 for assets outside the session's account, and
// confirm successful upserts with 201.
func TestValueHandler_RecordValue(t *testing.T) {
	t.Run("returns 201 and the persisted record", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewValueHandler(testutil.NewTestValueService(t, db))

		h := testutil.CreateHierarchy(t, db)
		asset := testutil.NewAsset(h.Provider.ID).Build(t, db)

		body := `{"assetId":"` + asset.ID + `","month":1,"year":2026,"value":"1500.50"}`
		req := httptest.NewRequest(http.MethodPost, "/api/values", strings.NewReader(body))
		req = middleware.WithUserID(req, h.User.ID)
		w := httptest.NewRecorder()

		handler.RecordValue(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
		}

		var value model.MonthlyValue
		if err := json.NewDecoder(w.Body).Decode(&value); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if value.Value != "1500.50" {
			t.Errorf("Expected value 1500.50, got %s", value.Value)
		}
		testutil.AssertRowCount(t, db, "monthly_value", 1)
	})

	t.Run("returns 400 for a non-decimal value", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewValueHandler(testutil.NewTestValueService(t, db))

		body := `{"assetId":"` + testutil.MakeID() + `","month":1,"year":2026,"value":"plenty"}`
		req := httptest.NewRequest(http.MethodPost, "/api/values", strings.NewReader(body))
		req = middleware.WithUserID(req, testutil.MakeID())
		w := httptest.NewRecorder()

		handler.RecordValue(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("returns 404 for another user's asset", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewValueHandler(testutil.NewTestValueService(t, db))

		owner := testutil.CreateHierarchy(t, db)
		asset := testutil.NewAsset(owner.Provider.ID).Build(t, db)
		intruder := testutil.CreateUser(t, db)

		body := `{"assetId":"` + asset.ID + `","month":1,"year":2026,"value":"1000"}`
		req := httptest.NewRequest(http.MethodPost, "/api/values", strings.NewReader(body))
		req = middleware.WithUserID(req, intruder.ID)
		w := httptest.NewRecorder()

		handler.RecordValue(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}

// TestValueHandler_ExportCSV tests the CSV export endpoint.
func TestValueHandler_ExportCSV(t *testing.T) {
	t.Run("returns CSV with attachment headers", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewValueHandler(testutil.NewTestValueService(t, db))

		h := testutil.CreateHierarchy(t, db)
		asset := testutil.NewAsset(h.Provider.ID).Build(t, db)
		testutil.CreateMonthlyValue(t, db, asset.ID, 1, 2026, "1000")

		req := httptest.NewRequest(http.MethodGet, "/api/export/values.csv", nil)
		req = middleware.WithUserID(req, h.User.ID)
		w := httptest.NewRecorder()

		handler.ExportCSV(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
		if got := w.Header().Get("Content-Type"); got != "text/csv" {
			t.Errorf("Expected Content-Type text/csv, got %s", got)
		}
		if got := w.Header().Get("Content-Disposition"); !strings.Contains(got, "values.csv") {
			t.Errorf("Expected attachment disposition, got %s", got)
		}
		if !strings.HasPrefix(w.Body.String(), "asset_id,asset_name,month,year,value") {
			t.Errorf("Expected CSV header, got %q", w.Body.String())
		}
	})
}
