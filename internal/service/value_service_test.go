package service_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	apperrors "github.com/nwtracker/Net-Worth-Tracker-Backend/internal/errors"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/testutil"
)

// TestValueService_GetSnapshot tests snapshot assembly.
//
// WHY: The snapshot is what the main screen renders. It must cover every
// asset in the hierarchy exactly once, forward-fill gaps, and compute the
// month-over-month change with the zero-denominator policy.
func TestValueService_GetSnapshot(t *testing.T) {
	t.Run("covers every asset exactly once", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestValueService(t, db)

		h := testutil.CreateHierarchy(t, db)
		a1 := testutil.NewAsset(h.Provider.ID).WithName("Checking").Build(t, db)
		a2 := testutil.NewAsset(h.Provider.ID).WithName("Savings").Build(t, db)
		testutil.CreateMonthlyValue(t, db, a1.ID, 1, 2026, "1000")
		// a2 has no recorded value at all.

		snapshot, err := svc.GetSnapshot(h.User.ID, 1, 2026)
		if err != nil {
			t.Fatalf("GetSnapshot() returned unexpected error: %v", err)
		}

		if len(snapshot.Values) != 2 {
			t.Fatalf("Expected 2 effective values, got %d", len(snapshot.Values))
		}

		seen := map[string]bool{}
		for _, v := range snapshot.Values {
			if seen[v.AssetID] {
				t.Errorf("Asset %s appears twice in the snapshot", v.AssetID)
			}
			seen[v.AssetID] = true
		}
		if !seen[a1.ID] || !seen[a2.ID] {
			t.Error("Snapshot is missing an asset from the hierarchy")
		}

		if snapshot.TotalBalance != "1000" {
			t.Errorf("Expected total 1000, got %s", snapshot.TotalBalance)
		}
	})

	t.Run("forward-fills missing months into the total", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestValueService(t, db)

		h := testutil.CreateHierarchy(t, db)
		a1 := testutil.NewAsset(h.Provider.ID).Build(t, db)
		a2 := testutil.NewAsset(h.Provider.ID).Build(t, db)
		testutil.CreateMonthlyValue(t, db, a1.ID, 1, 2026, "1000")
		testutil.CreateMonthlyValue(t, db, a2.ID, 3, 2026, "500")

		// March: a1 inherits from January, a2 is exact.
		snapshot, err := svc.GetSnapshot(h.User.ID, 3, 2026)
		if err != nil {
			t.Fatalf("GetSnapshot() returned unexpected error: %v", err)
		}

		if snapshot.TotalBalance != "1500" {
			t.Errorf("Expected total 1500, got %s", snapshot.TotalBalance)
		}

		for _, v := range snapshot.Values {
			switch v.AssetID {
			case a1.ID:
				if !v.IsInherited {
					t.Error("Expected a1 to be inherited in March")
				}
			case a2.ID:
				if v.IsInherited {
					t.Error("Expected a2 to be exact in March")
				}
			}
		}
	})

	t.Run("computes change against the previous month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestValueService(t, db)

		h := testutil.CreateHierarchy(t, db)
		a1 := testutil.NewAsset(h.Provider.ID).Build(t, db)
		testutil.CreateMonthlyValue(t, db, a1.ID, 1, 2026, "1000")
		testutil.CreateMonthlyValue(t, db, a1.ID, 2, 2026, "1200")

		snapshot, err := svc.GetSnapshot(h.User.ID, 2, 2026)
		if err != nil {
			t.Fatalf("GetSnapshot() returned unexpected error: %v", err)
		}

		if snapshot.ChangeFromPrevious.Absolute != "200" {
			t.Errorf("Expected absolute change 200, got %s", snapshot.ChangeFromPrevious.Absolute)
		}
		if snapshot.ChangeFromPrevious.Percentage != 20 {
			t.Errorf("Expected 20%% change, got %v", snapshot.ChangeFromPrevious.Percentage)
		}
	})

	t.Run("change percentage is zero when the previous total is zero", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestValueService(t, db)

		h := testutil.CreateHierarchy(t, db)
		a1 := testutil.NewAsset(h.Provider.ID).Build(t, db)
		testutil.CreateMonthlyValue(t, db, a1.ID, 2, 2026, "1000")

		snapshot, err := svc.GetSnapshot(h.User.ID, 2, 2026)
		if err != nil {
			t.Fatalf("GetSnapshot() returned unexpected error: %v", err)
		}

		if snapshot.ChangeFromPrevious.Percentage != 0 {
			t.Errorf("Expected 0%% against empty previous month, got %v", snapshot.ChangeFromPrevious.Percentage)
		}
		if snapshot.ChangeFromPrevious.Absolute != "1000" {
			t.Errorf("Expected absolute change 1000, got %s", snapshot.ChangeFromPrevious.Absolute)
		}
	})

	t.Run("carries the user default currency as a label", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestValueService(t, db)

		user := testutil.NewUser().WithCurrency("USD").Build(t, db)
		h := testutil.CreateHierarchyForUser(t, db, user)
		a1 := testutil.NewAsset(h.Provider.ID).WithCurrency("ILS").Build(t, db)
		testutil.CreateMonthlyValue(t, db, a1.ID, 1, 2026, "100")

		snapshot, err := svc.GetSnapshot(user.ID, 1, 2026)
		if err != nil {
			t.Fatalf("GetSnapshot() returned unexpected error: %v", err)
		}

		if snapshot.TotalBalanceCurrency != "USD" {
			t.Errorf("Expected currency label USD, got %s", snapshot.TotalBalanceCurrency)
		}
	})
}

// TestValueService_RecordValue tests valuation writes.
//
// WHY: Writes are upserts keyed on (asset, month, year) with an ownership
// check in front. Recording twice must overwrite, and recording against
// someone else's asset must fail without leaking its existence.
func TestValueService_RecordValue(t *testing.T) {
	t.Run("recording the same month twice overwrites", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestValueService(t, db)

		h := testutil.CreateHierarchy(t, db)
		asset := testutil.NewAsset(h.Provider.ID).Build(t, db)

		if _, err := svc.RecordValue(h.User.ID, asset.ID, 1, 2026, "1000"); err != nil {
			t.Fatalf("First RecordValue() returned unexpected error: %v", err)
		}
		updated, err := svc.RecordValue(h.User.ID, asset.ID, 1, 2026, "1100")
		if err != nil {
			t.Fatalf("Second RecordValue() returned unexpected error: %v", err)
		}

		if updated.Value != "1100" {
			t.Errorf("Expected overwritten value 1100, got %s", updated.Value)
		}
		testutil.AssertRowCount(t, db, "monthly_value", 1)
	})

	t.Run("rejects assets owned by another user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestValueService(t, db)

		owner := testutil.CreateHierarchy(t, db)
		asset := testutil.NewAsset(owner.Provider.ID).Build(t, db)
		intruder := testutil.CreateUser(t, db)

		_, err := svc.RecordValue(intruder.ID, asset.ID, 1, 2026, "1000")
		if !errors.Is(err, apperrors.ErrAssetNotFound) {
			t.Errorf("Expected ErrAssetNotFound, got %v", err)
		}
		testutil.AssertRowCount(t, db, "monthly_value", 0)
	})
}

// TestValueService_ExportValuesCSV tests the CSV export.
//
// WHY: Export is the escape hatch for the data; it must include every
// recorded row as-is, including future-dated ones that snapshots ignore.
func TestValueService_ExportValuesCSV(t *testing.T) {
	t.Run("writes header plus one row per record", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestValueService(t, db)

		h := testutil.CreateHierarchy(t, db)
		asset := testutil.NewAsset(h.Provider.ID).WithName("Checking").Build(t, db)
		testutil.CreateMonthlyValue(t, db, asset.ID, 1, 2026, "1000")
		testutil.CreateMonthlyValue(t, db, asset.ID, 12, 2030, "9000")

		var buf bytes.Buffer
		if err := svc.ExportValuesCSV(h.User.ID, &buf); err != nil {
			t.Fatalf("ExportValuesCSV() returned unexpected error: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 3 {
			t.Fatalf("Expected header plus 2 rows, got %d lines", len(lines))
		}
		if lines[0] != "asset_id,asset_name,month,year,value" {
			t.Errorf("Unexpected header: %s", lines[0])
		}
		if !strings.Contains(buf.String(), "Checking") {
			t.Error("Expected asset name in export")
		}
		if !strings.Contains(buf.String(), "9000") {
			t.Error("Expected future-dated record in export")
		}
	})
}
