package service_test

import (
	"errors"
	"testing"

	apperrors "github.com/nwtracker/Net-Worth-Tracker-Backend/internal/errors"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/model"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/testutil"
)

// TestTransactionService_CreateTransaction tests cash-flow writes.
//
// WHY: Transactions reference a category; accepting a category owned by
// another user would let one account write into another's books.
func TestTransactionService_CreateTransaction(t *testing.T) {
	t.Run("creates a transaction against an owned category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)

		user := testutil.CreateUser(t, db)
		category := testutil.NewCategory(user.ID, "income").Build(t, db)

		created, err := svc.CreateTransaction(model.Transaction{
			ID:         testutil.MakeID(),
			UserID:     user.ID,
			CategoryID: category.ID,
			Month:      1,
			Year:       2026,
			Amount:     "5000",
		})
		if err != nil {
			t.Fatalf("CreateTransaction() returned unexpected error: %v", err)
		}

		if created.Amount != "5000" {
			t.Errorf("Expected amount 5000, got %s", created.Amount)
		}
		testutil.AssertRowCount(t, db, "transaction", 1)
	})

	t.Run("rejects a category owned by another user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)

		owner := testutil.CreateUser(t, db)
		category := testutil.NewCategory(owner.ID, "expense").Build(t, db)
		intruder := testutil.CreateUser(t, db)

		_, err := svc.CreateTransaction(model.Transaction{
			ID:         testutil.MakeID(),
			UserID:     intruder.ID,
			CategoryID: category.ID,
			Month:      1,
			Year:       2026,
			Amount:     "100",
		})
		if !errors.Is(err, apperrors.ErrCategoryNotFound) {
			t.Errorf("Expected ErrCategoryNotFound, got %v", err)
		}
		testutil.AssertRowCount(t, db, "transaction", 0)
	})
}

// TestTransactionService_GetMonthlySummary tests the income/expense rollup.
//
// WHY: The summary drives the cash-flow card. Income and expense must land
// in separate totals and the per-category breakdown must sum repeated
// categories rather than listing them twice.
func TestTransactionService_GetMonthlySummary(t *testing.T) {
	t.Run("splits income and expenses and nets them", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)

		user := testutil.CreateUser(t, db)
		salary := testutil.NewCategory(user.ID, "income").WithName("Salary").Build(t, db)
		rent := testutil.NewCategory(user.ID, "expense").WithName("Rent").Build(t, db)

		testutil.NewTransaction(user.ID, salary.ID, 1, 2026).WithAmount("12000").Build(t, db)
		testutil.NewTransaction(user.ID, rent.ID, 1, 2026).WithAmount("4500").Build(t, db)
		testutil.NewTransaction(user.ID, rent.ID, 1, 2026).WithAmount("300").Build(t, db)

		summary, err := svc.GetMonthlySummary(user.ID, 1, 2026)
		if err != nil {
			t.Fatalf("GetMonthlySummary() returned unexpected error: %v", err)
		}

		if summary.TotalIncome != 12000 {
			t.Errorf("Expected income 12000, got %v", summary.TotalIncome)
		}
		if summary.TotalExpense != 4800 {
			t.Errorf("Expected expenses 4800, got %v", summary.TotalExpense)
		}
		if summary.Net != 7200 {
			t.Errorf("Expected net 7200, got %v", summary.Net)
		}

		if len(summary.ByCategory) != 2 {
			t.Fatalf("Expected 2 category totals, got %d", len(summary.ByCategory))
		}
		for _, ct := range summary.ByCategory {
			if ct.CategoryName == "Rent" && ct.Total != 4800 {
				t.Errorf("Expected Rent total 4800, got %v", ct.Total)
			}
		}
	})

	t.Run("ignores other months and other users", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)

		user := testutil.CreateUser(t, db)
		salary := testutil.NewCategory(user.ID, "income").Build(t, db)
		testutil.NewTransaction(user.ID, salary.ID, 2, 2026).WithAmount("12000").Build(t, db)

		other := testutil.CreateUser(t, db)
		otherCategory := testutil.NewCategory(other.ID, "income").Build(t, db)
		testutil.NewTransaction(other.ID, otherCategory.ID, 1, 2026).WithAmount("99999").Build(t, db)

		summary, err := svc.GetMonthlySummary(user.ID, 1, 2026)
		if err != nil {
			t.Fatalf("GetMonthlySummary() returned unexpected error: %v", err)
		}

		if summary.TotalIncome != 0 || summary.TotalExpense != 0 {
			t.Errorf("Expected empty summary, got income %v expense %v", summary.TotalIncome, summary.TotalExpense)
		}
		if len(summary.ByCategory) != 0 {
			t.Errorf("Expected no category totals, got %d", len(summary.ByCategory))
		}
	})
}

// TestTransactionService_DeleteTransaction tests scoped deletion.
//
// WHY: Deletion is keyed by both transaction and user so a leaked ID cannot
// be used to delete across accounts.
func TestTransactionService_DeleteTransaction(t *testing.T) {
	t.Run("deletes an owned transaction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)

		user := testutil.CreateUser(t, db)
		category := testutil.NewCategory(user.ID, "expense").Build(t, db)
		tx := testutil.NewTransaction(user.ID, category.ID, 1, 2026).Build(t, db)

		if err := svc.DeleteTransaction(user.ID, tx.ID); err != nil {
			t.Fatalf("DeleteTransaction() returned unexpected error: %v", err)
		}
		testutil.AssertRowCount(t, db, "transaction", 0)
	})

	t.Run("refuses to delete another user's transaction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)

		owner := testutil.CreateUser(t, db)
		category := testutil.NewCategory(owner.ID, "expense").Build(t, db)
		tx := testutil.NewTransaction(owner.ID, category.ID, 1, 2026).Build(t, db)

		intruder := testutil.CreateUser(t, db)

		err := svc.DeleteTransaction(intruder.ID, tx.ID)
		if !errors.Is(err, apperrors.ErrTransactionNotFound) {
			t.Errorf("Expected ErrTransactionNotFound, got %v", err)
		}
		testutil.AssertRowCount(t, db, "transaction", 1)
	})
}
