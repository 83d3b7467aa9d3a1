package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the migration files.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- User table (demo accounts carry an expiry)
		CREATE TABLE user (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			display_name VARCHAR(100) NOT NULL,
			default_currency VARCHAR(3) NOT NULL DEFAULT 'ILS',
			is_demo BOOLEAN NOT NULL DEFAULT FALSE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			expires_at DATETIME
		);

		-- Hierarchy: class > instrument > provider > asset
		CREATE TABLE asset_class (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			name VARCHAR(100) NOT NULL,
			display_order INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY(user_id) REFERENCES user(id) ON DELETE CASCADE
		);

		CREATE TABLE instrument (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			asset_class_id VARCHAR(36) NOT NULL,
			name VARCHAR(100) NOT NULL,
			display_order INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY(asset_class_id) REFERENCES asset_class(id) ON DELETE CASCADE
		);

		CREATE TABLE provider (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			instrument_id VARCHAR(36) NOT NULL,
			name VARCHAR(100) NOT NULL,
			display_order INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY(instrument_id) REFERENCES instrument(id) ON DELETE CASCADE
		);

		CREATE TABLE asset (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			provider_id VARCHAR(36) NOT NULL,
			name VARCHAR(100) NOT NULL,
			is_liquid BOOLEAN NOT NULL DEFAULT TRUE,
			currency VARCHAR(3) NOT NULL DEFAULT 'ILS',
			display_order INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY(provider_id) REFERENCES provider(id) ON DELETE CASCADE
		);

		-- Monthly value table (one value per asset per calendar month)
		CREATE TABLE monthly_value (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			asset_id VARCHAR(36) NOT NULL,
			month INTEGER NOT NULL,
			year INTEGER NOT NULL,
			value TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(asset_id) REFERENCES asset(id) ON DELETE CASCADE,
			CONSTRAINT unique_asset_month UNIQUE (asset_id, month, year)
		);

		-- Category table
		CREATE TABLE category (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			name VARCHAR(100) NOT NULL,
			type VARCHAR(7) NOT NULL,
			display_order INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY(user_id) REFERENCES user(id) ON DELETE CASCADE
		);

		-- Transaction table (quoted because transaction is a reserved keyword)
		CREATE TABLE "transaction" (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			category_id VARCHAR(36) NOT NULL,
			month INTEGER NOT NULL,
			year INTEGER NOT NULL,
			amount TEXT NOT NULL,
			description TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(user_id) REFERENCES user(id) ON DELETE CASCADE,
			FOREIGN KEY(category_id) REFERENCES category(id) ON DELETE CASCADE
		);

		-- Indexes for performance
		CREATE INDEX ix_asset_class_user_id ON asset_class(user_id);
		CREATE INDEX ix_instrument_asset_class_id ON instrument(asset_class_id);
		CREATE INDEX ix_provider_instrument_id ON provider(instrument_id);
		CREATE INDEX ix_asset_provider_id ON asset(provider_id);
		CREATE INDEX ix_monthly_value_asset_id ON monthly_value(asset_id);
		CREATE INDEX ix_monthly_value_period ON monthly_value(year, month);
		CREATE INDEX ix_transaction_user_period ON "transaction"(user_id, year, month);
		CREATE INDEX ix_transaction_category_id ON "transaction"(category_id);
		CREATE INDEX ix_user_expires_at ON user(expires_at);
	`

	_, err := db.Exec(schema)
	return err
}

// CleanDatabase truncates all tables in dependency order.
// Useful for reusing the same database across multiple tests.
func CleanDatabase(t *testing.T, db *sql.DB) {
	t.Helper()

	// Order matters: delete children before parents due to foreign keys
	tables := []string{
		"transaction",
		"category",
		"monthly_value",
		"asset",
		"provider",
		"instrument",
		"asset_class",
		"user",
	}

	for _, table := range tables {
		query := `DELETE FROM "` + table + `"`
		if _, err := db.Exec(query); err != nil {
			t.Fatalf("Failed to clean table %s: %v", table, err)
		}
	}
}

// CountRows returns the number of rows in a table.
// Useful for assertions in tests.
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var count int
	query := `SELECT COUNT(*) FROM "` + table + `"`
	err := db.QueryRow(query).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}

	return count
}

// AssertRowCount asserts that a table has the expected number of rows.
func AssertRowCount(t *testing.T, db *sql.DB, table string, expected int) {
	t.Helper()

	actual := CountRows(t, db, table)
	if actual != expected {
		t.Errorf("Expected %d rows in %s, got %d", expected, table, actual)
	}
}
