package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/nwtracker/Net-Worth-Tracker-Backend/internal/errors"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/model"
)

// ValueRepository provides data access methods for the monthly_value table.
// Each row is one recorded valuation of one asset for one calendar month;
// the (asset_id, month, year) combination is unique and writes are upserts.
type ValueRepository struct {
	db *sql.DB
}

// NewValueRepository creates a new ValueRepository with the provided database connection.
func NewValueRepository(db *sql.DB) *ValueRepository {
	return &ValueRepository{db: db}
}

// GetValuesUpTo retrieves all recorded values for the given assets whose
// month is at or before upTo, ordered newest first. The inheritance resolver
// needs everything up to the target month, not just the target month itself,
// because a missing month falls back to the most recent earlier record.
//
// Returns an empty slice when assetIDs is empty.
func (r *ValueRepository) GetValuesUpTo(assetIDs []string, upTo model.MonthRef) ([]model.MonthlyValue, error) {
	if len(assetIDs) == 0 {
		return []model.MonthlyValue{}, nil
	}

	placeholders := make([]string, len(assetIDs))
	for i := range placeholders {
		placeholders[i] = "?"
	}

	//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
	query := `
		SELECT id, asset_id, month, year, value
		FROM monthly_value
		WHERE asset_id IN (` + strings.Join(placeholders, ",") + `)
		AND (year * 12 + month) <= ?
		ORDER BY year DESC, month DESC
	`

	args := make([]any, 0, len(assetIDs)+1)
	for _, id := range assetIDs {
		args = append(args, id)
	}
	args = append(args, upTo.Index())

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly_value table: %w", err)
	}
	defer rows.Close()

	values := []model.MonthlyValue{}

	for rows.Next() {
		var v model.MonthlyValue

		err := rows.Scan(
			&v.ID,
			&v.AssetID,
			&v.Month,
			&v.Year,
			&v.Value,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monthly_value table results: %w", err)
		}

		values = append(values, v)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly_value table: %w", err)
	}

	return values, nil
}

// GetValueForMonth retrieves the single recorded value for one asset and month.
// Returns apperrors.ErrMonthlyValueNotFound when no exact record exists.
func (r *ValueRepository) GetValueForMonth(assetID string, month, year int) (model.MonthlyValue, error) {
	query := `
		SELECT id, asset_id, month, year, value
		FROM monthly_value
		WHERE asset_id = ? AND month = ? AND year = ?
	`

	var v model.MonthlyValue

	err := r.db.QueryRow(query, assetID, month, year).Scan(
		&v.ID,
		&v.AssetID,
		&v.Month,
		&v.Year,
		&v.Value,
	)
	if err == sql.ErrNoRows {
		return model.MonthlyValue{}, apperrors.ErrMonthlyValueNotFound
	}
	if err != nil {
		return model.MonthlyValue{}, fmt.Errorf("failed to query monthly_value: %w", err)
	}

	return v, nil
}

// UpsertValue inserts a valuation record or overwrites the existing one for
// the same (asset, month, year). Last write wins; concurrent writers are
// resolved by the unique constraint, not by the application.
func (r *ValueRepository) UpsertValue(assetID string, month, year int, value string) (model.MonthlyValue, error) {
	query := `
		INSERT INTO monthly_value (id, asset_id, month, year, value)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(asset_id, month, year) DO UPDATE SET value = excluded.value
	`

	if _, err := r.db.Exec(query, uuid.New().String(), assetID, month, year, value); err != nil {
		return model.MonthlyValue{}, fmt.Errorf("failed to upsert monthly_value: %w", err)
	}

	return r.GetValueForMonth(assetID, month, year)
}
