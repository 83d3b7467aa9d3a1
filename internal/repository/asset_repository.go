package repository

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	apperrors "github.com/nwtracker/Net-Worth-Tracker-Backend/internal/errors"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/model"
)

// AssetRepository provides create/update/delete access to the four hierarchy
// tables. Reads of the assembled tree go through HierarchyRepository.
type AssetRepository struct {
	db *sql.DB
}

// NewAssetRepository creates a new AssetRepository with the provided database connection.
func NewAssetRepository(db *sql.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// CreateAssetClass inserts a new asset class for the user.
func (r *AssetRepository) CreateAssetClass(userID, name string, displayOrder int) (model.AssetClass, error) {
	class := model.AssetClass{
		ID:           uuid.New().String(),
		UserID:       userID,
		Name:         name,
		DisplayOrder: displayOrder,
	}

	query := `INSERT INTO asset_class (id, user_id, name, display_order) VALUES (?, ?, ?, ?)`
	if _, err := r.db.Exec(query, class.ID, class.UserID, class.Name, class.DisplayOrder); err != nil {
		return model.AssetClass{}, fmt.Errorf("failed to insert asset_class: %w", err)
	}

	return class, nil
}

// CreateInstrument inserts a new instrument under an asset class.
func (r *AssetRepository) CreateInstrument(assetClassID, name string, displayOrder int) (model.Instrument, error) {
	instrument := model.Instrument{
		ID:           uuid.New().String(),
		AssetClassID: assetClassID,
		Name:         name,
		DisplayOrder: displayOrder,
	}

	query := `INSERT INTO instrument (id, asset_class_id, name, display_order) VALUES (?, ?, ?, ?)`
	if _, err := r.db.Exec(query, instrument.ID, instrument.AssetClassID, instrument.Name, instrument.DisplayOrder); err != nil {
		return model.Instrument{}, fmt.Errorf("failed to insert instrument: %w", err)
	}

	return instrument, nil
}

// CreateProvider inserts a new provider under an instrument.
func (r *AssetRepository) CreateProvider(instrumentID, name string, displayOrder int) (model.Provider, error) {
	provider := model.Provider{
		ID:           uuid.New().String(),
		InstrumentID: instrumentID,
		Name:         name,
		DisplayOrder: displayOrder,
	}

	query := `INSERT INTO provider (id, instrument_id, name, display_order) VALUES (?, ?, ?, ?)`
	if _, err := r.db.Exec(query, provider.ID, provider.InstrumentID, provider.Name, provider.DisplayOrder); err != nil {
		return model.Provider{}, fmt.Errorf("failed to insert provider: %w", err)
	}

	return provider, nil
}

// CreateAsset inserts a new leaf asset under a provider.
func (r *AssetRepository) CreateAsset(providerID, name string, isLiquid bool, currency string, displayOrder int) (model.Asset, error) {
	asset := model.Asset{
		ID:           uuid.New().String(),
		ProviderID:   providerID,
		Name:         name,
		IsLiquid:     isLiquid,
		Currency:     currency,
		DisplayOrder: displayOrder,
	}

	query := `INSERT INTO asset (id, provider_id, name, is_liquid, currency, display_order) VALUES (?, ?, ?, ?, ?, ?)`
	if _, err := r.db.Exec(query, asset.ID, asset.ProviderID, asset.Name, asset.IsLiquid, asset.Currency, asset.DisplayOrder); err != nil {
		return model.Asset{}, fmt.Errorf("failed to insert asset: %w", err)
	}

	return asset, nil
}

// GetAssetOnID retrieves a single asset with its denormalized class name.
func (r *AssetRepository) GetAssetOnID(assetID string) (model.Asset, error) {
	query := `
		SELECT a.id, a.provider_id, a.name, a.is_liquid, a.currency, a.display_order, ac.name
		FROM asset a
		JOIN provider p ON p.id = a.provider_id
		JOIN instrument i ON i.id = p.instrument_id
		JOIN asset_class ac ON ac.id = i.asset_class_id
		WHERE a.id = ?
	`

	var a model.Asset

	err := r.db.QueryRow(query, assetID).Scan(
		&a.ID,
		&a.ProviderID,
		&a.Name,
		&a.IsLiquid,
		&a.Currency,
		&a.DisplayOrder,
		&a.AssetClassName,
	)
	if err == sql.ErrNoRows {
		return model.Asset{}, apperrors.ErrAssetNotFound
	}
	if err != nil {
		return model.Asset{}, fmt.Errorf("failed to query asset: %w", err)
	}

	return a, nil
}

// AssetBelongsToUser reports whether the asset is owned (via the hierarchy)
// by the given user. The ownership walk guards every value write.
func (r *AssetRepository) AssetBelongsToUser(assetID, userID string) (bool, error) {
	query := `
		SELECT COUNT(*)
		FROM asset a
		JOIN provider p ON p.id = a.provider_id
		JOIN instrument i ON i.id = p.instrument_id
		JOIN asset_class ac ON ac.id = i.asset_class_id
		WHERE a.id = ? AND ac.user_id = ?
	`

	var count int
	if err := r.db.QueryRow(query, assetID, userID).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check asset ownership: %w", err)
	}

	return count > 0, nil
}

// ClassBelongsToUser reports whether the asset class is owned by the user.
// Classes carry the user ID directly, so no hierarchy walk is needed.
func (r *AssetRepository) ClassBelongsToUser(assetClassID, userID string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM asset_class WHERE id = ? AND user_id = ?`
	if err := r.db.QueryRow(query, assetClassID, userID).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check asset class ownership: %w", err)
	}

	return count > 0, nil
}

// UpdateAsset updates the mutable fields of an asset.
func (r *AssetRepository) UpdateAsset(asset model.Asset) error {
	query := `UPDATE asset SET name = ?, is_liquid = ?, currency = ?, display_order = ? WHERE id = ?`

	result, err := r.db.Exec(query, asset.Name, asset.IsLiquid, asset.Currency, asset.DisplayOrder, asset.ID)
	if err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAssetNotFound
	}

	return nil
}

// DeleteAsset removes an asset. Its monthly values go with it via the
// cascading foreign key, which is what lets historical snapshots silently
// drop orphaned values.
func (r *AssetRepository) DeleteAsset(assetID string) error {
	result, err := r.db.Exec(`DELETE FROM asset WHERE id = ?`, assetID)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAssetNotFound
	}

	return nil
}

// DeleteAssetClass removes an asset class and, through cascading foreign
// keys, everything under it.
func (r *AssetRepository) DeleteAssetClass(assetClassID string) error {
	result, err := r.db.Exec(`DELETE FROM asset_class WHERE id = ?`, assetClassID)
	if err != nil {
		return fmt.Errorf("failed to delete asset_class: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAssetClassNotFound
	}

	return nil
}
