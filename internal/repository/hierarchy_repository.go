package repository

import (
	"database/sql"
	"fmt"

	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/model"
)

// HierarchyRepository reads the asset hierarchy (class -> instrument ->
// provider -> asset) for a user. It is read-only; mutations go through
// AssetRepository.
type HierarchyRepository struct {
	db *sql.DB
}

// NewHierarchyRepository creates a new HierarchyRepository with the provided database connection.
func NewHierarchyRepository(db *sql.DB) *HierarchyRepository {
	return &HierarchyRepository{db: db}
}

// GetHierarchy retrieves the complete asset hierarchy for one user in a
// single query and assembles both the nested tree and the flat asset list.
// Every asset carries its class name denormalized so aggregation code never
// walks the tree.
//
// Grouping levels with no children are still present in the tree (an empty
// provider renders as an empty section in the UI) but contribute nothing to
// the flat asset list.
func (r *HierarchyRepository) GetHierarchy(userID string) (model.AssetHierarchy, error) {
	query := `
		SELECT
		ac.id, ac.user_id, ac.name, ac.display_order,
		i.id, i.name, i.display_order,
		p.id, p.name, p.display_order,
		a.id, a.name, a.is_liquid, a.currency, a.display_order
		FROM asset_class ac
		LEFT JOIN instrument i ON i.asset_class_id = ac.id
		LEFT JOIN provider p ON p.instrument_id = i.id
		LEFT JOIN asset a ON a.provider_id = p.id
		WHERE ac.user_id = ?
		ORDER BY ac.display_order, ac.name, i.display_order, i.name,
			p.display_order, p.name, a.display_order, a.name
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return model.AssetHierarchy{}, fmt.Errorf("failed to query asset hierarchy: %w", err)
	}
	defer rows.Close()

	hierarchy := model.AssetHierarchy{
		Classes: []model.AssetClassNode{},
		Assets:  []model.Asset{},
	}

	classIndex := make(map[string]int)
	instrumentIndex := make(map[string]int)
	providerIndex := make(map[string]int)

	for rows.Next() {
		var class model.AssetClass
		var instrumentID, instrumentName sql.NullString
		var instrumentOrder sql.NullInt64
		var providerID, providerName sql.NullString
		var providerOrder sql.NullInt64
		var assetID, assetName, assetCurrency sql.NullString
		var assetLiquid sql.NullBool
		var assetOrder sql.NullInt64

		err := rows.Scan(
			&class.ID,
			&class.UserID,
			&class.Name,
			&class.DisplayOrder,
			&instrumentID,
			&instrumentName,
			&instrumentOrder,
			&providerID,
			&providerName,
			&providerOrder,
			&assetID,
			&assetName,
			&assetLiquid,
			&assetCurrency,
			&assetOrder,
		)
		if err != nil {
			return model.AssetHierarchy{}, fmt.Errorf("failed to scan asset hierarchy results: %w", err)
		}

		ci, ok := classIndex[class.ID]
		if !ok {
			hierarchy.Classes = append(hierarchy.Classes, model.AssetClassNode{
				AssetClass:  class,
				Instruments: []model.InstrumentNode{},
			})
			ci = len(hierarchy.Classes) - 1
			classIndex[class.ID] = ci
		}

		if !instrumentID.Valid {
			continue
		}

		ii, ok := instrumentIndex[instrumentID.String]
		if !ok {
			hierarchy.Classes[ci].Instruments = append(hierarchy.Classes[ci].Instruments, model.InstrumentNode{
				Instrument: model.Instrument{
					ID:           instrumentID.String,
					AssetClassID: class.ID,
					Name:         instrumentName.String,
					DisplayOrder: int(instrumentOrder.Int64),
				},
				Providers: []model.ProviderNode{},
			})
			ii = len(hierarchy.Classes[ci].Instruments) - 1
			instrumentIndex[instrumentID.String] = ii
		}

		if !providerID.Valid {
			continue
		}

		pi, ok := providerIndex[providerID.String]
		if !ok {
			hierarchy.Classes[ci].Instruments[ii].Providers = append(hierarchy.Classes[ci].Instruments[ii].Providers, model.ProviderNode{
				Provider: model.Provider{
					ID:           providerID.String,
					InstrumentID: instrumentID.String,
					Name:         providerName.String,
					DisplayOrder: int(providerOrder.Int64),
				},
				Assets: []model.Asset{},
			})
			pi = len(hierarchy.Classes[ci].Instruments[ii].Providers) - 1
			providerIndex[providerID.String] = pi
		}

		if !assetID.Valid {
			continue
		}

		asset := model.Asset{
			ID:             assetID.String,
			ProviderID:     providerID.String,
			Name:           assetName.String,
			IsLiquid:       assetLiquid.Bool,
			Currency:       assetCurrency.String,
			AssetClassName: class.Name,
			DisplayOrder:   int(assetOrder.Int64),
		}

		hierarchy.Classes[ci].Instruments[ii].Providers[pi].Assets = append(hierarchy.Classes[ci].Instruments[ii].Providers[pi].Assets, asset)
		hierarchy.Assets = append(hierarchy.Assets, asset)
	}

	if err = rows.Err(); err != nil {
		return model.AssetHierarchy{}, fmt.Errorf("error iterating asset hierarchy: %w", err)
	}

	return hierarchy, nil
}
