package service

import (
	apperrors "github.com/nwtracker/Net-Worth-Tracker-Backend/internal/errors"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/model"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/repository"
)

// AssetService handles management of the asset hierarchy. The valuation core
// treats the hierarchy as read-only input; mutations live here.
type AssetService struct {
	assetRepo     *repository.AssetRepository
	hierarchyRepo *repository.HierarchyRepository
}

// NewAssetService creates a new AssetService with the provided repository dependencies.
func NewAssetService(
	assetRepo *repository.AssetRepository,
	hierarchyRepo *repository.HierarchyRepository,
) *AssetService {
	return &AssetService{
		assetRepo:     assetRepo,
		hierarchyRepo: hierarchyRepo,
	}
}

// GetHierarchy retrieves the full asset tree for the user.
func (s *AssetService) GetHierarchy(userID string) (model.AssetHierarchy, error) {
	return s.hierarchyRepo.GetHierarchy(userID)
}

// CreateAssetClass adds a new top-level asset class.
func (s *AssetService) CreateAssetClass(userID, name string, displayOrder int) (model.AssetClass, error) {
	return s.assetRepo.CreateAssetClass(userID, name, displayOrder)
}

// CreateInstrument adds an instrument under one of the user's asset classes.
func (s *AssetService) CreateInstrument(assetClassID, name string, displayOrder int) (model.Instrument, error) {
	return s.assetRepo.CreateInstrument(assetClassID, name, displayOrder)
}

// CreateProvider adds a provider under an instrument.
func (s *AssetService) CreateProvider(instrumentID, name string, displayOrder int) (model.Provider, error) {
	return s.assetRepo.CreateProvider(instrumentID, name, displayOrder)
}

// CreateAsset adds a leaf asset under a provider.
func (s *AssetService) CreateAsset(providerID, name string, isLiquid bool, currency string, displayOrder int) (model.Asset, error) {
	return s.assetRepo.CreateAsset(providerID, name, isLiquid, currency, displayOrder)
}

// UpdateAsset updates an asset after verifying it belongs to the user.
func (s *AssetService) UpdateAsset(userID string, asset model.Asset) (model.Asset, error) {
	owned, err := s.assetRepo.AssetBelongsToUser(asset.ID, userID)
	if err != nil {
		return model.Asset{}, err
	}
	if !owned {
		return model.Asset{}, apperrors.ErrAssetNotFound
	}

	if err := s.assetRepo.UpdateAsset(asset); err != nil {
		return model.Asset{}, err
	}

	return s.assetRepo.GetAssetOnID(asset.ID)
}

// DeleteAsset removes an asset and, through cascading foreign keys, its
// recorded values.
func (s *AssetService) DeleteAsset(userID, assetID string) error {
	owned, err := s.assetRepo.AssetBelongsToUser(assetID, userID)
	if err != nil {
		return err
	}
	if !owned {
		return apperrors.ErrAssetNotFound
	}

	return s.assetRepo.DeleteAsset(assetID)
}

// DeleteAssetClass removes an asset class and everything under it, after
// verifying it belongs to the user.
func (s *AssetService) DeleteAssetClass(userID, assetClassID string) error {
	owned, err := s.assetRepo.ClassBelongsToUser(assetClassID, userID)
	if err != nil {
		return err
	}
	if !owned {
		return apperrors.ErrAssetClassNotFound
	}

	return s.assetRepo.DeleteAssetClass(assetClassID)
}
