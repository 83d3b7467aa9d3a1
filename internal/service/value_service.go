package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/nwtracker/Net-Worth-Tracker-Backend/internal/errors"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/model"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/repository"
)

// ValueService handles monthly valuation recording and snapshot assembly.
// It resolves a sparse value history into a complete per-asset snapshot for
// any requested month, inheriting missing months from the most recent
// earlier record.
type ValueService struct {
	valueRepo     *repository.ValueRepository
	hierarchyRepo *repository.HierarchyRepository
	assetRepo     *repository.AssetRepository
	userRepo      *repository.UserRepository
}

// NewValueService creates a new ValueService with the provided repository dependencies.
func NewValueService(
	valueRepo *repository.ValueRepository,
	hierarchyRepo *repository.HierarchyRepository,
	assetRepo *repository.AssetRepository,
	userRepo *repository.UserRepository,
) *ValueService {
	return &ValueService{
		valueRepo:     valueRepo,
		hierarchyRepo: hierarchyRepo,
		assetRepo:     assetRepo,
		userRepo:      userRepo,
	}
}

// GetSnapshot builds the complete valuation snapshot of one user for the
// target month: the effective value of every asset in the hierarchy, the
// summed total, and the change against the previous month.
//
// The hierarchy and the user record are loaded concurrently; the value
// history is fetched once for the whole request (a single range query up to
// the target month) and both the target and the previous month are resolved
// from that one set.
//
// Values are summed as raw numbers regardless of each asset's currency; the
// snapshot carries the user's default currency as a label only.
func (s *ValueService) GetSnapshot(userID string, month, year int) (model.Snapshot, error) {
	var hierarchy model.AssetHierarchy
	var user model.User

	var g errgroup.Group
	g.Go(func() error {
		var err error
		hierarchy, err = s.hierarchyRepo.GetHierarchy(userID)
		return err
	})
	g.Go(func() error {
		var err error
		user, err = s.userRepo.GetUserOnID(userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.Snapshot{}, err
	}

	target := model.MonthRef{Month: month, Year: year}
	assetIDs := hierarchy.AssetIDs()

	values, err := s.valueRepo.GetValuesUpTo(assetIDs, target)
	if err != nil {
		return model.Snapshot{}, err
	}

	current := ResolveEffectiveValues(assetIDs, values, target.Month, target.Year)
	previous := ResolveEffectiveValues(assetIDs, values, target.Previous().Month, target.Previous().Year)

	snapshot := buildSnapshot(hierarchy, target, current, previous)
	snapshot.TotalBalanceCurrency = user.DefaultCurrency

	return snapshot, nil
}

// buildSnapshot assembles a Snapshot from resolved effective values. Only
// assets present in the hierarchy appear in the output; historical values of
// assets that are no longer in the tree were never resolved and are silently
// ignored, mirroring the cascading-delete semantics upstream.
func buildSnapshot(hierarchy model.AssetHierarchy, target model.MonthRef, current, previous map[string]model.EffectiveValue) model.Snapshot {
	total := parseAmount("0")
	previousTotal := parseAmount("0")

	values := make([]model.EffectiveValue, 0, len(hierarchy.Assets))
	for _, asset := range hierarchy.Assets {
		effective := current[asset.ID]
		values = append(values, effective)
		total = total.Add(parseAmount(effective.Value))
		previousTotal = previousTotal.Add(parseAmount(previous[asset.ID].Value))
	}

	change := total.Sub(previousTotal)

	return model.Snapshot{
		Month:        target.Month,
		Year:         target.Year,
		TotalBalance: total.String(),
		ChangeFromPrevious: model.MonthlyChange{
			Absolute:   change.String(),
			Percentage: round(percentChange(change.InexactFloat64(), previousTotal.InexactFloat64())),
		},
		Values: values,
	}
}

// RecordValue upserts one monthly valuation after verifying the asset
// belongs to the user. Recording the same (asset, month, year) twice
// overwrites the earlier value; there is no versioning.
func (s *ValueService) RecordValue(userID, assetID string, month, year int, value string) (model.MonthlyValue, error) {
	owned, err := s.assetRepo.AssetBelongsToUser(assetID, userID)
	if err != nil {
		return model.MonthlyValue{}, err
	}
	if !owned {
		return model.MonthlyValue{}, apperrors.ErrAssetNotFound
	}

	return s.valueRepo.UpsertValue(assetID, month, year, value)
}

// ExportValuesCSV writes every recorded value of the user as CSV, newest
// first, one row per (asset, month, year) record.
func (s *ValueService) ExportValuesCSV(userID string, w io.Writer) error {
	hierarchy, err := s.hierarchyRepo.GetHierarchy(userID)
	if err != nil {
		return err
	}

	// Upper bound far past any recordable month; the export includes
	// future-dated records that snapshots would ignore.
	values, err := s.valueRepo.GetValuesUpTo(hierarchy.AssetIDs(), model.MonthRef{Month: 12, Year: 9999})
	if err != nil {
		return err
	}

	names := make(map[string]string, len(hierarchy.Assets))
	for _, a := range hierarchy.Assets {
		names[a.ID] = a.Name
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"asset_id", "asset_name", "month", "year", "value"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, v := range values {
		record := []string{
			v.AssetID,
			names[v.AssetID],
			strconv.Itoa(v.Month),
			strconv.Itoa(v.Year),
			v.Value,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
