package service

import (
	"sort"

	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/model"
)

// ResolveEffectiveValues computes the effective value of every asset at one
// target month. An asset takes its exact record when one exists for the
// target month, otherwise the most recent earlier record carried forward
// (marked inherited), otherwise "0". Records dated after the target month
// never apply; a future-only asset resolves to "0" and is not inherited.
//
// Comparison is on the linear month index (year*12 + month) so month numbers
// never collide across years.
//
// The input value list may be in any order and may contain assets outside
// assetIDs; those are ignored.
func ResolveEffectiveValues(assetIDs []string, values []model.MonthlyValue, month, year int) map[string]model.EffectiveValue {
	target := model.MonthRef{Month: month, Year: year}

	byAsset := partitionByAsset(assetIDs, values)

	resolved := make(map[string]model.EffectiveValue, len(assetIDs))
	for _, assetID := range assetIDs {
		resolved[assetID] = resolveSingle(assetID, byAsset[assetID], target)
	}

	return resolved
}

// resolveSingle finds, among one asset's records, the one with the maximal
// month index at or before the target and classifies the result.
func resolveSingle(assetID string, history []model.MonthlyValue, target model.MonthRef) model.EffectiveValue {
	effective := model.EffectiveValue{
		AssetID: assetID,
		Month:   target.Month,
		Year:    target.Year,
		Value:   "0",
	}

	var best *model.MonthlyValue
	for i := range history {
		ref := model.MonthRef{Month: history[i].Month, Year: history[i].Year}
		if ref.Index() > target.Index() {
			continue
		}
		if best == nil || ref.Index() > (model.MonthRef{Month: best.Month, Year: best.Year}).Index() {
			best = &history[i]
		}
	}

	if best == nil {
		return effective
	}

	effective.Value = best.Value
	if best.Month != target.Month || best.Year != target.Year {
		effective.IsInherited = true
		effective.InheritedFrom = &model.MonthRef{Month: best.Month, Year: best.Year}
	}

	return effective
}

// valueCursor resolves effective values for a run of consecutive months in
// ascending order, carrying the last known record per asset forward instead
// of re-scanning the full history for every month. One cursor serves one
// aggregation request and is discarded with it.
//
// Advancing the cursor through months M1 < M2 < ... produces exactly the
// same results as calling ResolveEffectiveValues independently per month.
type valueCursor struct {
	assetIDs []string
	byAsset  map[string][]model.MonthlyValue // ascending per asset
	pos      map[string]int
	last     map[string]model.MonthlyValue
}

// newValueCursor builds a cursor over the given value history.
func newValueCursor(assetIDs []string, values []model.MonthlyValue) *valueCursor {
	byAsset := partitionByAsset(assetIDs, values)

	for assetID := range byAsset {
		history := byAsset[assetID]
		sort.Slice(history, func(i, j int) bool {
			a := model.MonthRef{Month: history[i].Month, Year: history[i].Year}
			b := model.MonthRef{Month: history[j].Month, Year: history[j].Year}
			return a.Index() < b.Index()
		})
	}

	return &valueCursor{
		assetIDs: assetIDs,
		byAsset:  byAsset,
		pos:      make(map[string]int, len(assetIDs)),
		last:     make(map[string]model.MonthlyValue, len(assetIDs)),
	}
}

// Advance moves the cursor to the given month and returns the effective
// value per asset. Months must be requested in ascending order; the cursor
// never rewinds.
func (c *valueCursor) Advance(target model.MonthRef) map[string]model.EffectiveValue {
	resolved := make(map[string]model.EffectiveValue, len(c.assetIDs))

	for _, assetID := range c.assetIDs {
		history := c.byAsset[assetID]

		// Consume every record at or before the target month.
		for c.pos[assetID] < len(history) {
			next := history[c.pos[assetID]]
			if (model.MonthRef{Month: next.Month, Year: next.Year}).Index() > target.Index() {
				break
			}
			c.last[assetID] = next
			c.pos[assetID]++
		}

		effective := model.EffectiveValue{
			AssetID: assetID,
			Month:   target.Month,
			Year:    target.Year,
			Value:   "0",
		}

		if last, ok := c.last[assetID]; ok {
			effective.Value = last.Value
			if last.Month != target.Month || last.Year != target.Year {
				effective.IsInherited = true
				effective.InheritedFrom = &model.MonthRef{Month: last.Month, Year: last.Year}
			}
		}

		resolved[assetID] = effective
	}

	return resolved
}

// partitionByAsset groups the value history per asset, keeping only assets
// present in assetIDs. Values for unknown assets (e.g. deleted upstream)
// are dropped.
func partitionByAsset(assetIDs []string, values []model.MonthlyValue) map[string][]model.MonthlyValue {
	known := make(map[string]bool, len(assetIDs))
	for _, id := range assetIDs {
		known[id] = true
	}

	byAsset := make(map[string][]model.MonthlyValue, len(assetIDs))
	for _, v := range values {
		if !known[v.AssetID] {
			continue
		}
		byAsset[v.AssetID] = append(byAsset[v.AssetID], v)
	}

	return byAsset
}
