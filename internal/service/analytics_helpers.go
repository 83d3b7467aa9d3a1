package service

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/model"
)

// distributionPalette is the fixed color cycle for distribution charts.
// Colors are assigned by stable entry index modulo the palette length, so
// the same data always renders the same way.
var distributionPalette = []string{
	"#4E79A7", "#F28E2B", "#E15759", "#76B7B2", "#59A14F",
	"#EDC948", "#B07AA1", "#FF9DA7", "#9C755F", "#BAB0AC",
}

// windowMonths enumerates windowSize consecutive calendar months ending at
// current, oldest first, rolling year boundaries.
func windowMonths(current model.MonthRef, windowSize int) []model.MonthRef {
	months := make([]model.MonthRef, windowSize)
	ref := current
	for i := windowSize - 1; i >= 0; i-- {
		months[i] = ref
		ref = ref.Previous()
	}
	return months
}

// monthLabel formats a month as "Jan 2026" for chart axes.
func monthLabel(m model.MonthRef) string {
	return time.Month(m.Month).String()[:3] + " " + strconv.Itoa(m.Year)
}

// buildMonthlySeries resolves every month of the window in chronological
// order through one streaming cursor and aggregates each month's total and
// per-class breakdown. Classes with no contributing asset in a month are
// omitted from that month's ByClass map, not zeroed.
//
// Returns the series plus the resolved effective values of the final
// (current) month, which the distribution and performance analysis reuses.
func buildMonthlySeries(hierarchy model.AssetHierarchy, values []model.MonthlyValue, current model.MonthRef, windowSize int) ([]model.MonthlyTotal, map[string]model.EffectiveValue) {
	assetIDs := hierarchy.AssetIDs()
	cursor := newValueCursor(assetIDs, values)

	series := make([]model.MonthlyTotal, 0, windowSize)
	var lastResolved map[string]model.EffectiveValue

	for _, ref := range windowMonths(current, windowSize) {
		resolved := cursor.Advance(ref)
		lastResolved = resolved

		total := decimal.Zero
		byClass := make(map[string]decimal.Decimal)

		for _, asset := range hierarchy.Assets {
			amount := parseAmount(resolved[asset.ID].Value)
			total = total.Add(amount)
			if !amount.IsZero() {
				byClass[asset.AssetClassName] = byClass[asset.AssetClassName].Add(amount)
			}
		}

		classTotals := make(map[string]float64, len(byClass))
		for name, sum := range byClass {
			classTotals[name] = sum.InexactFloat64()
		}

		series = append(series, model.MonthlyTotal{
			Month:   ref.Month,
			Year:    ref.Year,
			Label:   monthLabel(ref),
			Total:   total.InexactFloat64(),
			ByClass: classTotals,
		})
	}

	return series, lastResolved
}

// seriesChange returns the absolute and percentage change of the final
// month of the series against a reference month total. A missing or
// non-positive reference yields (0, 0), the "no signal" policy.
func seriesChange(currentTotal float64, reference *model.MonthlyTotal) (float64, float64) {
	if reference == nil || reference.Total <= 0 {
		return 0, 0
	}
	change := currentTotal - reference.Total
	return change, percentChange(change, reference.Total)
}

// findMonth returns the series entry for the given month, or nil when the
// month is outside the window.
func findMonth(series []model.MonthlyTotal, ref model.MonthRef) *model.MonthlyTotal {
	for i := range series {
		if series[i].Month == ref.Month && series[i].Year == ref.Year {
			return &series[i]
		}
	}
	return nil
}

// averageMonthlyGrowth is the arithmetic mean of month-over-month percentage
// changes across consecutive window pairs whose earlier total is positive.
// This deliberately averages percentages instead of compounding them; the
// number is a user-facing metric with that established meaning.
func averageMonthlyGrowth(series []model.MonthlyTotal) float64 {
	var sum float64
	var count int

	for i := 1; i < len(series); i++ {
		earlier := series[i-1].Total
		if earlier <= 0 {
			continue
		}
		sum += percentChange(series[i].Total-earlier, earlier)
		count++
	}

	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// monthlyContributions is the first-difference series over the window, one
// entry shorter than the series itself. Empty for a single-month window.
func monthlyContributions(series []model.MonthlyTotal) []model.MonthlyContribution {
	contributions := make([]model.MonthlyContribution, 0, max(0, len(series)-1))
	for i := 1; i < len(series); i++ {
		contributions = append(contributions, model.MonthlyContribution{
			Label:        series[i].Label,
			Contribution: series[i].Total - series[i-1].Total,
		})
	}
	return contributions
}

// buildDistribution groups assets by the dimension extracted by keyFn, sums
// each group's current effective value, drops groups whose total is not
// positive and computes each survivor's share of the overall total. The
// three distribution dimensions (class, currency, liquidity) differ only in
// keyFn.
//
// Group order follows first appearance in the hierarchy, which makes color
// assignment deterministic.
func buildDistribution(assets []model.Asset, current map[string]model.EffectiveValue, keyFn func(model.Asset) string) []model.DistributionEntry {
	overall := decimal.Zero
	groupTotals := make(map[string]decimal.Decimal)
	groupOrder := []string{}

	for _, asset := range assets {
		amount := parseAmount(current[asset.ID].Value)
		overall = overall.Add(amount)

		key := keyFn(asset)
		if _, seen := groupTotals[key]; !seen {
			groupOrder = append(groupOrder, key)
		}
		groupTotals[key] = groupTotals[key].Add(amount)
	}

	overallTotal := overall.InexactFloat64()

	entries := []model.DistributionEntry{}
	for _, key := range groupOrder {
		total := groupTotals[key].InexactFloat64()
		if total <= 0 {
			continue
		}

		percent := 0.0
		if overallTotal > 0 {
			percent = total / overallTotal * 100
		}

		entries = append(entries, model.DistributionEntry{
			Name:    key,
			Value:   total,
			Percent: round(percent),
			Color:   distributionPalette[len(entries)%len(distributionPalette)],
		})
	}

	return entries
}

// liquidityKey maps an asset onto the two-bucket liquidity dimension.
func liquidityKey(asset model.Asset) string {
	if asset.IsLiquid {
		return "liquid"
	}
	return "illiquid"
}

// buildAssetPerformance compares each asset's current and previous effective
// values. Assets with zero in both snapshots carry no information and are
// excluded entirely. ChangePercent is 0 for assets with no prior value.
func buildAssetPerformance(assets []model.Asset, current, previous map[string]model.EffectiveValue) []model.AssetPerformance {
	performance := []model.AssetPerformance{}

	for _, asset := range assets {
		cur := parseAmount(current[asset.ID].Value).InexactFloat64()
		prev := parseAmount(previous[asset.ID].Value).InexactFloat64()

		if cur <= 0 && prev <= 0 {
			continue
		}

		change := cur - prev
		performance = append(performance, model.AssetPerformance{
			AssetID:       asset.ID,
			Name:          asset.Name,
			Current:       cur,
			Previous:      prev,
			Change:        change,
			ChangePercent: percentChange(change, prev),
		})
	}

	return performance
}

// pickTopAsset returns the entry with the highest current value. Ties go to
// the earlier entry; hierarchy order is stable. Nil when there are no entries.
func pickTopAsset(performance []model.AssetPerformance) *model.AssetPerformance {
	var top *model.AssetPerformance
	for i := range performance {
		if top == nil || performance[i].Current > top.Current {
			top = &performance[i]
		}
	}
	return top
}

// pickGrowthExtremes returns the best and worst ChangePercent among entries
// with a positive previous value. Assets newly appearing this month have no
// defined growth rate and are excluded from the ranking.
func pickGrowthExtremes(performance []model.AssetPerformance) (*model.AssetPerformance, *model.AssetPerformance) {
	var best, worst *model.AssetPerformance
	for i := range performance {
		if performance[i].Previous <= 0 {
			continue
		}
		if best == nil || performance[i].ChangePercent > best.ChangePercent {
			best = &performance[i]
		}
		if worst == nil || performance[i].ChangePercent < worst.ChangePercent {
			worst = &performance[i]
		}
	}
	return best, worst
}
