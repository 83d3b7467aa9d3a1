package service

import (
	"time"

	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/model"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/repository"
)

// MaxAnalyticsWindow is the hard cap on the analytics window, in months.
const MaxAnalyticsWindow = 24

// AnalyticsService computes the dashboard analytics payload: the monthly
// total series over an N-month window with its derived period comparisons,
// plus distributions and per-asset performance for the current month.
//
// The service reads the hierarchy and value history once per request and
// performs all aggregation in memory; it never writes.
type AnalyticsService struct {
	hierarchyRepo *repository.HierarchyRepository
	valueRepo     *repository.ValueRepository
}

// NewAnalyticsService creates a new AnalyticsService with the provided repository dependencies.
func NewAnalyticsService(
	hierarchyRepo *repository.HierarchyRepository,
	valueRepo *repository.ValueRepository,
) *AnalyticsService {
	return &AnalyticsService{
		hierarchyRepo: hierarchyRepo,
		valueRepo:     valueRepo,
	}
}

// GetDashboardAnalytics computes analytics for a window of months ending at
// the current calendar month.
func (s *AnalyticsService) GetDashboardAnalytics(userID string, months int) (model.DashboardAnalytics, error) {
	now := time.Now()
	current := model.MonthRef{Month: int(now.Month()), Year: now.Year()}
	return s.GetDashboardAnalyticsAt(userID, months, current)
}

// GetDashboardAnalyticsAt computes analytics for a window of months ending
// at the given month. The window size is clamped to [1, MaxAnalyticsWindow].
//
// One range query loads every value up to the current month; all months of
// the window are then resolved from that single pre-fetched set through the
// streaming cursor. Issuing one query per month here is the N+1 fan-out this
// design exists to avoid.
func (s *AnalyticsService) GetDashboardAnalyticsAt(userID string, months int, current model.MonthRef) (model.DashboardAnalytics, error) {
	if months < 1 {
		months = 1
	}
	if months > MaxAnalyticsWindow {
		months = MaxAnalyticsWindow
	}

	hierarchy, err := s.hierarchyRepo.GetHierarchy(userID)
	if err != nil {
		return model.DashboardAnalytics{}, err
	}

	values, err := s.valueRepo.GetValuesUpTo(hierarchy.AssetIDs(), current)
	if err != nil {
		return model.DashboardAnalytics{}, err
	}

	series, currentValues := buildMonthlySeries(hierarchy, values, current, months)
	previousValues := ResolveEffectiveValues(hierarchy.AssetIDs(), values, current.Previous().Month, current.Previous().Year)

	currentTotal := series[len(series)-1].Total

	var precedingMonth *model.MonthlyTotal
	if len(series) >= 2 {
		precedingMonth = &series[len(series)-2]
	}
	monthlyChange, monthlyChangePercent := seriesChange(currentTotal, precedingMonth)

	january := findMonth(series, model.MonthRef{Month: 1, Year: current.Year})
	ytdChange, ytdChangePercent := seriesChange(currentTotal, january)

	priorYear := findMonth(series, model.MonthRef{Month: current.Month, Year: current.Year - 1})
	yearlyChange, yearlyChangePercent := seriesChange(currentTotal, priorYear)

	performance := buildAssetPerformance(hierarchy.Assets, currentValues, previousValues)
	best, worst := pickGrowthExtremes(performance)

	liquidTotal := 0.0
	illiquidTotal := 0.0
	assetsWithValues := 0
	for _, asset := range hierarchy.Assets {
		amount := parseAmount(currentValues[asset.ID].Value).InexactFloat64()
		if amount > 0 {
			assetsWithValues++
		}
		if asset.IsLiquid {
			liquidTotal += amount
		} else {
			illiquidTotal += amount
		}
	}

	fillRate := 0.0
	if len(hierarchy.Assets) > 0 {
		fillRate = float64(assetsWithValues) / float64(len(hierarchy.Assets)) * 100
	}

	return model.DashboardAnalytics{
		CurrentTotal:          currentTotal,
		MonthlyChange:         monthlyChange,
		MonthlyChangePercent:  round(monthlyChangePercent),
		YtdChange:             ytdChange,
		YtdChangePercent:      round(ytdChangePercent),
		YearlyChange:          yearlyChange,
		YearlyChangePercent:   round(yearlyChangePercent),
		AvgMonthlyGrowth:      round(averageMonthlyGrowth(series)),
		LiquidTotal:           liquidTotal,
		IlliquidTotal:         illiquidTotal,
		TotalAssets:           len(hierarchy.Assets),
		AssetsWithValues:      assetsWithValues,
		FillRate:              round(fillRate),
		MonthlyTotals:         series,
		ClassDistribution:     buildDistribution(hierarchy.Assets, currentValues, func(a model.Asset) string { return a.AssetClassName }),
		CurrencyDistribution:  buildDistribution(hierarchy.Assets, currentValues, func(a model.Asset) string { return a.Currency }),
		LiquidityDistribution: buildDistribution(hierarchy.Assets, currentValues, liquidityKey),
		TopAsset:              pickTopAsset(performance),
		BestGrowth:            best,
		WorstGrowth:           worst,
		MonthlyContributions:  monthlyContributions(series),
	}, nil
}
