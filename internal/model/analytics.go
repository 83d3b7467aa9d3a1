package model

// MonthlyTotal is the aggregated balance for one month of an analyzed window,
// broken down per asset class. Classes with no contributing asset in that
// month are omitted from ByClass rather than zeroed.
type MonthlyTotal struct {
	Month   int                `json:"month"`
	Year    int                `json:"year"`
	Label   string             `json:"label"`
	Total   float64            `json:"total"`
	ByClass map[string]float64 `json:"byClass"`
}

// MonthlyContribution is one entry of the first-difference series over a
// window of monthly totals.
type MonthlyContribution struct {
	Label        string  `json:"label"`
	Contribution float64 `json:"contribution"`
}

// DistributionEntry is one group of a single-dimension breakdown
// (asset class, currency or liquidity) of the current snapshot.
type DistributionEntry struct {
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Percent float64 `json:"percent"`
	Color   string  `json:"color"`
}

// AssetPerformance compares one asset's effective value between the current
// and the previous month. ChangePercent is 0 when there is no previous value
// to measure against.
type AssetPerformance struct {
	AssetID       string  `json:"assetId"`
	Name          string  `json:"name"`
	Current       float64 `json:"current"`
	Previous      float64 `json:"previous"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
}

// DashboardAnalytics is the full analytics payload for an N-month window
// ending at the current month.
type DashboardAnalytics struct {
	CurrentTotal         float64               `json:"currentTotal"`
	MonthlyChange        float64               `json:"monthlyChange"`
	MonthlyChangePercent float64               `json:"monthlyChangePercent"`
	YtdChange            float64               `json:"ytdChange"`
	YtdChangePercent     float64               `json:"ytdChangePercent"`
	YearlyChange         float64               `json:"yearlyChange"`
	YearlyChangePercent  float64               `json:"yearlyChangePercent"`
	AvgMonthlyGrowth     float64               `json:"avgMonthlyGrowth"`
	LiquidTotal          float64               `json:"liquidTotal"`
	IlliquidTotal        float64               `json:"illiquidTotal"`
	TotalAssets          int                   `json:"totalAssets"`
	AssetsWithValues     int                   `json:"assetsWithValues"`
	FillRate             float64               `json:"fillRate"`
	MonthlyTotals        []MonthlyTotal        `json:"monthlyTotals"`
	ClassDistribution    []DistributionEntry   `json:"classDistribution"`
	CurrencyDistribution []DistributionEntry   `json:"currencyDistribution"`
	LiquidityDistribution []DistributionEntry  `json:"liquidityDistribution"`
	TopAsset             *AssetPerformance     `json:"topAsset"`
	BestGrowth           *AssetPerformance     `json:"bestGrowth"`
	WorstGrowth          *AssetPerformance     `json:"worstGrowth"`
	MonthlyContributions []MonthlyContribution `json:"monthlyContributions"`
}
