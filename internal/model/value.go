package model

// MonthRef identifies one calendar month.
type MonthRef struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Index maps the month onto a single linear axis so that comparisons never
// collide across year boundaries (month 3 of 2024 vs month 3 of 2025).
func (m MonthRef) Index() int {
	return m.Year*12 + m.Month
}

// Previous returns the immediately preceding calendar month, rolling the
// year back when the month is January.
func (m MonthRef) Previous() MonthRef {
	if m.Month == 1 {
		return MonthRef{Month: 12, Year: m.Year - 1}
	}
	return MonthRef{Month: m.Month - 1, Year: m.Year}
}

// Next returns the immediately following calendar month.
func (m MonthRef) Next() MonthRef {
	if m.Month == 12 {
		return MonthRef{Month: 1, Year: m.Year + 1}
	}
	return MonthRef{Month: m.Month + 1, Year: m.Year}
}

// MonthlyValue is one recorded valuation of one asset for one calendar month.
// At most one record exists per (asset, month, year); writes are upserts.
// Value is a decimal string to keep precision across the API boundary.
type MonthlyValue struct {
	ID      string `json:"id"`
	AssetID string `json:"assetId"`
	Month   int    `json:"month"`
	Year    int    `json:"year"`
	Value   string `json:"value"`
}

// EffectiveValue is the valuation used for an asset in a given month: either
// the explicitly recorded value, or the most recent earlier value carried
// forward. An asset with no record at or before the month gets "0" and is
// not considered inherited.
type EffectiveValue struct {
	AssetID       string    `json:"assetId"`
	Month         int       `json:"month"`
	Year          int       `json:"year"`
	Value         string    `json:"value"`
	IsInherited   bool      `json:"isInherited"`
	InheritedFrom *MonthRef `json:"inheritedFrom"`
}

// MonthlyChange is the month-over-month movement of a total balance.
type MonthlyChange struct {
	Absolute   string  `json:"absolute"`
	Percentage float64 `json:"percentage"`
}

// Snapshot is the complete set of effective values for every asset in the
// hierarchy at one target month, plus the summed total. Values are summed as
// raw numbers regardless of each asset's currency; the currency label is the
// user's default, not a conversion target.
type Snapshot struct {
	Month                int              `json:"month"`
	Year                 int              `json:"year"`
	TotalBalance         string           `json:"totalBalance"`
	TotalBalanceCurrency string           `json:"totalBalanceCurrency"`
	ChangeFromPrevious   MonthlyChange    `json:"changeFromPrevious"`
	Values               []EffectiveValue `json:"values"`
}
