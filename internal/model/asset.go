package model

// AssetClass is the top grouping level of the asset hierarchy (e.g. "Liquid", "Pension").
type AssetClass struct {
	ID           string `json:"id"`
	UserID       string `json:"userId"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"displayOrder"`
}

// Instrument is the second grouping level, nested under an asset class
// (e.g. "Bank Account", "Provident Fund").
type Instrument struct {
	ID           string `json:"id"`
	AssetClassID string `json:"assetClassId"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"displayOrder"`
}

// Provider is the third grouping level, nested under an instrument
// (e.g. "Bank Hapoalim", "Meitav Dash").
type Provider struct {
	ID           string `json:"id"`
	InstrumentID string `json:"instrumentId"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"displayOrder"`
}

// Asset is a single trackable holding owned by a provider.
// AssetClassName is denormalized onto the asset so aggregation code never
// has to walk back up the tree.
type Asset struct {
	ID             string `json:"id"`
	ProviderID     string `json:"providerId"`
	Name           string `json:"name"`
	IsLiquid       bool   `json:"isLiquid"`
	Currency       string `json:"currency"`
	AssetClassName string `json:"assetClassName"`
	DisplayOrder   int    `json:"displayOrder"`
}

// ProviderNode is a provider with its assets attached.
type ProviderNode struct {
	Provider
	Assets []Asset `json:"assets"`
}

// InstrumentNode is an instrument with its providers attached.
type InstrumentNode struct {
	Instrument
	Providers []ProviderNode `json:"providers"`
}

// AssetClassNode is an asset class with its instruments attached.
type AssetClassNode struct {
	AssetClass
	Instruments []InstrumentNode `json:"instruments"`
}

// AssetHierarchy is the full tree of one user's holdings plus a flat view of
// every leaf asset. The flat view is what the valuation and analytics code
// iterates over; the tree is what the UI renders.
type AssetHierarchy struct {
	Classes []AssetClassNode `json:"classes"`
	Assets  []Asset          `json:"-"`
}

// AssetIDs returns the IDs of every asset in the hierarchy.
func (h AssetHierarchy) AssetIDs() []string {
	ids := make([]string, len(h.Assets))
	for i, a := range h.Assets {
		ids[i] = a.ID
	}
	return ids
}
