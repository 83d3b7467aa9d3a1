package request

// CreateAssetClassRequest is the body of POST /api/assets/classes.
type CreateAssetClassRequest struct {
	Name         string `json:"name"`
	DisplayOrder int    `json:"displayOrder"`
}

// CreateInstrumentRequest is the body of POST /api/assets/instruments.
type CreateInstrumentRequest struct {
	AssetClassID string `json:"assetClassId"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"displayOrder"`
}

// CreateProviderRequest is the body of POST /api/assets/providers.
type CreateProviderRequest struct {
	InstrumentID string `json:"instrumentId"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"displayOrder"`
}

// CreateAssetRequest is the body of POST /api/assets.
type CreateAssetRequest struct {
	ProviderID   string `json:"providerId"`
	Name         string `json:"name"`
	IsLiquid     bool   `json:"isLiquid"`
	Currency     string `json:"currency"`
	DisplayOrder int    `json:"displayOrder"`
}

// UpdateAssetRequest is the body of PUT /api/assets/{assetId}.
// Pointer fields are optional; only provided fields are updated.
type UpdateAssetRequest struct {
	Name         *string `json:"name"`
	IsLiquid     *bool   `json:"isLiquid"`
	Currency     *string `json:"currency"`
	DisplayOrder *int    `json:"displayOrder"`
}
