package request

// RecordValueRequest is the body of POST /api/values.
type RecordValueRequest struct {
	AssetID string `json:"assetId"`
	Month   int    `json:"month"`
	Year    int    `json:"year"`
	Value   string `json:"value"`
}
