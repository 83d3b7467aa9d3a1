package validation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/api/request"
)

func ValidateRecordValue(req request.RecordValueRequest) error {
	errors := make(map[string]string)

	if err := ValidateUUID(req.AssetID); err != nil {
		errors["assetId"] = "assetId must be a valid UUID"
	}

	if req.Month < 1 || req.Month > 12 {
		errors["month"] = "month must be between 1 and 12"
	}

	if req.Year < 2000 {
		errors["year"] = "year must be 2000 or later"
	}

	if strings.TrimSpace(req.Value) == "" {
		errors["value"] = "value is required"
	} else if _, err := decimal.NewFromString(req.Value); err != nil {
		errors["value"] = "value must be a decimal number"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
