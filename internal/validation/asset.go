package validation

import (
	"strings"

	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/api/request"
)

func validateName(errors map[string]string, name string) {
	if strings.TrimSpace(name) == "" {
		errors["name"] = "name is required"
	} else if len(name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}
}

func ValidateCreateAssetClass(req request.CreateAssetClassRequest) error {
	errors := make(map[string]string)

	validateName(errors, req.Name)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateCreateInstrument(req request.CreateInstrumentRequest) error {
	errors := make(map[string]string)

	validateName(errors, req.Name)
	if err := ValidateUUID(req.AssetClassID); err != nil {
		errors["assetClassId"] = "assetClassId must be a valid UUID"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateCreateProvider(req request.CreateProviderRequest) error {
	errors := make(map[string]string)

	validateName(errors, req.Name)
	if err := ValidateUUID(req.InstrumentID); err != nil {
		errors["instrumentId"] = "instrumentId must be a valid UUID"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateCreateAsset(req request.CreateAssetRequest) error {
	errors := make(map[string]string)

	validateName(errors, req.Name)
	if err := ValidateUUID(req.ProviderID); err != nil {
		errors["providerId"] = "providerId must be a valid UUID"
	}
	if len(req.Currency) != 3 {
		errors["currency"] = "currency must be a 3-letter code"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
