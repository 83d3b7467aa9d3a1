package validation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/api/request"
)

func ValidateCreateCategory(req request.CreateCategoryRequest) error {
	errors := make(map[string]string)

	validateName(errors, req.Name)
	if req.Type != "income" && req.Type != "expense" {
		errors["type"] = "type must be income or expense"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	errors := make(map[string]string)

	if err := ValidateUUID(req.CategoryID); err != nil {
		errors["categoryId"] = "categoryId must be a valid UUID"
	}

	if req.Month < 1 || req.Month > 12 {
		errors["month"] = "month must be between 1 and 12"
	}

	if req.Year < 2000 {
		errors["year"] = "year must be 2000 or later"
	}

	if strings.TrimSpace(req.Amount) == "" {
		errors["amount"] = "amount is required"
	} else if _, err := decimal.NewFromString(req.Amount); err != nil {
		errors["amount"] = "amount must be a decimal number"
	}

	if len(req.Description) > 500 {
		errors["description"] = "description must be 500 characters or less"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
