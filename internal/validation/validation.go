package validation

import (
	"fmt"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrInvalidUUID  = fmt.Errorf("invalid UUID format")
	ErrInvalidMonth = fmt.Errorf("month must be between 1 and 12")
	ErrInvalidYear  = fmt.Errorf("year must be 2000 or later")
)

// ValidateUUID checks if a string is a valid UUID
func ValidateUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidUUID, id)
	}
	return nil
}

// ValidateMonthYear checks a calendar month reference: month in [1, 12],
// year at least 2000.
func ValidateMonthYear(month, year int) error {
	if month < 1 || month > 12 {
		return ErrInvalidMonth
	}
	if year < 2000 {
		return ErrInvalidYear
	}
	return nil
}
