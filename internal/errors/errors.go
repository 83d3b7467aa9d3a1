package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrUserNotFound indicates that a user with the given ID does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrAssetNotFound indicates that an asset with the given ID does not exist.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrAssetClassNotFound indicates that an asset class with the given ID does not exist.
	ErrAssetClassNotFound = errors.New("asset class not found")

	// ErrInstrumentNotFound indicates that an instrument with the given ID does not exist.
	ErrInstrumentNotFound = errors.New("instrument not found")

	// ErrProviderNotFound indicates that a provider with the given ID does not exist.
	ErrProviderNotFound = errors.New("provider not found")

	// ErrCategoryNotFound indicates that a category with the given ID does not exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrMonthlyValueNotFound indicates no recorded value for an asset and month combination.
	ErrMonthlyValueNotFound = errors.New("monthly value not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidMonth indicates that a month is outside [1, 12].
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidYear indicates that a year is before the supported range.
	ErrInvalidYear = errors.New("year must be 2000 or later")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrInvalidAmount indicates that a monetary value could not be parsed as a decimal.
	ErrInvalidAmount = errors.New("invalid decimal amount")
)

// Session errors represent failures around the demo-session boundary.
var (
	// ErrSessionMissing indicates that no session cookie was presented.
	ErrSessionMissing = errors.New("session cookie missing")

	// ErrSessionInvalid indicates that the session token failed verification
	// or has expired.
	ErrSessionInvalid = errors.New("session token invalid or expired")
)
