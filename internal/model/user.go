package model

import "time"

// User represents an account. Demo users are created on demand for the
// try-before-signup flow and carry an expiry; the nightly purge removes them
// together with their data (cascading foreign keys).
type User struct {
	ID              string     `json:"id"`
	DisplayName     string     `json:"displayName"`
	DefaultCurrency string     `json:"defaultCurrency"`
	IsDemo          bool       `json:"isDemo"`
	CreatedAt       time.Time  `json:"createdAt"`
	ExpiresAt       *time.Time `json:"expiresAt,omitempty"`
}
