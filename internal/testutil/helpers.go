package testutil

import (
	"database/sql"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/auth"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/repository"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/service"
)

func NewTestValueService(t *testing.T, db *sql.DB) *service.ValueService {
	t.Helper()

	valueRepo := repository.NewValueRepository(db)
	hierarchyRepo := repository.NewHierarchyRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	userRepo := repository.NewUserRepository(db)

	return service.NewValueService(
		valueRepo,
		hierarchyRepo,
		assetRepo,
		userRepo,
	)
}

func NewTestAnalyticsService(t *testing.T, db *sql.DB) *service.AnalyticsService {
	t.Helper()

	hierarchyRepo := repository.NewHierarchyRepository(db)
	valueRepo := repository.NewValueRepository(db)

	return service.NewAnalyticsService(
		hierarchyRepo,
		valueRepo,
	)
}

func NewTestAssetService(t *testing.T, db *sql.DB) *service.AssetService {
	t.Helper()

	assetRepo := repository.NewAssetRepository(db)
	hierarchyRepo := repository.NewHierarchyRepository(db)

	return service.NewAssetService(
		assetRepo,
		hierarchyRepo,
	)
}

func NewTestTransactionService(t *testing.T, db *sql.DB) *service.TransactionService {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)

	return service.NewTransactionService(
		transactionRepo,
	)
}

func NewTestSessionService(t *testing.T, db *sql.DB) *service.SessionService {
	t.Helper()

	userRepo := repository.NewUserRepository(db)
	return service.NewSessionService(userRepo, NewTestTokenIssuer(t))
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// NewTestTokenIssuer creates a token issuer with a fresh random key and a
// short TTL suitable for tests.
func NewTestTokenIssuer(t *testing.T) *auth.TokenIssuer {
	t.Helper()

	key, err := auth.GenerateKey()
	if err != nil {
		t.Fatalf("Failed to generate test key: %v", err)
	}

	issuer, err := auth.NewTokenIssuer(key, time.Hour)
	if err != nil {
		t.Fatalf("Failed to create test token issuer: %v", err)
	}

	return issuer
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeName generates a unique name for testing.
//
// Example usage:
//
//	name := testutil.MakeName("Savings")
//	// Returns: "Savings ABC123"
func MakeName(base string) string {
	if base == "" {
		base = "Test"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
