package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/model"
)

// UserBuilder provides a fluent interface for creating test users.
//
// Example usage:
//
//	// Simple creation with defaults
//	user := testutil.NewUser().Build(t, db)
//
//	// Demo user with an expiry
//	user := testutil.NewUser().Demo(time.Now().Add(72 * time.Hour)).Build(t, db)
type UserBuilder struct {
	ID              string
	DisplayName     string
	DefaultCurrency string
	IsDemo          bool
	ExpiresAt       *time.Time
}

// NewUser creates a UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	return &UserBuilder{
		ID:              MakeID(),
		DisplayName:     MakeName("Test User"),
		DefaultCurrency: "ILS",
	}
}

// WithID sets a custom ID.
func (b *UserBuilder) WithID(id string) *UserBuilder {
	b.ID = id
	return b
}

// WithDisplayName sets a custom display name.
func (b *UserBuilder) WithDisplayName(name string) *UserBuilder {
	b.DisplayName = name
	return b
}

// WithCurrency sets the default currency.
func (b *UserBuilder) WithCurrency(currency string) *UserBuilder {
	b.DefaultCurrency = currency
	return b
}

// Demo marks the user as a demo account expiring at the given time.
func (b *UserBuilder) Demo(expiresAt time.Time) *UserBuilder {
	b.IsDemo = true
	b.ExpiresAt = &expiresAt
	return b
}

// Build creates the user in the database and returns it.
func (b *UserBuilder) Build(t *testing.T, db *sql.DB) model.User {
	t.Helper()

	query := `
		INSERT INTO user (id, display_name, default_currency, is_demo, expires_at)
		VALUES (?, ?, ?, ?, ?)
	`

	var expiresAt any
	if b.ExpiresAt != nil {
		expiresAt = b.ExpiresAt.UTC()
	}

	_, err := db.Exec(query, b.ID, b.DisplayName, b.DefaultCurrency, b.IsDemo, expiresAt)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return model.User{
		ID:              b.ID,
		DisplayName:     b.DisplayName,
		DefaultCurrency: b.DefaultCurrency,
		IsDemo:          b.IsDemo,
		ExpiresAt:       b.ExpiresAt,
		CreatedAt:       time.Now(),
	}
}

// CreateUser creates a user with default values.
func CreateUser(t *testing.T, db *sql.DB) model.User {
	t.Helper()
	return NewUser().Build(t, db)
}

// AssetClassBuilder provides a fluent interface for creating asset classes.
type AssetClassBuilder struct {
	ID           string
	UserID       string
	Name         string
	DisplayOrder int
}

// NewAssetClass creates an AssetClassBuilder owned by the given user.
func NewAssetClass(userID string) *AssetClassBuilder {
	return &AssetClassBuilder{
		ID:     MakeID(),
		UserID: userID,
		Name:   MakeName("Test Class"),
	}
}

// WithName sets a custom name.
func (b *AssetClassBuilder) WithName(name string) *AssetClassBuilder {
	b.Name = name
	return b
}

// WithDisplayOrder sets the display order.
func (b *AssetClassBuilder) WithDisplayOrder(order int) *AssetClassBuilder {
	b.DisplayOrder = order
	return b
}

// Build creates the asset class in the database and returns it.
func (b *AssetClassBuilder) Build(t *testing.T, db *sql.DB) model.AssetClass {
	t.Helper()

	query := `
		INSERT INTO asset_class (id, user_id, name, display_order)
		VALUES (?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.UserID, b.Name, b.DisplayOrder)
	if err != nil {
		t.Fatalf("Failed to create test asset class: %v", err)
	}

	return model.AssetClass{
		ID:           b.ID,
		UserID:       b.UserID,
		Name:         b.Name,
		DisplayOrder: b.DisplayOrder,
	}
}

// InstrumentBuilder provides a fluent interface for creating instruments.
type InstrumentBuilder struct {
	ID           string
	AssetClassID string
	Name         string
	DisplayOrder int
}

// NewInstrument creates an InstrumentBuilder under the given asset class.
func NewInstrument(assetClassID string) *InstrumentBuilder {
	return &InstrumentBuilder{
		ID:           MakeID(),
		AssetClassID: assetClassID,
		Name:         MakeName("Test Instrument"),
	}
}

// WithName sets a custom name.
func (b *InstrumentBuilder) WithName(name string) *InstrumentBuilder {
	b.Name = name
	return b
}

// Build creates the instrument in the database and returns it.
func (b *InstrumentBuilder) Build(t *testing.T, db *sql.DB) model.Instrument {
	t.Helper()

	query := `
		INSERT INTO instrument (id, asset_class_id, name, display_order)
		VALUES (?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.AssetClassID, b.Name, b.DisplayOrder)
	if err != nil {
		t.Fatalf("Failed to create test instrument: %v", err)
	}

	return model.Instrument{
		ID:           b.ID,
		AssetClassID: b.AssetClassID,
		Name:         b.Name,
		DisplayOrder: b.DisplayOrder,
	}
}

// ProviderBuilder provides a fluent interface for creating providers.
type ProviderBuilder struct {
	ID           string
	InstrumentID string
	Name         string
	DisplayOrder int
}

// NewProvider creates a ProviderBuilder under the given instrument.
func NewProvider(instrumentID string) *ProviderBuilder {
	return &ProviderBuilder{
		ID:           MakeID(),
		InstrumentID: instrumentID,
		Name:         MakeName("Test Provider"),
	}
}

// WithName sets a custom name.
func (b *ProviderBuilder) WithName(name string) *ProviderBuilder {
	b.Name = name
	return b
}

// Build creates the provider in the database and returns it.
func (b *ProviderBuilder) Build(t *testing.T, db *sql.DB) model.Provider {
	t.Helper()

	query := `
		INSERT INTO provider (id, instrument_id, name, display_order)
		VALUES (?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.InstrumentID, b.Name, b.DisplayOrder)
	if err != nil {
		t.Fatalf("Failed to create test provider: %v", err)
	}

	return model.Provider{
		ID:           b.ID,
		InstrumentID: b.InstrumentID,
		Name:         b.Name,
		DisplayOrder: b.DisplayOrder,
	}
}

// AssetBuilder provides a fluent interface for creating assets.
//
// Example usage:
//
//	asset := testutil.NewAsset(provider.ID).
//	    WithName("Checking Account").
//	    Illiquid().
//	    Build(t, db)
type AssetBuilder struct {
	ID           string
	ProviderID   string
	Name         string
	IsLiquid     bool
	Currency     string
	DisplayOrder int
}

// NewAsset creates an AssetBuilder under the given provider.
func NewAsset(providerID string) *AssetBuilder {
	return &AssetBuilder{
		ID:         MakeID(),
		ProviderID: providerID,
		Name:       MakeName("Test Asset"),
		IsLiquid:   true,
		Currency:   "ILS",
	}
}

// WithName sets a custom name.
func (b *AssetBuilder) WithName(name string) *AssetBuilder {
	b.Name = name
	return b
}

// WithCurrency sets the currency.
func (b *AssetBuilder) WithCurrency(currency string) *AssetBuilder {
	b.Currency = currency
	return b
}

// Illiquid marks the asset as not liquid.
func (b *AssetBuilder) Illiquid() *AssetBuilder {
	b.IsLiquid = false
	return b
}

// Build creates the asset in the database and returns it.
func (b *AssetBuilder) Build(t *testing.T, db *sql.DB) model.Asset {
	t.Helper()

	query := `
		INSERT INTO asset (id, provider_id, name, is_liquid, currency, display_order)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.ProviderID, b.Name, b.IsLiquid, b.Currency, b.DisplayOrder)
	if err != nil {
		t.Fatalf("Failed to create test asset: %v", err)
	}

	return model.Asset{
		ID:           b.ID,
		ProviderID:   b.ProviderID,
		Name:         b.Name,
		IsLiquid:     b.IsLiquid,
		Currency:     b.Currency,
		DisplayOrder: b.DisplayOrder,
	}
}

// Hierarchy groups one full branch of test data: a user with a single
// class, instrument and provider ready to hang assets from.
type Hierarchy struct {
	User       model.User
	Class      model.AssetClass
	Instrument model.Instrument
	Provider   model.Provider
}

// CreateHierarchy creates a user with one class/instrument/provider branch.
// Most valuation tests only need somewhere to attach assets.
func CreateHierarchy(t *testing.T, db *sql.DB) Hierarchy {
	t.Helper()

	user := NewUser().Build(t, db)
	return CreateHierarchyForUser(t, db, user)
}

// CreateHierarchyForUser creates a class/instrument/provider branch for an
// existing user.
func CreateHierarchyForUser(t *testing.T, db *sql.DB, user model.User) Hierarchy {
	t.Helper()

	class := NewAssetClass(user.ID).Build(t, db)
	instrument := NewInstrument(class.ID).Build(t, db)
	provider := NewProvider(instrument.ID).Build(t, db)

	return Hierarchy{
		User:       user,
		Class:      class,
		Instrument: instrument,
		Provider:   provider,
	}
}

// MonthlyValueBuilder provides a fluent interface for creating monthly values.
type MonthlyValueBuilder struct {
	ID      string
	AssetID string
	Month   int
	Year    int
	Value   string
}

// NewMonthlyValue creates a MonthlyValueBuilder for the given asset and month.
func NewMonthlyValue(assetID string, month, year int, value string) *MonthlyValueBuilder {
	return &MonthlyValueBuilder{
		ID:      MakeID(),
		AssetID: assetID,
		Month:   month,
		Year:    year,
		Value:   value,
	}
}

// Build creates the monthly value in the database and returns it.
func (b *MonthlyValueBuilder) Build(t *testing.T, db *sql.DB) model.MonthlyValue {
	t.Helper()

	query := `
		INSERT INTO monthly_value (id, asset_id, month, year, value)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.AssetID, b.Month, b.Year, b.Value)
	if err != nil {
		t.Fatalf("Failed to create test monthly value: %v", err)
	}

	return model.MonthlyValue{
		ID:      b.ID,
		AssetID: b.AssetID,
		Month:   b.Month,
		Year:    b.Year,
		Value:   b.Value,
	}
}

// CreateMonthlyValue creates a monthly value record directly.
//
// Example usage:
//
//	testutil.CreateMonthlyValue(t, db, asset.ID, 1, 2026, "1000")
func CreateMonthlyValue(t *testing.T, db *sql.DB, assetID string, month, year int, value string) model.MonthlyValue {
	t.Helper()
	return NewMonthlyValue(assetID, month, year, value).Build(t, db)
}

// CategoryBuilder provides a fluent interface for creating categories.
type CategoryBuilder struct {
	ID           string
	UserID       string
	Name         string
	Type         string
	DisplayOrder int
}

// NewCategory creates a CategoryBuilder of the given type ("income" or "expense").
func NewCategory(userID, categoryType string) *CategoryBuilder {
	return &CategoryBuilder{
		ID:     MakeID(),
		UserID: userID,
		Name:   MakeName("Test Category"),
		Type:   categoryType,
	}
}

// WithName sets a custom name.
func (b *CategoryBuilder) WithName(name string) *CategoryBuilder {
	b.Name = name
	return b
}

// Build creates the category in the database and returns it.
func (b *CategoryBuilder) Build(t *testing.T, db *sql.DB) model.Category {
	t.Helper()

	query := `
		INSERT INTO category (id, user_id, name, type, display_order)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.UserID, b.Name, b.Type, b.DisplayOrder)
	if err != nil {
		t.Fatalf("Failed to create test category: %v", err)
	}

	return model.Category{
		ID:           b.ID,
		UserID:       b.UserID,
		Name:         b.Name,
		Type:         b.Type,
		DisplayOrder: b.DisplayOrder,
	}
}

// TransactionBuilder provides a fluent interface for creating transactions.
type TransactionBuilder struct {
	ID          string
	UserID      string
	CategoryID  string
	Month       int
	Year        int
	Amount      string
	Description string
}

// NewTransaction creates a TransactionBuilder with defaults.
func NewTransaction(userID, categoryID string, month, year int) *TransactionBuilder {
	return &TransactionBuilder{
		ID:         MakeID(),
		UserID:     userID,
		CategoryID: categoryID,
		Month:      month,
		Year:       year,
		Amount:     "100",
	}
}

// WithAmount sets the amount (decimal string).
func (b *TransactionBuilder) WithAmount(amount string) *TransactionBuilder {
	b.Amount = amount
	return b
}

// WithDescription sets the description.
func (b *TransactionBuilder) WithDescription(desc string) *TransactionBuilder {
	b.Description = desc
	return b
}

// Build creates the transaction in the database and returns it.
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) model.Transaction {
	t.Helper()

	query := `
		INSERT INTO "transaction" (id, user_id, category_id, month, year, amount, description)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.UserID, b.CategoryID, b.Month, b.Year, b.Amount, b.Description)
	if err != nil {
		t.Fatalf("Failed to create test transaction: %v", err)
	}

	return model.Transaction{
		ID:          b.ID,
		UserID:      b.UserID,
		CategoryID:  b.CategoryID,
		Month:       b.Month,
		Year:        b.Year,
		Amount:      b.Amount,
		Description: b.Description,
	}
}
