package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/nwtracker/Net-Worth-Tracker-Backend/internal/errors"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/model"
)

// UserRepository provides data access methods for the user table.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository with the provided database connection.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateDemoUser inserts a demo user that expires at the given time.
func (r *UserRepository) CreateDemoUser(displayName, defaultCurrency string, expiresAt time.Time) (model.User, error) {
	user := model.User{
		ID:              uuid.New().String(),
		DisplayName:     displayName,
		DefaultCurrency: defaultCurrency,
		IsDemo:          true,
		CreatedAt:       time.Now().UTC(),
		ExpiresAt:       &expiresAt,
	}

	query := `
		INSERT INTO user (id, display_name, default_currency, is_demo, created_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query, user.ID, user.DisplayName, user.DefaultCurrency, user.IsDemo, user.CreatedAt, user.ExpiresAt)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}

// GetUserOnID retrieves a single user by ID.
func (r *UserRepository) GetUserOnID(userID string) (model.User, error) {
	query := `
		SELECT id, display_name, default_currency, is_demo, created_at, expires_at
		FROM user
		WHERE id = ?
	`

	var u model.User

	err := r.db.QueryRow(query, userID).Scan(
		&u.ID,
		&u.DisplayName,
		&u.DefaultCurrency,
		&u.IsDemo,
		&u.CreatedAt,
		&u.ExpiresAt,
	)
	if err == sql.ErrNoRows {
		return model.User{}, apperrors.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to query user: %w", err)
	}

	return u, nil
}

// DeleteExpiredDemoUsers removes demo users whose expiry has passed.
// Cascading foreign keys wipe their hierarchy, values and transactions.
// Returns the number of users removed.
func (r *UserRepository) DeleteExpiredDemoUsers(now time.Time) (int64, error) {
	query := `DELETE FROM user WHERE is_demo = 1 AND expires_at IS NOT NULL AND expires_at < ?`

	result, err := r.db.Exec(query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired demo users: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read delete result: %w", err)
	}

	return affected, nil
}
