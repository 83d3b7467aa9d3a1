package repository

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	apperrors "github.com/nwtracker/Net-Worth-Tracker-Backend/internal/errors"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/model"
)

// TransactionRepository provides data access methods for the cash-flow
// transaction and category tables.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// CreateCategory inserts a new category for the user.
func (r *TransactionRepository) CreateCategory(userID, name, categoryType string, displayOrder int) (model.Category, error) {
	category := model.Category{
		ID:           uuid.New().String(),
		UserID:       userID,
		Name:         name,
		Type:         categoryType,
		DisplayOrder: displayOrder,
	}

	query := `INSERT INTO category (id, user_id, name, type, display_order) VALUES (?, ?, ?, ?, ?)`
	if _, err := r.db.Exec(query, category.ID, category.UserID, category.Name, category.Type, category.DisplayOrder); err != nil {
		return model.Category{}, fmt.Errorf("failed to insert category: %w", err)
	}

	return category, nil
}

// GetCategories retrieves all categories of one user in display order.
func (r *TransactionRepository) GetCategories(userID string) ([]model.Category, error) {
	query := `
		SELECT id, user_id, name, type, display_order
		FROM category
		WHERE user_id = ?
		ORDER BY display_order, name
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query category table: %w", err)
	}
	defer rows.Close()

	categories := []model.Category{}

	for rows.Next() {
		var c model.Category

		err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Type, &c.DisplayOrder)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category table results: %w", err)
		}

		categories = append(categories, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category table: %w", err)
	}

	return categories, nil
}

// GetCategoryOnID retrieves one category by ID.
func (r *TransactionRepository) GetCategoryOnID(categoryID string) (model.Category, error) {
	query := `SELECT id, user_id, name, type, display_order FROM category WHERE id = ?`

	var c model.Category

	err := r.db.QueryRow(query, categoryID).Scan(&c.ID, &c.UserID, &c.Name, &c.Type, &c.DisplayOrder)
	if err == sql.ErrNoRows {
		return model.Category{}, apperrors.ErrCategoryNotFound
	}
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to query category: %w", err)
	}

	return c, nil
}

// CreateTransaction inserts a new cash-flow record.
func (r *TransactionRepository) CreateTransaction(t model.Transaction) (model.Transaction, error) {
	t.ID = uuid.New().String()

	query := `
		INSERT INTO "transaction" (id, user_id, category_id, month, year, amount, description)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query, t.ID, t.UserID, t.CategoryID, t.Month, t.Year, t.Amount, t.Description)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to insert transaction: %w", err)
	}

	return t, nil
}

// GetTransactionsForMonth retrieves all of one user's transactions for a
// month together with each one's category name and type.
func (r *TransactionRepository) GetTransactionsForMonth(userID string, month, year int) ([]model.Transaction, map[string]model.Category, error) {
	query := `
		SELECT t.id, t.user_id, t.category_id, t.month, t.year, t.amount, t.description,
		c.id, c.user_id, c.name, c.type, c.display_order
		FROM "transaction" t
		JOIN category c ON c.id = t.category_id
		WHERE t.user_id = ? AND t.month = ? AND t.year = ?
		ORDER BY c.display_order, c.name
	`

	rows, err := r.db.Query(query, userID, month, year)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}
	categories := make(map[string]model.Category)

	for rows.Next() {
		var t model.Transaction
		var c model.Category
		var description sql.NullString

		err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.CategoryID,
			&t.Month,
			&t.Year,
			&t.Amount,
			&description,
			&c.ID,
			&c.UserID,
			&c.Name,
			&c.Type,
			&c.DisplayOrder,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction table results: %w", err)
		}

		t.Description = description.String
		transactions = append(transactions, t)
		categories[c.ID] = c
	}

	if err = rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating transaction table: %w", err)
	}

	return transactions, categories, nil
}

// DeleteTransaction removes one transaction owned by the user.
func (r *TransactionRepository) DeleteTransaction(transactionID, userID string) error {
	result, err := r.db.Exec(`DELETE FROM "transaction" WHERE id = ? AND user_id = ?`, transactionID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTransactionNotFound
	}

	return nil
}
