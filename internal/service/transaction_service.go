package service

import (
	"github.com/shopspring/decimal"

	apperrors "github.com/nwtracker/Net-Worth-Tracker-Backend/internal/errors"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/model"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/repository"
)

// TransactionService handles cash-flow transactions and their monthly
// income/expense summary.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
}

// NewTransactionService creates a new TransactionService with the provided repository dependencies.
func NewTransactionService(transactionRepo *repository.TransactionRepository) *TransactionService {
	return &TransactionService{transactionRepo: transactionRepo}
}

// GetCategories retrieves the user's categories.
func (s *TransactionService) GetCategories(userID string) ([]model.Category, error) {
	return s.transactionRepo.GetCategories(userID)
}

// CreateCategory adds a new income or expense category.
func (s *TransactionService) CreateCategory(userID, name, categoryType string, displayOrder int) (model.Category, error) {
	return s.transactionRepo.CreateCategory(userID, name, categoryType, displayOrder)
}

// CreateTransaction records one cash-flow item after verifying its category
// belongs to the user.
func (s *TransactionService) CreateTransaction(t model.Transaction) (model.Transaction, error) {
	category, err := s.transactionRepo.GetCategoryOnID(t.CategoryID)
	if err != nil {
		return model.Transaction{}, err
	}
	if category.UserID != t.UserID {
		return model.Transaction{}, apperrors.ErrCategoryNotFound
	}

	return s.transactionRepo.CreateTransaction(t)
}

// GetTransactionsForMonth retrieves the user's transactions for one month.
func (s *TransactionService) GetTransactionsForMonth(userID string, month, year int) ([]model.Transaction, error) {
	transactions, _, err := s.transactionRepo.GetTransactionsForMonth(userID, month, year)
	return transactions, err
}

// DeleteTransaction removes one of the user's transactions.
func (s *TransactionService) DeleteTransaction(userID, transactionID string) error {
	return s.transactionRepo.DeleteTransaction(transactionID, userID)
}

// GetMonthlySummary aggregates one month's transactions into total income,
// total expenses and per-category totals. Amounts are summed with decimal
// arithmetic and rounded once at the end.
func (s *TransactionService) GetMonthlySummary(userID string, month, year int) (model.MonthlySummary, error) {
	transactions, categories, err := s.transactionRepo.GetTransactionsForMonth(userID, month, year)
	if err != nil {
		return model.MonthlySummary{}, err
	}

	income := decimal.Zero
	expense := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)
	categoryOrder := []string{}

	for _, t := range transactions {
		amount := parseAmount(t.Amount)

		if _, seen := byCategory[t.CategoryID]; !seen {
			categoryOrder = append(categoryOrder, t.CategoryID)
		}
		byCategory[t.CategoryID] = byCategory[t.CategoryID].Add(amount)

		switch categories[t.CategoryID].Type {
		case "income":
			income = income.Add(amount)
		default:
			expense = expense.Add(amount)
		}
	}

	summary := model.MonthlySummary{
		Month:        month,
		Year:         year,
		TotalIncome:  round(income.InexactFloat64()),
		TotalExpense: round(expense.InexactFloat64()),
		Net:          round(income.Sub(expense).InexactFloat64()),
		ByCategory:   []model.CategoryTotal{},
	}

	for _, categoryID := range categoryOrder {
		category := categories[categoryID]
		summary.ByCategory = append(summary.ByCategory, model.CategoryTotal{
			CategoryID:   categoryID,
			CategoryName: category.Name,
			Type:         category.Type,
			Total:        round(byCategory[categoryID].InexactFloat64()),
		})
	}

	return summary, nil
}
