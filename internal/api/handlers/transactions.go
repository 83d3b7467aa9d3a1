package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/api/middleware"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/api/request"
	apperrors "github.com/nwtracker/Net-Worth-Tracker-Backend/internal/errors"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/model"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/service"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/validation"
)

// TransactionHandler handles cash-flow transaction HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// monthYearParams parses and validates the month/year query parameters
// shared by the list and summary endpoints.
func monthYearParams(r *http.Request) (int, int, error) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		return 0, 0, validation.ErrInvalidMonth
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return 0, 0, validation.ErrInvalidYear
	}

	if err := validation.ValidateMonthYear(month, year); err != nil {
		return 0, 0, err
	}

	return month, year, nil
}

// List handles GET /api/transactions?month&year
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	month, year, err := monthYearParams(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid month or year", err.Error())
		return
	}

	transactions, err := h.transactionService.GetTransactionsForMonth(middleware.UserID(r), month, year)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve transactions", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, transactions)
}

// Create handles POST /api/transactions
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateTransaction(req); err != nil {
		respondError(w, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	transaction, err := h.transactionService.CreateTransaction(model.Transaction{
		UserID:      middleware.UserID(r),
		CategoryID:  req.CategoryID,
		Month:       req.Month,
		Year:        req.Year,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrCategoryNotFound) {
			respondError(w, http.StatusNotFound, "Category not found", req.CategoryID)
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to create transaction", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, transaction)
}

// Delete handles DELETE /api/transactions/{transactionId}
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transactionId")
	if err := validation.ValidateUUID(transactionID); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid transaction ID", err.Error())
		return
	}

	if err := h.transactionService.DeleteTransaction(middleware.UserID(r), transactionID); err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			respondError(w, http.StatusNotFound, "Transaction not found", transactionID)
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to delete transaction", err.Error())
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// Summary handles GET /api/transactions/summary?month&year
func (h *TransactionHandler) Summary(w http.ResponseWriter, r *http.Request) {
	month, year, err := monthYearParams(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid month or year", err.Error())
		return
	}

	summary, err := h.transactionService.GetMonthlySummary(middleware.UserID(r), month, year)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to compute summary", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// ListCategories handles GET /api/categories
func (h *TransactionHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.transactionService.GetCategories(middleware.UserID(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve categories", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, categories)
}

// CreateCategory handles POST /api/categories
func (h *TransactionHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateCategory(req); err != nil {
		respondError(w, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	category, err := h.transactionService.CreateCategory(middleware.UserID(r), req.Name, req.Type, req.DisplayOrder)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create category", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, category)
}
