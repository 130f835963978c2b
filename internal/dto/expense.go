package dto

import (
	"time"

	"github.com/ahmadsal1998/omari-studio/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the payload for recording an expense.
// Date defaults to now when omitted; SupplierID is an optional
// reference and never moves the supplier's balance.
type CreateExpenseRequest struct {
	Type       string          `json:"type" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Date       *time.Time      `json:"date"`
	SupplierID *string         `json:"supplierID"`
	Notes      string          `json:"notes"`
}

// UpdateExpenseRequest defines the payload for updating an expense. An
// empty SupplierID clears the reference.
type UpdateExpenseRequest struct {
	Type       *string          `json:"type"`
	Amount     *decimal.Decimal `json:"amount"`
	Date       *time.Time       `json:"date"`
	SupplierID *string          `json:"supplierID"`
	Notes      *string          `json:"notes"`
}

// ListExpensesParams are the expense list query parameters.
type ListExpensesParams struct {
	PaginationParams
	Type       string     `form:"type"`
	SupplierID string     `form:"supplier"`
	StartDate  *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate    *time.Time `form:"endDate" time_format:"2006-01-02"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID    string          `json:"expenseID"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Date         time.Time       `json:"date"`
	SupplierID   *string         `json:"supplierID,omitempty"`
	SupplierName *string         `json:"supplierName,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ListExpensesResponse is a page of expenses.
type ListExpensesResponse struct {
	Expenses   []ExpenseResponse  `json:"expenses"`
	Pagination PaginationResponse `json:"pagination"`
}

// ToExpenseResponse converts a domain.Expense to its response DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:    e.ExpenseID,
		Type:         e.Type,
		Amount:       e.Amount,
		Date:         e.Date,
		SupplierID:   e.SupplierID,
		SupplierName: e.SupplierName,
		Notes:        e.Notes,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// ToExpenseResponses converts a slice of expenses.
func ToExpenseResponses(expenses []domain.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i])
	}
	return responses
}
