package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ahmadsal1998/omari-studio/internal/apperrors"
	"github.com/ahmadsal1998/omari-studio/internal/core/domain"
	portsrepo "github.com/ahmadsal1998/omari-studio/internal/core/ports/repositories"
	portssvc "github.com/ahmadsal1998/omari-studio/internal/core/ports/services"
	"github.com/ahmadsal1998/omari-studio/internal/dto"
)

// expenseService provides operating expense CRUD. Expenses are pure
// bookkeeping rows; linking one to a supplier is a reference only and
// never moves the supplier's balance.
type expenseService struct {
	BaseService
	expenseRepo  portsrepo.ExpenseRepositoryFacade
	supplierRepo portsrepo.SupplierReader
}

// NewExpenseService creates a new expense service.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, supplierRepo portsrepo.SupplierReader) portssvc.ExpenseSvcFacade {
	return &expenseService{
		expenseRepo:  expenseRepo,
		supplierRepo: supplierRepo,
	}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount cannot be negative", apperrors.ErrValidation)
	}

	var supplierName *string
	if req.SupplierID != nil && *req.SupplierID != "" {
		supplier, err := s.supplierRepo.FindSupplierByID(ctx, *req.SupplierID)
		if err != nil {
			return nil, fmt.Errorf("failed to find supplier %s: %w", *req.SupplierID, err)
		}
		supplierName = &supplier.Name
	}

	now := time.Now().UTC()
	date := now
	if req.Date != nil {
		date = req.Date.UTC()
	}

	expense := domain.Expense{
		ExpenseID:    uuid.NewString(),
		Type:         req.Type,
		Amount:       req.Amount,
		Date:         date,
		SupplierID:   req.SupplierID,
		SupplierName: supplierName,
		Notes:        req.Notes,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	s.LogInfo(ctx, "Expense recorded",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("type", expense.Type))
	resp := dto.ToExpenseResponse(&expense)
	return &resp, nil
}

func (s *expenseService) GetExpense(ctx context.Context, expenseID string) (*dto.ExpenseResponse, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToExpenseResponse(expense)
	return &resp, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, params dto.ListExpensesParams) (*dto.ListExpensesResponse, error) {
	filter := portsrepo.ListExpensesFilter{
		Type:       params.Type,
		SupplierID: params.SupplierID,
		StartDate:  params.StartDate,
		EndDate:    params.EndDate,
		Limit:      params.Limit,
		Offset:     params.Offset(),
	}

	expenses, total, err := s.expenseRepo.ListExpenses(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return &dto.ListExpensesResponse{
		Expenses:   dto.ToExpenseResponses(expenses),
		Pagination: dto.NewPaginationResponse(params.Page, params.Limit, total),
	}, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		expense.Type = *req.Type
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: amount cannot be negative", apperrors.ErrValidation)
		}
		expense.Amount = *req.Amount
	}
	if req.Date != nil {
		expense.Date = req.Date.UTC()
	}
	if req.SupplierID != nil {
		if *req.SupplierID == "" {
			expense.SupplierID = nil
			expense.SupplierName = nil
		} else {
			supplier, err := s.supplierRepo.FindSupplierByID(ctx, *req.SupplierID)
			if err != nil {
				return nil, fmt.Errorf("failed to find supplier %s: %w", *req.SupplierID, err)
			}
			expense.SupplierID = req.SupplierID
			expense.SupplierName = &supplier.Name
		}
	}
	if req.Notes != nil {
		expense.Notes = *req.Notes
	}
	expense.UpdatedAt = time.Now().UTC()

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		return nil, fmt.Errorf("failed to update expense %s: %w", expenseID, err)
	}

	resp := dto.ToExpenseResponse(expense)
	return &resp, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	if _, err := s.expenseRepo.FindExpenseByID(ctx, expenseID); err != nil {
		return err
	}
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	s.LogInfo(ctx, "Expense deleted", slog.String("expense_id", expenseID))
	return nil
}
