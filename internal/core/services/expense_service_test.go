package services_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ahmadsal1998/omari-studio/internal/apperrors"
	"github.com/ahmadsal1998/omari-studio/internal/core/domain"
	portssvc "github.com/ahmadsal1998/omari-studio/internal/core/ports/services"
	"github.com/ahmadsal1998/omari-studio/internal/core/services"
	"github.com/ahmadsal1998/omari-studio/internal/dto"
)

type ExpenseServiceTestSuite struct {
	suite.Suite
	expenseRepo  *MockExpenseRepository
	supplierRepo *MockSupplierRepository
	service      portssvc.ExpenseSvcFacade
}

func (s *ExpenseServiceTestSuite) SetupTest() {
	s.expenseRepo = new(MockExpenseRepository)
	s.supplierRepo = new(MockSupplierRepository)
	s.service = services.NewExpenseService(s.expenseRepo, s.supplierRepo)
}

func (s *ExpenseServiceTestSuite) TestCreateExpense_CarriesSupplierName() {
	s.supplierRepo.On("FindSupplierByID", ctx, "sup-1").Return(&domain.Supplier{
		SupplierID: "sup-1",
		Name:       "Studio Supplies Co",
	}, nil).Once()
	s.expenseRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Type == "rent" &&
			e.Amount.Equal(decimal.RequireFromString("350")) &&
			e.SupplierName != nil && *e.SupplierName == "Studio Supplies Co"
	})).Return(nil).Once()

	resp, err := s.service.CreateExpense(ctx, dto.CreateExpenseRequest{
		Type:       "rent",
		Amount:     decimal.RequireFromString("350"),
		SupplierID: strPtr("sup-1"),
	})

	s.Require().NoError(err)
	s.Equal("Studio Supplies Co", *resp.SupplierName)
	s.expenseRepo.AssertExpectations(s.T())
}

func (s *ExpenseServiceTestSuite) TestCreateExpense_DefaultsDateToNow() {
	s.expenseRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return !e.Date.IsZero() && time.Since(e.Date) < time.Minute
	})).Return(nil).Once()

	_, err := s.service.CreateExpense(ctx, dto.CreateExpenseRequest{
		Type:   "utilities",
		Amount: decimal.RequireFromString("80"),
	})

	s.Require().NoError(err)
	s.supplierRepo.AssertNotCalled(s.T(), "FindSupplierByID", mock.Anything, mock.Anything)
}

func (s *ExpenseServiceTestSuite) TestCreateExpense_RejectsNegativeAmount() {
	_, err := s.service.CreateExpense(ctx, dto.CreateExpenseRequest{
		Type:   "repair",
		Amount: decimal.RequireFromString("-10"),
	})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.expenseRepo.AssertNotCalled(s.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (s *ExpenseServiceTestSuite) TestUpdateExpense_ClearsSupplierReference() {
	supplierID := "sup-1"
	name := "Studio Supplies Co"
	s.expenseRepo.On("FindExpenseByID", ctx, "exp-1").Return(&domain.Expense{
		ExpenseID:    "exp-1",
		Type:         "equipment",
		Amount:       decimal.RequireFromString("120"),
		Date:         time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		SupplierID:   &supplierID,
		SupplierName: &name,
	}, nil).Once()
	s.expenseRepo.On("UpdateExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.SupplierID == nil && e.SupplierName == nil && e.Type == "equipment"
	})).Return(nil).Once()

	resp, err := s.service.UpdateExpense(ctx, "exp-1", dto.UpdateExpenseRequest{
		SupplierID: strPtr(""),
	})

	s.Require().NoError(err)
	s.Nil(resp.SupplierID)
	s.expenseRepo.AssertExpectations(s.T())
}

func (s *ExpenseServiceTestSuite) TestUpdateExpense_PartialKeepsOtherFields() {
	s.expenseRepo.On("FindExpenseByID", ctx, "exp-1").Return(&domain.Expense{
		ExpenseID: "exp-1",
		Type:      "equipment",
		Amount:    decimal.RequireFromString("120"),
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Notes:     "tripod repair",
	}, nil).Once()
	newAmount := decimal.RequireFromString("140")
	s.expenseRepo.On("UpdateExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Amount.Equal(newAmount) && e.Type == "equipment" && e.Notes == "tripod repair"
	})).Return(nil).Once()

	resp, err := s.service.UpdateExpense(ctx, "exp-1", dto.UpdateExpenseRequest{
		Amount: &newAmount,
	})

	s.Require().NoError(err)
	s.Equal("140", resp.Amount.String())
	s.expenseRepo.AssertExpectations(s.T())
}

func (s *ExpenseServiceTestSuite) TestDeleteExpense_Unknown() {
	s.expenseRepo.On("FindExpenseByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	err := s.service.DeleteExpense(ctx, "ghost")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.expenseRepo.AssertNotCalled(s.T(), "DeleteExpense", mock.Anything, mock.Anything)
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
