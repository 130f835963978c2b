package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ahmadsal1998/omari-studio/internal/apperrors"
	"github.com/ahmadsal1998/omari-studio/internal/core/domain"
	portssvc "github.com/ahmadsal1998/omari-studio/internal/core/ports/services"
	"github.com/ahmadsal1998/omari-studio/internal/core/services"
	"github.com/ahmadsal1998/omari-studio/internal/dto"
)

type PurchaseServiceTestSuite struct {
	suite.Suite
	purchaseRepo *MockPurchaseRepository
	supplierRepo *MockSupplierRepository
	productRepo  *MockProductRepository
	service      portssvc.PurchaseSvcFacade
}

func (s *PurchaseServiceTestSuite) SetupTest() {
	s.purchaseRepo = new(MockPurchaseRepository)
	s.supplierRepo = new(MockSupplierRepository)
	s.productRepo = new(MockProductRepository)
	s.service = services.NewPurchaseService(s.purchaseRepo, s.supplierRepo, s.productRepo)
}

func (s *PurchaseServiceTestSuite) expectSupplierExists() {
	s.supplierRepo.On("FindSupplierByID", ctx, "sup-1").Return(&domain.Supplier{
		SupplierID: "sup-1",
		Name:       "Studio Supplies Co",
	}, nil).Once()
}

func (s *PurchaseServiceTestSuite) TestCreatePurchase_ComputesTotal() {
	s.expectSupplierExists()
	s.productRepo.On("FindProductsByIDs", ctx, []string{"prod-1", "prod-2"}).Return(map[string]domain.Product{
		"prod-1": {ProductID: "prod-1"},
		"prod-2": {ProductID: "prod-2"},
	}, nil).Once()
	s.purchaseRepo.On("SavePurchase", ctx, mock.MatchedBy(func(p domain.Purchase) bool {
		// 3 * 40 + 2 * 15 = 150.
		return p.TotalAmount.Equal(decimal.RequireFromString("150")) &&
			p.PaymentType == domain.PaymentCredit &&
			len(p.Items) == 2
	})).Return(nil).Once()

	resp, err := s.service.CreatePurchase(ctx, dto.CreatePurchaseRequest{
		SupplierID: "sup-1",
		Items: []dto.PurchaseItemRequest{
			{ProductID: "prod-1", Quantity: 3, PurchasePrice: decimal.RequireFromString("40")},
			{ProductID: "prod-2", Quantity: 2, PurchasePrice: decimal.RequireFromString("15")},
		},
		PaymentType: domain.PaymentCredit,
	})

	s.Require().NoError(err)
	s.Equal("150", resp.TotalAmount.String())
	s.purchaseRepo.AssertExpectations(s.T())
}

func (s *PurchaseServiceTestSuite) TestCreatePurchase_RejectsNegativePrice() {
	s.expectSupplierExists()

	_, err := s.service.CreatePurchase(ctx, dto.CreatePurchaseRequest{
		SupplierID: "sup-1",
		Items: []dto.PurchaseItemRequest{
			{ProductID: "prod-1", Quantity: 1, PurchasePrice: decimal.RequireFromString("-5")},
		},
		PaymentType: domain.PaymentCash,
	})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.purchaseRepo.AssertNotCalled(s.T(), "SavePurchase", mock.Anything, mock.Anything)
}

func (s *PurchaseServiceTestSuite) TestCreatePurchase_UnknownProduct() {
	s.expectSupplierExists()
	s.productRepo.On("FindProductsByIDs", ctx, []string{"ghost"}).Return(map[string]domain.Product{}, nil).Once()

	_, err := s.service.CreatePurchase(ctx, dto.CreatePurchaseRequest{
		SupplierID: "sup-1",
		Items: []dto.PurchaseItemRequest{
			{ProductID: "ghost", Quantity: 1, PurchasePrice: decimal.RequireFromString("10")},
		},
		PaymentType: domain.PaymentCash,
	})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *PurchaseServiceTestSuite) TestCreatePurchase_UnknownSupplier() {
	s.supplierRepo.On("FindSupplierByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.CreatePurchase(ctx, dto.CreatePurchaseRequest{
		SupplierID: "ghost",
		Items: []dto.PurchaseItemRequest{
			{ProductID: "prod-1", Quantity: 1, PurchasePrice: decimal.RequireFromString("10")},
		},
		PaymentType: domain.PaymentCash,
	})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.productRepo.AssertNotCalled(s.T(), "FindProductsByIDs", mock.Anything, mock.Anything)
}

func TestPurchaseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PurchaseServiceTestSuite))
}
