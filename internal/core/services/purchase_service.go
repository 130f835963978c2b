package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ahmadsal1998/omari-studio/internal/apperrors"
	"github.com/ahmadsal1998/omari-studio/internal/core/domain"
	portsrepo "github.com/ahmadsal1998/omari-studio/internal/core/ports/repositories"
	portssvc "github.com/ahmadsal1998/omari-studio/internal/core/ports/services"
	"github.com/ahmadsal1998/omari-studio/internal/dto"
)

// purchaseService records supplier purchases. A credit purchase raises
// the supplier's cached balance and later surfaces on the supplier
// statement as a virtual row; a cash purchase only moves stock and cost
// prices.
type purchaseService struct {
	BaseService
	purchaseRepo portsrepo.PurchaseRepositoryFacade
	supplierRepo portsrepo.SupplierReader
	productRepo  portsrepo.ProductReader
}

// NewPurchaseService creates a new purchase service.
func NewPurchaseService(
	purchaseRepo portsrepo.PurchaseRepositoryFacade,
	supplierRepo portsrepo.SupplierReader,
	productRepo portsrepo.ProductReader,
) portssvc.PurchaseSvcFacade {
	return &purchaseService{
		purchaseRepo: purchaseRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
	}
}

var _ portssvc.PurchaseSvcFacade = (*purchaseService)(nil)

func (s *purchaseService) CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if _, err := s.supplierRepo.FindSupplierByID(ctx, req.SupplierID); err != nil {
		return nil, fmt.Errorf("failed to find supplier %s: %w", req.SupplierID, err)
	}

	productIDs := make([]string, 0, len(req.Items))
	for _, item := range req.Items {
		if item.PurchasePrice.IsNegative() {
			return nil, fmt.Errorf("%w: purchase price cannot be negative", apperrors.ErrValidation)
		}
		productIDs = append(productIDs, item.ProductID)
	}
	products, err := s.productRepo.FindProductsByIDs(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	total := decimal.Zero
	items := make([]domain.PurchaseItem, len(req.Items))
	for i, item := range req.Items {
		if _, ok := products[item.ProductID]; !ok {
			return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, item.ProductID)
		}
		items[i] = domain.PurchaseItem{
			ProductID:     item.ProductID,
			Quantity:      item.Quantity,
			PurchasePrice: item.PurchasePrice,
		}
		total = total.Add(item.PurchasePrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	now := time.Now().UTC()
	purchase := domain.Purchase{
		PurchaseID:  uuid.NewString(),
		SupplierID:  req.SupplierID,
		Items:       items,
		PaymentType: req.PaymentType,
		TotalAmount: total,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	// Stock, cost prices, and for credit purchases the supplier balance
	// increment all commit with the purchase insert.
	if err := s.purchaseRepo.SavePurchase(ctx, purchase); err != nil {
		s.LogError(ctx, err, "Failed to save purchase", slog.String("supplier_id", req.SupplierID))
		return nil, fmt.Errorf("failed to save purchase: %w", err)
	}

	s.LogInfo(ctx, "Purchase recorded",
		slog.String("purchase_id", purchase.PurchaseID),
		slog.String("supplier_id", purchase.SupplierID),
		slog.String("payment_type", string(purchase.PaymentType)),
		slog.String("total", total.String()))

	resp := dto.ToPurchaseResponse(&purchase)
	return &resp, nil
}

func (s *purchaseService) GetPurchase(ctx context.Context, purchaseID string) (*dto.PurchaseResponse, error) {
	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToPurchaseResponse(purchase)
	return &resp, nil
}

func (s *purchaseService) ListPurchases(ctx context.Context, params dto.ListPurchasesParams) (*dto.ListPurchasesResponse, error) {
	filter := portsrepo.ListPurchasesFilter{
		SupplierID: params.SupplierID,
		StartDate:  params.StartDate,
		EndDate:    params.EndDate,
		Limit:      params.Limit,
		Offset:     params.Offset(),
	}

	purchases, total, err := s.purchaseRepo.ListPurchases(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}

	return &dto.ListPurchasesResponse{
		Purchases:  dto.ToPurchaseResponses(purchases),
		Pagination: dto.NewPaginationResponse(params.Page, params.Limit, total),
	}, nil
}
