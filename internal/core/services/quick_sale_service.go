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

// quickSaleService records walk-in counter sales. Like bookings, totals
// are priced server-side; unlike bookings there is no calendar slot, no
// discount, and nothing feeds the ledger: the sale settles at the
// counter.
type quickSaleService struct {
	BaseService
	quickSaleRepo portsrepo.QuickSaleRepositoryFacade
	customerRepo  portsrepo.CustomerReader
	serviceRepo   portsrepo.ServiceReader
	productRepo   portsrepo.ProductReader
}

// NewQuickSaleService creates a new quick sale service.
func NewQuickSaleService(
	quickSaleRepo portsrepo.QuickSaleRepositoryFacade,
	customerRepo portsrepo.CustomerReader,
	serviceRepo portsrepo.ServiceReader,
	productRepo portsrepo.ProductReader,
) portssvc.QuickSaleSvcFacade {
	return &quickSaleService{
		quickSaleRepo: quickSaleRepo,
		customerRepo:  customerRepo,
		serviceRepo:   serviceRepo,
		productRepo:   productRepo,
	}
}

var _ portssvc.QuickSaleSvcFacade = (*quickSaleService)(nil)

func (s *quickSaleService) CreateQuickSale(ctx context.Context, req dto.CreateQuickSaleRequest) (*dto.QuickSaleResponse, error) {
	if req.CustomerID != nil && *req.CustomerID != "" {
		if _, err := s.customerRepo.FindCustomerByID(ctx, *req.CustomerID); err != nil {
			return nil, fmt.Errorf("failed to find customer %s: %w", *req.CustomerID, err)
		}
	}

	items := make([]domain.QuickSaleItem, len(req.Items))
	serviceIDs := make([]string, 0, len(req.Items))
	productIDs := make([]string, 0, len(req.Items))
	for i, item := range req.Items {
		switch item.Type {
		case domain.QuickSaleItemService:
			if item.ServiceID == nil || *item.ServiceID == "" {
				return nil, fmt.Errorf("%w: service item requires a serviceID", apperrors.ErrValidation)
			}
			serviceIDs = append(serviceIDs, *item.ServiceID)
		case domain.QuickSaleItemProduct:
			if item.ProductID == nil || *item.ProductID == "" {
				return nil, fmt.Errorf("%w: product item requires a productID", apperrors.ErrValidation)
			}
			productIDs = append(productIDs, *item.ProductID)
		default:
			return nil, fmt.Errorf("%w: unknown item type %q", apperrors.ErrValidation, item.Type)
		}
		items[i] = domain.QuickSaleItem{
			Type:      item.Type,
			ServiceID: item.ServiceID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	services, err := s.serviceRepo.FindServicesByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load services: %w", err)
	}
	products, err := s.productRepo.FindProductsByIDs(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	selling, cost := decimal.Zero, decimal.Zero
	for _, item := range items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		switch item.Type {
		case domain.QuickSaleItemService:
			svc, ok := services[*item.ServiceID]
			if !ok {
				return nil, fmt.Errorf("%w: service %s", apperrors.ErrNotFound, *item.ServiceID)
			}
			selling = selling.Add(svc.SellingPrice.Mul(qty))
			cost = cost.Add(svc.CostPrice.Mul(qty))
		case domain.QuickSaleItemProduct:
			product, ok := products[*item.ProductID]
			if !ok {
				return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, *item.ProductID)
			}
			selling = selling.Add(product.SellingPrice.Mul(qty))
			cost = cost.Add(product.CostPrice.Mul(qty))
		}
	}

	paymentType := req.PaymentType
	if paymentType == "" {
		paymentType = domain.PaymentCash
	}

	now := time.Now().UTC()
	sale := domain.QuickSale{
		QuickSaleID:       uuid.NewString(),
		CustomerID:        req.CustomerID,
		Items:             items,
		PaymentType:       paymentType,
		TotalSellingPrice: selling,
		TotalCost:         cost,
		Profit:            selling.Sub(cost),
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	// Stock for product lines is consumed inside the same transaction as
	// the sale insert.
	if err := s.quickSaleRepo.SaveQuickSale(ctx, sale); err != nil {
		s.LogError(ctx, err, "Failed to save quick sale")
		return nil, fmt.Errorf("failed to save quick sale: %w", err)
	}

	s.LogInfo(ctx, "Quick sale recorded",
		slog.String("quick_sale_id", sale.QuickSaleID),
		slog.String("total", selling.String()))

	resp := dto.ToQuickSaleResponse(&sale)
	return &resp, nil
}

func (s *quickSaleService) GetQuickSale(ctx context.Context, quickSaleID string) (*dto.QuickSaleResponse, error) {
	sale, err := s.quickSaleRepo.FindQuickSaleByID(ctx, quickSaleID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToQuickSaleResponse(sale)
	return &resp, nil
}

func (s *quickSaleService) ListQuickSales(ctx context.Context, params dto.ListQuickSalesParams) (*dto.ListQuickSalesResponse, error) {
	filter := portsrepo.ListQuickSalesFilter{
		CustomerID: params.CustomerID,
		StartDate:  params.StartDate,
		EndDate:    params.EndDate,
		Limit:      params.Limit,
		Offset:     params.Offset(),
	}

	sales, total, err := s.quickSaleRepo.ListQuickSales(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list quick sales: %w", err)
	}

	return &dto.ListQuickSalesResponse{
		QuickSales: dto.ToQuickSaleResponses(sales),
		Pagination: dto.NewPaginationResponse(params.Page, params.Limit, total),
	}, nil
}
