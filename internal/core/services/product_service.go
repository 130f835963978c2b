package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ahmadsal1998/omari-studio/internal/core/domain"
	portsrepo "github.com/ahmadsal1998/omari-studio/internal/core/ports/repositories"
	portssvc "github.com/ahmadsal1998/omari-studio/internal/core/ports/services"
	"github.com/ahmadsal1998/omari-studio/internal/dto"
)

// productService provides product CRUD. Stock is only adjusted through
// purchases and bookings, never edited directly here.
type productService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
}

// NewProductService creates a new product service.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	now := time.Now().UTC()
	product := domain.Product{
		ProductID:     uuid.NewString(),
		Name:          req.Name,
		CostPrice:     req.CostPrice,
		SellingPrice:  req.SellingPrice,
		StockQuantity: req.StockQuantity,
		SupplierID:    req.SupplierID,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	s.LogInfo(ctx, "Product created", slog.String("product_id", product.ProductID))
	resp := dto.ToProductResponse(&product)
	return &resp, nil
}

func (s *productService) GetProduct(ctx context.Context, productID string) (*dto.ProductResponse, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToProductResponse(product)
	return &resp, nil
}

func (s *productService) ListProducts(ctx context.Context, params dto.ListProductsParams) (*dto.ListProductsResponse, error) {
	filter := portsrepo.ListProductsFilter{
		Search:     params.Search,
		SupplierID: params.SupplierID,
		Limit:      params.Limit,
		Offset:     params.Offset(),
	}

	products, total, err := s.productRepo.ListProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return &dto.ListProductsResponse{
		Products:   dto.ToProductResponses(products),
		Pagination: dto.NewPaginationResponse(params.Page, params.Limit, total),
	}, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.CostPrice != nil {
		product.CostPrice = *req.CostPrice
	}
	if req.SellingPrice != nil {
		product.SellingPrice = *req.SellingPrice
	}
	if req.SupplierID != nil {
		product.SupplierID = req.SupplierID
	}
	product.UpdatedAt = time.Now().UTC()

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", productID, err)
	}

	resp := dto.ToProductResponse(product)
	return &resp, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	if _, err := s.productRepo.FindProductByID(ctx, productID); err != nil {
		return err
	}
	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}
	s.LogInfo(ctx, "Product deleted", slog.String("product_id", productID))
	return nil
}
