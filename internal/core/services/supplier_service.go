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

// supplierService provides supplier CRUD. The balance accepted at
// creation is a legacy opening position; it is never captured as a
// posting, so the statement builder reports it as the reconciliation
// row.
type supplierService struct {
	BaseService
	supplierRepo portsrepo.SupplierRepositoryFacade
}

// NewSupplierService creates a new supplier service.
func NewSupplierService(supplierRepo portsrepo.SupplierRepositoryFacade) portssvc.SupplierSvcFacade {
	return &supplierService{supplierRepo: supplierRepo}
}

var _ portssvc.SupplierSvcFacade = (*supplierService)(nil)

func (s *supplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	now := time.Now().UTC()
	supplier := domain.Supplier{
		SupplierID:  uuid.NewString(),
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Balance:     req.Balance,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		return nil, fmt.Errorf("failed to save supplier: %w", err)
	}

	s.LogInfo(ctx, "Supplier created", slog.String("supplier_id", supplier.SupplierID))
	resp := dto.ToSupplierResponse(&supplier)
	return &resp, nil
}

func (s *supplierService) GetSupplier(ctx context.Context, supplierID string) (*dto.SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToSupplierResponse(supplier)
	return &resp, nil
}

func (s *supplierService) ListSuppliers(ctx context.Context, params dto.ListSuppliersParams) (*dto.ListSuppliersResponse, error) {
	filter := portsrepo.ListSuppliersFilter{
		Search:      params.Search,
		BalanceType: portsrepo.BalanceType(params.BalanceType),
		Sort:        params.Sort,
		Limit:       params.Limit,
		Offset:      params.Offset(),
	}

	suppliers, total, err := s.supplierRepo.ListSuppliers(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}

	return &dto.ListSuppliersResponse{
		Suppliers:  dto.ToSupplierResponses(suppliers),
		Pagination: dto.NewPaginationResponse(params.Page, params.Limit, total),
	}, nil
}

func (s *supplierService) UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	// Balance is not updatable here: edits would silently widen the
	// reconciliation gap.
	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.PhoneNumber != nil {
		supplier.PhoneNumber = *req.PhoneNumber
	}
	supplier.UpdatedAt = time.Now().UTC()

	if err := s.supplierRepo.UpdateSupplier(ctx, *supplier); err != nil {
		return nil, fmt.Errorf("failed to update supplier %s: %w", supplierID, err)
	}

	resp := dto.ToSupplierResponse(supplier)
	return &resp, nil
}

func (s *supplierService) DeleteSupplier(ctx context.Context, supplierID string) error {
	if _, err := s.supplierRepo.FindSupplierByID(ctx, supplierID); err != nil {
		return err
	}
	if err := s.supplierRepo.DeleteSupplier(ctx, supplierID); err != nil {
		return fmt.Errorf("failed to delete supplier %s: %w", supplierID, err)
	}
	s.LogInfo(ctx, "Supplier deleted", slog.String("supplier_id", supplierID))
	return nil
}
