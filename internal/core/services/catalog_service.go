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

// catalogService provides CRUD over the studio service catalog.
type catalogService struct {
	BaseService
	serviceRepo portsrepo.ServiceRepositoryFacade
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(serviceRepo portsrepo.ServiceRepositoryFacade) portssvc.CatalogSvcFacade {
	return &catalogService{serviceRepo: serviceRepo}
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

func (s *catalogService) CreateService(ctx context.Context, req dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	now := time.Now().UTC()
	service := domain.Service{
		ServiceID:       uuid.NewString(),
		Name:            req.Name,
		Type:            req.Type,
		SellingPrice:    req.SellingPrice,
		CostPrice:       req.CostPrice,
		DurationMinutes: req.DurationMinutes,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.serviceRepo.SaveService(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to save service: %w", err)
	}

	s.LogInfo(ctx, "Catalog service created", slog.String("service_id", service.ServiceID))
	resp := dto.ToServiceResponse(&service)
	return &resp, nil
}

func (s *catalogService) GetService(ctx context.Context, serviceID string) (*dto.ServiceResponse, error) {
	service, err := s.serviceRepo.FindServiceByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToServiceResponse(service)
	return &resp, nil
}

func (s *catalogService) ListServices(ctx context.Context, params dto.ListServicesParams) (*dto.ListServicesResponse, error) {
	filter := portsrepo.ListServicesFilter{
		Search: params.Search,
		Type:   params.Type,
		Limit:  params.Limit,
		Offset: params.Offset(),
	}

	services, total, err := s.serviceRepo.ListServices(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	return &dto.ListServicesResponse{
		Services:   dto.ToServiceResponses(services),
		Pagination: dto.NewPaginationResponse(params.Page, params.Limit, total),
	}, nil
}

func (s *catalogService) UpdateService(ctx context.Context, serviceID string, req dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	service, err := s.serviceRepo.FindServiceByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Type != nil {
		service.Type = *req.Type
	}
	if req.SellingPrice != nil {
		service.SellingPrice = *req.SellingPrice
	}
	if req.CostPrice != nil {
		service.CostPrice = *req.CostPrice
	}
	if req.DurationMinutes != nil {
		service.DurationMinutes = *req.DurationMinutes
	}
	service.UpdatedAt = time.Now().UTC()

	if err := s.serviceRepo.UpdateService(ctx, *service); err != nil {
		return nil, fmt.Errorf("failed to update service %s: %w", serviceID, err)
	}

	resp := dto.ToServiceResponse(service)
	return &resp, nil
}

func (s *catalogService) DeleteService(ctx context.Context, serviceID string) error {
	if _, err := s.serviceRepo.FindServiceByID(ctx, serviceID); err != nil {
		return err
	}
	if err := s.serviceRepo.DeleteService(ctx, serviceID); err != nil {
		return fmt.Errorf("failed to delete service %s: %w", serviceID, err)
	}
	s.LogInfo(ctx, "Catalog service deleted", slog.String("service_id", serviceID))
	return nil
}
