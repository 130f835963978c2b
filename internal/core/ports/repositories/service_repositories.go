package repositories

import (
	"context"

	"github.com/ahmadsal1998/omari-studio/internal/core/domain"
)

// ListServicesFilter carries the optional catalog list-view filters.
type ListServicesFilter struct {
	Search string
	Type   string
	Limit  int
	Offset int
}

// ServiceReader defines read operations for the service catalog.
type ServiceReader interface {
	FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error)
	FindServicesByIDs(ctx context.Context, serviceIDs []string) (map[string]domain.Service, error)
	ListServices(ctx context.Context, filter ListServicesFilter) ([]domain.Service, int64, error)
}

// ServiceWriter defines write operations for the service catalog.
type ServiceWriter interface {
	SaveService(ctx context.Context, service domain.Service) error
	UpdateService(ctx context.Context, service domain.Service) error
	DeleteService(ctx context.Context, serviceID string) error
}

// ServiceRepositoryFacade combines the catalog repository interfaces.
type ServiceRepositoryFacade interface {
	ServiceReader
	ServiceWriter
}
