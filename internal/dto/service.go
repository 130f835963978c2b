package dto

import (
	"time"

	"github.com/ahmadsal1998/omari-studio/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateServiceRequest defines the payload for creating a catalog service.
type CreateServiceRequest struct {
	Name            string          `json:"name" binding:"required"`
	Type            string          `json:"type" binding:"required"`
	SellingPrice    decimal.Decimal `json:"sellingPrice"`
	CostPrice       decimal.Decimal `json:"costPrice"`
	DurationMinutes int             `json:"durationMinutes" binding:"omitempty,min=0"`
}

// UpdateServiceRequest defines the payload for updating a catalog service.
type UpdateServiceRequest struct {
	Name            *string          `json:"name"`
	Type            *string          `json:"type"`
	SellingPrice    *decimal.Decimal `json:"sellingPrice"`
	CostPrice       *decimal.Decimal `json:"costPrice"`
	DurationMinutes *int             `json:"durationMinutes" binding:"omitempty,min=0"`
}

// ListServicesParams are the catalog list query parameters.
type ListServicesParams struct {
	PaginationParams
	Search string `form:"search"`
	Type   string `form:"type"`
}

// ServiceResponse defines the data returned for a catalog service.
type ServiceResponse struct {
	ServiceID       string          `json:"serviceID"`
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	SellingPrice    decimal.Decimal `json:"sellingPrice"`
	CostPrice       decimal.Decimal `json:"costPrice"`
	DurationMinutes int             `json:"durationMinutes"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// ListServicesResponse is a page of catalog services.
type ListServicesResponse struct {
	Services   []ServiceResponse  `json:"services"`
	Pagination PaginationResponse `json:"pagination"`
}

// ToServiceResponse converts a domain.Service to its response DTO.
func ToServiceResponse(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ServiceID:       s.ServiceID,
		Name:            s.Name,
		Type:            s.Type,
		SellingPrice:    s.SellingPrice,
		CostPrice:       s.CostPrice,
		DurationMinutes: s.DurationMinutes,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// ToServiceResponses converts a slice of catalog services.
func ToServiceResponses(services []domain.Service) []ServiceResponse {
	responses := make([]ServiceResponse, len(services))
	for i := range services {
		responses[i] = ToServiceResponse(&services[i])
	}
	return responses
}
