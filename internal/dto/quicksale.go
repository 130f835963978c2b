package dto

import (
	"time"

	"github.com/ahmadsal1998/omari-studio/internal/core/domain"
	"github.com/shopspring/decimal"
)

// QuickSaleItemRequest is one line on a quick sale payload. ServiceID or
// ProductID must be set to match Type; the service validates the pairing.
type QuickSaleItemRequest struct {
	Type      domain.QuickSaleItemType `json:"type" binding:"required,oneof=service product"`
	ServiceID *string                  `json:"serviceID"`
	ProductID *string                  `json:"productID"`
	Quantity  int                      `json:"quantity" binding:"required,min=1"`
}

// CreateQuickSaleRequest defines the payload for recording a walk-in
// sale. Totals are always priced server-side from the catalog.
type CreateQuickSaleRequest struct {
	CustomerID  *string                `json:"customerID"`
	Items       []QuickSaleItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentType domain.PaymentType     `json:"paymentType" binding:"omitempty,oneof=cash credit"`
}

// ListQuickSalesParams are the quick sale list query parameters.
type ListQuickSalesParams struct {
	PaginationParams
	CustomerID string     `form:"customer"`
	StartDate  *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate    *time.Time `form:"endDate" time_format:"2006-01-02"`
}

// QuickSaleResponse defines the data returned for a quick sale.
type QuickSaleResponse struct {
	QuickSaleID       string                 `json:"quickSaleID"`
	CustomerID        *string                `json:"customerID,omitempty"`
	Items             []domain.QuickSaleItem `json:"items"`
	PaymentType       domain.PaymentType     `json:"paymentType"`
	TotalSellingPrice decimal.Decimal        `json:"totalSellingPrice"`
	TotalCost         decimal.Decimal        `json:"totalCost"`
	Profit            decimal.Decimal        `json:"profit"`
	CreatedAt         time.Time              `json:"createdAt"`
	UpdatedAt         time.Time              `json:"updatedAt"`
}

// ListQuickSalesResponse is a page of quick sales.
type ListQuickSalesResponse struct {
	QuickSales []QuickSaleResponse `json:"quickSales"`
	Pagination PaginationResponse  `json:"pagination"`
}

// ToQuickSaleResponse converts a domain.QuickSale to its response DTO.
func ToQuickSaleResponse(s *domain.QuickSale) QuickSaleResponse {
	return QuickSaleResponse{
		QuickSaleID:       s.QuickSaleID,
		CustomerID:        s.CustomerID,
		Items:             s.Items,
		PaymentType:       s.PaymentType,
		TotalSellingPrice: s.TotalSellingPrice,
		TotalCost:         s.TotalCost,
		Profit:            s.Profit,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

// ToQuickSaleResponses converts a slice of quick sales.
func ToQuickSaleResponses(sales []domain.QuickSale) []QuickSaleResponse {
	responses := make([]QuickSaleResponse, len(sales))
	for i := range sales {
		responses[i] = ToQuickSaleResponse(&sales[i])
	}
	return responses
}
