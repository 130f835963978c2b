package dto

import (
	"time"

	"github.com/ahmadsal1998/omari-studio/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PurchaseItemRequest is one product line on a purchase payload.
type PurchaseItemRequest struct {
	ProductID     string          `json:"productID" binding:"required"`
	Quantity      int             `json:"quantity" binding:"required,min=1"`
	PurchasePrice decimal.Decimal `json:"purchasePrice" binding:"required"`
}

// CreatePurchaseRequest defines the payload for recording a purchase.
type CreatePurchaseRequest struct {
	SupplierID  string                `json:"supplierID" binding:"required"`
	Items       []PurchaseItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentType domain.PaymentType    `json:"paymentType" binding:"required,oneof=cash credit"`
}

// ListPurchasesParams are the purchase list query parameters.
type ListPurchasesParams struct {
	PaginationParams
	SupplierID string     `form:"supplier"`
	StartDate  *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate    *time.Time `form:"endDate" time_format:"2006-01-02"`
}

// PurchaseResponse defines the data returned for a purchase.
type PurchaseResponse struct {
	PurchaseID  string                `json:"purchaseID"`
	SupplierID  string                `json:"supplierID"`
	Items       []domain.PurchaseItem `json:"items"`
	PaymentType domain.PaymentType    `json:"paymentType"`
	TotalAmount decimal.Decimal       `json:"totalAmount"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

// ListPurchasesResponse is a page of purchases.
type ListPurchasesResponse struct {
	Purchases  []PurchaseResponse `json:"purchases"`
	Pagination PaginationResponse `json:"pagination"`
}

// ToPurchaseResponse converts a domain.Purchase to its response DTO.
func ToPurchaseResponse(p *domain.Purchase) PurchaseResponse {
	return PurchaseResponse{
		PurchaseID:  p.PurchaseID,
		SupplierID:  p.SupplierID,
		Items:       p.Items,
		PaymentType: p.PaymentType,
		TotalAmount: p.TotalAmount,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToPurchaseResponses converts a slice of purchases.
func ToPurchaseResponses(purchases []domain.Purchase) []PurchaseResponse {
	responses := make([]PurchaseResponse, len(purchases))
	for i := range purchases {
		responses[i] = ToPurchaseResponse(&purchases[i])
	}
	return responses
}
