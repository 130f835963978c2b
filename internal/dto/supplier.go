package dto

import (
	"time"

	"github.com/ahmadsal1998/omari-studio/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSupplierRequest defines the payload for creating a supplier.
// Balance may be set here once, as a legacy opening position; afterwards
// it only moves through credit purchases, and the statement builder
// surfaces this initial figure as the reconciliation row.
type CreateSupplierRequest struct {
	Name        string          `json:"name" binding:"required"`
	PhoneNumber string          `json:"phoneNumber" binding:"required"`
	Balance     decimal.Decimal `json:"balance"`
}

// UpdateSupplierRequest defines the payload for updating a supplier.
type UpdateSupplierRequest struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phoneNumber"`
}

// ListSuppliersParams are the supplier list query parameters.
type ListSuppliersParams struct {
	PaginationParams
	Search      string `form:"search"`
	BalanceType string `form:"balanceType" binding:"omitempty,oneof=debtor creditor"`
	Sort        string `form:"sort" binding:"omitempty,oneof=highest_balance lowest_balance newest"`
}

// SupplierResponse defines the data returned for a supplier.
type SupplierResponse struct {
	SupplierID  string          `json:"supplierID"`
	Name        string          `json:"name"`
	PhoneNumber string          `json:"phoneNumber"`
	Balance     decimal.Decimal `json:"balance"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ListSuppliersResponse is a page of suppliers.
type ListSuppliersResponse struct {
	Suppliers  []SupplierResponse `json:"suppliers"`
	Pagination PaginationResponse `json:"pagination"`
}

// ToSupplierResponse converts a domain.Supplier to its response DTO.
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID:  s.SupplierID,
		Name:        s.Name,
		PhoneNumber: s.PhoneNumber,
		Balance:     s.Balance,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// ToSupplierResponses converts a slice of suppliers.
func ToSupplierResponses(suppliers []domain.Supplier) []SupplierResponse {
	responses := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		responses[i] = ToSupplierResponse(&suppliers[i])
	}
	return responses
}
