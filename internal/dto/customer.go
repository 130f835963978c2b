package dto

import (
	"time"

	"github.com/ahmadsal1998/omari-studio/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest defines the payload for creating a customer.
type CreateCustomerRequest struct {
	FullName    string                `json:"fullName" binding:"required"`
	PhoneNumber string                `json:"phoneNumber" binding:"required"`
	Notes       string                `json:"notes"`
	Status      domain.CustomerStatus `json:"status" binding:"omitempty,oneof=active blocked vip"`
	City        string                `json:"city"`
}

// UpdateCustomerRequest defines the payload for updating a customer.
// Balance is deliberately absent: it only moves through ledger writes.
type UpdateCustomerRequest struct {
	FullName    *string                `json:"fullName"`
	PhoneNumber *string                `json:"phoneNumber"`
	Notes       *string                `json:"notes"`
	Status      *domain.CustomerStatus `json:"status" binding:"omitempty,oneof=active blocked vip"`
	City        *string                `json:"city"`
}

// ListCustomersParams are the customer list query parameters.
type ListCustomersParams struct {
	PaginationParams
	Search      string                `form:"search"`
	Status      domain.CustomerStatus `form:"status" binding:"omitempty,oneof=active blocked vip"`
	BalanceType string                `form:"balanceType" binding:"omitempty,oneof=debtor creditor"`
	Sort        string                `form:"sort" binding:"omitempty,oneof=highest_balance lowest_balance newest"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID  string                `json:"customerID"`
	FullName    string                `json:"fullName"`
	PhoneNumber string                `json:"phoneNumber"`
	Notes       string                `json:"notes,omitempty"`
	Balance     decimal.Decimal       `json:"balance"`
	Status      domain.CustomerStatus `json:"status"`
	City        string                `json:"city,omitempty"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

// ListCustomersResponse is a page of customers.
type ListCustomersResponse struct {
	Customers  []CustomerResponse `json:"customers"`
	Pagination PaginationResponse `json:"pagination"`
}

// ToCustomerResponse converts a domain.Customer to its response DTO.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:  c.CustomerID,
		FullName:    c.FullName,
		PhoneNumber: c.PhoneNumber,
		Notes:       c.Notes,
		Balance:     c.Balance,
		Status:      c.Status,
		City:        c.City,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCustomerResponses converts a slice of customers.
func ToCustomerResponses(customers []domain.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses
}
