package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ahmadsal1998/omari-studio/internal/core/domain"
	portsrepo "github.com/ahmadsal1998/omari-studio/internal/core/ports/repositories"
	portssvc "github.com/ahmadsal1998/omari-studio/internal/core/ports/services"
	"github.com/ahmadsal1998/omari-studio/internal/dto"
)

// customerService provides customer CRUD. Balances are never set here:
// a customer starts at zero and only ledger writes move it.
type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates a new customer service.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	now := time.Now().UTC()
	status := req.Status
	if status == "" {
		status = domain.CustomerActive
	}

	customer := domain.Customer{
		CustomerID:  uuid.NewString(),
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Notes:       req.Notes,
		Balance:     decimal.Zero,
		Status:      status,
		City:        req.City,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	s.LogInfo(ctx, "Customer created", slog.String("customer_id", customer.CustomerID))
	resp := dto.ToCustomerResponse(&customer)
	return &resp, nil
}

func (s *customerService) GetCustomer(ctx context.Context, customerID string) (*dto.CustomerResponse, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToCustomerResponse(customer)
	return &resp, nil
}

func (s *customerService) ListCustomers(ctx context.Context, params dto.ListCustomersParams) (*dto.ListCustomersResponse, error) {
	filter := portsrepo.ListCustomersFilter{
		Search:      params.Search,
		Status:      params.Status,
		BalanceType: portsrepo.BalanceType(params.BalanceType),
		Sort:        params.Sort,
		Limit:       params.Limit,
		Offset:      params.Offset(),
	}

	customers, total, err := s.customerRepo.ListCustomers(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return &dto.ListCustomersResponse{
		Customers:  dto.ToCustomerResponses(customers),
		Pagination: dto.NewPaginationResponse(params.Page, params.Limit, total),
	}, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		customer.FullName = *req.FullName
	}
	if req.PhoneNumber != nil {
		customer.PhoneNumber = *req.PhoneNumber
	}
	if req.Notes != nil {
		customer.Notes = *req.Notes
	}
	if req.Status != nil {
		customer.Status = *req.Status
	}
	if req.City != nil {
		customer.City = *req.City
	}
	customer.UpdatedAt = time.Now().UTC()

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		return nil, fmt.Errorf("failed to update customer %s: %w", customerID, err)
	}

	resp := dto.ToCustomerResponse(customer)
	return &resp, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID string) error {
	if _, err := s.customerRepo.FindCustomerByID(ctx, customerID); err != nil {
		return err
	}
	if err := s.customerRepo.DeleteCustomer(ctx, customerID); err != nil {
		return fmt.Errorf("failed to delete customer %s: %w", customerID, err)
	}
	// Historic postings stay behind for audit; the statement endpoint
	// reports them with a null entity.
	s.LogInfo(ctx, "Customer deleted", slog.String("customer_id", customerID))
	return nil
}
