package services

import (
	"context"

	"github.com/ahmadsal1998/omari-studio/internal/dto"
)

// CustomerSvcFacade exposes customer CRUD.
type CustomerSvcFacade interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	GetCustomer(ctx context.Context, customerID string) (*dto.CustomerResponse, error)
	ListCustomers(ctx context.Context, params dto.ListCustomersParams) (*dto.ListCustomersResponse, error)
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error)
	DeleteCustomer(ctx context.Context, customerID string) error
}

// SupplierSvcFacade exposes supplier CRUD.
type SupplierSvcFacade interface {
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error)
	GetSupplier(ctx context.Context, supplierID string) (*dto.SupplierResponse, error)
	ListSuppliers(ctx context.Context, params dto.ListSuppliersParams) (*dto.ListSuppliersResponse, error)
	UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest) (*dto.SupplierResponse, error)
	DeleteSupplier(ctx context.Context, supplierID string) error
}

// ProductSvcFacade exposes product CRUD.
type ProductSvcFacade interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetProduct(ctx context.Context, productID string) (*dto.ProductResponse, error)
	ListProducts(ctx context.Context, params dto.ListProductsParams) (*dto.ListProductsResponse, error)
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	DeleteProduct(ctx context.Context, productID string) error
}

// CatalogSvcFacade exposes studio service catalog CRUD.
type CatalogSvcFacade interface {
	CreateService(ctx context.Context, req dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	GetService(ctx context.Context, serviceID string) (*dto.ServiceResponse, error)
	ListServices(ctx context.Context, params dto.ListServicesParams) (*dto.ListServicesResponse, error)
	UpdateService(ctx context.Context, serviceID string, req dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	DeleteService(ctx context.Context, serviceID string) error
}

// BookingSvcFacade exposes booking operations.
type BookingSvcFacade interface {
	CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (*dto.BookingResponse, error)
	GetBooking(ctx context.Context, bookingID string) (*dto.BookingResponse, error)
	ListBookings(ctx context.Context, params dto.ListBookingsParams) (*dto.ListBookingsResponse, error)
	UpdateBooking(ctx context.Context, bookingID string, req dto.UpdateBookingRequest) (*dto.BookingResponse, error)
	DeleteBooking(ctx context.Context, bookingID string) error
}

// PurchaseSvcFacade exposes purchase operations. Purchases cannot be
// deleted: the statement derives supplier debt from them structurally.
type PurchaseSvcFacade interface {
	CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error)
	GetPurchase(ctx context.Context, purchaseID string) (*dto.PurchaseResponse, error)
	ListPurchases(ctx context.Context, params dto.ListPurchasesParams) (*dto.ListPurchasesResponse, error)
}

// QuickSaleSvcFacade exposes walk-in counter sales. Sales are settled at
// the counter and cannot be edited or deleted afterwards.
type QuickSaleSvcFacade interface {
	CreateQuickSale(ctx context.Context, req dto.CreateQuickSaleRequest) (*dto.QuickSaleResponse, error)
	GetQuickSale(ctx context.Context, quickSaleID string) (*dto.QuickSaleResponse, error)
	ListQuickSales(ctx context.Context, params dto.ListQuickSalesParams) (*dto.ListQuickSalesResponse, error)
}

// ExpenseSvcFacade exposes operating expense CRUD.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*dto.ExpenseResponse, error)
	GetExpense(ctx context.Context, expenseID string) (*dto.ExpenseResponse, error)
	ListExpenses(ctx context.Context, params dto.ListExpensesParams) (*dto.ListExpensesResponse, error)
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error)
	DeleteExpense(ctx context.Context, expenseID string) error
}
