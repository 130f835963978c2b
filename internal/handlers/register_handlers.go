package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/ahmadsal1998/omari-studio/internal/core/ports/services"
	"github.com/ahmadsal1998/omari-studio/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", getHealth)

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the
// per-entity route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	registerCustomerRoutes(v1, services.Customer)
	registerSupplierRoutes(v1, services.Supplier)
	registerProductRoutes(v1, services.Product)
	registerServiceRoutes(v1, services.Catalog)
	registerBookingRoutes(v1, services.Booking)
	registerPurchaseRoutes(v1, services.Purchase)
	registerQuickSaleRoutes(v1, services.QuickSale)
	registerExpenseRoutes(v1, services.Expense)
	registerLedgerRoutes(v1, services.Ledger, services.Statement)
}
