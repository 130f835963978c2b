package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/ahmadsal1998/omari-studio/internal/core/ports/services"
	"github.com/ahmadsal1998/omari-studio/internal/dto"
	"github.com/ahmadsal1998/omari-studio/internal/middleware"
)

// quickSaleHandler handles HTTP requests related to walk-in counter
// sales. There are no update or delete routes: a quick sale settles at
// the counter and its stock movement is final.
type quickSaleHandler struct {
	quickSaleService portssvc.QuickSaleSvcFacade
}

func newQuickSaleHandler(qs portssvc.QuickSaleSvcFacade) *quickSaleHandler {
	return &quickSaleHandler{quickSaleService: qs}
}

// registerQuickSaleRoutes registers routes related to quick sales.
func registerQuickSaleRoutes(rg *gin.RouterGroup, quickSaleService portssvc.QuickSaleSvcFacade) {
	h := newQuickSaleHandler(quickSaleService)

	quickSales := rg.Group("/quick-sales")
	{
		quickSales.POST("", h.createQuickSale)
		quickSales.GET("", h.listQuickSales)
		quickSales.GET("/:id", h.getQuickSale)
	}
}

// createQuickSale godoc
// @Summary Record a walk-in sale
// @Description Prices the lines from the catalog and decrements stock for product lines in one transaction.
// @Tags quick-sales
// @Accept json
// @Produce json
// @Param sale body dto.CreateQuickSaleRequest true "Quick sale details"
// @Success 201 {object} dto.QuickSaleResponse
// @Failure 400 {object} map[string]string
// @Router /quick-sales [post]
func (h *quickSaleHandler) createQuickSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateQuickSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createQuickSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	sale, err := h.quickSaleService.CreateQuickSale(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create quick sale")
		return
	}

	logger.Info("Quick sale recorded", slog.String("quick_sale_id", sale.QuickSaleID))
	c.JSON(http.StatusCreated, sale)
}

// listQuickSales godoc
// @Summary List quick sales
// @Tags quick-sales
// @Produce json
// @Success 200 {object} dto.ListQuickSalesResponse
// @Router /quick-sales [get]
func (h *quickSaleHandler) listQuickSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListQuickSalesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.quickSaleService.ListQuickSales(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list quick sales")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getQuickSale godoc
// @Summary Get a quick sale by ID
// @Tags quick-sales
// @Produce json
// @Param id path string true "Quick sale ID"
// @Success 200 {object} dto.QuickSaleResponse
// @Failure 404 {object} map[string]string
// @Router /quick-sales/{id} [get]
func (h *quickSaleHandler) getQuickSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sale, err := h.quickSaleService.GetQuickSale(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get quick sale")
		return
	}
	c.JSON(http.StatusOK, sale)
}
