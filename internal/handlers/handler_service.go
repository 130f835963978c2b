package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/ahmadsal1998/omari-studio/internal/core/ports/services"
	"github.com/ahmadsal1998/omari-studio/internal/dto"
	"github.com/ahmadsal1998/omari-studio/internal/middleware"
)

// serviceHandler handles HTTP requests related to the service catalog.
type serviceHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

func newServiceHandler(cs portssvc.CatalogSvcFacade) *serviceHandler {
	return &serviceHandler{catalogService: cs}
}

// registerServiceRoutes registers routes related to the service catalog.
func registerServiceRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade) {
	h := newServiceHandler(catalogService)

	services := rg.Group("/services")
	{
		services.POST("", h.createService)
		services.GET("", h.listServices)
		services.GET("/:id", h.getService)
		services.PUT("/:id", h.updateService)
		services.DELETE("/:id", h.deleteService)
	}
}

// createService godoc
// @Summary Create a new catalog service
// @Tags services
// @Accept json
// @Produce json
// @Param service body dto.CreateServiceRequest true "Service details"
// @Success 201 {object} dto.ServiceResponse
// @Failure 400 {object} map[string]string
// @Router /services [post]
func (h *serviceHandler) createService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	service, err := h.catalogService.CreateService(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create service")
		return
	}

	logger.Info("Service created", slog.String("service_id", service.ServiceID))
	c.JSON(http.StatusCreated, service)
}

// listServices godoc
// @Summary List catalog services
// @Tags services
// @Produce json
// @Success 200 {object} dto.ListServicesResponse
// @Router /services [get]
func (h *serviceHandler) listServices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListServicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.catalogService.ListServices(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list services")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getService godoc
// @Summary Get a catalog service by ID
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} dto.ServiceResponse
// @Failure 404 {object} map[string]string
// @Router /services/{id} [get]
func (h *serviceHandler) getService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	service, err := h.catalogService.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get service")
		return
	}
	c.JSON(http.StatusOK, service)
}

// updateService godoc
// @Summary Update a catalog service
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param service body dto.UpdateServiceRequest true "Fields to update"
// @Success 200 {object} dto.ServiceResponse
// @Failure 404 {object} map[string]string
// @Router /services/{id} [put]
func (h *serviceHandler) updateService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	service, err := h.catalogService.UpdateService(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update service")
		return
	}
	c.JSON(http.StatusOK, service)
}

// deleteService godoc
// @Summary Delete a catalog service
// @Tags services
// @Param id path string true "Service ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /services/{id} [delete]
func (h *serviceHandler) deleteService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.catalogService.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete service")
		return
	}
	logger.Info("Service deleted", slog.String("service_id", c.Param("id")))
	c.Status(http.StatusNoContent)
}
