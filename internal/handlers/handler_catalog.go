package handlers

import (
	"log/slog"
	"net/http"

	"github.com/RAVEN850972/cam/internal/core/domain"
	portssvc "github.com/RAVEN850972/cam/internal/core/ports/services"
	"github.com/RAVEN850972/cam/internal/dto"
	"github.com/RAVEN850972/cam/internal/middleware"
	"github.com/gin-gonic/gin"
)

// catalogHandler handles HTTP requests related to the service catalog
type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

// newCatalogHandler creates a new catalogHandler
func newCatalogHandler(cs portssvc.CatalogSvcFacade) *catalogHandler {
	return &catalogHandler{catalogService: cs}
}

// registerCatalogRoutes registers routes related to the service catalog
func registerCatalogRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade) {
	h := newCatalogHandler(catalogService)

	services := rg.Group("/services")
	{
		services.POST("", h.createService)
		services.GET("", h.listServices)
		services.GET("/:service_id", h.getService)
		services.PUT("/:service_id", h.updateService)
		services.DELETE("/:service_id", h.deleteService)
	}
}

func (h *catalogHandler) createService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	service, err := h.catalogService.CreateService(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "create service")
		return
	}

	logger.Info("Catalog service created", slog.String("service_id", service.ServiceID))
	c.JSON(http.StatusCreated, dto.ToServiceResponse(service))
}

func (h *catalogHandler) listServices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var category *domain.ServiceCategory
	if raw := c.Query("category"); raw != "" {
		cat := domain.ServiceCategory(raw)
		category = &cat
	}

	services, err := h.catalogService.ListServices(c.Request.Context(), category)
	if err != nil {
		respondServiceError(c, logger, err, "list services")
		return
	}

	c.JSON(http.StatusOK, dto.ToListServiceResponse(services))
}

func (h *catalogHandler) getService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	serviceID := c.Param("service_id")

	service, err := h.catalogService.GetServiceByID(c.Request.Context(), serviceID)
	if err != nil {
		respondServiceError(c, logger, err, "get service")
		return
	}

	c.JSON(http.StatusOK, dto.ToServiceResponse(service))
}

func (h *catalogHandler) updateService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	serviceID := c.Param("service_id")

	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	service, err := h.catalogService.UpdateService(c.Request.Context(), serviceID, req)
	if err != nil {
		respondServiceError(c, logger, err, "update service")
		return
	}

	c.JSON(http.StatusOK, dto.ToServiceResponse(service))
}

func (h *catalogHandler) deleteService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	serviceID := c.Param("service_id")

	if err := h.catalogService.DeleteService(c.Request.Context(), serviceID); err != nil {
		respondServiceError(c, logger, err, "delete service")
		return
	}

	logger.Info("Catalog service deleted", slog.String("service_id", serviceID))
	c.Status(http.StatusNoContent)
}
