package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/RAVEN850972/cam/internal/core/ports/services"
	"github.com/RAVEN850972/cam/internal/dto"
	"github.com/RAVEN850972/cam/internal/middleware"
	"github.com/gin-gonic/gin"
)

// employeeHandler handles HTTP requests related to employees
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

// newEmployeeHandler creates a new employeeHandler
func newEmployeeHandler(es portssvc.EmployeeSvcFacade) *employeeHandler {
	return &employeeHandler{employeeService: es}
}

// registerEmployeeRoutes registers routes related to employees
func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade) {
	h := newEmployeeHandler(employeeService)

	employees := rg.Group("/employees")
	{
		employees.POST("", h.createEmployee)
		employees.GET("", h.listEmployees)
		employees.GET("/:employee_id", h.getEmployee)
		employees.PUT("/:employee_id", h.updateEmployee)
		employees.DELETE("/:employee_id", h.deactivateEmployee)
	}
}

func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "create employee")
		return
	}

	logger.Info("Employee created", slog.String("employee_id", employee.EmployeeID))
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

func (h *employeeHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	includeInactive := c.Query("includeInactive") == "true"

	employees, err := h.employeeService.ListEmployees(c.Request.Context(), includeInactive)
	if err != nil {
		respondServiceError(c, logger, err, "list employees")
		return
	}

	c.JSON(http.StatusOK, dto.ToListEmployeeResponse(employees))
}

func (h *employeeHandler) getEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employee_id")

	employee, err := h.employeeService.GetEmployeeByID(c.Request.Context(), employeeID)
	if err != nil {
		respondServiceError(c, logger, err, "get employee")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

func (h *employeeHandler) updateEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employee_id")

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), employeeID, req)
	if err != nil {
		respondServiceError(c, logger, err, "update employee")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

func (h *employeeHandler) deactivateEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employee_id")

	if err := h.employeeService.DeactivateEmployee(c.Request.Context(), employeeID); err != nil {
		respondServiceError(c, logger, err, "deactivate employee")
		return
	}

	logger.Info("Employee deactivated", slog.String("employee_id", employeeID))
	c.Status(http.StatusNoContent)
}
