package handlers

import (
	"net/http"

	portssvc "github.com/RAVEN850972/cam/internal/core/ports/services"
	"github.com/RAVEN850972/cam/internal/dto"
	"github.com/RAVEN850972/cam/internal/middleware"
	"github.com/gin-gonic/gin"
)

// payrollHandler handles HTTP requests related to payroll computations
type payrollHandler struct {
	payrollService portssvc.PayrollSvc
}

// newPayrollHandler creates a new payrollHandler
func newPayrollHandler(ps portssvc.PayrollSvc) *payrollHandler {
	return &payrollHandler{payrollService: ps}
}

// registerPayrollRoutes registers routes related to payroll
func registerPayrollRoutes(rg *gin.RouterGroup, payrollService portssvc.PayrollSvc) {
	h := newPayrollHandler(payrollService)

	payroll := rg.Group("/payroll")
	{
		payroll.GET("", h.getPayroll)
		payroll.GET("/employees/:employee_id", h.getEmployeeEarnings)
	}
}

// getPayroll returns the payroll summary for a period. An empty period
// defaults to the current month.
func (h *payrollHandler) getPayroll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	period := c.Query("period")

	summary, err := h.payrollService.GetPayroll(c.Request.Context(), period)
	if err != nil {
		respondServiceError(c, logger, err, "compute payroll")
		return
	}

	c.JSON(http.StatusOK, dto.ToPayrollSummaryResponse(summary))
}

// getEmployeeEarnings returns one employee's earnings for a period.
func (h *payrollHandler) getEmployeeEarnings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employee_id")
	period := c.Query("period")

	earnings, err := h.payrollService.GetEmployeeEarnings(c.Request.Context(), employeeID, period)
	if err != nil {
		respondServiceError(c, logger, err, "compute employee earnings")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeEarningsResponse(earnings))
}
