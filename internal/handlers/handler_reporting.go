package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/RAVEN850972/cam/internal/core/ports/services"
	"github.com/RAVEN850972/cam/internal/dto"
	"github.com/RAVEN850972/cam/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	financeService portssvc.FinanceReportingSvc
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(fs portssvc.FinanceReportingSvc) *reportingHandler {
	return &reportingHandler{financeService: fs}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, financeService portssvc.FinanceReportingSvc) {
	h := newReportingHandler(financeService)

	reports := rg.Group("/finance")
	{
		reports.GET("/summary", h.getSummary)
	}
}

// getSummary aggregates revenue, expenses, commissions and net profit for a
// date range. Defaults to the current month when no range is given.
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	now := time.Now()
	firstDayOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	fromDate := c.DefaultQuery("fromDate", firstDayOfMonth.Format("2006-01-02"))
	toDate := c.DefaultQuery("toDate", now.Format("2006-01-02"))

	summary, err := h.financeService.GetSummary(c.Request.Context(), fromDate, toDate)
	if err != nil {
		respondServiceError(c, logger, err, "generate finance summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToFinanceSummaryResponse(summary))
}
