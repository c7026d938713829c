package handlers

import (
	"encoding/csv"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/RAVEN850972/cam/internal/core/ports/services"
	"github.com/RAVEN850972/cam/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exportHandler serializes tabular exports as CSV downloads
type exportHandler struct {
	exportService portssvc.ExportSvc
}

// newExportHandler creates a new exportHandler
func newExportHandler(es portssvc.ExportSvc) *exportHandler {
	return &exportHandler{exportService: es}
}

// registerExportRoutes registers CSV export routes
func registerExportRoutes(rg *gin.RouterGroup, exportService portssvc.ExportSvc) {
	h := newExportHandler(exportService)

	export := rg.Group("/export")
	{
		export.GET("/orders", h.exportOrders)
		export.GET("/clients", h.exportClients)
		export.GET("/payroll", h.exportPayroll)
		export.GET("/finance", h.exportFinanceSummary)
	}
}

func (h *exportHandler) exportOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	period := c.Query("period")

	table, err := h.exportService.ExportOrders(c.Request.Context(), period)
	if err != nil {
		respondServiceError(c, logger, err, "export orders")
		return
	}
	h.writeCSV(c, logger, table)
}

func (h *exportHandler) exportClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	table, err := h.exportService.ExportClients(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "export clients")
		return
	}
	h.writeCSV(c, logger, table)
}

func (h *exportHandler) exportPayroll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	period := c.Query("period")

	table, err := h.exportService.ExportPayroll(c.Request.Context(), period)
	if err != nil {
		respondServiceError(c, logger, err, "export payroll")
		return
	}
	h.writeCSV(c, logger, table)
}

func (h *exportHandler) exportFinanceSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	now := time.Now()
	firstDayOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	fromDate := c.DefaultQuery("fromDate", firstDayOfMonth.Format("2006-01-02"))
	toDate := c.DefaultQuery("toDate", now.Format("2006-01-02"))

	table, err := h.exportService.ExportFinanceSummary(c.Request.Context(), fromDate, toDate)
	if err != nil {
		respondServiceError(c, logger, err, "export finance summary")
		return
	}
	h.writeCSV(c, logger, table)
}

// writeCSV streams an export table to the client as a CSV attachment.
func (h *exportHandler) writeCSV(c *gin.Context, logger *slog.Logger, table *portssvc.ExportTable) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+table.Filename+`"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	if err := w.Write(table.Header); err != nil {
		logger.Error("Failed to write CSV header", slog.String("error", err.Error()))
		return
	}
	for _, row := range table.Rows {
		if err := w.Write(row); err != nil {
			logger.Error("Failed to write CSV row", slog.String("error", err.Error()))
			return
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		logger.Error("Failed to flush CSV output", slog.String("error", err.Error()))
	}

	logger.Info("Export generated",
		slog.String("filename", table.Filename),
		slog.Int("row_count", len(table.Rows)))
}
