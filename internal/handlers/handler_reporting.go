package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/finanzapp/finanzas_backend/internal/core/ports/services"
	"github.com/finanzapp/finanzas_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles aggregate reads across the ledger.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers aggregate reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	rg.GET("/summary", h.getSummary)
}

// getSummary godoc
// @Summary Get the ledger summary
// @Description Returns total balance plus lifetime income and expense sums
// @Tags reporting
// @Produce  json
// @Success 200 {object} dto.SummaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build summary"
// @Security BearerAuth
// @Router /summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.GetSummary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build summary in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
