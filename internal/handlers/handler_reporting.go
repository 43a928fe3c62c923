package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/ftracker/ft_backend/internal/core/ports/services"
	"github.com/ftracker/ft_backend/internal/dto"
	"github.com/ftracker/ft_backend/internal/middleware"
)

// reportingHandler handles HTTP requests for derived ledger reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
	settingsService  portssvc.SettingsSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade, ss portssvc.SettingsSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		settingsService:  ss,
	}
}

// registerReportingRoutes registers routes related to ledger reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade, settingsService portssvc.SettingsSvcFacade) {
	h := newReportingHandler(reportingService, settingsService)

	reports := rg.Group("/reports")
	{
		reports.GET("/balances", h.getBalances)
		reports.GET("/monthly", h.getMonthlySummary)
	}
}

// getBalances godoc
// @Summary Get current account balances
// @Description Derives Bank/USD, PayPal/USD and Cash/DZD balances from the full ledger, with informational DZD equivalents and net worth at the display rate
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.BalancesResponse
// @Failure 500 {object} map[string]string "Failed to compute balances"
// @Router /reports/balances [get]
func (h *reportingHandler) getBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to get balances")

	balances, err := h.reportingService.Balances(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute balances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balances"})
		return
	}

	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load settings for balances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balances"})
		return
	}

	logger.Info("Balances computed successfully")
	c.JSON(http.StatusOK, dto.ToBalancesResponse(balances, settings.DisplayRate))
}

// getMonthlySummary godoc
// @Summary Get a monthly summary
// @Description Derives income earned and spending totals per currency for one calendar month
// @Tags reports
// @Produce  json
// @Param   year query int true "Calendar year"
// @Param   month query int true "Calendar month 1-12"
// @Success 200 {object} dto.MonthlySummaryResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to compute monthly summary"
// @Router /reports/monthly [get]
func (h *reportingHandler) getMonthlySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.MonthlySummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for GetMonthlySummary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	logger.Info("Received request to get monthly summary", slog.Int("year", params.Year), slog.Int("month", params.Month))

	summary, err := h.reportingService.MonthlySummary(c.Request.Context(), params.Year, time.Month(params.Month))
	if err != nil {
		logger.Error("Failed to compute monthly summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute monthly summary"})
		return
	}

	logger.Info("Monthly summary computed successfully")
	c.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(summary, params.Year, params.Month))
}
