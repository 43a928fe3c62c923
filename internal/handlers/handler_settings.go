package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ftracker/ft_backend/internal/apperrors"
	portssvc "github.com/ftracker/ft_backend/internal/core/ports/services"
	"github.com/ftracker/ft_backend/internal/dto"
	"github.com/ftracker/ft_backend/internal/middleware"
)

// settingsHandler handles HTTP requests for application settings.
type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

// newSettingsHandler creates a new settingsHandler.
func newSettingsHandler(ss portssvc.SettingsSvcFacade) *settingsHandler {
	return &settingsHandler{
		settingsService: ss,
	}
}

// registerSettingsRoutes registers routes related to application settings.
func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade) {
	h := newSettingsHandler(settingsService)

	settings := rg.Group("/settings")
	{
		settings.GET("/display-rate", h.getDisplayRate)
		settings.PUT("/display-rate", h.updateDisplayRate)
	}
}

// getDisplayRate godoc
// @Summary Get the display rate
// @Description Retrieves the informational USD to DZD rate used for display conversions
// @Tags settings
// @Produce  json
// @Success 200 {object} dto.SettingsResponse
// @Failure 500 {object} map[string]string "Failed to retrieve settings"
// @Router /settings/display-rate [get]
func (h *settingsHandler) getDisplayRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to get display rate")

	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get settings from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve settings"})
		return
	}

	logger.Info("Settings retrieved successfully")
	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// updateDisplayRate godoc
// @Summary Update the display rate
// @Description Validates and persists a new informational USD to DZD display rate
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   settings body dto.UpdateDisplayRateRequest true "New display rate"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to update settings"
// @Router /settings/display-rate [put]
func (h *settingsHandler) updateDisplayRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateDisplayRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateDisplayRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to update display rate", slog.String("display_rate", req.DisplayRate.String()))

	settings, err := h.settingsService.UpdateDisplayRate(c.Request.Context(), req.DisplayRate)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating display rate", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to update display rate in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}

	logger.Info("Display rate updated successfully")
	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}
