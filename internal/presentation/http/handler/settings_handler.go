package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gymdesk/gymdesk-api/internal/application/service"
	"github.com/gymdesk/gymdesk-api/internal/presentation/http/dto/request"
	"github.com/gymdesk/gymdesk-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles the commission table endpoints
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// ListCommissionRates handles GET /settings/commission-rates
func (h *SettingsHandler) ListCommissionRates(c *gin.Context) {
	rates, err := h.settingsService.ListCommissionRates(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Commission rates retrieved", rates)
}

// SetCommissionRate handles PUT /settings/commission-rates
func (h *SettingsHandler) SetCommissionRate(c *gin.Context) {
	var req request.SetCommissionRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	rate, err := h.settingsService.SetCommissionRate(c.Request.Context(), req.Installments, req.Rate)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Commission rate saved", rate)
}

// DeleteCommissionRate handles DELETE /settings/commission-rates/:installments
func (h *SettingsHandler) DeleteCommissionRate(c *gin.Context) {
	installments, err := strconv.Atoi(c.Param("installments"))
	if err != nil {
		response.BadRequest(c, "Invalid installment count")
		return
	}

	if err := h.settingsService.DeleteCommissionRate(c.Request.Context(), installments); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
