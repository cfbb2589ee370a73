package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/gymdesk/gymdesk-api/internal/application/service"
	"github.com/gymdesk/gymdesk-api/internal/presentation/http/dto/response"
)

// FinancialsHandler handles financial summary endpoints
type FinancialsHandler struct {
	financialsService *service.FinancialsService
}

// NewFinancialsHandler creates a new financials handler
func NewFinancialsHandler(financialsService *service.FinancialsService) *FinancialsHandler {
	return &FinancialsHandler{financialsService: financialsService}
}

// Summary handles GET /financials?period=YYYY-MM
func (h *FinancialsHandler) Summary(c *gin.Context) {
	summary, err := h.financialsService.Summary(c.Request.Context(), c.Query("period"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Financial summary computed", summary)
}

// ExportSummary handles GET /financials/export?period=YYYY-MM
func (h *FinancialsHandler) ExportSummary(c *gin.Context) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="financials.csv"`)

	if err := h.financialsService.ExportSummaryCSV(c.Request.Context(), c.Query("period"), c.Writer); err != nil {
		response.Error(c, err)
		return
	}
}

// ExportStaffEarnings handles GET /financials/staff-earnings/export?period=YYYY-MM
func (h *FinancialsHandler) ExportStaffEarnings(c *gin.Context) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="staff-earnings.csv"`)

	if err := h.financialsService.ExportStaffEarningsCSV(c.Request.Context(), c.Query("period"), c.Writer); err != nil {
		response.Error(c, err)
		return
	}
}
