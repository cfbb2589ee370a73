package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/gymdesk/gymdesk-api/internal/application/service"
	"github.com/gymdesk/gymdesk-api/internal/domain/entity"
	"github.com/gymdesk/gymdesk-api/internal/domain/enum"
	"github.com/gymdesk/gymdesk-api/internal/presentation/http/dto/request"
	"github.com/gymdesk/gymdesk-api/internal/presentation/http/dto/response"
)

// StaffHandler handles staff endpoints
type StaffHandler struct {
	staffService *service.StaffService
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(staffService *service.StaffService) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

func toPaymentConfig(req request.PaymentConfigRequest) entity.PaymentConfig {
	return entity.PaymentConfig{
		Model:           enum.PaymentModel(req.Model),
		SalaryAmount:    req.SalaryAmount,
		CommissionRate:  req.CommissionRate,
		ProfitShareRate: req.ProfitShareRate,
	}
}

// Create handles POST /staff
func (h *StaffHandler) Create(c *gin.Context) {
	var req request.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	staff, err := h.staffService.CreateStaff(c.Request.Context(), &service.CreateStaffInput{
		Name:          req.Name,
		Role:          enum.Role(req.Role),
		Gender:        req.Gender,
		Branches:      req.Branches,
		Email:         req.Email,
		Phone:         req.Phone,
		BirthDate:     req.BirthDate,
		HireDate:      req.HireDate,
		Password:      req.Password,
		PaymentConfig: toPaymentConfig(req.PaymentConfig),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Staff created", staff)
}

// List handles GET /staff
func (h *StaffHandler) List(c *gin.Context) {
	if c.Query("trainers") == "true" {
		trainers, err := h.staffService.ListTrainers(c.Request.Context())
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Trainers retrieved", trainers)
		return
	}

	staff, err := h.staffService.ListStaff(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Staff retrieved", staff)
}

// Get handles GET /staff/:id
func (h *StaffHandler) Get(c *gin.Context) {
	staff, err := h.staffService.GetStaff(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Staff retrieved", staff)
}

// Update handles PUT /staff/:id
func (h *StaffHandler) Update(c *gin.Context) {
	var req request.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input := &service.UpdateStaffInput{
		ID:       c.Param("id"),
		Name:     req.Name,
		Branches: req.Branches,
		Email:    req.Email,
		Phone:    req.Phone,
	}
	if req.Role != nil {
		role := enum.Role(*req.Role)
		input.Role = &role
	}
	if req.PaymentConfig != nil {
		pc := toPaymentConfig(*req.PaymentConfig)
		input.PaymentConfig = &pc
	}

	staff, err := h.staffService.UpdateStaff(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Staff updated", staff)
}

// Delete handles DELETE /staff/:id
func (h *StaffHandler) Delete(c *gin.Context) {
	if err := h.staffService.DeleteStaff(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
