package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/gymdesk/gymdesk-api/internal/application/service"
	"github.com/gymdesk/gymdesk-api/internal/domain/entity"
	"github.com/gymdesk/gymdesk-api/internal/domain/enum"
	"github.com/gymdesk/gymdesk-api/internal/presentation/http/dto/request"
	"github.com/gymdesk/gymdesk-api/internal/presentation/http/dto/response"
)

// MemberHandler handles member endpoints
type MemberHandler struct {
	memberService *service.MemberService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService *service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// Create handles POST /members
func (h *MemberHandler) Create(c *gin.Context) {
	var req request.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input := &service.CreateMemberInput{
		FullName:     req.FullName,
		Phone:        req.Phone,
		Email:        req.Email,
		PackageID:    req.PackageID,
		StartDate:    req.StartDate,
		PaymentType:  enum.PaymentMethod(req.PaymentType),
		Installments: req.Installments,
		PricePaid:    req.PricePaid,
		Notes:        req.Notes,
	}
	if req.HealthProfile != nil {
		input.HealthProfile = toHealthProfile(req.HealthProfile)
	}
	for _, m := range req.Measurements {
		input.Measurements = append(input.Measurements, toMeasurement(m))
	}

	member, err := h.memberService.CreateMember(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Member created", member)
}

// List handles GET /members
func (h *MemberHandler) List(c *gin.Context) {
	params := getPaginationParams(c)
	search := c.Query("search")

	result, err := h.memberService.ListMembers(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Members retrieved", result)
}

// Get handles GET /members/:id
func (h *MemberHandler) Get(c *gin.Context) {
	member, err := h.memberService.GetMember(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Member retrieved", member)
}

// Update handles PUT /members/:id
func (h *MemberHandler) Update(c *gin.Context) {
	var req request.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input := &service.UpdateMemberInput{
		ID:       c.Param("id"),
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
		Notes:    req.Notes,
	}
	if req.Status != nil {
		status := enum.MemberStatus(*req.Status)
		input.Status = &status
	}

	member, err := h.memberService.UpdateMember(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Member updated", member)
}

// Renew handles POST /members/:id/renew
func (h *MemberHandler) Renew(c *gin.Context) {
	var req request.RenewMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	member, err := h.memberService.RenewMembership(c.Request.Context(), &service.RenewMembershipInput{
		MemberID:  c.Param("id"),
		PackageID: req.PackageID,
		StartDate: req.StartDate,
		PricePaid: req.PricePaid,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Membership renewed", member)
}

// SetHealth handles PUT /members/:id/health
func (h *MemberHandler) SetHealth(c *gin.Context) {
	var req request.HealthProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	member, err := h.memberService.SetHealthProfile(c.Request.Context(), c.Param("id"), toHealthProfile(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Health profile updated", member)
}

// AddMeasurement handles POST /members/:id/measurements
func (h *MemberHandler) AddMeasurement(c *gin.Context) {
	var req request.MeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	member, err := h.memberService.AddMeasurement(c.Request.Context(), c.Param("id"), toMeasurement(req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Measurement recorded", member)
}

func toHealthProfile(req *request.HealthProfileRequest) *entity.HealthProfile {
	return &entity.HealthProfile{
		Cardio:      req.Cardio,
		Ortho:       req.Ortho,
		Metabolic:   req.Metabolic,
		Respiratory: req.Respiratory,
		Special:     req.Special,
		Other:       req.Other,
	}
}

func toMeasurement(req request.MeasurementRequest) entity.Measurement {
	return entity.Measurement{
		Date:      req.Date,
		Weight:    req.Weight,
		Height:    req.Height,
		Shoulders: req.Shoulders,
		Arm:       req.Arm,
		Chest:     req.Chest,
		Waist:     req.Waist,
		Hips:      req.Hips,
		Leg:       req.Leg,
	}
}

// Delete handles DELETE /members/:id
func (h *MemberHandler) Delete(c *gin.Context) {
	if err := h.memberService.DeleteMember(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
