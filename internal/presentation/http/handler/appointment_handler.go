package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/gymdesk/gymdesk-api/internal/application/service"
	"github.com/gymdesk/gymdesk-api/internal/domain/entity"
	"github.com/gymdesk/gymdesk-api/internal/presentation/http/dto/request"
	"github.com/gymdesk/gymdesk-api/internal/presentation/http/dto/response"
)

// AppointmentHandler handles appointment and group endpoints
type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// Create handles POST /appointments
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req request.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.appointmentService.CreateAppointment(c.Request.Context(), &service.CreateAppointmentInput{
		MemberID:    req.MemberID,
		TrainerID:   req.TrainerID,
		Date:        req.Date,
		Time:        req.Time,
		Type:        req.Type,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	data := gin.H{"appointment": result.Appointment}
	if result.ValidityWarning != "" {
		data["warning"] = result.ValidityWarning
	}
	response.Created(c, "Appointment created", data)
}

// List handles GET /appointments?period=YYYY-MM
func (h *AppointmentHandler) List(c *gin.Context) {
	appts, err := h.appointmentService.ListAppointments(c.Request.Context(), c.Query("period"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointments retrieved", appts)
}

// Reschedule handles POST /appointments/:id/reschedule
func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	var req request.RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	appt, err := h.appointmentService.RescheduleAppointment(c.Request.Context(), c.Param("id"), req.Date, req.Time)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointment rescheduled", appt)
}

// Cancel handles POST /appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	appt, err := h.appointmentService.CancelAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointment cancelled", appt)
}

// Complete handles POST /appointments/:id/complete
func (h *AppointmentHandler) Complete(c *gin.Context) {
	appt, err := h.appointmentService.CompleteAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointment completed", appt)
}

// Delete handles DELETE /appointments/:id?refund_session=true
func (h *AppointmentHandler) Delete(c *gin.Context) {
	refund := c.Query("refund_session") == "true"
	if err := h.appointmentService.DeleteAppointment(c.Request.Context(), c.Param("id"), refund); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListGroups handles GET /groups
func (h *AppointmentHandler) ListGroups(c *gin.Context) {
	groups, err := h.appointmentService.ListGroups(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Groups retrieved", groups)
}

// JoinGroup handles POST /groups/join
func (h *AppointmentHandler) JoinGroup(c *gin.Context) {
	var req request.JoinGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.appointmentService.JoinGroup(c.Request.Context(), &service.JoinGroupInput{
		MemberID:  req.MemberID,
		TrainerID: req.TrainerID,
		Schedule:  entity.GroupSchedule(req.Schedule),
		Time:      req.Time,
		Type:      req.Type,
		Capacity:  req.Capacity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Member joined group", gin.H{
		"group":        result.Group,
		"appointments": result.Appointments,
	})
}
