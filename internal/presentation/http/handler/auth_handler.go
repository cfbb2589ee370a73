package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/gymdesk/gymdesk-api/internal/application/service"
	"github.com/gymdesk/gymdesk-api/internal/presentation/http/dto/request"
	"github.com/gymdesk/gymdesk-api/internal/presentation/http/dto/response"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", gin.H{
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
		"staff": gin.H{
			"id":          result.Staff.ID,
			"name":        result.Staff.Name,
			"email":       result.Staff.Email,
			"role":        result.Staff.Role,
			"permissions": result.Staff.Role.Permissions(),
		},
	})
}

// Refresh handles POST /auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Token refreshed", gin.H{
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
	})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	staff, err := h.authService.Me(c.Request.Context(), GetStaffID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile retrieved", gin.H{
		"id":          staff.ID,
		"name":        staff.Name,
		"email":       staff.Email,
		"role":        staff.Role,
		"permissions": staff.Role.Permissions(),
	})
}

// ChangePassword handles POST /auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req request.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), GetStaffID(c), req.CurrentPassword, req.NewPassword); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Password changed", nil)
}
