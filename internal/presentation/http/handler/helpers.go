package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/gymdesk/gymdesk-api/pkg/pagination"
)

// GetStaffID extracts the authenticated staff ID from the Gin context
func GetStaffID(c *gin.Context) string {
	return c.GetString("staff_id")
}

// GetStaffEmail extracts the authenticated staff email from the Gin context
func GetStaffEmail(c *gin.Context) string {
	return c.GetString("staff_email")
}

// GetStaffRole extracts the authenticated staff role from the Gin context
func GetStaffRole(c *gin.Context) string {
	return c.GetString("staff_role")
}

// GetStaffPermissions extracts the staff permissions from the Gin context
func GetStaffPermissions(c *gin.Context) []string {
	permissions, exists := c.Get("staff_permissions")
	if !exists {
		return nil
	}
	perms, ok := permissions.([]string)
	if !ok {
		return nil
	}
	return perms
}

// getPaginationParams binds page/per_page query parameters
func getPaginationParams(c *gin.Context) *pagination.PaginationParams {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		return pagination.DefaultPagination()
	}
	params.Validate()
	return params
}
