package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/gymdesk/gymdesk-api/internal/application/service"
	"github.com/gymdesk/gymdesk-api/internal/domain/entity"
	"github.com/gymdesk/gymdesk-api/internal/presentation/http/dto/request"
	"github.com/gymdesk/gymdesk-api/internal/presentation/http/dto/response"
)

// PackageHandler handles package and service catalog endpoints
type PackageHandler struct {
	packageService *service.PackageService
}

// NewPackageHandler creates a new package handler
func NewPackageHandler(packageService *service.PackageService) *PackageHandler {
	return &PackageHandler{packageService: packageService}
}

// CreatePackage handles POST /packages
func (h *PackageHandler) CreatePackage(c *gin.Context) {
	var req request.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	pkg, err := h.packageService.CreatePackage(c.Request.Context(), &service.CreatePackageInput{
		ServiceID:        req.ServiceID,
		Name:             req.Name,
		Type:             entity.PackageType(req.Type),
		Price:            req.Price,
		SessionCount:     req.SessionCount,
		SessionFormat:    entity.SessionFormat(req.SessionFormat),
		ValidityDays:     req.ValidityDays,
		ValidityRequired: req.ValidityRequired,
		SortOrder:        req.SortOrder,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Package created", pkg)
}

// ListPackages handles GET /packages
func (h *PackageHandler) ListPackages(c *gin.Context) {
	pkgs, err := h.packageService.ListPackages(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Packages retrieved", pkgs)
}

// GetPackage handles GET /packages/:id
func (h *PackageHandler) GetPackage(c *gin.Context) {
	pkg, err := h.packageService.GetPackage(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Package retrieved", pkg)
}

// UpdatePackage handles PUT /packages/:id
func (h *PackageHandler) UpdatePackage(c *gin.Context) {
	var req request.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	pkg, err := h.packageService.UpdatePackage(c.Request.Context(), &service.UpdatePackageInput{
		ID:               c.Param("id"),
		Name:             req.Name,
		Price:            req.Price,
		SessionCount:     req.SessionCount,
		ValidityDays:     req.ValidityDays,
		ValidityRequired: req.ValidityRequired,
		IsActive:         req.IsActive,
		SortOrder:        req.SortOrder,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Package updated", pkg)
}

// DeletePackage handles DELETE /packages/:id
func (h *PackageHandler) DeletePackage(c *gin.Context) {
	if err := h.packageService.DeletePackage(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// CreateService handles POST /services
func (h *PackageHandler) CreateService(c *gin.Context) {
	var req request.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	svc, err := h.packageService.CreateService(c.Request.Context(), &service.CreateServiceInput{
		Name:        req.Name,
		Category:    entity.ServiceCategory(req.Category),
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Service created", svc)
}

// ListServices handles GET /services
func (h *PackageHandler) ListServices(c *gin.Context) {
	svcs, err := h.packageService.ListServices(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Services retrieved", svcs)
}

// UpdateService handles PUT /services/:id
func (h *PackageHandler) UpdateService(c *gin.Context) {
	var req request.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	svc, err := h.packageService.UpdateService(c.Request.Context(), &service.UpdateServiceInput{
		ID:          c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service updated", svc)
}

// DeleteService handles DELETE /services/:id
func (h *PackageHandler) DeleteService(c *gin.Context) {
	if err := h.packageService.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
