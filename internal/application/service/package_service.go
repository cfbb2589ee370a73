package service

import (
	"context"

	"github.com/gymdesk/gymdesk-api/internal/domain/entity"
	"github.com/gymdesk/gymdesk-api/internal/domain/repository"
	"github.com/gymdesk/gymdesk-api/pkg/apperror"
	"github.com/gymdesk/gymdesk-api/pkg/utils"
)

// PackageService handles membership package and service catalog operations
type PackageService struct {
	packageRepo repository.PackageRepository
	serviceRepo repository.ServiceRepository
}

// NewPackageService creates a new package service
func NewPackageService(packageRepo repository.PackageRepository, serviceRepo repository.ServiceRepository) *PackageService {
	return &PackageService{packageRepo: packageRepo, serviceRepo: serviceRepo}
}

// CreatePackageInput represents the create package input
type CreatePackageInput struct {
	ServiceID        string
	Name             string
	Type             entity.PackageType
	Price            float64
	SessionCount     int
	SessionFormat    entity.SessionFormat
	ValidityDays     int
	ValidityRequired bool
	SortOrder        int
}

// CreatePackage creates a new sellable package under a service.
func (s *PackageService) CreatePackage(ctx context.Context, input *CreatePackageInput) (*entity.Package, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Package name is required")
	}
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Package price cannot be negative")
	}

	svc, err := s.serviceRepo.GetByID(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, apperror.NewNotFoundError("Service")
	}

	pkg := &entity.Package{
		ID:               utils.NewID(),
		ServiceID:        input.ServiceID,
		Name:             input.Name,
		Type:             input.Type,
		Price:            input.Price,
		SessionCount:     input.SessionCount,
		SessionFormat:    input.SessionFormat,
		ValidityDays:     input.ValidityDays,
		ValidityRequired: input.ValidityRequired,
		IsActive:         true,
		SortOrder:        input.SortOrder,
	}

	if err := s.packageRepo.Create(ctx, pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

// GetPackage retrieves a package by ID
func (s *PackageService) GetPackage(ctx context.Context, id string) (*entity.Package, error) {
	pkg, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, apperror.NewNotFoundError("Package")
	}
	return pkg, nil
}

// ListPackages lists all packages
func (s *PackageService) ListPackages(ctx context.Context) ([]entity.Package, error) {
	return s.packageRepo.List(ctx)
}

// UpdatePackageInput represents the update package input
type UpdatePackageInput struct {
	ID               string
	Name             *string
	Price            *float64
	SessionCount     *int
	ValidityDays     *int
	ValidityRequired *bool
	IsActive         *bool
	SortOrder        *int
}

// UpdatePackage updates a package
func (s *PackageService) UpdatePackage(ctx context.Context, input *UpdatePackageInput) (*entity.Package, error) {
	pkg, err := s.GetPackage(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		pkg.Name = *input.Name
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewBadRequestError("Package price cannot be negative")
		}
		pkg.Price = *input.Price
	}
	if input.SessionCount != nil {
		pkg.SessionCount = *input.SessionCount
	}
	if input.ValidityDays != nil {
		pkg.ValidityDays = *input.ValidityDays
	}
	if input.ValidityRequired != nil {
		pkg.ValidityRequired = *input.ValidityRequired
	}
	if input.IsActive != nil {
		pkg.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		pkg.SortOrder = *input.SortOrder
	}

	if err := s.packageRepo.Update(ctx, pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

// DeletePackage deletes a package
func (s *PackageService) DeletePackage(ctx context.Context, id string) error {
	if _, err := s.GetPackage(ctx, id); err != nil {
		return err
	}
	return s.packageRepo.Delete(ctx, id)
}

// CreateServiceInput represents the create service input
type CreateServiceInput struct {
	Name        string
	Category    entity.ServiceCategory
	Description string
}

// CreateService creates a new service branch.
func (s *PackageService) CreateService(ctx context.Context, input *CreateServiceInput) (*entity.Service, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Service name is required")
	}

	svc := &entity.Service{
		ID:          utils.NewID(),
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		IsActive:    true,
	}

	if err := s.serviceRepo.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// ListServices lists all services
func (s *PackageService) ListServices(ctx context.Context) ([]entity.Service, error) {
	return s.serviceRepo.List(ctx)
}

// UpdateServiceInput represents the update service input
type UpdateServiceInput struct {
	ID          string
	Name        *string
	Description *string
	IsActive    *bool
}

// UpdateService updates a service
func (s *PackageService) UpdateService(ctx context.Context, input *UpdateServiceInput) (*entity.Service, error) {
	svc, err := s.serviceRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, apperror.NewNotFoundError("Service")
	}

	if input.Name != nil {
		svc.Name = *input.Name
	}
	if input.Description != nil {
		svc.Description = *input.Description
	}
	if input.IsActive != nil {
		svc.IsActive = *input.IsActive
	}

	if err := s.serviceRepo.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// DeleteService deletes a service unless packages still reference it.
func (s *PackageService) DeleteService(ctx context.Context, id string) error {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if svc == nil {
		return apperror.NewNotFoundError("Service")
	}

	pkgs, err := s.packageRepo.List(ctx)
	if err != nil {
		return err
	}
	for _, pkg := range pkgs {
		if pkg.ServiceID == id {
			return apperror.NewConflictError("Service still has packages")
		}
	}

	return s.serviceRepo.Delete(ctx, id)
}
