package repository

import (
	"context"

	"github.com/gymdesk/gymdesk-api/internal/domain/entity"
)

// PackageRepository defines the interface for membership package data operations
type PackageRepository interface {
	List(ctx context.Context) ([]entity.Package, error)
	GetByID(ctx context.Context, id string) (*entity.Package, error)
	Create(ctx context.Context, pkg *entity.Package) error
	Update(ctx context.Context, pkg *entity.Package) error
	Delete(ctx context.Context, id string) error
}

// ServiceRepository defines the interface for gym service data operations
type ServiceRepository interface {
	List(ctx context.Context) ([]entity.Service, error)
	GetByID(ctx context.Context, id string) (*entity.Service, error)
	Create(ctx context.Context, svc *entity.Service) error
	Update(ctx context.Context, svc *entity.Service) error
	Delete(ctx context.Context, id string) error
}
