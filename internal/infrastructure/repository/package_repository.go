package repository

import (
	"context"
	"fmt"

	"github.com/gymdesk/gymdesk-api/internal/domain/entity"
	"github.com/gymdesk/gymdesk-api/internal/domain/repository"
	"github.com/gymdesk/gymdesk-api/internal/infrastructure/storage"
)

type packageRepository struct {
	col *collection[entity.Package]
}

// NewPackageRepository creates a new package repository over the store.
func NewPackageRepository(store storage.Store) repository.PackageRepository {
	return &packageRepository{col: newCollection[entity.Package](store, storage.KeyPackages)}
}

func (r *packageRepository) List(ctx context.Context) ([]entity.Package, error) {
	return r.col.load(ctx)
}

func (r *packageRepository) GetByID(ctx context.Context, id string) (*entity.Package, error) {
	pkgs, err := r.col.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range pkgs {
		if pkgs[i].ID == id {
			return &pkgs[i], nil
		}
	}
	return nil, nil
}

func (r *packageRepository) Create(ctx context.Context, pkg *entity.Package) error {
	return r.col.mutate(ctx, func(pkgs []entity.Package) ([]entity.Package, error) {
		return append(pkgs, *pkg), nil
	})
}

func (r *packageRepository) Update(ctx context.Context, pkg *entity.Package) error {
	return r.col.mutate(ctx, func(pkgs []entity.Package) ([]entity.Package, error) {
		for i := range pkgs {
			if pkgs[i].ID == pkg.ID {
				pkgs[i] = *pkg
				return pkgs, nil
			}
		}
		return nil, fmt.Errorf("package %s not found", pkg.ID)
	})
}

func (r *packageRepository) Delete(ctx context.Context, id string) error {
	return r.col.mutate(ctx, func(pkgs []entity.Package) ([]entity.Package, error) {
		for i := range pkgs {
			if pkgs[i].ID == id {
				return append(pkgs[:i], pkgs[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("package %s not found", id)
	})
}

type serviceRepository struct {
	col *collection[entity.Service]
}

// NewServiceRepository creates a new service repository over the store.
func NewServiceRepository(store storage.Store) repository.ServiceRepository {
	return &serviceRepository{col: newCollection[entity.Service](store, storage.KeyServices)}
}

func (r *serviceRepository) List(ctx context.Context) ([]entity.Service, error) {
	return r.col.load(ctx)
}

func (r *serviceRepository) GetByID(ctx context.Context, id string) (*entity.Service, error) {
	svcs, err := r.col.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range svcs {
		if svcs[i].ID == id {
			return &svcs[i], nil
		}
	}
	return nil, nil
}

func (r *serviceRepository) Create(ctx context.Context, svc *entity.Service) error {
	return r.col.mutate(ctx, func(svcs []entity.Service) ([]entity.Service, error) {
		return append(svcs, *svc), nil
	})
}

func (r *serviceRepository) Update(ctx context.Context, svc *entity.Service) error {
	return r.col.mutate(ctx, func(svcs []entity.Service) ([]entity.Service, error) {
		for i := range svcs {
			if svcs[i].ID == svc.ID {
				svcs[i] = *svc
				return svcs, nil
			}
		}
		return nil, fmt.Errorf("service %s not found", svc.ID)
	})
}

func (r *serviceRepository) Delete(ctx context.Context, id string) error {
	return r.col.mutate(ctx, func(svcs []entity.Service) ([]entity.Service, error) {
		for i := range svcs {
			if svcs[i].ID == id {
				return append(svcs[:i], svcs[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("service %s not found", id)
	})
}
