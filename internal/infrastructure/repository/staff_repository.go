package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/gymdesk/gymdesk-api/internal/domain/entity"
	"github.com/gymdesk/gymdesk-api/internal/domain/repository"
	"github.com/gymdesk/gymdesk-api/internal/infrastructure/storage"
)

type staffRepository struct {
	col *collection[entity.Staff]
}

// NewStaffRepository creates a new staff repository over the store.
func NewStaffRepository(store storage.Store) repository.StaffRepository {
	return &staffRepository{col: newCollection[entity.Staff](store, storage.KeyStaff)}
}

func (r *staffRepository) List(ctx context.Context) ([]entity.Staff, error) {
	return r.col.load(ctx)
}

func (r *staffRepository) GetByID(ctx context.Context, id string) (*entity.Staff, error) {
	staff, err := r.col.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range staff {
		if staff[i].ID == id {
			return &staff[i], nil
		}
	}
	return nil, nil
}

func (r *staffRepository) GetByEmail(ctx context.Context, email string) (*entity.Staff, error) {
	staff, err := r.col.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range staff {
		if strings.EqualFold(staff[i].Email, email) {
			return &staff[i], nil
		}
	}
	return nil, nil
}

func (r *staffRepository) Create(ctx context.Context, member *entity.Staff) error {
	return r.col.mutate(ctx, func(staff []entity.Staff) ([]entity.Staff, error) {
		return append(staff, *member), nil
	})
}

func (r *staffRepository) Update(ctx context.Context, member *entity.Staff) error {
	return r.col.mutate(ctx, func(staff []entity.Staff) ([]entity.Staff, error) {
		for i := range staff {
			if staff[i].ID == member.ID {
				staff[i] = *member
				return staff, nil
			}
		}
		return nil, fmt.Errorf("staff %s not found", member.ID)
	})
}

func (r *staffRepository) Delete(ctx context.Context, id string) error {
	return r.col.mutate(ctx, func(staff []entity.Staff) ([]entity.Staff, error) {
		for i := range staff {
			if staff[i].ID == id {
				return append(staff[:i], staff[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("staff %s not found", id)
	})
}
