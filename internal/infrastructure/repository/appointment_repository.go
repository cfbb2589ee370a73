package repository

import (
	"context"
	"fmt"

	"github.com/gymdesk/gymdesk-api/internal/domain/entity"
	"github.com/gymdesk/gymdesk-api/internal/domain/repository"
	"github.com/gymdesk/gymdesk-api/internal/infrastructure/storage"
)

type appointmentRepository struct {
	col *collection[entity.Appointment]
}

// NewAppointmentRepository creates a new appointment repository over the store.
func NewAppointmentRepository(store storage.Store) repository.AppointmentRepository {
	return &appointmentRepository{col: newCollection[entity.Appointment](store, storage.KeyAppointments)}
}

func (r *appointmentRepository) List(ctx context.Context) ([]entity.Appointment, error) {
	return r.col.load(ctx)
}

func (r *appointmentRepository) GetByID(ctx context.Context, id string) (*entity.Appointment, error) {
	appts, err := r.col.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range appts {
		if appts[i].ID == id {
			return &appts[i], nil
		}
	}
	return nil, nil
}

func (r *appointmentRepository) Create(ctx context.Context, appt *entity.Appointment) error {
	return r.col.mutate(ctx, func(appts []entity.Appointment) ([]entity.Appointment, error) {
		return append(appts, *appt), nil
	})
}

func (r *appointmentRepository) CreateBatch(ctx context.Context, batch []entity.Appointment) error {
	if len(batch) == 0 {
		return nil
	}
	return r.col.mutate(ctx, func(appts []entity.Appointment) ([]entity.Appointment, error) {
		return append(appts, batch...), nil
	})
}

func (r *appointmentRepository) Update(ctx context.Context, appt *entity.Appointment) error {
	return r.col.mutate(ctx, func(appts []entity.Appointment) ([]entity.Appointment, error) {
		for i := range appts {
			if appts[i].ID == appt.ID {
				appts[i] = *appt
				return appts, nil
			}
		}
		return nil, fmt.Errorf("appointment %s not found", appt.ID)
	})
}

func (r *appointmentRepository) Delete(ctx context.Context, id string) error {
	return r.col.mutate(ctx, func(appts []entity.Appointment) ([]entity.Appointment, error) {
		for i := range appts {
			if appts[i].ID == id {
				return append(appts[:i], appts[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("appointment %s not found", id)
	})
}

type groupRepository struct {
	col *collection[entity.Group]
}

// NewGroupRepository creates a new training group repository over the store.
func NewGroupRepository(store storage.Store) repository.GroupRepository {
	return &groupRepository{col: newCollection[entity.Group](store, storage.KeyGroups)}
}

func (r *groupRepository) List(ctx context.Context) ([]entity.Group, error) {
	return r.col.load(ctx)
}

func (r *groupRepository) Create(ctx context.Context, group *entity.Group) error {
	return r.col.mutate(ctx, func(groups []entity.Group) ([]entity.Group, error) {
		return append(groups, *group), nil
	})
}

func (r *groupRepository) Update(ctx context.Context, group *entity.Group) error {
	return r.col.mutate(ctx, func(groups []entity.Group) ([]entity.Group, error) {
		for i := range groups {
			if groups[i].ID == group.ID {
				groups[i] = *group
				return groups, nil
			}
		}
		return nil, fmt.Errorf("group %s not found", group.ID)
	})
}
