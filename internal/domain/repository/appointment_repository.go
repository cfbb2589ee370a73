package repository

import (
	"context"

	"github.com/gymdesk/gymdesk-api/internal/domain/entity"
)

// AppointmentRepository defines the interface for appointment data operations
type AppointmentRepository interface {
	List(ctx context.Context) ([]entity.Appointment, error)
	GetByID(ctx context.Context, id string) (*entity.Appointment, error)
	Create(ctx context.Context, appt *entity.Appointment) error
	// CreateBatch appends multiple appointments in one collection write
	// (used by group scheduling).
	CreateBatch(ctx context.Context, appts []entity.Appointment) error
	Update(ctx context.Context, appt *entity.Appointment) error
	Delete(ctx context.Context, id string) error
}

// GroupRepository defines the interface for training group data operations
type GroupRepository interface {
	List(ctx context.Context) ([]entity.Group, error)
	Create(ctx context.Context, group *entity.Group) error
	Update(ctx context.Context, group *entity.Group) error
}
