package repository

import (
	"context"

	"github.com/gymdesk/gymdesk-api/internal/domain/entity"
)

// StaffRepository defines the interface for staff data operations
type StaffRepository interface {
	List(ctx context.Context) ([]entity.Staff, error)
	GetByID(ctx context.Context, id string) (*entity.Staff, error)
	// GetByEmail finds a staff member by email for login; returns nil
	// when no staff member matches.
	GetByEmail(ctx context.Context, email string) (*entity.Staff, error)
	Create(ctx context.Context, staff *entity.Staff) error
	Update(ctx context.Context, staff *entity.Staff) error
	Delete(ctx context.Context, id string) error
}
