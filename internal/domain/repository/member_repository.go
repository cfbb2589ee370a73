package repository

import (
	"context"

	"github.com/gymdesk/gymdesk-api/internal/domain/entity"
)

// MemberRepository defines the interface for member data operations
type MemberRepository interface {
	List(ctx context.Context) ([]entity.Member, error)
	GetByID(ctx context.Context, id string) (*entity.Member, error)
	Create(ctx context.Context, member *entity.Member) error
	Update(ctx context.Context, member *entity.Member) error
	Delete(ctx context.Context, id string) error
}
