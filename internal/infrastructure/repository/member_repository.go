package repository

import (
	"context"
	"fmt"

	"github.com/gymdesk/gymdesk-api/internal/domain/entity"
	"github.com/gymdesk/gymdesk-api/internal/domain/repository"
	"github.com/gymdesk/gymdesk-api/internal/infrastructure/storage"
)

type memberRepository struct {
	col *collection[entity.Member]
}

// NewMemberRepository creates a new member repository over the store.
func NewMemberRepository(store storage.Store) repository.MemberRepository {
	return &memberRepository{col: newCollection[entity.Member](store, storage.KeyMembers)}
}

func (r *memberRepository) List(ctx context.Context) ([]entity.Member, error) {
	return r.col.load(ctx)
}

func (r *memberRepository) GetByID(ctx context.Context, id string) (*entity.Member, error) {
	members, err := r.col.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range members {
		if members[i].ID == id {
			return &members[i], nil
		}
	}
	return nil, nil
}

func (r *memberRepository) Create(ctx context.Context, member *entity.Member) error {
	return r.col.mutate(ctx, func(members []entity.Member) ([]entity.Member, error) {
		return append(members, *member), nil
	})
}

func (r *memberRepository) Update(ctx context.Context, member *entity.Member) error {
	return r.col.mutate(ctx, func(members []entity.Member) ([]entity.Member, error) {
		for i := range members {
			if members[i].ID == member.ID {
				members[i] = *member
				return members, nil
			}
		}
		return nil, fmt.Errorf("member %s not found", member.ID)
	})
}

func (r *memberRepository) Delete(ctx context.Context, id string) error {
	return r.col.mutate(ctx, func(members []entity.Member) ([]entity.Member, error) {
		for i := range members {
			if members[i].ID == id {
				return append(members[:i], members[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("member %s not found", id)
	})
}
