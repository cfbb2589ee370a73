package repository

import (
	"context"

	"github.com/gymdesk/gymdesk-api/internal/domain/entity"
)

// CouponRepository defines the interface for discount coupon data operations
type CouponRepository interface {
	List(ctx context.Context) ([]entity.Coupon, error)
	// GetByCode finds an active coupon by code; returns nil on miss.
	GetByCode(ctx context.Context, code string) (*entity.Coupon, error)
	Create(ctx context.Context, coupon *entity.Coupon) error
	Update(ctx context.Context, coupon *entity.Coupon) error
	Delete(ctx context.Context, id string) error
}

// CommissionRateRepository defines the interface for the installment
// commission table.
type CommissionRateRepository interface {
	List(ctx context.Context) ([]entity.CommissionRate, error)
	// Upsert sets the rate for an installment tier, creating it when absent.
	Upsert(ctx context.Context, rate *entity.CommissionRate) error
	Delete(ctx context.Context, installments int) error
}
