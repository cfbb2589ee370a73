package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/gymdesk/gymdesk-api/internal/domain/entity"
	"github.com/gymdesk/gymdesk-api/internal/domain/repository"
	"github.com/gymdesk/gymdesk-api/internal/infrastructure/storage"
)

type couponRepository struct {
	col *collection[entity.Coupon]
}

// NewCouponRepository creates a new coupon repository over the store.
func NewCouponRepository(store storage.Store) repository.CouponRepository {
	return &couponRepository{col: newCollection[entity.Coupon](store, storage.KeyCoupons)}
}

func (r *couponRepository) List(ctx context.Context) ([]entity.Coupon, error) {
	return r.col.load(ctx)
}

func (r *couponRepository) GetByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	coupons, err := r.col.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range coupons {
		if coupons[i].IsActive && strings.EqualFold(coupons[i].Code, code) {
			return &coupons[i], nil
		}
	}
	return nil, nil
}

func (r *couponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	return r.col.mutate(ctx, func(coupons []entity.Coupon) ([]entity.Coupon, error) {
		return append(coupons, *coupon), nil
	})
}

func (r *couponRepository) Update(ctx context.Context, coupon *entity.Coupon) error {
	return r.col.mutate(ctx, func(coupons []entity.Coupon) ([]entity.Coupon, error) {
		for i := range coupons {
			if coupons[i].ID == coupon.ID {
				coupons[i] = *coupon
				return coupons, nil
			}
		}
		return nil, fmt.Errorf("coupon %s not found", coupon.ID)
	})
}

func (r *couponRepository) Delete(ctx context.Context, id string) error {
	return r.col.mutate(ctx, func(coupons []entity.Coupon) ([]entity.Coupon, error) {
		for i := range coupons {
			if coupons[i].ID == id {
				return append(coupons[:i], coupons[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("coupon %s not found", id)
	})
}

type commissionRateRepository struct {
	col *collection[entity.CommissionRate]
}

// NewCommissionRateRepository creates a new installment commission table
// repository over the store.
func NewCommissionRateRepository(store storage.Store) repository.CommissionRateRepository {
	return &commissionRateRepository{col: newCollection[entity.CommissionRate](store, storage.KeyCommissions)}
}

func (r *commissionRateRepository) List(ctx context.Context) ([]entity.CommissionRate, error) {
	rates, err := r.col.load(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(rates, func(i, j int) bool {
		return rates[i].Installments < rates[j].Installments
	})
	return rates, nil
}

func (r *commissionRateRepository) Upsert(ctx context.Context, rate *entity.CommissionRate) error {
	return r.col.mutate(ctx, func(rates []entity.CommissionRate) ([]entity.CommissionRate, error) {
		for i := range rates {
			if rates[i].Installments == rate.Installments {
				rates[i] = *rate
				return rates, nil
			}
		}
		return append(rates, *rate), nil
	})
}

func (r *commissionRateRepository) Delete(ctx context.Context, installments int) error {
	return r.col.mutate(ctx, func(rates []entity.CommissionRate) ([]entity.CommissionRate, error) {
		for i := range rates {
			if rates[i].Installments == installments {
				return append(rates[:i], rates[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("commission tier %d not found", installments)
	})
}
