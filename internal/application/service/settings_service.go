package service

import (
	"context"

	"github.com/gymdesk/gymdesk-api/internal/domain/entity"
	"github.com/gymdesk/gymdesk-api/internal/domain/repository"
	"github.com/gymdesk/gymdesk-api/pkg/apperror"
)

// SettingsService handles the installment commission table
type SettingsService struct {
	commissionRepo repository.CommissionRateRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(commissionRepo repository.CommissionRateRepository) *SettingsService {
	return &SettingsService{commissionRepo: commissionRepo}
}

// ListCommissionRates returns the commission table sorted by
// installment count.
func (s *SettingsService) ListCommissionRates(ctx context.Context) ([]entity.CommissionRate, error) {
	return s.commissionRepo.List(ctx)
}

// SetCommissionRate sets the bank commission percentage for an
// installment tier, creating the tier when absent.
func (s *SettingsService) SetCommissionRate(ctx context.Context, installments int, rate float64) (*entity.CommissionRate, error) {
	if installments < 1 {
		return nil, apperror.NewBadRequestError("Installment count must be positive")
	}
	if rate < 0 || rate > 100 {
		return nil, apperror.NewBadRequestError("Commission rate must be between 0 and 100")
	}

	entry := &entity.CommissionRate{Installments: installments, Rate: rate}
	if err := s.commissionRepo.Upsert(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// DeleteCommissionRate removes an installment tier.
func (s *SettingsService) DeleteCommissionRate(ctx context.Context, installments int) error {
	return s.commissionRepo.Delete(ctx, installments)
}
