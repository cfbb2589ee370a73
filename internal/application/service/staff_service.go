package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/gymdesk/gymdesk-api/internal/domain/entity"
	"github.com/gymdesk/gymdesk-api/internal/domain/enum"
	"github.com/gymdesk/gymdesk-api/internal/domain/repository"
	"github.com/gymdesk/gymdesk-api/pkg/apperror"
	"github.com/gymdesk/gymdesk-api/pkg/utils"
)

// StaffService handles staff management operations
type StaffService struct {
	staffRepo repository.StaffRepository
}

// NewStaffService creates a new staff service
func NewStaffService(staffRepo repository.StaffRepository) *StaffService {
	return &StaffService{staffRepo: staffRepo}
}

// validatePaymentConfig rejects configs whose model does not match the
// amount that was set, so a record can never pay through two models.
func validatePaymentConfig(pc entity.PaymentConfig) error {
	switch pc.Model {
	case enum.PaymentModelSalaried:
		if pc.SalaryAmount < 0 {
			return apperror.NewBadRequestError("Salary cannot be negative")
		}
	case enum.PaymentModelCommission:
		if pc.CommissionRate < 0 || pc.CommissionRate > 100 {
			return apperror.NewBadRequestError("Commission rate must be between 0 and 100")
		}
	case enum.PaymentModelPartner:
		if pc.ProfitShareRate < 0 || pc.ProfitShareRate > 100 {
			return apperror.NewBadRequestError("Profit share rate must be between 0 and 100")
		}
	default:
		return apperror.NewBadRequestError("Unknown payment model")
	}
	return nil
}

// CreateStaffInput represents the create staff input
type CreateStaffInput struct {
	Name          string
	Role          enum.Role
	Gender        string
	Branches      []string
	Email         string
	Phone         string
	BirthDate     string
	HireDate      string
	Password      string
	PaymentConfig entity.PaymentConfig
}

// CreateStaff creates a new staff member.
func (s *StaffService) CreateStaff(ctx context.Context, input *CreateStaffInput) (*entity.Staff, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Staff name is required")
	}
	if !input.Role.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown role")
	}
	if err := validatePaymentConfig(input.PaymentConfig); err != nil {
		return nil, err
	}

	if input.Email != "" {
		existing, err := s.staffRepo.GetByEmail(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("A staff member with this email already exists")
		}
	}

	member := &entity.Staff{
		ID:            utils.NewID(),
		Name:          input.Name,
		Role:          input.Role,
		Gender:        input.Gender,
		Branches:      input.Branches,
		Email:         input.Email,
		Phone:         input.Phone,
		BirthDate:     input.BirthDate,
		HireDate:      input.HireDate,
		PaymentConfig: input.PaymentConfig,
	}

	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		member.PasswordHash = string(hash)
	}

	if err := s.staffRepo.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// GetStaff retrieves a staff member by ID
func (s *StaffService) GetStaff(ctx context.Context, id string) (*entity.Staff, error) {
	member, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, apperror.NewNotFoundError("Staff")
	}
	return member, nil
}

// ListStaff lists all staff members
func (s *StaffService) ListStaff(ctx context.Context) ([]entity.Staff, error) {
	return s.staffRepo.List(ctx)
}

// ListTrainers lists staff members who can take appointments.
func (s *StaffService) ListTrainers(ctx context.Context) ([]entity.Staff, error) {
	staff, err := s.staffRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	trainers := staff[:0]
	for _, m := range staff {
		if m.IsTrainer() {
			trainers = append(trainers, m)
		}
	}
	return trainers, nil
}

// UpdateStaffInput represents the update staff input
type UpdateStaffInput struct {
	ID            string
	Name          *string
	Role          *enum.Role
	Branches      []string
	Email         *string
	Phone         *string
	PaymentConfig *entity.PaymentConfig
}

// UpdateStaff updates a staff member
func (s *StaffService) UpdateStaff(ctx context.Context, input *UpdateStaffInput) (*entity.Staff, error) {
	member, err := s.GetStaff(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		member.Name = *input.Name
	}
	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, apperror.NewBadRequestError("Unknown role")
		}
		member.Role = *input.Role
	}
	if input.Branches != nil {
		member.Branches = input.Branches
	}
	if input.Email != nil {
		member.Email = *input.Email
	}
	if input.Phone != nil {
		member.Phone = *input.Phone
	}
	if input.PaymentConfig != nil {
		if err := validatePaymentConfig(*input.PaymentConfig); err != nil {
			return nil, err
		}
		member.PaymentConfig = *input.PaymentConfig
	}

	if err := s.staffRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// DeleteStaff deletes a staff member
func (s *StaffService) DeleteStaff(ctx context.Context, id string) error {
	if _, err := s.GetStaff(ctx, id); err != nil {
		return err
	}
	return s.staffRepo.Delete(ctx, id)
}
