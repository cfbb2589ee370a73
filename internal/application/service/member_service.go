package service

import (
	"context"
	"strings"

	"github.com/gymdesk/gymdesk-api/internal/domain/entity"
	"github.com/gymdesk/gymdesk-api/internal/domain/enum"
	"github.com/gymdesk/gymdesk-api/internal/domain/repository"
	"github.com/gymdesk/gymdesk-api/pkg/apperror"
	"github.com/gymdesk/gymdesk-api/pkg/pagination"
	"github.com/gymdesk/gymdesk-api/pkg/utils"
)

// MemberService handles member-related operations
type MemberService struct {
	memberRepo  repository.MemberRepository
	packageRepo repository.PackageRepository
}

// NewMemberService creates a new member service
func NewMemberService(memberRepo repository.MemberRepository, packageRepo repository.PackageRepository) *MemberService {
	return &MemberService{memberRepo: memberRepo, packageRepo: packageRepo}
}

// CreateMemberInput represents the create member input
type CreateMemberInput struct {
	FullName      string
	Phone         string
	Email         string
	PackageID     string
	StartDate     string // defaults to today
	PaymentType   enum.PaymentMethod
	Installments  int
	PricePaid     float64
	Notes         string
	HealthProfile *entity.HealthProfile
	Measurements  []entity.Measurement
}

// CreateMember enrolls a new member on a package. The end date and
// remaining session counter are derived from the package.
func (s *MemberService) CreateMember(ctx context.Context, input *CreateMemberInput) (*entity.Member, error) {
	if input.FullName == "" {
		return nil, apperror.NewBadRequestError("Member name is required")
	}

	startDate := input.StartDate
	if startDate == "" {
		startDate = utils.Today()
	}

	member := &entity.Member{
		ID:            utils.NewID(),
		FullName:      input.FullName,
		Phone:         input.Phone,
		Email:         input.Email,
		StartDate:     startDate,
		PaymentType:   input.PaymentType,
		Installments:  input.Installments,
		PricePaid:     input.PricePaid,
		Notes:         input.Notes,
		Status:        enum.MemberStatusActive,
	}

	if input.PackageID != "" {
		pkg, err := s.packageRepo.GetByID(ctx, input.PackageID)
		if err != nil {
			return nil, err
		}
		if pkg == nil {
			return nil, apperror.NewNotFoundError("Package")
		}
		applyPackage(member, pkg, startDate)
		if input.PricePaid == 0 {
			member.PricePaid = pkg.Price
		}
	}

	if input.HealthProfile != nil {
		profile := *input.HealthProfile
		profile.RiskLevel = profile.DeriveRisk()
		member.HealthProfile = &profile
	}
	for _, m := range input.Measurements {
		if m.Date == "" {
			m.Date = utils.Today()
		}
		member.Measurements = append(member.Measurements, m)
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// applyPackage sets the package-derived fields of a membership.
func applyPackage(member *entity.Member, pkg *entity.Package, startDate string) {
	member.ActivePackageID = pkg.ID
	member.StartDate = startDate
	member.EndDate = ""
	member.RemainingSessions = nil

	if pkg.ValidityDays > 0 {
		member.EndDate = utils.AddDays(startDate, pkg.ValidityDays)
	}
	if pkg.SessionCount > 0 {
		sessions := pkg.SessionCount
		member.RemainingSessions = &sessions
	}
}

// GetMember retrieves a member by ID
func (s *MemberService) GetMember(ctx context.Context, id string) (*entity.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, apperror.NewNotFoundError("Member")
	}
	return member, nil
}

// ListMembers lists members with optional name/phone search.
func (s *MemberService) ListMembers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Member], error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if search != "" {
		needle := strings.ToLower(search)
		filtered := members[:0]
		for _, m := range members {
			if strings.Contains(strings.ToLower(m.FullName), needle) ||
				strings.Contains(m.Phone, search) {
				filtered = append(filtered, m)
			}
		}
		members = filtered
	}

	return pagination.Paginate(members, params), nil
}

// UpdateMemberInput represents the update member input
type UpdateMemberInput struct {
	ID       string
	FullName *string
	Phone    *string
	Email    *string
	Notes    *string
	Status   *enum.MemberStatus
}

// UpdateMember updates a member's contact fields and status.
func (s *MemberService) UpdateMember(ctx context.Context, input *UpdateMemberInput) (*entity.Member, error) {
	member, err := s.GetMember(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		member.FullName = *input.FullName
	}
	if input.Phone != nil {
		member.Phone = *input.Phone
	}
	if input.Email != nil {
		member.Email = *input.Email
	}
	if input.Notes != nil {
		member.Notes = *input.Notes
	}
	if input.Status != nil {
		member.Status = *input.Status
	}

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// RenewMembershipInput represents the renew membership input
type RenewMembershipInput struct {
	MemberID  string
	PackageID string
	StartDate string // defaults to today
	PricePaid float64
}

// RenewMembership archives the current package into the member's
// history and starts a fresh membership on the new package.
func (s *MemberService) RenewMembership(ctx context.Context, input *RenewMembershipInput) (*entity.Member, error) {
	member, err := s.GetMember(ctx, input.MemberID)
	if err != nil {
		return nil, err
	}

	pkg, err := s.packageRepo.GetByID(ctx, input.PackageID)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, apperror.NewNotFoundError("Package")
	}

	if member.ActivePackageID != "" {
		oldName := member.ActivePackageID
		if old, err := s.packageRepo.GetByID(ctx, member.ActivePackageID); err == nil && old != nil {
			oldName = old.Name
		}
		member.History = append(member.History, entity.MembershipHistory{
			PackageID:    member.ActivePackageID,
			PackageName:  oldName,
			StartDate:    member.StartDate,
			EndDate:      member.EndDate,
			PricePaid:    member.PricePaid,
			PurchaseDate: utils.Today(),
		})
	}

	startDate := input.StartDate
	if startDate == "" {
		startDate = utils.Today()
	}
	applyPackage(member, pkg, startDate)
	member.Status = enum.MemberStatusActive
	member.PricePaid = input.PricePaid
	if input.PricePaid == 0 {
		member.PricePaid = pkg.Price
	}

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// SetHealthProfile replaces a member's health profile. The risk level
// is recomputed from the declared conditions on every write.
func (s *MemberService) SetHealthProfile(ctx context.Context, memberID string, profile *entity.HealthProfile) (*entity.Member, error) {
	member, err := s.GetMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	if profile == nil {
		member.HealthProfile = nil
	} else {
		p := *profile
		p.RiskLevel = p.DeriveRisk()
		member.HealthProfile = &p
	}

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// AddMeasurement appends a dated body-measurement record to the
// member. An empty date defaults to today.
func (s *MemberService) AddMeasurement(ctx context.Context, memberID string, m entity.Measurement) (*entity.Member, error) {
	member, err := s.GetMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	if m.Date == "" {
		m.Date = utils.Today()
	}
	member.Measurements = append(member.Measurements, m)

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// DeleteMember deletes a member
func (s *MemberService) DeleteMember(ctx context.Context, id string) error {
	if _, err := s.GetMember(ctx, id); err != nil {
		return err
	}
	return s.memberRepo.Delete(ctx, id)
}
