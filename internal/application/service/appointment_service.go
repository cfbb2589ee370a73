package service

import (
	"context"
	"time"

	"github.com/gymdesk/gymdesk-api/internal/domain/entity"
	"github.com/gymdesk/gymdesk-api/internal/domain/enum"
	"github.com/gymdesk/gymdesk-api/internal/domain/repository"
	"github.com/gymdesk/gymdesk-api/pkg/apperror"
	"github.com/gymdesk/gymdesk-api/pkg/utils"
)

// groupScheduleDays is the number of days of appointments generated
// when a member joins a training group.
const groupScheduleDays = 30

// AppointmentService handles lesson scheduling operations
type AppointmentService struct {
	appointmentRepo repository.AppointmentRepository
	groupRepo       repository.GroupRepository
	memberRepo      repository.MemberRepository
	staffRepo       repository.StaffRepository
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(
	appointmentRepo repository.AppointmentRepository,
	groupRepo repository.GroupRepository,
	memberRepo repository.MemberRepository,
	staffRepo repository.StaffRepository,
) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		groupRepo:       groupRepo,
		memberRepo:      memberRepo,
		staffRepo:       staffRepo,
	}
}

// CreateAppointmentInput represents the create appointment input
type CreateAppointmentInput struct {
	MemberID    string
	TrainerID   string
	Date        string // YYYY-MM-DD
	Time        string // HH:MM
	Type        string
	Description string
}

// CreateAppointmentResult carries the created appointment plus a
// validity warning when the date falls after the membership expires.
type CreateAppointmentResult struct {
	Appointment     *entity.Appointment
	ValidityWarning string
}

// CreateAppointment books a lesson and deducts one session from the
// member's package.
func (s *AppointmentService) CreateAppointment(ctx context.Context, input *CreateAppointmentInput) (*CreateAppointmentResult, error) {
	member, err := s.memberRepo.GetByID(ctx, input.MemberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, apperror.NewNotFoundError("Member")
	}

	trainer, err := s.staffRepo.GetByID(ctx, input.TrainerID)
	if err != nil {
		return nil, err
	}
	if trainer == nil {
		return nil, apperror.NewNotFoundError("Trainer")
	}
	if !trainer.IsTrainer() {
		return nil, apperror.NewBadRequestError("Staff member cannot take appointments")
	}

	result := &CreateAppointmentResult{}
	if member.EndDate != "" && input.Date > member.EndDate {
		result.ValidityWarning = "Appointment date is after the membership expires"
	}

	if member.RemainingSessions != nil {
		if *member.RemainingSessions <= 0 {
			return nil, apperror.NewBadRequestError("Member has no remaining sessions")
		}
		remaining := *member.RemainingSessions - 1
		member.RemainingSessions = &remaining
		if err := s.memberRepo.Update(ctx, member); err != nil {
			return nil, err
		}
	}

	appt := &entity.Appointment{
		ID:          utils.NewID(),
		MemberID:    input.MemberID,
		TrainerID:   input.TrainerID,
		Date:        input.Date,
		Time:        input.Time,
		Type:        input.Type,
		Description: input.Description,
		Status:      enum.AppointmentStatusScheduled,
	}
	if err := s.appointmentRepo.Create(ctx, appt); err != nil {
		return nil, err
	}

	result.Appointment = appt
	return result, nil
}

// ListAppointments lists appointments, optionally filtered to one
// "YYYY-MM" period.
func (s *AppointmentService) ListAppointments(ctx context.Context, period string) ([]entity.Appointment, error) {
	appts, err := s.appointmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if period == "" {
		return appts, nil
	}
	filtered := appts[:0]
	for _, a := range appts {
		if a.InPeriod(period) {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

// RescheduleAppointment moves an appointment to a new date/time and
// counts the reschedule against the member.
func (s *AppointmentService) RescheduleAppointment(ctx context.Context, id, newDate, newTime string) (*entity.Appointment, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, apperror.NewNotFoundError("Appointment")
	}
	if appt.Status == enum.AppointmentStatusCancelled {
		return nil, apperror.NewBadRequestError("Cancelled appointments cannot be rescheduled")
	}

	appt.Date = newDate
	appt.Time = newTime
	if err := s.appointmentRepo.Update(ctx, appt); err != nil {
		return nil, err
	}

	if member, err := s.memberRepo.GetByID(ctx, appt.MemberID); err == nil && member != nil {
		member.RescheduleCount++
		if err := s.memberRepo.Update(ctx, member); err != nil {
			return nil, err
		}
	}

	return appt, nil
}

// CancelAppointment marks an appointment cancelled. The session is not
// refunded; the cancellation is counted against the member instead.
func (s *AppointmentService) CancelAppointment(ctx context.Context, id string) (*entity.Appointment, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, apperror.NewNotFoundError("Appointment")
	}
	if appt.Status == enum.AppointmentStatusCancelled {
		return appt, nil
	}

	appt.Status = enum.AppointmentStatusCancelled
	if err := s.appointmentRepo.Update(ctx, appt); err != nil {
		return nil, err
	}

	if member, err := s.memberRepo.GetByID(ctx, appt.MemberID); err == nil && member != nil {
		member.CancelCount++
		if err := s.memberRepo.Update(ctx, member); err != nil {
			return nil, err
		}
	}

	return appt, nil
}

// CompleteAppointment marks a scheduled appointment completed.
func (s *AppointmentService) CompleteAppointment(ctx context.Context, id string) (*entity.Appointment, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, apperror.NewNotFoundError("Appointment")
	}

	appt.Status = enum.AppointmentStatusCompleted
	if err := s.appointmentRepo.Update(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// DeleteAppointment removes an appointment, optionally refunding the
// session to the member's package.
func (s *AppointmentService) DeleteAppointment(ctx context.Context, id string, refundSession bool) error {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if appt == nil {
		return apperror.NewNotFoundError("Appointment")
	}

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		return err
	}

	if refundSession {
		if member, err := s.memberRepo.GetByID(ctx, appt.MemberID); err == nil && member != nil && member.RemainingSessions != nil {
			remaining := *member.RemainingSessions + 1
			member.RemainingSessions = &remaining
			return s.memberRepo.Update(ctx, member)
		}
	}
	return nil
}

// ListGroups lists training groups
func (s *AppointmentService) ListGroups(ctx context.Context) ([]entity.Group, error) {
	return s.groupRepo.List(ctx)
}

// JoinGroupInput represents the join group input
type JoinGroupInput struct {
	MemberID  string
	TrainerID string
	Schedule  entity.GroupSchedule
	Time      string // HH:MM
	Type      string
	Capacity  int // used when a new group must be created
}

// JoinGroupResult carries the joined group and the generated lessons.
type JoinGroupResult struct {
	Group        *entity.Group
	Appointments []entity.Appointment
}

// JoinGroup places a member into the group matching the schedule and
// time slot, creating the group if none exists, and books the group's
// lessons for the next thirty days in one batch.
func (s *AppointmentService) JoinGroup(ctx context.Context, input *JoinGroupInput) (*JoinGroupResult, error) {
	member, err := s.memberRepo.GetByID(ctx, input.MemberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, apperror.NewNotFoundError("Member")
	}

	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var group *entity.Group
	for i := range groups {
		g := &groups[i]
		if g.Active && g.Schedule == input.Schedule && g.Time == input.Time {
			group = g
			break
		}
	}

	if group != nil {
		for _, id := range group.MemberIDs {
			if id == input.MemberID {
				return nil, apperror.NewConflictError("Member is already in this group")
			}
		}
		if group.FreeSlots() <= 0 {
			return nil, apperror.NewConflictError("Group is full")
		}
		group.MemberIDs = append(group.MemberIDs, input.MemberID)
		if err := s.groupRepo.Update(ctx, group); err != nil {
			return nil, err
		}
	} else {
		capacity := input.Capacity
		if capacity <= 0 {
			capacity = 8
		}
		group = &entity.Group{
			ID:        utils.NewID(),
			Name:      string(input.Schedule) + " " + input.Time,
			Schedule:  input.Schedule,
			Time:      input.Time,
			MemberIDs: []string{input.MemberID},
			Capacity:  capacity,
			Active:    true,
		}
		if err := s.groupRepo.Create(ctx, group); err != nil {
			return nil, err
		}
	}

	appts := generateGroupAppointments(input, time.Now())

	if member.RemainingSessions != nil {
		if *member.RemainingSessions < len(appts) {
			appts = appts[:*member.RemainingSessions]
		}
		remaining := *member.RemainingSessions - len(appts)
		member.RemainingSessions = &remaining
		if err := s.memberRepo.Update(ctx, member); err != nil {
			return nil, err
		}
	}

	if err := s.appointmentRepo.CreateBatch(ctx, appts); err != nil {
		return nil, err
	}

	return &JoinGroupResult{Group: group, Appointments: appts}, nil
}

// generateGroupAppointments books the group's weekdays for the next
// thirty days starting tomorrow.
func generateGroupAppointments(input *JoinGroupInput, from time.Time) []entity.Appointment {
	var appts []entity.Appointment
	for day := 1; day <= groupScheduleDays; day++ {
		date := from.AddDate(0, 0, day)
		if !scheduleMatches(input.Schedule, date.Weekday()) {
			continue
		}
		appts = append(appts, entity.Appointment{
			ID:        utils.NewID(),
			MemberID:  input.MemberID,
			TrainerID: input.TrainerID,
			Date:      date.Format("2006-01-02"),
			Time:      input.Time,
			Type:      input.Type,
			Status:    enum.AppointmentStatusScheduled,
		})
	}
	return appts
}

func scheduleMatches(schedule entity.GroupSchedule, weekday time.Weekday) bool {
	switch schedule {
	case entity.GroupScheduleMWF:
		return weekday == time.Monday || weekday == time.Wednesday || weekday == time.Friday
	case entity.GroupScheduleTTS:
		return weekday == time.Tuesday || weekday == time.Thursday || weekday == time.Saturday
	}
	return false
}
