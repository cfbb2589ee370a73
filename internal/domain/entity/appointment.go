package entity

import (
	"strings"

	"github.com/gymdesk/gymdesk-api/internal/domain/enum"
)

// Appointment is a scheduled lesson between a member and a trainer.
type Appointment struct {
	ID          string                 `json:"id"`
	MemberID    string                 `json:"memberId"`
	TrainerID   string                 `json:"trainerId"`
	Date        string                 `json:"date"` // YYYY-MM-DD
	Time        string                 `json:"time"` // HH:MM
	Type        string                 `json:"type"` // branch
	Description string                 `json:"description,omitempty"`
	Status      enum.AppointmentStatus `json:"status"`
}

// InPeriod reports whether the appointment date falls within the given
// "YYYY-MM" period.
func (a *Appointment) InPeriod(period string) bool {
	return a.Date != "" && strings.HasPrefix(a.Date, period)
}

// GroupSchedule encodes which weekdays a group trains on.
type GroupSchedule string

const (
	GroupScheduleMWF GroupSchedule = "MWF" // Mon/Wed/Fri
	GroupScheduleTTS GroupSchedule = "TTS" // Tue/Thu/Sat
)

// Group is a recurring class with a fixed time slot and capacity.
type Group struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Schedule  GroupSchedule `json:"schedule"`
	Time      string        `json:"time"`
	MemberIDs []string      `json:"memberIds"`
	Capacity  int           `json:"capacity"`
	Active    bool          `json:"active"`
}

// FreeSlots returns the remaining capacity of the group.
func (g *Group) FreeSlots() int {
	return g.Capacity - len(g.MemberIDs)
}
