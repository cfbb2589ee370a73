package enum

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// IsValid checks if the status is a known value
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCancelled, AppointmentStatusCompleted:
		return true
	}
	return false
}

// MemberStatus marks whether a membership is currently active
type MemberStatus string

const (
	MemberStatusActive  MemberStatus = "active"
	MemberStatusPassive MemberStatus = "passive"
)
