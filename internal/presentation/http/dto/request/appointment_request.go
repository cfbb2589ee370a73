package request

// CreateAppointmentRequest represents an appointment booking request
type CreateAppointmentRequest struct {
	MemberID    string `json:"member_id" binding:"required"`
	TrainerID   string `json:"trainer_id" binding:"required"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	Time        string `json:"time" binding:"required,datetime=15:04"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// RescheduleAppointmentRequest represents a reschedule request
type RescheduleAppointmentRequest struct {
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
	Time string `json:"time" binding:"required,datetime=15:04"`
}

// JoinGroupRequest represents a group membership request
type JoinGroupRequest struct {
	MemberID  string `json:"member_id" binding:"required"`
	TrainerID string `json:"trainer_id" binding:"required"`
	Schedule  string `json:"schedule" binding:"required,oneof=MWF TTS"`
	Time      string `json:"time" binding:"required,datetime=15:04"`
	Type      string `json:"type"`
	Capacity  int    `json:"capacity" binding:"omitempty,min=1"`
}
