package request

// CreateMemberRequest represents a member enrollment request
type CreateMemberRequest struct {
	FullName     string  `json:"full_name" binding:"required,min=2,max=255"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email" binding:"omitempty,email"`
	PackageID    string  `json:"package_id"`
	StartDate    string  `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	PaymentType  string  `json:"payment_type" binding:"omitempty,oneof=cash card transfer"`
	Installments int     `json:"installments" binding:"omitempty,min=1"`
	PricePaid    float64 `json:"price_paid" binding:"omitempty,min=0"`
	Notes        string  `json:"notes"`

	HealthProfile *HealthProfileRequest `json:"health_profile"`
	Measurements  []MeasurementRequest  `json:"measurements" binding:"omitempty,dive"`
}

// HealthProfileRequest represents the intake-form health declaration.
// The risk level is computed server-side, so it is not accepted here.
type HealthProfileRequest struct {
	Cardio      []string `json:"cardio"`
	Ortho       []string `json:"ortho"`
	Metabolic   []string `json:"metabolic"`
	Respiratory []string `json:"respiratory"`
	Special     []string `json:"special"`
	Other       string   `json:"other"`
}

// MeasurementRequest represents one body-measurement record
type MeasurementRequest struct {
	Date      string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Weight    float64 `json:"weight" binding:"omitempty,min=0"`
	Height    float64 `json:"height" binding:"omitempty,min=0"`
	Shoulders float64 `json:"shoulders" binding:"omitempty,min=0"`
	Arm       float64 `json:"arm" binding:"omitempty,min=0"`
	Chest     float64 `json:"chest" binding:"omitempty,min=0"`
	Waist     float64 `json:"waist" binding:"omitempty,min=0"`
	Hips      float64 `json:"hips" binding:"omitempty,min=0"`
	Leg       float64 `json:"leg" binding:"omitempty,min=0"`
}

// UpdateMemberRequest represents a member update request
type UpdateMemberRequest struct {
	FullName *string `json:"full_name" binding:"omitempty,min=2,max=255"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Notes    *string `json:"notes"`
	Status   *string `json:"status" binding:"omitempty,oneof=active passive"`
}

// RenewMembershipRequest represents a membership renewal request
type RenewMembershipRequest struct {
	PackageID string  `json:"package_id" binding:"required"`
	StartDate string  `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	PricePaid float64 `json:"price_paid" binding:"omitempty,min=0"`
}
