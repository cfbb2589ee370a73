package request

// PaymentConfigRequest represents a staff payment configuration
type PaymentConfigRequest struct {
	Model           string  `json:"model" binding:"required,oneof=salaried commission partner"`
	SalaryAmount    float64 `json:"salary_amount" binding:"omitempty,min=0"`
	CommissionRate  float64 `json:"commission_rate" binding:"omitempty,min=0,max=100"`
	ProfitShareRate float64 `json:"profit_share_rate" binding:"omitempty,min=0,max=100"`
}

// CreateStaffRequest represents a staff creation request
type CreateStaffRequest struct {
	Name          string               `json:"name" binding:"required,min=2,max=255"`
	Role          string               `json:"role" binding:"required,oneof=admin manager trainer dietitian physio"`
	Gender        string               `json:"gender"`
	Branches      []string             `json:"branches"`
	Email         string               `json:"email" binding:"omitempty,email"`
	Phone         string               `json:"phone"`
	BirthDate     string               `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	HireDate      string               `json:"hire_date" binding:"omitempty,datetime=2006-01-02"`
	Password      string               `json:"password" binding:"omitempty,min=8"`
	PaymentConfig PaymentConfigRequest `json:"payment_config" binding:"required"`
}

// UpdateStaffRequest represents a staff update request
type UpdateStaffRequest struct {
	Name          *string               `json:"name" binding:"omitempty,min=2,max=255"`
	Role          *string               `json:"role" binding:"omitempty,oneof=admin manager trainer dietitian physio"`
	Branches      []string              `json:"branches"`
	Email         *string               `json:"email" binding:"omitempty,email"`
	Phone         *string               `json:"phone"`
	PaymentConfig *PaymentConfigRequest `json:"payment_config"`
}
