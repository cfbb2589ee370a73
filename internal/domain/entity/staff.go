package entity

import (
	"github.com/gymdesk/gymdesk-api/internal/domain/enum"
)

// PaymentConfig is a tagged variant: Model selects which of the three
// amounts is active, and the accessors below ignore the others, so a
// staff member can never earn through two models at once.
type PaymentConfig struct {
	Model           enum.PaymentModel `json:"model"`
	SalaryAmount    float64           `json:"salaryAmount,omitempty"`
	CommissionRate  float64           `json:"commissionRate,omitempty"`
	ProfitShareRate float64           `json:"profitShareRate,omitempty"`
}

// Salary returns the monthly salary, or 0 unless the salaried model is active.
func (pc PaymentConfig) Salary() float64 {
	if pc.Model == enum.PaymentModelSalaried {
		return pc.SalaryAmount
	}
	return 0
}

// Commission returns the lesson commission percentage, or 0 unless the
// commission model is active.
func (pc PaymentConfig) Commission() float64 {
	if pc.Model == enum.PaymentModelCommission {
		return pc.CommissionRate
	}
	return 0
}

// ProfitShare returns the net-profit share percentage, or 0 unless the
// partner model is active.
func (pc PaymentConfig) ProfitShare() float64 {
	if pc.Model == enum.PaymentModelPartner {
		return pc.ProfitShareRate
	}
	return 0
}

// Staff represents an employee or partner of the gym.
type Staff struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Role          enum.Role     `json:"role"`
	Gender        string        `json:"gender,omitempty"`
	Branches      []string      `json:"branches"`
	Email         string        `json:"email,omitempty"`
	Phone         string        `json:"phone,omitempty"`
	BirthDate     string        `json:"birthDate,omitempty"`
	HireDate      string        `json:"hireDate,omitempty"`
	PasswordHash  string        `json:"passwordHash,omitempty"`
	PaymentConfig PaymentConfig `json:"paymentConfig"`
}

// IsTrainer reports whether the staff member can take appointments.
func (s *Staff) IsTrainer() bool {
	return s.Role.IsTrainerRole()
}
