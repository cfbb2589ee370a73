package enum

// PaymentModel determines how a staff member is compensated.
// Exactly one model is active per staff member.
type PaymentModel string

const (
	PaymentModelSalaried   PaymentModel = "salaried"
	PaymentModelCommission PaymentModel = "commission"
	PaymentModelPartner    PaymentModel = "partner"
)

// IsValid checks if the payment model is a known value
func (m PaymentModel) IsValid() bool {
	switch m {
	case PaymentModelSalaried, PaymentModelCommission, PaymentModelPartner:
		return true
	}
	return false
}
