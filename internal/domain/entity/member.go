package entity

import (
	"strings"

	"github.com/gymdesk/gymdesk-api/internal/domain/enum"
)

// Member represents a gym member. Dates are stored as ISO strings
// ("YYYY-MM-DD") because period filtering is a "YYYY-MM" prefix match
// over the stored value, exactly as the desktop app does it.
type Member struct {
	ID                string              `json:"id"`
	FullName          string              `json:"fullName"`
	Phone             string              `json:"phone"`
	Email             string              `json:"email"`
	ActivePackageID   string              `json:"activePackageId,omitempty"`
	RemainingSessions *int                `json:"remainingSessions,omitempty"`
	StartDate         string              `json:"startDate"`
	EndDate           string              `json:"endDate,omitempty"`
	Notes             string              `json:"notes,omitempty"`
	PaymentType       enum.PaymentMethod  `json:"paymentType,omitempty"`
	PaymentStatus     enum.PaymentStatus  `json:"paymentStatus,omitempty"`
	Installments      int                 `json:"installments,omitempty"`
	PricePaid         float64             `json:"pricePaid,omitempty"`
	GroupID           string              `json:"groupId,omitempty"`
	CancelCount       int                 `json:"cancelCount,omitempty"`
	RescheduleCount   int                 `json:"rescheduleCount,omitempty"`
	Status            enum.MemberStatus   `json:"status"`
	History           []MembershipHistory `json:"history,omitempty"`
	Measurements      []Measurement       `json:"measurements,omitempty"`
	HealthProfile     *HealthProfile      `json:"healthProfile,omitempty"`
}

// Measurement is one dated body-measurement record. Values are in kg
// and cm; zero means the field was left blank on the form.
type Measurement struct {
	Date      string  `json:"date"`
	Weight    float64 `json:"weight"`
	Height    float64 `json:"height"`
	Shoulders float64 `json:"shoulders"`
	Arm       float64 `json:"arm"`
	Chest     float64 `json:"chest"`
	Waist     float64 `json:"waist"`
	Hips      float64 `json:"hips"`
	Leg       float64 `json:"leg"`
}

// RiskLevel classifies a member's exercise risk from their health profile.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// highRiskConditions rate high on their own, regardless of how many
// other boxes are ticked.
var highRiskConditions = map[string]bool{
	"Geçirilmiş Kalp Krizi": true,
	"Stent / By-Pass":       true,
	"Gebelik":               true,
	"Epilepsi":              true,
	"KOAH":                  true,
	"Kalp Ritim Bozukluğu":  true,
}

// HealthProfile records the conditions declared on the member intake
// form, grouped the way the form groups them. RiskLevel is derived,
// never taken from the caller.
type HealthProfile struct {
	Cardio      []string  `json:"cardio"`
	Ortho       []string  `json:"ortho"`
	Metabolic   []string  `json:"metabolic"`
	Respiratory []string  `json:"respiratory"`
	Special     []string  `json:"special"`
	Other       string    `json:"other"`
	RiskLevel   RiskLevel `json:"riskLevel"`
}

// DeriveRisk rates the declared conditions: any flagged condition or
// three ticks rate high; two ticks or a disc hernia rate medium.
func (h *HealthProfile) DeriveRisk() RiskLevel {
	var all []string
	all = append(all, h.Cardio...)
	all = append(all, h.Ortho...)
	all = append(all, h.Metabolic...)
	all = append(all, h.Respiratory...)
	all = append(all, h.Special...)

	for _, item := range all {
		if highRiskConditions[item] {
			return RiskHigh
		}
	}
	if len(all) >= 3 {
		return RiskHigh
	}
	if len(all) >= 2 || contains(h.Ortho, "Bel Fıtığı") || contains(h.Ortho, "Boyun Fıtığı") {
		return RiskMedium
	}
	return RiskLow
}

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}

// MembershipHistory archives a superseded membership on renewal.
type MembershipHistory struct {
	PackageID    string  `json:"packageId"`
	PackageName  string  `json:"packageName"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate,omitempty"`
	PricePaid    float64 `json:"pricePaid"`
	PurchaseDate string  `json:"purchaseDate"`
}

// StartedIn reports whether the membership's start date falls within
// the given "YYYY-MM" period.
func (m *Member) StartedIn(period string) bool {
	return m.StartDate != "" && strings.HasPrefix(m.StartDate, period)
}
