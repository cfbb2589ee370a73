package entity

import (
	"strings"

	"github.com/gymdesk/gymdesk-api/internal/domain/enum"
)

// Expense is a one-off purchase, possibly paid over several
// installments. Status is derived: paid iff PaidInstallments >=
// Installments. NormalizeStatus is called on every write so the stored
// document can never violate that invariant.
type Expense struct {
	ID               string               `json:"id"`
	Title            string               `json:"title"`
	Description      string               `json:"description,omitempty"`
	Amount           float64              `json:"amount"`
	Category         enum.ExpenseCategory `json:"category"`
	Date             string               `json:"date"` // YYYY-MM-DD
	Installments     int                  `json:"installments,omitempty"`
	PaidInstallments int                  `json:"paidInstallments,omitempty"`
	Status           enum.ExpenseStatus   `json:"status,omitempty"`
}

// InPeriod reports whether the expense date falls within the given
// "YYYY-MM" period.
func (e *Expense) InPeriod(period string) bool {
	return e.Date != "" && strings.HasPrefix(e.Date, period)
}

// NormalizeStatus recomputes the derived status from the installment
// counters, clamping PaidInstallments into [0, Installments].
func (e *Expense) NormalizeStatus() {
	if e.Installments < 1 {
		e.Installments = 1
	}
	if e.PaidInstallments < 0 {
		e.PaidInstallments = 0
	}
	if e.PaidInstallments > e.Installments {
		e.PaidInstallments = e.Installments
	}
	if e.PaidInstallments >= e.Installments {
		e.Status = enum.ExpenseStatusPaid
	} else {
		e.Status = enum.ExpenseStatusPending
	}
}

// FixedExpense is a recurring monthly cost. Type "fixed" carries a
// known amount every month; type "variable" is a bill reminder whose
// amount is entered only when the bill is paid.
type FixedExpense struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Amount      float64               `json:"amount"`
	Description string                `json:"description,omitempty"`
	DayOfMonth  int                   `json:"dayOfMonth"`
	Type        enum.FixedExpenseType `json:"type"`
	EndDate     string                `json:"endDate,omitempty"`
}

// IsRent reports whether this fixed expense is the rent entry, which
// drives the withholding-tax computation. Matched by title substring
// as in the source system ("kira" = rent).
func (f *FixedExpense) IsRent() bool {
	title := strings.ToLower(f.Title)
	return strings.Contains(title, "kira") || strings.Contains(title, "rent")
}
