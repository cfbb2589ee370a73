// Package billing computes the gym's financial summary and point-of-sale
// cart totals. It is a pure package: every function is a deterministic
// computation over an in-memory snapshot, performs no I/O and mutates
// nothing, so it can be re-run in full on every query.
package billing

import (
	"fmt"

	"github.com/gymdesk/gymdesk-api/internal/domain/entity"
	"github.com/gymdesk/gymdesk-api/internal/domain/enum"
)

// Tax constants used by the monthly summary. VAT on income is a flat
// 20% here regardless of per-product tax rates; the POS calculator in
// cart.go is the tax-rate-aware path. The two intentionally disagree,
// matching the numbers the source system reports.
const (
	incomeVATRate      = 0.20
	withholdingRate    = 0.20 // stopaj, applied to rent
	corporateTaxRate   = 0.25 // applied to positive pre-tax profit only
)

// Snapshot is the read-only view of the domain collections the engine
// computes over. The engine never mutates it.
type Snapshot struct {
	Members       []entity.Member
	Packages      []entity.Package
	Products      []entity.Product
	ProductSales  []entity.ProductSale
	Expenses      []entity.Expense
	FixedExpenses []entity.FixedExpense
	Staff         []entity.Staff
	Appointments  []entity.Appointment
}

// Warning flags a data-integrity issue found while computing, such as a
// member whose active package no longer exists. Warnings never change
// the numeric output: dangling lookups contribute zero, as the source
// system does, and the warning is purely diagnostic.
type Warning struct {
	Kind   string `json:"kind"`
	RefID  string `json:"refId"`
	Detail string `json:"detail"`
}

const (
	WarnDanglingPackage = "dangling_package"
	WarnDanglingMember  = "dangling_member"
	WarnDanglingProduct = "dangling_product"
)

// StaffEarnings is one row of the staff payout table.
type StaffEarnings struct {
	StaffID         string            `json:"staffId"`
	Name            string            `json:"name"`
	Role            enum.Role         `json:"role"`
	Model           enum.PaymentModel `json:"model"`
	LessonCount     int               `json:"lessonCount"`
	Salary          float64           `json:"salary"`
	LessonEarning   float64           `json:"lessonEarning"`
	ProfitShareRate float64           `json:"profitShareRate"`
	ProfitShare     float64           `json:"profitShare"`
	TotalEarnings   float64           `json:"totalEarnings"`
}

// Summary is the full financial waterfall for one period.
type Summary struct {
	Period string `json:"period"`

	MembershipIncome float64 `json:"membershipIncome"`
	ProductIncome    float64 `json:"productIncome"`
	TotalIncome      float64 `json:"totalIncome"`

	FixedExpenseTotal  float64 `json:"fixedExpenseTotal"`
	StockPurchases     float64 `json:"stockPurchases"`
	Consumables        float64 `json:"consumables"`
	OtherExpenses      float64 `json:"otherExpenses"`
	OperatingExpenses  float64 `json:"operatingExpenses"`

	StaffSalaries    float64 `json:"staffSalaries"`
	StaffCommissions float64 `json:"staffCommissions"`
	StaffCosts       float64 `json:"staffCosts"`

	RentAmount     float64 `json:"rentAmount"`
	WithholdingTax float64 `json:"withholdingTax"`
	VATLiability   float64 `json:"vatLiability"`
	PreTaxProfit   float64 `json:"preTaxProfit"`
	CorporateTax   float64 `json:"corporateTax"`
	TotalTax       float64 `json:"totalTax"`

	FinalNetProfit float64 `json:"finalNetProfit"`

	Staff []StaffEarnings `json:"staff"`

	// Dashboard panels
	MembershipSales map[string]int `json:"membershipSales"` // package name -> count
	ProductGross    float64        `json:"productGross"`
	ProductCost     float64        `json:"productCost"`
	ProductProfit   float64        `json:"productProfit"`
}

// Summarize computes the financial waterfall for a "YYYY-MM" period.
//
// The order is fixed and load-bearing: staff salaries and commissions
// are summed before tax because they reduce pre-tax profit; partner
// profit shares are distributed last, from a net profit that does NOT
// subtract them, because a profit share is a distribution of profit
// rather than a deductible cost. Reordering double-counts or drops
// partner payouts.
func Summarize(snap Snapshot, period string) (Summary, []Warning) {
	var warns []Warning
	sum := Summary{Period: period, MembershipSales: map[string]int{}}

	packages := indexPackages(snap.Packages)
	members := indexMembers(snap.Members)
	products := indexProducts(snap.Products)

	// 1. Income
	for i := range snap.Members {
		m := &snap.Members[i]
		if !m.StartedIn(period) {
			continue
		}
		if m.ActivePackageID == "" {
			continue
		}
		pkg, ok := packages[m.ActivePackageID]
		if !ok {
			warns = append(warns, Warning{
				Kind:   WarnDanglingPackage,
				RefID:  m.ID,
				Detail: fmt.Sprintf("member %q references unknown package %q", m.FullName, m.ActivePackageID),
			})
			continue
		}
		sum.MembershipIncome += pkg.Price
		sum.MembershipSales[pkg.Name]++
	}
	for i := range snap.ProductSales {
		s := &snap.ProductSales[i]
		if !s.InPeriod(period) {
			continue
		}
		sum.ProductIncome += s.TotalAmount
		sum.ProductGross += s.TotalAmount
		for _, item := range s.Items {
			prod, ok := products[item.ProductID]
			if !ok {
				warns = append(warns, Warning{
					Kind:   WarnDanglingProduct,
					RefID:  s.ID,
					Detail: fmt.Sprintf("sale references unknown product %q", item.ProductID),
				})
				continue
			}
			sum.ProductCost += prod.Cost * float64(item.Quantity)
		}
	}
	sum.TotalIncome = sum.MembershipIncome + sum.ProductIncome
	sum.ProductProfit = sum.ProductGross - sum.ProductCost

	// 2. Operating expenses. Fixed expenses recur every period
	// unconditionally; period expenses fold into three buckets, with
	// the tax category excluded (it is accounted in the tax block).
	for i := range snap.FixedExpenses {
		sum.FixedExpenseTotal += snap.FixedExpenses[i].Amount
	}
	for i := range snap.Expenses {
		e := &snap.Expenses[i]
		if !e.InPeriod(period) {
			continue
		}
		switch e.Category {
		case enum.ExpenseCategoryStockPurchase:
			sum.StockPurchases += e.Amount
		case enum.ExpenseCategoryConsumable:
			sum.Consumables += e.Amount
		case enum.ExpenseCategoryTax:
			// handled in the tax block
		default:
			sum.OtherExpenses += e.Amount
		}
	}
	sum.OperatingExpenses = sum.FixedExpenseTotal + sum.StockPurchases + sum.Consumables + sum.OtherExpenses

	// 3. Staff costs (salaries + lesson commissions). Partner profit
	// shares are excluded here; they come out of net profit in step 6.
	earnings := make([]StaffEarnings, 0, len(snap.Staff))
	for i := range snap.Staff {
		st := &snap.Staff[i]
		row := StaffEarnings{
			StaffID:         st.ID,
			Name:            st.Name,
			Role:            st.Role,
			Model:           st.PaymentConfig.Model,
			Salary:          st.PaymentConfig.Salary(),
			ProfitShareRate: st.PaymentConfig.ProfitShare(),
		}

		// The lesson count is reported for every staff row; only
		// trainer roles on the commission model accrue earnings from it.
		commission := st.PaymentConfig.Commission()
		for j := range snap.Appointments {
			a := &snap.Appointments[j]
			if a.TrainerID != st.ID || !a.InPeriod(period) || a.Status == enum.AppointmentStatusCancelled {
				continue
			}
			row.LessonCount++
			if !st.IsTrainer() || commission <= 0 {
				continue
			}
			member, ok := members[a.MemberID]
			if !ok {
				warns = append(warns, Warning{
					Kind:   WarnDanglingMember,
					RefID:  a.ID,
					Detail: fmt.Sprintf("appointment references unknown member %q", a.MemberID),
				})
				continue
			}
			if member.ActivePackageID == "" {
				continue
			}
			pkg, ok := packages[member.ActivePackageID]
			if !ok {
				warns = append(warns, Warning{
					Kind:   WarnDanglingPackage,
					RefID:  a.ID,
					Detail: fmt.Sprintf("member %q on appointment references unknown package %q", member.FullName, member.ActivePackageID),
				})
				continue
			}
			row.LessonEarning += pkg.UnitPrice() * (commission / 100)
		}

		sum.StaffSalaries += row.Salary
		sum.StaffCommissions += row.LessonEarning
		earnings = append(earnings, row)
	}
	sum.StaffCosts = sum.StaffSalaries + sum.StaffCommissions

	// 4. Taxes. VAT is a flat 20% of membership income plus 20% of
	// each period sale's total; withholding is 20% of the rent fixed
	// expense; corporate tax is 25% of positive pre-tax profit.
	for i := range snap.FixedExpenses {
		if snap.FixedExpenses[i].IsRent() {
			sum.RentAmount = snap.FixedExpenses[i].Amount
			break
		}
	}
	sum.WithholdingTax = sum.RentAmount * withholdingRate

	sum.VATLiability = sum.MembershipIncome * incomeVATRate
	for i := range snap.ProductSales {
		if snap.ProductSales[i].InPeriod(period) {
			sum.VATLiability += snap.ProductSales[i].TotalAmount * incomeVATRate
		}
	}

	sum.PreTaxProfit = sum.TotalIncome - sum.OperatingExpenses - sum.StaffCosts - sum.VATLiability - sum.WithholdingTax
	if sum.PreTaxProfit > 0 {
		sum.CorporateTax = sum.PreTaxProfit * corporateTaxRate
	}
	sum.TotalTax = sum.VATLiability + sum.WithholdingTax + sum.CorporateTax

	// 5. Net profit
	sum.FinalNetProfit = sum.TotalIncome - sum.OperatingExpenses - sum.StaffCosts - sum.TotalTax

	// 6. Partner distribution, zero-floored on non-positive profit.
	for i := range earnings {
		row := &earnings[i]
		if row.ProfitShareRate > 0 && sum.FinalNetProfit > 0 {
			row.ProfitShare = sum.FinalNetProfit * (row.ProfitShareRate / 100)
		}
		row.TotalEarnings = row.Salary + row.LessonEarning + row.ProfitShare
	}
	sum.Staff = earnings

	return sum, warns
}

func indexPackages(pkgs []entity.Package) map[string]*entity.Package {
	idx := make(map[string]*entity.Package, len(pkgs))
	for i := range pkgs {
		idx[pkgs[i].ID] = &pkgs[i]
	}
	return idx
}

func indexMembers(members []entity.Member) map[string]*entity.Member {
	idx := make(map[string]*entity.Member, len(members))
	for i := range members {
		idx[members[i].ID] = &members[i]
	}
	return idx
}

func indexProducts(products []entity.Product) map[string]*entity.Product {
	idx := make(map[string]*entity.Product, len(products))
	for i := range products {
		idx[products[i].ID] = &products[i]
	}
	return idx
}
