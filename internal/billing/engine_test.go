package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymdesk/gymdesk-api/internal/domain/entity"
	"github.com/gymdesk/gymdesk-api/internal/domain/enum"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func testPackage(id string, price float64, sessions int) entity.Package {
	return entity.Package{
		ID:           id,
		ServiceID:    "fitness",
		Name:         "Package " + id,
		Type:         entity.PackageTypeLessonBundle,
		Price:        price,
		SessionCount: sessions,
		IsActive:     true,
	}
}

func testMember(id, packageID, startDate string) entity.Member {
	return entity.Member{
		ID:              id,
		FullName:        "Member " + id,
		ActivePackageID: packageID,
		StartDate:       startDate,
		Status:          enum.MemberStatusActive,
	}
}

func testSale(id, date string, total float64) entity.ProductSale {
	return entity.ProductSale{ID: id, Date: date, TotalAmount: total}
}

// ============================================================================
// INCOME AGGREGATION
// ============================================================================

func TestSummarize_IncomeAdditivity(t *testing.T) {
	snap := Snapshot{
		Packages: []entity.Package{testPackage("p1", 1500, 0), testPackage("p2", 6000, 8)},
		Members: []entity.Member{
			testMember("m1", "p1", "2025-01-05"),
			testMember("m2", "p2", "2025-01-20"),
			testMember("m3", "p1", "2025-02-01"), // outside period
		},
		ProductSales: []entity.ProductSale{
			testSale("s1", "2025-01-10T14:00:00Z", 240),
			testSale("s2", "2025-01-15T09:30:00Z", 360),
			testSale("s3", "2025-03-01T09:30:00Z", 999), // outside period
		},
	}

	sum, warns := Summarize(snap, "2025-01")

	assert.Empty(t, warns)
	assert.Equal(t, 7500.0, sum.MembershipIncome)
	assert.Equal(t, 600.0, sum.ProductIncome)
	assert.Equal(t, sum.MembershipIncome+sum.ProductIncome, sum.TotalIncome)
}

func TestSummarize_PerPeriodIncomesSumToUnfiltered(t *testing.T) {
	snap := Snapshot{
		Packages: []entity.Package{testPackage("p1", 1000, 0)},
		Members: []entity.Member{
			testMember("m1", "p1", "2025-01-05"),
			testMember("m2", "p1", "2025-02-05"),
			testMember("m3", "p1", "2025-02-20"),
		},
		ProductSales: []entity.ProductSale{
			testSale("s1", "2025-01-10T00:00:00Z", 100),
			testSale("s2", "2025-02-10T00:00:00Z", 200),
		},
	}

	jan, _ := Summarize(snap, "2025-01")
	feb, _ := Summarize(snap, "2025-02")
	all, _ := Summarize(snap, "2025") // prefix match covers the whole year

	assert.Equal(t, all.TotalIncome, jan.TotalIncome+feb.TotalIncome)
}

func TestSummarize_DanglingPackageContributesZero(t *testing.T) {
	snap := Snapshot{
		Packages: []entity.Package{testPackage("p1", 1500, 0)},
		Members: []entity.Member{
			testMember("m1", "p1", "2025-01-05"),
			testMember("m2", "deleted-package", "2025-01-06"),
		},
	}

	sum, warns := Summarize(snap, "2025-01")

	assert.Equal(t, 1500.0, sum.MembershipIncome)
	require.Len(t, warns, 1)
	assert.Equal(t, WarnDanglingPackage, warns[0].Kind)
	assert.Equal(t, "m2", warns[0].RefID)
}

func TestSummarize_MemberWithoutPackageIsIgnoredSilently(t *testing.T) {
	snap := Snapshot{
		Members: []entity.Member{testMember("m1", "", "2025-01-05")},
	}

	sum, warns := Summarize(snap, "2025-01")

	assert.Zero(t, sum.MembershipIncome)
	assert.Empty(t, warns, "no package reference means nothing dangles")
}

// ============================================================================
// EXPENSES AND TAXES
// ============================================================================

func TestSummarize_FixedExpensesRecurEveryPeriod(t *testing.T) {
	snap := Snapshot{
		FixedExpenses: []entity.FixedExpense{
			{ID: "fx1", Title: "Kira", Amount: 15000, DayOfMonth: 1, Type: enum.FixedExpenseTypeFixed},
			{ID: "fx2", Title: "Temizlik", Amount: 2000, DayOfMonth: 5, Type: enum.FixedExpenseTypeFixed},
		},
	}

	jan, _ := Summarize(snap, "2025-01")
	jul, _ := Summarize(snap, "2025-07")

	assert.Equal(t, 17000.0, jan.FixedExpenseTotal)
	assert.Equal(t, jan.FixedExpenseTotal, jul.FixedExpenseTotal)
}

func TestSummarize_TaxCategoryExcludedFromOperatingExpenses(t *testing.T) {
	snap := Snapshot{
		Expenses: []entity.Expense{
			{ID: "e1", Title: "Protein", Amount: 500, Category: enum.ExpenseCategoryStockPurchase, Date: "2025-01-02"},
			{ID: "e2", Title: "Havlu", Amount: 300, Category: enum.ExpenseCategoryConsumable, Date: "2025-01-03"},
			{ID: "e3", Title: "Elektrik", Amount: 700, Category: enum.ExpenseCategoryBill, Date: "2025-01-04"},
			{ID: "e4", Title: "KDV Ödemesi", Amount: 9999, Category: enum.ExpenseCategoryTax, Date: "2025-01-05"},
		},
	}

	sum, _ := Summarize(snap, "2025-01")

	assert.Equal(t, 500.0, sum.StockPurchases)
	assert.Equal(t, 300.0, sum.Consumables)
	assert.Equal(t, 700.0, sum.OtherExpenses, "bills fold into the other bucket")
	assert.Equal(t, 1500.0, sum.OperatingExpenses, "tax category stays out")
}

func TestSummarize_WithholdingTaxFromRent(t *testing.T) {
	snap := Snapshot{
		FixedExpenses: []entity.FixedExpense{
			{ID: "fx1", Title: "Kira", Amount: 15000, DayOfMonth: 1, Type: enum.FixedExpenseTypeFixed},
		},
	}

	sum, _ := Summarize(snap, "2025-01")

	assert.Equal(t, 15000.0, sum.RentAmount)
	assert.Equal(t, 3000.0, sum.WithholdingTax)

	// Independent of period
	other, _ := Summarize(snap, "2031-12")
	assert.Equal(t, 3000.0, other.WithholdingTax)
}

func TestSummarize_NoRentMeansNoWithholding(t *testing.T) {
	snap := Snapshot{
		FixedExpenses: []entity.FixedExpense{
			{ID: "fx1", Title: "Elektrik", Amount: 800, DayOfMonth: 17, Type: enum.FixedExpenseTypeVariable},
		},
	}

	sum, _ := Summarize(snap, "2025-01")

	assert.Zero(t, sum.RentAmount)
	assert.Zero(t, sum.WithholdingTax)
}

func TestSummarize_CorporateTaxNeverNegative(t *testing.T) {
	// Heavy expenses, no income: pre-tax profit is deeply negative.
	snap := Snapshot{
		FixedExpenses: []entity.FixedExpense{
			{ID: "fx1", Title: "Kira", Amount: 50000, DayOfMonth: 1, Type: enum.FixedExpenseTypeFixed},
		},
	}

	sum, _ := Summarize(snap, "2025-01")

	assert.Negative(t, sum.PreTaxProfit)
	assert.Zero(t, sum.CorporateTax, "negative profit must not produce a tax credit")
	assert.Equal(t, sum.VATLiability+sum.WithholdingTax, sum.TotalTax)
}

func TestSummarize_FlatVATOnBothIncomeStreams(t *testing.T) {
	snap := Snapshot{
		Packages:     []entity.Package{testPackage("p1", 1000, 0)},
		Members:      []entity.Member{testMember("m1", "p1", "2025-01-05")},
		ProductSales: []entity.ProductSale{testSale("s1", "2025-01-10T00:00:00Z", 500)},
	}

	sum, _ := Summarize(snap, "2025-01")

	// 20% of 1000 + 20% of 500, regardless of per-product tax rates.
	assert.InDelta(t, 300.0, sum.VATLiability, 1e-9)
}

// ============================================================================
// STAFF EARNINGS
// ============================================================================

func salariedStaff(id string, amount float64) entity.Staff {
	return entity.Staff{
		ID: id, Name: "Staff " + id, Role: enum.RoleManager,
		PaymentConfig: entity.PaymentConfig{Model: enum.PaymentModelSalaried, SalaryAmount: amount},
	}
}

func commissionStaff(id string, rate float64) entity.Staff {
	return entity.Staff{
		ID: id, Name: "Staff " + id, Role: enum.RoleTrainer,
		PaymentConfig: entity.PaymentConfig{Model: enum.PaymentModelCommission, CommissionRate: rate},
	}
}

func partnerStaff(id string, share float64) entity.Staff {
	return entity.Staff{
		ID: id, Name: "Staff " + id, Role: enum.RoleAdmin,
		PaymentConfig: entity.PaymentConfig{Model: enum.PaymentModelPartner, ProfitShareRate: share},
	}
}

func TestSummarize_SalariedStaffIgnoresAppointments(t *testing.T) {
	snap := Snapshot{
		Packages: []entity.Package{testPackage("p1", 6000, 8)},
		Members:  []entity.Member{testMember("m1", "p1", "2025-01-05")},
		Staff:    []entity.Staff{salariedStaff("st1", 25000)},
		Appointments: []entity.Appointment{
			{ID: "a1", MemberID: "m1", TrainerID: "st1", Date: "2025-01-10", Status: enum.AppointmentStatusScheduled},
		},
	}

	sum, _ := Summarize(snap, "2025-01")

	require.Len(t, sum.Staff, 1)
	row := sum.Staff[0]
	assert.Equal(t, 25000.0, row.Salary)
	assert.Zero(t, row.LessonEarning, "salaried staff accrue no commission")
	assert.Equal(t, 25000.0, row.TotalEarnings)
	assert.Equal(t, 1, row.LessonCount, "appointments are still counted for display")
}

func TestSummarize_NonTrainerRoleCountsLessonsWithoutEarning(t *testing.T) {
	snap := Snapshot{
		Packages: []entity.Package{testPackage("p1", 6000, 8)},
		Members:  []entity.Member{testMember("m1", "p1", "2025-01-05")},
		Staff: []entity.Staff{{
			ID: "st1", Name: "Staff st1", Role: enum.RoleDietitian,
			PaymentConfig: entity.PaymentConfig{Model: enum.PaymentModelCommission, CommissionRate: 40},
		}},
		Appointments: []entity.Appointment{
			{ID: "a1", MemberID: "m1", TrainerID: "st1", Date: "2025-01-10", Status: enum.AppointmentStatusScheduled},
			{ID: "a2", MemberID: "m1", TrainerID: "st1", Date: "2025-01-12", Status: enum.AppointmentStatusCompleted},
		},
	}

	sum, warns := Summarize(snap, "2025-01")

	assert.Empty(t, warns)
	require.Len(t, sum.Staff, 1)
	row := sum.Staff[0]
	assert.Equal(t, 2, row.LessonCount, "every staff row reports its appointment count")
	assert.Zero(t, row.LessonEarning, "only trainer roles accrue commission")
	assert.Zero(t, sum.StaffCommissions)
}

func TestSummarize_CommissionPerQualifyingAppointment(t *testing.T) {
	snap := Snapshot{
		Packages: []entity.Package{testPackage("p1", 6000, 8)}, // unit price 750
		Members:  []entity.Member{testMember("m1", "p1", "2025-01-05")},
		Staff:    []entity.Staff{commissionStaff("st1", 40)},
		Appointments: []entity.Appointment{
			{ID: "a1", MemberID: "m1", TrainerID: "st1", Date: "2025-01-10", Status: enum.AppointmentStatusScheduled},
			{ID: "a2", MemberID: "m1", TrainerID: "st1", Date: "2025-01-12", Status: enum.AppointmentStatusCompleted},
			{ID: "a3", MemberID: "m1", TrainerID: "st1", Date: "2025-01-14", Status: enum.AppointmentStatusCancelled}, // excluded
			{ID: "a4", MemberID: "m1", TrainerID: "other", Date: "2025-01-15", Status: enum.AppointmentStatusScheduled},
			{ID: "a5", MemberID: "m1", TrainerID: "st1", Date: "2025-02-01", Status: enum.AppointmentStatusScheduled}, // outside period
		},
	}

	sum, _ := Summarize(snap, "2025-01")

	require.Len(t, sum.Staff, 1)
	// 2 qualifying lessons * 750 * 40% = 600
	assert.InDelta(t, 600.0, sum.Staff[0].LessonEarning, 1e-9)
	assert.Equal(t, sum.Staff[0].LessonEarning, sum.StaffCommissions)
}

func TestSummarize_SessionCountFloorOfOne(t *testing.T) {
	snap := Snapshot{
		Packages: []entity.Package{testPackage("p1", 1500, 0)}, // subscription, no sessions
		Members:  []entity.Member{testMember("m1", "p1", "2025-01-05")},
		Staff:    []entity.Staff{commissionStaff("st1", 10)},
		Appointments: []entity.Appointment{
			{ID: "a1", MemberID: "m1", TrainerID: "st1", Date: "2025-01-10", Status: enum.AppointmentStatusScheduled},
		},
	}

	sum, _ := Summarize(snap, "2025-01")

	// Unit price falls back to the full package price.
	assert.InDelta(t, 150.0, sum.Staff[0].LessonEarning, 1e-9)
}

func TestSummarize_ProfitShareZeroFloor(t *testing.T) {
	snap := Snapshot{
		Staff: []entity.Staff{partnerStaff("st1", 50)},
		FixedExpenses: []entity.FixedExpense{
			{ID: "fx1", Title: "Kira", Amount: 50000, DayOfMonth: 1, Type: enum.FixedExpenseTypeFixed},
		},
	}

	sum, _ := Summarize(snap, "2025-01")

	require.True(t, sum.FinalNetProfit < 0)
	assert.Zero(t, sum.Staff[0].ProfitShare, "no clawback on losses")
	assert.Zero(t, sum.Staff[0].TotalEarnings)
}

func TestSummarize_ProfitShareExcludedFromStaffCosts(t *testing.T) {
	snap := Snapshot{
		Packages: []entity.Package{testPackage("p1", 10000, 0)},
		Members:  []entity.Member{testMember("m1", "p1", "2025-01-05")},
		Staff:    []entity.Staff{partnerStaff("st1", 50)},
	}

	sum, _ := Summarize(snap, "2025-01")

	assert.Zero(t, sum.StaffCosts, "partner share is a distribution, not a cost")
	require.True(t, sum.FinalNetProfit > 0)
	assert.InDelta(t, sum.FinalNetProfit*0.5, sum.Staff[0].ProfitShare, 1e-9)

	// The waterfall identity: net profit is income minus operating
	// expenses, staff costs and taxes; the partner share comes out of
	// it afterwards without changing it.
	expected := sum.TotalIncome - sum.OperatingExpenses - sum.StaffCosts - sum.TotalTax
	assert.InDelta(t, expected, sum.FinalNetProfit, 1e-9)
}

func TestSummarize_FullWaterfallScenario(t *testing.T) {
	// One month of a small gym: two memberships, one sale, rent,
	// a consumable purchase, one salaried manager, one commission
	// trainer with two lessons, one partner.
	snap := Snapshot{
		Packages: []entity.Package{testPackage("p8", 8000, 8)}, // unit price 1000
		Members: []entity.Member{
			testMember("m1", "p8", "2025-03-02"),
			testMember("m2", "p8", "2025-03-15"),
		},
		ProductSales: []entity.ProductSale{testSale("s1", "2025-03-20T10:00:00Z", 1000)},
		Expenses: []entity.Expense{
			{ID: "e1", Title: "Havlu", Amount: 500, Category: enum.ExpenseCategoryConsumable, Date: "2025-03-05"},
		},
		FixedExpenses: []entity.FixedExpense{
			{ID: "fx1", Title: "Kira", Amount: 10000, DayOfMonth: 1, Type: enum.FixedExpenseTypeFixed},
		},
		Staff: []entity.Staff{
			salariedStaff("st1", 3000),
			commissionStaff("st2", 40),
			partnerStaff("st3", 30),
		},
		Appointments: []entity.Appointment{
			{ID: "a1", MemberID: "m1", TrainerID: "st2", Date: "2025-03-03", Status: enum.AppointmentStatusCompleted},
			{ID: "a2", MemberID: "m2", TrainerID: "st2", Date: "2025-03-16", Status: enum.AppointmentStatusCompleted},
		},
	}

	sum, warns := Summarize(snap, "2025-03")

	assert.Empty(t, warns)
	assert.Equal(t, 16000.0, sum.MembershipIncome)
	assert.Equal(t, 1000.0, sum.ProductIncome)
	assert.Equal(t, 17000.0, sum.TotalIncome)
	assert.Equal(t, 10500.0, sum.OperatingExpenses)

	// Staff: salary 3000 + commission 2 * 1000 * 40% = 800
	assert.Equal(t, 3000.0, sum.StaffSalaries)
	assert.InDelta(t, 800.0, sum.StaffCommissions, 1e-9)
	assert.InDelta(t, 3800.0, sum.StaffCosts, 1e-9)

	// Taxes: VAT 20% * (16000 + 1000) = 3400; stopaj 2000;
	// preTax = 17000 - 10500 - 3800 - 3400 - 2000 = -2700 -> no corporate tax
	assert.InDelta(t, 3400.0, sum.VATLiability, 1e-9)
	assert.Equal(t, 2000.0, sum.WithholdingTax)
	assert.InDelta(t, -2700.0, sum.PreTaxProfit, 1e-9)
	assert.Zero(t, sum.CorporateTax)
	assert.InDelta(t, 5400.0, sum.TotalTax, 1e-9)

	// Net = 17000 - 10500 - 3800 - 5400 = -2700 -> partner gets nothing
	assert.InDelta(t, -2700.0, sum.FinalNetProfit, 1e-9)
	for _, row := range sum.Staff {
		if row.Model == enum.PaymentModelPartner {
			assert.Zero(t, row.ProfitShare)
		}
	}

	assert.Equal(t, map[string]int{"Package p8": 2}, sum.MembershipSales)
}
