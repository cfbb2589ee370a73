package service

import (
	"context"
	"io"
	"log"
	"strconv"

	"github.com/gymdesk/gymdesk-api/internal/billing"
	"github.com/gymdesk/gymdesk-api/internal/domain/repository"
	"github.com/gymdesk/gymdesk-api/pkg/apperror"
	"github.com/gymdesk/gymdesk-api/pkg/export"
	"github.com/gymdesk/gymdesk-api/pkg/utils"
)

// FinancialsService computes the monthly financial summary over the
// full data set.
type FinancialsService struct {
	memberRepo       repository.MemberRepository
	packageRepo      repository.PackageRepository
	productRepo      repository.ProductRepository
	saleRepo         repository.ProductSaleRepository
	expenseRepo      repository.ExpenseRepository
	fixedExpenseRepo repository.FixedExpenseRepository
	staffRepo        repository.StaffRepository
	appointmentRepo  repository.AppointmentRepository
}

// NewFinancialsService creates a new financials service
func NewFinancialsService(
	memberRepo repository.MemberRepository,
	packageRepo repository.PackageRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.ProductSaleRepository,
	expenseRepo repository.ExpenseRepository,
	fixedExpenseRepo repository.FixedExpenseRepository,
	staffRepo repository.StaffRepository,
	appointmentRepo repository.AppointmentRepository,
) *FinancialsService {
	return &FinancialsService{
		memberRepo:       memberRepo,
		packageRepo:      packageRepo,
		productRepo:      productRepo,
		saleRepo:         saleRepo,
		expenseRepo:      expenseRepo,
		fixedExpenseRepo: fixedExpenseRepo,
		staffRepo:        staffRepo,
		appointmentRepo:  appointmentRepo,
	}
}

// loadSnapshot reads every collection the engine needs.
func (s *FinancialsService) loadSnapshot(ctx context.Context) (billing.Snapshot, error) {
	var snap billing.Snapshot
	var err error

	if snap.Members, err = s.memberRepo.List(ctx); err != nil {
		return snap, err
	}
	if snap.Packages, err = s.packageRepo.List(ctx); err != nil {
		return snap, err
	}
	if snap.Products, err = s.productRepo.List(ctx); err != nil {
		return snap, err
	}
	if snap.ProductSales, err = s.saleRepo.List(ctx); err != nil {
		return snap, err
	}
	if snap.Expenses, err = s.expenseRepo.List(ctx); err != nil {
		return snap, err
	}
	if snap.FixedExpenses, err = s.fixedExpenseRepo.List(ctx); err != nil {
		return snap, err
	}
	if snap.Staff, err = s.staffRepo.List(ctx); err != nil {
		return snap, err
	}
	if snap.Appointments, err = s.appointmentRepo.List(ctx); err != nil {
		return snap, err
	}

	return snap, nil
}

// Summary computes the financial waterfall for a "YYYY-MM" period. An
// empty period defaults to the current month.
func (s *FinancialsService) Summary(ctx context.Context, period string) (*billing.Summary, error) {
	if period == "" {
		period = utils.CurrentPeriod()
	}
	if !utils.ValidPeriod(period) {
		return nil, apperror.NewBadRequestError("Period must be in YYYY-MM format")
	}

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	summary, warnings := billing.Summarize(snap, period)
	for _, w := range warnings {
		log.Printf("financials: %s %s: %s", w.Kind, w.RefID, w.Detail)
	}

	return &summary, nil
}

// ExportSummaryCSV writes the period's waterfall as a CSV report.
func (s *FinancialsService) ExportSummaryCSV(ctx context.Context, period string, out io.Writer) error {
	summary, err := s.Summary(ctx, period)
	if err != nil {
		return err
	}

	w := export.NewCSVWriter(out)
	rows := [][2]string{
		{"Donem", summary.Period},
		{"Uyelik Geliri", export.Amount(summary.MembershipIncome)},
		{"Urun Geliri", export.Amount(summary.ProductIncome)},
		{"Toplam Gelir", export.Amount(summary.TotalIncome)},
		{"Sabit Giderler", export.Amount(summary.FixedExpenseTotal)},
		{"Stok Alimlari", export.Amount(summary.StockPurchases)},
		{"Sarf Malzemeleri", export.Amount(summary.Consumables)},
		{"Diger Giderler", export.Amount(summary.OtherExpenses)},
		{"Isletme Giderleri", export.Amount(summary.OperatingExpenses)},
		{"Maaslar", export.Amount(summary.StaffSalaries)},
		{"Ders Primleri", export.Amount(summary.StaffCommissions)},
		{"Personel Maliyeti", export.Amount(summary.StaffCosts)},
		{"Stopaj", export.Amount(summary.WithholdingTax)},
		{"KDV", export.Amount(summary.VATLiability)},
		{"Vergi Oncesi Kar", export.Amount(summary.PreTaxProfit)},
		{"Kurumlar Vergisi", export.Amount(summary.CorporateTax)},
		{"Toplam Vergi", export.Amount(summary.TotalTax)},
		{"Net Kar", export.Amount(summary.FinalNetProfit)},
	}

	if err := w.WriteRow("Kalem", "Tutar"); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.WriteRow(row[0], row[1]); err != nil {
			return err
		}
	}
	return w.Flush()
}

// ExportStaffEarningsCSV writes the period's staff payout table as a
// CSV report.
func (s *FinancialsService) ExportStaffEarningsCSV(ctx context.Context, period string, out io.Writer) error {
	summary, err := s.Summary(ctx, period)
	if err != nil {
		return err
	}

	w := export.NewCSVWriter(out)
	if err := w.WriteRow("Personel", "Rol", "Model", "Ders Sayisi", "Maas", "Ders Kazanci", "Kar Payi", "Toplam"); err != nil {
		return err
	}
	for _, row := range summary.Staff {
		err := w.WriteRow(
			row.Name,
			string(row.Role),
			string(row.Model),
			strconv.Itoa(row.LessonCount),
			export.Amount(row.Salary),
			export.Amount(row.LessonEarning),
			export.Amount(row.ProfitShare),
			export.Amount(row.TotalEarnings),
		)
		if err != nil {
			return err
		}
	}
	return w.Flush()
}
