package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymdesk/gymdesk-api/internal/domain/entity"
	"github.com/gymdesk/gymdesk-api/internal/domain/enum"
	infraRepo "github.com/gymdesk/gymdesk-api/internal/infrastructure/repository"
	"github.com/gymdesk/gymdesk-api/internal/infrastructure/storage"
	"github.com/gymdesk/gymdesk-api/pkg/utils"
)

// newFinancialsService seeds one month of data: a membership sale, a
// product sale, rent and one salaried staff member.
func newFinancialsService(t *testing.T) *FinancialsService {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	packageRepo := infraRepo.NewPackageRepository(store)
	require.NoError(t, packageRepo.Create(ctx, &entity.Package{
		ID: "pkg-1", Name: "Aylik Uyelik", Price: 1000, SessionCount: 8, IsActive: true,
	}))

	memberRepo := infraRepo.NewMemberRepository(store)
	require.NoError(t, memberRepo.Create(ctx, &entity.Member{
		ID: "m-1", FullName: "Ayse Demir", ActivePackageID: "pkg-1",
		StartDate: "2025-05-10", Status: enum.MemberStatusActive,
	}))

	saleRepo := infraRepo.NewProductSaleRepository(store)
	require.NoError(t, saleRepo.Create(ctx, &entity.ProductSale{
		ID: "sale-1", Date: "2025-05-12T14:00:00Z", TotalAmount: 500,
	}))

	fixedRepo := infraRepo.NewFixedExpenseRepository(store)
	require.NoError(t, fixedRepo.Create(ctx, &entity.FixedExpense{
		ID: "fx-1", Title: "Kira", Amount: 200, DayOfMonth: 1, Type: enum.FixedExpenseTypeFixed,
	}))

	staffRepo := infraRepo.NewStaffRepository(store)
	require.NoError(t, staffRepo.Create(ctx, &entity.Staff{
		ID: "s-1", Name: "Deniz Koc", Role: enum.RoleTrainer,
		PaymentConfig: entity.PaymentConfig{Model: enum.PaymentModelSalaried, SalaryAmount: 300},
	}))

	return NewFinancialsService(
		memberRepo, packageRepo,
		infraRepo.NewProductRepository(store), saleRepo,
		infraRepo.NewExpenseRepository(store), fixedRepo,
		staffRepo, infraRepo.NewAppointmentRepository(store),
	)
}

func TestSummary_FullWaterfall(t *testing.T) {
	svc := newFinancialsService(t)

	summary, err := svc.Summary(context.Background(), "2025-05")
	require.NoError(t, err)

	assert.Equal(t, 1000.0, summary.MembershipIncome)
	assert.Equal(t, 500.0, summary.ProductIncome)
	assert.Equal(t, 1500.0, summary.TotalIncome)
	assert.Equal(t, 200.0, summary.OperatingExpenses)
	assert.Equal(t, 300.0, summary.StaffCosts)

	// Withholding on rent plus flat VAT on income.
	assert.InDelta(t, 40.0, summary.WithholdingTax, 1e-6)
	assert.InDelta(t, 300.0, summary.VATLiability, 1e-6)
	assert.InDelta(t, 660.0, summary.PreTaxProfit, 1e-6)
	assert.InDelta(t, 165.0, summary.CorporateTax, 1e-6)
	assert.InDelta(t, 495.0, summary.FinalNetProfit, 1e-6)

	assert.Equal(t, 1, summary.MembershipSales["Aylik Uyelik"])
}

func TestSummary_OtherPeriodSeesOnlyRecurringCosts(t *testing.T) {
	svc := newFinancialsService(t)

	summary, err := svc.Summary(context.Background(), "2025-07")
	require.NoError(t, err)

	assert.Zero(t, summary.TotalIncome)
	assert.Equal(t, 200.0, summary.FixedExpenseTotal, "fixed expenses recur every period")
	assert.Equal(t, 300.0, summary.StaffSalaries)
}

func TestSummary_InvalidPeriodRejected(t *testing.T) {
	svc := newFinancialsService(t)

	_, err := svc.Summary(context.Background(), "May 2025")
	assert.Error(t, err)
}

func TestSummary_EmptyPeriodDefaultsToCurrentMonth(t *testing.T) {
	svc := newFinancialsService(t)

	summary, err := svc.Summary(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, utils.CurrentPeriod(), summary.Period)
}

func TestExportSummaryCSV_TurkishReportLayout(t *testing.T) {
	svc := newFinancialsService(t)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportSummaryCSV(context.Background(), "2025-05", &buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\xef\xbb\xbf"), "report starts with a UTF-8 BOM")
	assert.Contains(t, out, "Kalem;Tutar")
	assert.Contains(t, out, "Toplam Gelir;1500,00")
	assert.Contains(t, out, "Net Kar;495,00")
}

func TestExportStaffEarningsCSV_OneRowPerStaff(t *testing.T) {
	svc := newFinancialsService(t)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportStaffEarningsCSV(context.Background(), "2025-05", &buf))

	out := buf.String()
	assert.Contains(t, out, "Personel;Rol;Model")
	assert.Contains(t, out, "Deniz Koc;trainer;salaried")
	assert.Contains(t, out, "300,00")
}
