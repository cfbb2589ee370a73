package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymdesk/gymdesk-api/internal/domain/enum"
	infraRepo "github.com/gymdesk/gymdesk-api/internal/infrastructure/repository"
	"github.com/gymdesk/gymdesk-api/internal/infrastructure/storage"
)

func newExpenseService(t *testing.T) *ExpenseService {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return NewExpenseService(
		infraRepo.NewExpenseRepository(store),
		infraRepo.NewFixedExpenseRepository(store),
	)
}

func TestCreateExpense_DerivesStatusFromInstallments(t *testing.T) {
	svc := newExpenseService(t)
	ctx := context.Background()

	pending, err := svc.CreateExpense(ctx, &CreateExpenseInput{
		Title:        "Treadmill",
		Amount:       24000,
		Category:     enum.ExpenseCategoryOther,
		Installments: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.ExpenseStatusPending, pending.Status)

	paid, err := svc.CreateExpense(ctx, &CreateExpenseInput{
		Title:            "Dumbbells",
		Amount:           3000,
		Category:         enum.ExpenseCategoryOther,
		Installments:     3,
		PaidInstallments: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.ExpenseStatusPaid, paid.Status)
}

func TestCreateExpense_ClampsPaidInstallments(t *testing.T) {
	svc := newExpenseService(t)

	expense, err := svc.CreateExpense(context.Background(), &CreateExpenseInput{
		Title:            "Rowing machine",
		Amount:           10000,
		Category:         enum.ExpenseCategoryOther,
		Installments:     6,
		PaidInstallments: 99,
	})
	require.NoError(t, err)

	assert.Equal(t, 6, expense.PaidInstallments, "paid installments clamp to the installment count")
	assert.Equal(t, enum.ExpenseStatusPaid, expense.Status)
}

func TestPayInstallment_FlipsStatusOnLastPayment(t *testing.T) {
	svc := newExpenseService(t)
	ctx := context.Background()

	expense, err := svc.CreateExpense(ctx, &CreateExpenseInput{
		Title:            "Spin bike",
		Amount:           9000,
		Category:         enum.ExpenseCategoryOther,
		Installments:     2,
		PaidInstallments: 1,
	})
	require.NoError(t, err)
	require.Equal(t, enum.ExpenseStatusPending, expense.Status)

	updated, err := svc.PayInstallment(ctx, expense.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.PaidInstallments)
	assert.Equal(t, enum.ExpenseStatusPaid, updated.Status)

	// Paying again stays clamped at the installment count.
	again, err := svc.PayInstallment(ctx, expense.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, again.PaidInstallments)
}

func TestPayBill_RecordsPaidBillExpenseDatedToday(t *testing.T) {
	svc := newExpenseService(t)
	ctx := context.Background()

	reminder, err := svc.CreateFixedExpense(ctx, &CreateFixedExpenseInput{
		Title:      "Elektrik",
		DayOfMonth: 15,
		Type:       enum.FixedExpenseTypeVariable,
	})
	require.NoError(t, err)

	bill, err := svc.PayBill(ctx, reminder.ID, 1850)
	require.NoError(t, err)

	assert.Equal(t, "Elektrik", bill.Title)
	assert.Equal(t, enum.ExpenseCategoryBill, bill.Category)
	assert.Equal(t, 1850.0, bill.Amount)
	assert.Equal(t, enum.ExpenseStatusPaid, bill.Status)
	assert.NotEmpty(t, bill.Date)

	// The reminder itself stays in the recurring list.
	reminders, err := svc.ListFixedExpenses(ctx)
	require.NoError(t, err)
	assert.Len(t, reminders, 1)
}

func TestPayBill_RejectsNonPositiveAmount(t *testing.T) {
	svc := newExpenseService(t)
	ctx := context.Background()

	reminder, err := svc.CreateFixedExpense(ctx, &CreateFixedExpenseInput{
		Title:      "Su",
		DayOfMonth: 15,
		Type:       enum.FixedExpenseTypeVariable,
	})
	require.NoError(t, err)

	_, err = svc.PayBill(ctx, reminder.ID, 0)
	assert.Error(t, err)
}

func TestListExpenses_FiltersByPeriodPrefix(t *testing.T) {
	svc := newExpenseService(t)
	ctx := context.Background()

	for _, date := range []string{"2025-03-01", "2025-03-28", "2025-04-02"} {
		_, err := svc.CreateExpense(ctx, &CreateExpenseInput{
			Title:    "Expense " + date,
			Amount:   100,
			Category: enum.ExpenseCategoryOther,
			Date:     date,
		})
		require.NoError(t, err)
	}

	march, err := svc.ListExpenses(ctx, "2025-03")
	require.NoError(t, err)
	assert.Len(t, march, 2)
}
