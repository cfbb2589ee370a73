package enum

// ExpenseCategory classifies a one-off expense
type ExpenseCategory string

const (
	ExpenseCategoryRent          ExpenseCategory = "rent"
	ExpenseCategoryBill          ExpenseCategory = "bill"
	ExpenseCategorySalary        ExpenseCategory = "salary"
	ExpenseCategoryMaintenance   ExpenseCategory = "maintenance"
	ExpenseCategoryStockPurchase ExpenseCategory = "stock_purchase"
	ExpenseCategoryConsumable    ExpenseCategory = "consumable"
	ExpenseCategoryTax           ExpenseCategory = "tax"
	ExpenseCategoryOther         ExpenseCategory = "other"
)

// IsValid checks if the category is a known value
func (c ExpenseCategory) IsValid() bool {
	switch c {
	case ExpenseCategoryRent, ExpenseCategoryBill, ExpenseCategorySalary,
		ExpenseCategoryMaintenance, ExpenseCategoryStockPurchase,
		ExpenseCategoryConsumable, ExpenseCategoryTax, ExpenseCategoryOther:
		return true
	}
	return false
}

// ExpenseStatus is derived from the installment counters:
// paid iff paidInstallments >= installments.
type ExpenseStatus string

const (
	ExpenseStatusPending ExpenseStatus = "pending"
	ExpenseStatusPaid    ExpenseStatus = "paid"
)

// FixedExpenseType distinguishes recurring fixed-amount costs from
// bill reminders whose amount is entered only when paid.
type FixedExpenseType string

const (
	FixedExpenseTypeFixed    FixedExpenseType = "fixed"
	FixedExpenseTypeVariable FixedExpenseType = "variable"
)
