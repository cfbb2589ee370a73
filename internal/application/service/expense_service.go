package service

import (
	"context"

	"github.com/gymdesk/gymdesk-api/internal/domain/entity"
	"github.com/gymdesk/gymdesk-api/internal/domain/enum"
	"github.com/gymdesk/gymdesk-api/internal/domain/repository"
	"github.com/gymdesk/gymdesk-api/pkg/apperror"
	"github.com/gymdesk/gymdesk-api/pkg/utils"
)

// ExpenseService handles one-off and recurring expense operations
type ExpenseService struct {
	expenseRepo      repository.ExpenseRepository
	fixedExpenseRepo repository.FixedExpenseRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository, fixedExpenseRepo repository.FixedExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo, fixedExpenseRepo: fixedExpenseRepo}
}

// CreateExpenseInput represents the create expense input
type CreateExpenseInput struct {
	Title            string
	Description      string
	Amount           float64
	Category         enum.ExpenseCategory
	Date             string // defaults to today
	Installments     int
	PaidInstallments int
}

// CreateExpense records a one-off expense. The payment status is
// derived from the installment counters, never taken from the caller.
func (s *ExpenseService) CreateExpense(ctx context.Context, input *CreateExpenseInput) (*entity.Expense, error) {
	if input.Title == "" {
		return nil, apperror.NewBadRequestError("Expense title is required")
	}
	if input.Amount < 0 {
		return nil, apperror.NewBadRequestError("Expense amount cannot be negative")
	}

	date := input.Date
	if date == "" {
		date = utils.Today()
	}

	expense := &entity.Expense{
		ID:               utils.NewID(),
		Title:            input.Title,
		Description:      input.Description,
		Amount:           input.Amount,
		Category:         input.Category,
		Date:             date,
		Installments:     input.Installments,
		PaidInstallments: input.PaidInstallments,
	}
	expense.NormalizeStatus()

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// ListExpenses lists expenses, optionally filtered to one "YYYY-MM"
// period.
func (s *ExpenseService) ListExpenses(ctx context.Context, period string) ([]entity.Expense, error) {
	expenses, err := s.expenseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if period == "" {
		return expenses, nil
	}
	filtered := expenses[:0]
	for _, e := range expenses {
		if e.InPeriod(period) {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// UpdateExpenseInput represents the update expense input
type UpdateExpenseInput struct {
	ID               string
	Title            *string
	Description      *string
	Amount           *float64
	Category         *enum.ExpenseCategory
	Date             *string
	Installments     *int
	PaidInstallments *int
}

// UpdateExpense updates an expense, renormalizing the derived status.
func (s *ExpenseService) UpdateExpense(ctx context.Context, input *UpdateExpenseInput) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}

	if input.Title != nil {
		expense.Title = *input.Title
	}
	if input.Description != nil {
		expense.Description = *input.Description
	}
	if input.Amount != nil {
		if *input.Amount < 0 {
			return nil, apperror.NewBadRequestError("Expense amount cannot be negative")
		}
		expense.Amount = *input.Amount
	}
	if input.Category != nil {
		expense.Category = *input.Category
	}
	if input.Date != nil {
		expense.Date = *input.Date
	}
	if input.Installments != nil {
		expense.Installments = *input.Installments
	}
	if input.PaidInstallments != nil {
		expense.PaidInstallments = *input.PaidInstallments
	}
	expense.NormalizeStatus()

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// PayInstallment records one more paid installment on an expense.
func (s *ExpenseService) PayInstallment(ctx context.Context, id string) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}

	expense.PaidInstallments++
	expense.NormalizeStatus()

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// DeleteExpense deletes an expense
func (s *ExpenseService) DeleteExpense(ctx context.Context, id string) error {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if expense == nil {
		return apperror.NewNotFoundError("Expense")
	}
	return s.expenseRepo.Delete(ctx, id)
}

// CreateFixedExpenseInput represents the create fixed expense input
type CreateFixedExpenseInput struct {
	Title       string
	Amount      float64
	Description string
	DayOfMonth  int
	Type        enum.FixedExpenseType
}

// CreateFixedExpense records a recurring monthly cost.
func (s *ExpenseService) CreateFixedExpense(ctx context.Context, input *CreateFixedExpenseInput) (*entity.FixedExpense, error) {
	if input.Title == "" {
		return nil, apperror.NewBadRequestError("Expense title is required")
	}
	if input.Type == enum.FixedExpenseTypeFixed && input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Fixed expenses require a positive amount")
	}
	if input.DayOfMonth < 1 || input.DayOfMonth > 31 {
		return nil, apperror.NewBadRequestError("Day of month must be between 1 and 31")
	}

	expense := &entity.FixedExpense{
		ID:          utils.NewID(),
		Title:       input.Title,
		Amount:      input.Amount,
		Description: input.Description,
		DayOfMonth:  input.DayOfMonth,
		Type:        input.Type,
	}

	if err := s.fixedExpenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// ListFixedExpenses lists recurring expenses
func (s *ExpenseService) ListFixedExpenses(ctx context.Context) ([]entity.FixedExpense, error) {
	return s.fixedExpenseRepo.List(ctx)
}

// UpdateFixedExpenseInput represents the update fixed expense input
type UpdateFixedExpenseInput struct {
	ID          string
	Title       *string
	Amount      *float64
	Description *string
	DayOfMonth  *int
}

// UpdateFixedExpense updates a recurring expense
func (s *ExpenseService) UpdateFixedExpense(ctx context.Context, input *UpdateFixedExpenseInput) (*entity.FixedExpense, error) {
	expense, err := s.fixedExpenseRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Fixed expense")
	}

	if input.Title != nil {
		expense.Title = *input.Title
	}
	if input.Amount != nil {
		expense.Amount = *input.Amount
	}
	if input.Description != nil {
		expense.Description = *input.Description
	}
	if input.DayOfMonth != nil {
		expense.DayOfMonth = *input.DayOfMonth
	}

	if err := s.fixedExpenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// DeleteFixedExpense deletes a recurring expense
func (s *ExpenseService) DeleteFixedExpense(ctx context.Context, id string) error {
	expense, err := s.fixedExpenseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if expense == nil {
		return apperror.NewNotFoundError("Fixed expense")
	}
	return s.fixedExpenseRepo.Delete(ctx, id)
}

// PayBill records a bill payment against a variable fixed expense: the
// reminder itself stays untouched and a normal bill-category expense is
// written, dated today.
func (s *ExpenseService) PayBill(ctx context.Context, fixedExpenseID string, amount float64) (*entity.Expense, error) {
	reminder, err := s.fixedExpenseRepo.GetByID(ctx, fixedExpenseID)
	if err != nil {
		return nil, err
	}
	if reminder == nil {
		return nil, apperror.NewNotFoundError("Fixed expense")
	}
	if amount <= 0 {
		return nil, apperror.NewBadRequestError("Bill amount must be positive")
	}

	expense := &entity.Expense{
		ID:               utils.NewID(),
		Title:            reminder.Title,
		Amount:           amount,
		Category:         enum.ExpenseCategoryBill,
		Date:             utils.Today(),
		Installments:     1,
		PaidInstallments: 1,
	}
	expense.NormalizeStatus()

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}
