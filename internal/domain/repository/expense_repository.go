package repository

import (
	"context"

	"github.com/gymdesk/gymdesk-api/internal/domain/entity"
)

// ExpenseRepository defines the interface for one-off expense data operations
type ExpenseRepository interface {
	List(ctx context.Context) ([]entity.Expense, error)
	GetByID(ctx context.Context, id string) (*entity.Expense, error)
	Create(ctx context.Context, expense *entity.Expense) error
	Update(ctx context.Context, expense *entity.Expense) error
	Delete(ctx context.Context, id string) error
}

// FixedExpenseRepository defines the interface for recurring expense data operations
type FixedExpenseRepository interface {
	List(ctx context.Context) ([]entity.FixedExpense, error)
	GetByID(ctx context.Context, id string) (*entity.FixedExpense, error)
	Create(ctx context.Context, expense *entity.FixedExpense) error
	Update(ctx context.Context, expense *entity.FixedExpense) error
	Delete(ctx context.Context, id string) error
}
