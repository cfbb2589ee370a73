package repository

import (
	"context"
	"fmt"

	"github.com/gymdesk/gymdesk-api/internal/domain/entity"
	"github.com/gymdesk/gymdesk-api/internal/domain/repository"
	"github.com/gymdesk/gymdesk-api/internal/infrastructure/storage"
)

type expenseRepository struct {
	col *collection[entity.Expense]
}

// NewExpenseRepository creates a new expense repository over the store.
func NewExpenseRepository(store storage.Store) repository.ExpenseRepository {
	return &expenseRepository{col: newCollection[entity.Expense](store, storage.KeyExpenses)}
}

func (r *expenseRepository) List(ctx context.Context) ([]entity.Expense, error) {
	return r.col.load(ctx)
}

func (r *expenseRepository) GetByID(ctx context.Context, id string) (*entity.Expense, error) {
	expenses, err := r.col.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range expenses {
		if expenses[i].ID == id {
			return &expenses[i], nil
		}
	}
	return nil, nil
}

func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	return r.col.mutate(ctx, func(expenses []entity.Expense) ([]entity.Expense, error) {
		return append(expenses, *expense), nil
	})
}

func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	return r.col.mutate(ctx, func(expenses []entity.Expense) ([]entity.Expense, error) {
		for i := range expenses {
			if expenses[i].ID == expense.ID {
				expenses[i] = *expense
				return expenses, nil
			}
		}
		return nil, fmt.Errorf("expense %s not found", expense.ID)
	})
}

func (r *expenseRepository) Delete(ctx context.Context, id string) error {
	return r.col.mutate(ctx, func(expenses []entity.Expense) ([]entity.Expense, error) {
		for i := range expenses {
			if expenses[i].ID == id {
				return append(expenses[:i], expenses[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("expense %s not found", id)
	})
}

type fixedExpenseRepository struct {
	col *collection[entity.FixedExpense]
}

// NewFixedExpenseRepository creates a new recurring expense repository over the store.
func NewFixedExpenseRepository(store storage.Store) repository.FixedExpenseRepository {
	return &fixedExpenseRepository{col: newCollection[entity.FixedExpense](store, storage.KeyFixedExpenses)}
}

func (r *fixedExpenseRepository) List(ctx context.Context) ([]entity.FixedExpense, error) {
	return r.col.load(ctx)
}

func (r *fixedExpenseRepository) GetByID(ctx context.Context, id string) (*entity.FixedExpense, error) {
	expenses, err := r.col.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range expenses {
		if expenses[i].ID == id {
			return &expenses[i], nil
		}
	}
	return nil, nil
}

func (r *fixedExpenseRepository) Create(ctx context.Context, expense *entity.FixedExpense) error {
	return r.col.mutate(ctx, func(expenses []entity.FixedExpense) ([]entity.FixedExpense, error) {
		return append(expenses, *expense), nil
	})
}

func (r *fixedExpenseRepository) Update(ctx context.Context, expense *entity.FixedExpense) error {
	return r.col.mutate(ctx, func(expenses []entity.FixedExpense) ([]entity.FixedExpense, error) {
		for i := range expenses {
			if expenses[i].ID == expense.ID {
				expenses[i] = *expense
				return expenses, nil
			}
		}
		return nil, fmt.Errorf("fixed expense %s not found", expense.ID)
	})
}

func (r *fixedExpenseRepository) Delete(ctx context.Context, id string) error {
	return r.col.mutate(ctx, func(expenses []entity.FixedExpense) ([]entity.FixedExpense, error) {
		for i := range expenses {
			if expenses[i].ID == id {
				return append(expenses[:i], expenses[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("fixed expense %s not found", id)
	})
}
