package repository

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/gymdesk/gymdesk-api/internal/domain/entity"
	"github.com/gymdesk/gymdesk-api/internal/domain/enum"
	"github.com/gymdesk/gymdesk-api/internal/infrastructure/storage"
	"github.com/gymdesk/gymdesk-api/pkg/utils"
)

// SeedDefaultData populates an empty store with the defaults a fresh
// installation needs: the installment commission table, the recurring
// bill reminders and an admin account to log in with. Collections that
// already hold data are left untouched.
func SeedDefaultData(ctx context.Context, store storage.Store) error {
	if err := seedCommissionRates(ctx, store); err != nil {
		return err
	}
	if err := seedFixedExpenses(ctx, store); err != nil {
		return err
	}
	if err := seedAdminAccount(ctx, store); err != nil {
		return err
	}
	log.Println("Default data seeding completed")
	return nil
}

func seedCommissionRates(ctx context.Context, store storage.Store) error {
	repo := NewCommissionRateRepository(store)
	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	defaults := []entity.CommissionRate{
		{Installments: 1, Rate: 0},
		{Installments: 3, Rate: 5},
		{Installments: 6, Rate: 10},
		{Installments: 9, Rate: 15},
		{Installments: 12, Rate: 20},
	}
	for i := range defaults {
		if err := repo.Upsert(ctx, &defaults[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedFixedExpenses(ctx context.Context, store storage.Store) error {
	repo := NewFixedExpenseRepository(store)
	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	defaults := []entity.FixedExpense{
		{ID: utils.NewID(), Title: "Kira", Amount: 0, DayOfMonth: 1, Type: enum.FixedExpenseTypeFixed},
		{ID: utils.NewID(), Title: "Elektrik", DayOfMonth: 15, Type: enum.FixedExpenseTypeVariable},
		{ID: utils.NewID(), Title: "Su", DayOfMonth: 15, Type: enum.FixedExpenseTypeVariable},
		{ID: utils.NewID(), Title: "Dogalgaz", DayOfMonth: 15, Type: enum.FixedExpenseTypeVariable},
		{ID: utils.NewID(), Title: "Internet", DayOfMonth: 20, Type: enum.FixedExpenseTypeVariable},
	}
	for i := range defaults {
		if err := repo.Create(ctx, &defaults[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedAdminAccount(ctx context.Context, store storage.Store) error {
	repo := NewStaffRepository(store)
	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("change-me-on-first-login"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &entity.Staff{
		ID:           utils.NewID(),
		Name:         "Admin",
		Role:         enum.RoleAdmin,
		Email:        "admin@gymdesk.local",
		PasswordHash: string(hash),
		PaymentConfig: entity.PaymentConfig{
			Model: enum.PaymentModelSalaried,
		},
	}
	if err := repo.Create(ctx, admin); err != nil {
		return err
	}
	log.Println("Seeded default admin account admin@gymdesk.local")
	return nil
}
