package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/gymdesk/gymdesk-api/internal/application/service"
	"github.com/gymdesk/gymdesk-api/internal/config"
	"github.com/gymdesk/gymdesk-api/internal/infrastructure/repository"
	"github.com/gymdesk/gymdesk-api/internal/infrastructure/storage"
	"github.com/gymdesk/gymdesk-api/internal/presentation/http/handler"
	"github.com/gymdesk/gymdesk-api/internal/presentation/http/routes"
	"github.com/gymdesk/gymdesk-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the collection store
	store, err := newStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open collection store: %v", err)
	}

	// Seed default data
	if err := repository.SeedDefaultData(context.Background(), store); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	memberRepo := repository.NewMemberRepository(store)
	packageRepo := repository.NewPackageRepository(store)
	serviceRepo := repository.NewServiceRepository(store)
	staffRepo := repository.NewStaffRepository(store)
	appointmentRepo := repository.NewAppointmentRepository(store)
	groupRepo := repository.NewGroupRepository(store)
	expenseRepo := repository.NewExpenseRepository(store)
	fixedExpenseRepo := repository.NewFixedExpenseRepository(store)
	productRepo := repository.NewProductRepository(store)
	saleRepo := repository.NewProductSaleRepository(store)
	couponRepo := repository.NewCouponRepository(store)
	commissionRepo := repository.NewCommissionRateRepository(store)

	// Initialize services
	authService := service.NewAuthService(staffRepo, jwtManager)
	memberService := service.NewMemberService(memberRepo, packageRepo)
	packageService := service.NewPackageService(packageRepo, serviceRepo)
	staffService := service.NewStaffService(staffRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, groupRepo, memberRepo, staffRepo)
	expenseService := service.NewExpenseService(expenseRepo, fixedExpenseRepo)
	storeService := service.NewStoreService(productRepo, saleRepo, couponRepo, commissionRepo)
	financialsService := service.NewFinancialsService(
		memberRepo, packageRepo, productRepo, saleRepo,
		expenseRepo, fixedExpenseRepo, staffRepo, appointmentRepo,
	)
	settingsService := service.NewSettingsService(commissionRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Member:      handler.NewMemberHandler(memberService),
		Package:     handler.NewPackageHandler(packageService),
		Staff:       handler.NewStaffHandler(staffService),
		Appointment: handler.NewAppointmentHandler(appointmentService),
		Expense:     handler.NewExpenseHandler(expenseService),
		Store:       handler.NewStoreHandler(storeService),
		Financials:  handler.NewFinancialsHandler(financialsService),
		Settings:    handler.NewSettingsHandler(settingsService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	// Start server
	port := cfg.App.Port
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}

	log.Printf("Starting %s on port %s (storage driver: %s)", cfg.App.Name, port, cfg.Storage.Driver)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// newStore opens the configured collection store driver.
func newStore(cfg *config.Config) (storage.Store, error) {
	if cfg.Storage.Driver == "postgres" {
		return storage.NewPostgresStore(cfg.Database.DSN())
	}
	return storage.NewFileStore(cfg.Storage.Path)
}
