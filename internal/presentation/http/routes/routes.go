package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gymdesk/gymdesk-api/internal/config"
	"github.com/gymdesk/gymdesk-api/internal/domain/enum"
	"github.com/gymdesk/gymdesk-api/internal/presentation/http/handler"
	"github.com/gymdesk/gymdesk-api/internal/presentation/http/middleware"
	"github.com/gymdesk/gymdesk-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Member      *handler.MemberHandler
	Package     *handler.PackageHandler
	Staff       *handler.StaffHandler
	Appointment *handler.AppointmentHandler
	Expense     *handler.ExpenseHandler
	Store       *handler.StoreHandler
	Financials  *handler.FinancialsHandler
	Settings    *handler.SettingsHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-staff rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Auth/Profile routes
	protected.GET("/auth/me", h.Auth.Me)
	protected.POST("/auth/change-password", h.Auth.ChangePassword)

	// Members
	members := protected.Group("/members")
	{
		members.GET("", middleware.RequirePermission(string(enum.PermViewMember)), h.Member.List)
		members.POST("", middleware.RequirePermission(string(enum.PermAddMember)), h.Member.Create)
		members.GET("/:id", middleware.RequirePermission(string(enum.PermViewMember)), h.Member.Get)
		members.PUT("/:id", middleware.RequirePermission(string(enum.PermEditMember)), h.Member.Update)
		members.POST("/:id/renew", middleware.RequirePermission(string(enum.PermEditMember)), h.Member.Renew)
		members.PUT("/:id/health", middleware.RequirePermission(string(enum.PermEditMember)), h.Member.SetHealth)
		members.POST("/:id/measurements", middleware.RequirePermission(string(enum.PermEditMember)), h.Member.AddMeasurement)
		members.DELETE("/:id", middleware.RequirePermission(string(enum.PermDeleteMember)), h.Member.Delete)
	}

	// Services and packages
	services := protected.Group("/services")
	{
		services.GET("", middleware.RequirePermission(string(enum.PermViewPackages)), h.Package.ListServices)
		services.POST("", middleware.RequirePermission(string(enum.PermManagePackages)), h.Package.CreateService)
		services.PUT("/:id", middleware.RequirePermission(string(enum.PermManagePackages)), h.Package.UpdateService)
		services.DELETE("/:id", middleware.RequirePermission(string(enum.PermManagePackages)), h.Package.DeleteService)
	}
	packages := protected.Group("/packages")
	{
		packages.GET("", middleware.RequirePermission(string(enum.PermViewPackages)), h.Package.ListPackages)
		packages.POST("", middleware.RequirePermission(string(enum.PermManagePackages)), h.Package.CreatePackage)
		packages.GET("/:id", middleware.RequirePermission(string(enum.PermViewPackages)), h.Package.GetPackage)
		packages.PUT("/:id", middleware.RequirePermission(string(enum.PermManagePackages)), h.Package.UpdatePackage)
		packages.DELETE("/:id", middleware.RequirePermission(string(enum.PermManagePackages)), h.Package.DeletePackage)
	}

	// Staff
	staff := protected.Group("/staff")
	{
		staff.GET("", middleware.RequirePermission(string(enum.PermViewStaff)), h.Staff.List)
		staff.POST("", middleware.RequirePermission(string(enum.PermManageStaff)), h.Staff.Create)
		staff.GET("/:id", middleware.RequirePermission(string(enum.PermViewStaff)), h.Staff.Get)
		staff.PUT("/:id", middleware.RequirePermission(string(enum.PermManageStaff)), h.Staff.Update)
		staff.DELETE("/:id", middleware.RequirePermission(string(enum.PermManageStaff)), h.Staff.Delete)
	}

	// Appointments and groups
	appointments := protected.Group("/appointments")
	{
		appointments.GET("", middleware.RequirePermission(string(enum.PermViewSchedule)), h.Appointment.List)
		appointments.POST("", middleware.RequirePermission(string(enum.PermAddAppointment)), h.Appointment.Create)
		appointments.POST("/:id/reschedule", middleware.RequirePermission(string(enum.PermAddAppointment)), h.Appointment.Reschedule)
		appointments.POST("/:id/cancel", middleware.RequirePermission(string(enum.PermAddAppointment)), h.Appointment.Cancel)
		appointments.POST("/:id/complete", middleware.RequirePermission(string(enum.PermAddAppointment)), h.Appointment.Complete)
		appointments.DELETE("/:id", middleware.RequirePermission(string(enum.PermAddAppointment)), h.Appointment.Delete)
	}
	groups := protected.Group("/groups")
	{
		groups.GET("", middleware.RequirePermission(string(enum.PermViewSchedule)), h.Appointment.ListGroups)
		groups.POST("/join", middleware.RequirePermission(string(enum.PermAddAppointment)), h.Appointment.JoinGroup)
	}

	// Expenses
	expenses := protected.Group("/expenses")
	expenses.Use(middleware.RequirePermission(string(enum.PermManageFinancials)))
	{
		expenses.GET("", h.Expense.List)
		expenses.POST("", h.Expense.Create)
		expenses.PUT("/:id", h.Expense.Update)
		expenses.POST("/:id/pay-installment", h.Expense.PayInstallment)
		expenses.DELETE("/:id", h.Expense.Delete)
	}
	fixedExpenses := protected.Group("/fixed-expenses")
	fixedExpenses.Use(middleware.RequirePermission(string(enum.PermManageFinancials)))
	{
		fixedExpenses.GET("", h.Expense.ListFixed)
		fixedExpenses.POST("", h.Expense.CreateFixed)
		fixedExpenses.PUT("/:id", h.Expense.UpdateFixed)
		fixedExpenses.POST("/:id/pay", h.Expense.PayBill)
		fixedExpenses.DELETE("/:id", h.Expense.DeleteFixed)
	}

	// Store
	store := protected.Group("/store")
	store.Use(middleware.RequirePermission(string(enum.PermViewStore)))
	{
		store.GET("/products", h.Store.ListProducts)
		store.POST("/products", h.Store.CreateProduct)
		store.PUT("/products/:id", h.Store.UpdateProduct)
		store.POST("/products/restock", h.Store.Restock)
		store.DELETE("/products/:id", h.Store.DeleteProduct)

		store.GET("/coupons", h.Store.ListCoupons)
		store.POST("/coupons", h.Store.CreateCoupon)
		store.POST("/coupons/:id/deactivate", h.Store.DeactivateCoupon)
		store.DELETE("/coupons/:id", h.Store.DeleteCoupon)

		store.POST("/cart/preview", h.Store.PreviewCart)
		store.POST("/checkout", h.Store.Checkout)
		store.GET("/sales", h.Store.ListSales)
	}

	// Financials
	financials := protected.Group("/financials")
	financials.Use(middleware.RequirePermission(string(enum.PermViewFinancials)))
	{
		financials.GET("", h.Financials.Summary)
		financials.GET("/export", h.Financials.ExportSummary)
		financials.GET("/staff-earnings/export", h.Financials.ExportStaffEarnings)
	}

	// Settings
	settings := protected.Group("/settings")
	{
		settings.GET("/commission-rates", middleware.RequirePermission(string(enum.PermViewSettings)), h.Settings.ListCommissionRates)
		settings.PUT("/commission-rates", middleware.RequirePermission(string(enum.PermManageSettings)), h.Settings.SetCommissionRate)
		settings.DELETE("/commission-rates/:installments", middleware.RequirePermission(string(enum.PermManageSettings)), h.Settings.DeleteCommissionRate)
	}
}
