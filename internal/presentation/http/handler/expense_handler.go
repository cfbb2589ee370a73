package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/gymdesk/gymdesk-api/internal/application/service"
	"github.com/gymdesk/gymdesk-api/internal/domain/enum"
	"github.com/gymdesk/gymdesk-api/internal/presentation/http/dto/request"
	"github.com/gymdesk/gymdesk-api/internal/presentation/http/dto/response"
)

// ExpenseHandler handles expense endpoints
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// Create handles POST /expenses
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req request.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), &service.CreateExpenseInput{
		Title:            req.Title,
		Description:      req.Description,
		Amount:           req.Amount,
		Category:         enum.ExpenseCategory(req.Category),
		Date:             req.Date,
		Installments:     req.Installments,
		PaidInstallments: req.PaidInstallments,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Expense created", expense)
}

// List handles GET /expenses?period=YYYY-MM
func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), c.Query("period"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expenses retrieved", expenses)
}

// Update handles PUT /expenses/:id
func (h *ExpenseHandler) Update(c *gin.Context) {
	var req request.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input := &service.UpdateExpenseInput{
		ID:               c.Param("id"),
		Title:            req.Title,
		Description:      req.Description,
		Amount:           req.Amount,
		Date:             req.Date,
		Installments:     req.Installments,
		PaidInstallments: req.PaidInstallments,
	}
	if req.Category != nil {
		category := enum.ExpenseCategory(*req.Category)
		input.Category = &category
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense updated", expense)
}

// PayInstallment handles POST /expenses/:id/pay-installment
func (h *ExpenseHandler) PayInstallment(c *gin.Context) {
	expense, err := h.expenseService.PayInstallment(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Installment paid", expense)
}

// Delete handles DELETE /expenses/:id
func (h *ExpenseHandler) Delete(c *gin.Context) {
	if err := h.expenseService.DeleteExpense(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// CreateFixed handles POST /fixed-expenses
func (h *ExpenseHandler) CreateFixed(c *gin.Context) {
	var req request.CreateFixedExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	expense, err := h.expenseService.CreateFixedExpense(c.Request.Context(), &service.CreateFixedExpenseInput{
		Title:       req.Title,
		Amount:      req.Amount,
		Description: req.Description,
		DayOfMonth:  req.DayOfMonth,
		Type:        enum.FixedExpenseType(req.Type),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Fixed expense created", expense)
}

// ListFixed handles GET /fixed-expenses
func (h *ExpenseHandler) ListFixed(c *gin.Context) {
	expenses, err := h.expenseService.ListFixedExpenses(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Fixed expenses retrieved", expenses)
}

// UpdateFixed handles PUT /fixed-expenses/:id
func (h *ExpenseHandler) UpdateFixed(c *gin.Context) {
	var req request.UpdateFixedExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	expense, err := h.expenseService.UpdateFixedExpense(c.Request.Context(), &service.UpdateFixedExpenseInput{
		ID:          c.Param("id"),
		Title:       req.Title,
		Amount:      req.Amount,
		Description: req.Description,
		DayOfMonth:  req.DayOfMonth,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Fixed expense updated", expense)
}

// DeleteFixed handles DELETE /fixed-expenses/:id
func (h *ExpenseHandler) DeleteFixed(c *gin.Context) {
	if err := h.expenseService.DeleteFixedExpense(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// PayBill handles POST /fixed-expenses/:id/pay
func (h *ExpenseHandler) PayBill(c *gin.Context) {
	var req request.PayBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	expense, err := h.expenseService.PayBill(c.Request.Context(), c.Param("id"), req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill paid", expense)
}
