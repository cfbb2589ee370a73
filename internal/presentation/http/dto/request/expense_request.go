package request

// CreateExpenseRequest represents an expense creation request
type CreateExpenseRequest struct {
	Title            string  `json:"title" binding:"required,min=2,max=255"`
	Description      string  `json:"description"`
	Amount           float64 `json:"amount" binding:"required,min=0"`
	Category         string  `json:"category" binding:"required,oneof=rent bill salary maintenance stock_purchase consumable tax other"`
	Date             string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Installments     int     `json:"installments" binding:"omitempty,min=1"`
	PaidInstallments int     `json:"paid_installments" binding:"omitempty,min=0"`
}

// UpdateExpenseRequest represents an expense update request
type UpdateExpenseRequest struct {
	Title            *string  `json:"title" binding:"omitempty,min=2,max=255"`
	Description      *string  `json:"description"`
	Amount           *float64 `json:"amount" binding:"omitempty,min=0"`
	Category         *string  `json:"category" binding:"omitempty,oneof=rent bill salary maintenance stock_purchase consumable tax other"`
	Date             *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Installments     *int     `json:"installments" binding:"omitempty,min=1"`
	PaidInstallments *int     `json:"paid_installments" binding:"omitempty,min=0"`
}

// CreateFixedExpenseRequest represents a recurring expense creation request
type CreateFixedExpenseRequest struct {
	Title       string  `json:"title" binding:"required,min=2,max=255"`
	Amount      float64 `json:"amount" binding:"omitempty,min=0"`
	Description string  `json:"description"`
	DayOfMonth  int     `json:"day_of_month" binding:"required,min=1,max=31"`
	Type        string  `json:"type" binding:"required,oneof=fixed variable"`
}

// UpdateFixedExpenseRequest represents a recurring expense update request
type UpdateFixedExpenseRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=2,max=255"`
	Amount      *float64 `json:"amount" binding:"omitempty,min=0"`
	Description *string  `json:"description"`
	DayOfMonth  *int     `json:"day_of_month" binding:"omitempty,min=1,max=31"`
}

// PayBillRequest represents a bill payment request
type PayBillRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}
