package request

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name     string  `json:"name" binding:"required,min=2,max=255"`
	Category string  `json:"category" binding:"required,oneof=supplement drink clothing equipment other"`
	Price    float64 `json:"price" binding:"required,min=0"`
	Stock    int     `json:"stock" binding:"omitempty,min=0"`
	Cost     float64 `json:"cost" binding:"omitempty,min=0"`
	TaxRate  int     `json:"tax_rate"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name    *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Price   *float64 `json:"price" binding:"omitempty,min=0"`
	Stock   *int     `json:"stock" binding:"omitempty,min=0"`
	Cost    *float64 `json:"cost" binding:"omitempty,min=0"`
	TaxRate *int     `json:"tax_rate"`
}

// RestockItemRequest is one line of a bulk restock request
type RestockItemRequest struct {
	ProductID string   `json:"product_id" binding:"required"`
	AddStock  int      `json:"add_stock" binding:"omitempty,min=0"`
	NewCost   *float64 `json:"new_cost" binding:"omitempty,min=0"`
}

// RestockRequest represents a bulk stock/cost update request
type RestockRequest struct {
	Items []RestockItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CreateCouponRequest represents a coupon creation request
type CreateCouponRequest struct {
	Code         string  `json:"code" binding:"required,min=2,max=50"`
	DiscountRate float64 `json:"discount_rate" binding:"required,gt=0,max=100"`
}

// CheckoutItemRequest is one line of a checkout request
type CheckoutItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// CheckoutRequest represents a POS checkout request
type CheckoutRequest struct {
	Items          []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
	ManualDiscount float64               `json:"manual_discount" binding:"omitempty,min=0"`
	CouponCode     string                `json:"coupon_code"`
	PaymentMethod  string                `json:"payment_method" binding:"required,oneof=cash card transfer"`
	Installments   int                   `json:"installments" binding:"omitempty,min=1"`
}

// SetCommissionRateRequest represents a commission tier update request
type SetCommissionRateRequest struct {
	Installments int     `json:"installments" binding:"required,min=1"`
	Rate         float64 `json:"rate" binding:"min=0,max=100"`
}
