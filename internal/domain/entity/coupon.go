package entity

// Coupon is a percentage discount code applied to a POS cart's gross
// total at checkout.
type Coupon struct {
	ID           string  `json:"id"`
	Code         string  `json:"code"`
	DiscountRate float64 `json:"discountRate"` // percent
	IsActive     bool    `json:"isActive"`
}

// CommissionRate maps a card-payment installment count to the bank
// commission percentage surcharged on the cart total.
type CommissionRate struct {
	Installments int     `json:"installments"`
	Rate         float64 `json:"rate"` // percent
}
