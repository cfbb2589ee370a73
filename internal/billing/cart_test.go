package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymdesk/gymdesk-api/internal/domain/entity"
	"github.com/gymdesk/gymdesk-api/internal/domain/enum"
)

func testProduct(id string, price float64, taxRate int) entity.Product {
	return entity.Product{
		ID:       id,
		Name:     "Product " + id,
		Category: enum.ProductCategorySupplement,
		Price:    price,
		Stock:    100,
		TaxRate:  taxRate,
	}
}

func defaultRates() []entity.CommissionRate {
	return []entity.CommissionRate{
		{Installments: 1, Rate: 0},
		{Installments: 3, Rate: 5},
		{Installments: 6, Rate: 10},
		{Installments: 9, Rate: 15},
		{Installments: 12, Rate: 20},
	}
}

func TestPriceCart_CashNoDiscount(t *testing.T) {
	lines := []CartLine{{Product: testProduct("p1", 100, 20), Quantity: 2}}

	total := PriceCart(lines, CartOptions{PaymentMethod: enum.PaymentMethodCash})

	assert.Equal(t, 240.0, total.RawGrossTotal)
	assert.Equal(t, 240.0, total.EffectiveGrossTotal, "no discount leaves gross unchanged")
	assert.InDelta(t, 40.0, total.TotalVAT, 1e-6)
	assert.InDelta(t, 200.0, total.DiscountedSubTotal, 1e-6)
	assert.Zero(t, total.CommissionAmount)
	assert.Equal(t, 240.0, total.FinalTotal)
}

func TestPriceCart_CouponDiscount(t *testing.T) {
	lines := []CartLine{{Product: testProduct("p1", 100, 20), Quantity: 2}}
	coupon := &entity.Coupon{ID: "c1", Code: "PROMO10", DiscountRate: 10, IsActive: true}

	total := PriceCart(lines, CartOptions{Coupon: coupon, PaymentMethod: enum.PaymentMethodCash})

	assert.InDelta(t, 24.0, total.CouponDiscount, 1e-6)
	assert.InDelta(t, 216.0, total.EffectiveGrossTotal, 1e-6)
	assert.InDelta(t, 0.9, total.DiscountRatio, 1e-6)
	assert.InDelta(t, 36.0, total.TotalVAT, 1e-6)
	assert.InDelta(t, 216.0, total.FinalTotal, 1e-6)
}

func TestPriceCart_ManualDiscountIsFlatAmount(t *testing.T) {
	lines := []CartLine{{Product: testProduct("p1", 100, 20), Quantity: 1}}

	total := PriceCart(lines, CartOptions{ManualDiscount: 20, PaymentMethod: enum.PaymentMethodCash})

	assert.Equal(t, 120.0, total.RawGrossTotal)
	assert.InDelta(t, 100.0, total.EffectiveGrossTotal, 1e-6)
	assert.InDelta(t, total.EffectiveGrossTotal, total.DiscountedSubTotal+total.TotalVAT, 1e-6)
}

func TestPriceCart_VATIdentityAcrossMixedRates(t *testing.T) {
	lines := []CartLine{
		{Product: testProduct("p1", 100, 20), Quantity: 2},
		{Product: testProduct("p2", 50, 10), Quantity: 3},
		{Product: testProduct("p3", 80, 0), Quantity: 1},
		{Product: testProduct("p4", 10, 1), Quantity: 5},
	}
	coupon := &entity.Coupon{ID: "c1", Code: "YAZINDIRIMI", DiscountRate: 20, IsActive: true}

	total := PriceCart(lines, CartOptions{
		ManualDiscount: 15,
		Coupon:         coupon,
		PaymentMethod:  enum.PaymentMethodCash,
	})

	assert.InDelta(t, total.EffectiveGrossTotal, total.DiscountedSubTotal+total.TotalVAT, 1e-6)

	// One breakdown bucket per distinct rate.
	require.Len(t, total.VATBreakdown, 4)
	assert.Zero(t, total.VATBreakdown[0], "0% lines carry no VAT")
}

func TestPriceCart_EmptyCart(t *testing.T) {
	total := PriceCart(nil, CartOptions{PaymentMethod: enum.PaymentMethodCard, Installments: 6, CommissionRates: defaultRates()})

	assert.Zero(t, total.RawGrossTotal)
	assert.Equal(t, 1.0, total.DiscountRatio, "empty cart must not divide by zero")
	assert.Zero(t, total.FinalTotal)
}

func TestPriceCart_FullDiscountClampsToZero(t *testing.T) {
	lines := []CartLine{{Product: testProduct("p1", 100, 20), Quantity: 1}}

	total := PriceCart(lines, CartOptions{ManualDiscount: 500, PaymentMethod: enum.PaymentMethodCash})

	assert.Zero(t, total.EffectiveGrossTotal)
	assert.Zero(t, total.DiscountRatio)
	assert.Zero(t, total.TotalVAT)
	assert.Zero(t, total.FinalTotal)
	assert.InDelta(t, total.EffectiveGrossTotal, total.DiscountedSubTotal+total.TotalVAT, 1e-6)
}

func TestPriceCart_CardCommission(t *testing.T) {
	lines := []CartLine{{Product: testProduct("p1", 100, 20), Quantity: 2}}

	total := PriceCart(lines, CartOptions{
		PaymentMethod:   enum.PaymentMethodCard,
		Installments:    6,
		CommissionRates: defaultRates(),
	})

	assert.Equal(t, 10.0, total.CommissionRate)
	assert.InDelta(t, 24.0, total.CommissionAmount, 1e-6)
	assert.InDelta(t, 264.0, total.FinalTotal, 1e-6)
}

func TestPriceCart_UnknownInstallmentTierDefaultsToZero(t *testing.T) {
	lines := []CartLine{{Product: testProduct("p1", 100, 20), Quantity: 1}}

	total := PriceCart(lines, CartOptions{
		PaymentMethod:   enum.PaymentMethodCard,
		Installments:    7, // not in the table
		CommissionRates: defaultRates(),
	})

	assert.Zero(t, total.CommissionRate)
	assert.Equal(t, total.EffectiveGrossTotal, total.FinalTotal)
}

func TestPriceCart_CashIgnoresInstallments(t *testing.T) {
	lines := []CartLine{{Product: testProduct("p1", 100, 20), Quantity: 1}}

	total := PriceCart(lines, CartOptions{
		PaymentMethod:   enum.PaymentMethodCash,
		Installments:    12,
		CommissionRates: defaultRates(),
	})

	assert.Zero(t, total.CommissionAmount, "commission only applies to card payments")
}
