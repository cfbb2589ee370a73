package billing

import (
	"github.com/gymdesk/gymdesk-api/internal/domain/entity"
	"github.com/gymdesk/gymdesk-api/internal/domain/enum"
)

// CartLine is one product and quantity in the POS cart.
type CartLine struct {
	Product  entity.Product
	Quantity int
}

// CartOptions carries the discount and payment choices made at checkout.
type CartOptions struct {
	// ManualDiscount is a flat currency amount, not a percentage.
	ManualDiscount float64
	// Coupon, when non-nil, deducts Coupon.DiscountRate percent of the
	// gross total.
	Coupon          *entity.Coupon
	PaymentMethod   enum.PaymentMethod
	Installments    int
	CommissionRates []entity.CommissionRate
}

// CartTotal is the full checkout breakdown.
type CartTotal struct {
	RawGrossTotal       float64         `json:"rawGrossTotal"`
	CouponDiscount      float64         `json:"couponDiscount"`
	TotalDiscount       float64         `json:"totalDiscount"`
	EffectiveGrossTotal float64         `json:"effectiveGrossTotal"`
	DiscountRatio       float64         `json:"discountRatio"`
	VATBreakdown        map[int]float64 `json:"vatBreakdown"` // tax rate -> VAT amount
	TotalVAT            float64         `json:"totalVat"`
	DiscountedSubTotal  float64         `json:"discountedSubTotal"`
	CommissionRate      float64         `json:"commissionRate"`
	CommissionAmount    float64         `json:"commissionAmount"`
	FinalTotal          float64         `json:"finalTotal"`
}

// PriceCart computes the checkout total for a cart.
//
// The discount applies to the VAT-inclusive gross total and is then
// backed out per line to keep the per-rate VAT breakdown consistent
// with the discounted amount: each line's gross is scaled by the
// discount ratio, the net is recovered by dividing out its tax rate,
// and the difference is that line's VAT. This keeps the invariant
// discountedSubTotal + totalVAT == effectiveGrossTotal for every
// input, including empty carts and 100% discounts.
func PriceCart(lines []CartLine, opts CartOptions) CartTotal {
	total := CartTotal{VATBreakdown: map[int]float64{}}

	for _, line := range lines {
		net := line.Product.Price * float64(line.Quantity)
		total.RawGrossTotal += net * (1 + float64(line.Product.TaxRate)/100)
	}

	if opts.Coupon != nil {
		total.CouponDiscount = total.RawGrossTotal * opts.Coupon.DiscountRate / 100
	}
	total.TotalDiscount = opts.ManualDiscount + total.CouponDiscount

	total.EffectiveGrossTotal = total.RawGrossTotal - total.TotalDiscount
	if total.EffectiveGrossTotal < 0 {
		total.EffectiveGrossTotal = 0
	}

	// Ratio defaults to 1 on an empty cart so the back-out below never
	// divides by zero.
	total.DiscountRatio = 1
	if total.RawGrossTotal > 0 {
		total.DiscountRatio = total.EffectiveGrossTotal / total.RawGrossTotal
	}

	for _, line := range lines {
		rate := line.Product.TaxRate
		net := line.Product.Price * float64(line.Quantity)
		gross := net * (1 + float64(rate)/100)

		discountedGross := gross * total.DiscountRatio
		discountedNet := discountedGross / (1 + float64(rate)/100)
		total.VATBreakdown[rate] += discountedGross - discountedNet
	}
	for _, vat := range total.VATBreakdown {
		total.TotalVAT += vat
	}
	total.DiscountedSubTotal = total.EffectiveGrossTotal - total.TotalVAT

	if opts.PaymentMethod == enum.PaymentMethodCard {
		total.CommissionRate = lookupCommissionRate(opts.CommissionRates, opts.Installments)
	}
	total.CommissionAmount = total.EffectiveGrossTotal * total.CommissionRate / 100
	total.FinalTotal = total.EffectiveGrossTotal + total.CommissionAmount

	return total
}

// lookupCommissionRate returns the surcharge percentage for an
// installment count, or 0 when the tier is not configured.
func lookupCommissionRate(rates []entity.CommissionRate, installments int) float64 {
	for _, r := range rates {
		if r.Installments == installments {
			return r.Rate
		}
	}
	return 0
}
