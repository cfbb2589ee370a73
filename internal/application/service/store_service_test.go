package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymdesk/gymdesk-api/internal/domain/entity"
	"github.com/gymdesk/gymdesk-api/internal/domain/enum"
	infraRepo "github.com/gymdesk/gymdesk-api/internal/infrastructure/repository"
	"github.com/gymdesk/gymdesk-api/internal/infrastructure/storage"
)

func newStoreService(t *testing.T) (*StoreService, storage.Store) {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	svc := NewStoreService(
		infraRepo.NewProductRepository(store),
		infraRepo.NewProductSaleRepository(store),
		infraRepo.NewCouponRepository(store),
		infraRepo.NewCommissionRateRepository(store),
	)
	return svc, store
}

func seedProduct(t *testing.T, svc *StoreService, name string, price float64, stock, taxRate int) *entity.Product {
	t.Helper()
	product, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Name:     name,
		Category: enum.ProductCategorySupplement,
		Price:    price,
		Stock:    stock,
		TaxRate:  taxRate,
	})
	require.NoError(t, err)
	return product
}

func TestCheckout_DecrementsStockAndRecordsSale(t *testing.T) {
	svc, _ := newStoreService(t)
	ctx := context.Background()
	product := seedProduct(t, svc, "Protein Bar", 120, 10, 20)

	result, err := svc.Checkout(ctx, &CheckoutInput{
		Items:         []CheckoutItem{{ProductID: product.ID, Quantity: 3}},
		PaymentMethod: enum.PaymentMethodCash,
		StaffID:       "staff-1",
	})
	require.NoError(t, err)

	// 3 x 120 net plus 20% VAT.
	assert.InDelta(t, 432.0, result.Total.RawGrossTotal, 1e-6)
	assert.InDelta(t, 432.0, result.Total.FinalTotal, 1e-6)

	require.NotNil(t, result.Sale)
	require.Len(t, result.Sale.Items, 1)
	assert.Equal(t, 3, result.Sale.Items[0].Quantity)
	assert.Equal(t, 120.0, result.Sale.Items[0].PriceAtSale)
	assert.Equal(t, "staff-1", result.Sale.StaffID)

	after, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, 7, after[0].Stock)

	sales, err := svc.ListSales(ctx, "")
	require.NoError(t, err)
	assert.Len(t, sales, 1)
}

func TestCheckout_InsufficientStockLeavesNothingBehind(t *testing.T) {
	svc, _ := newStoreService(t)
	ctx := context.Background()
	product := seedProduct(t, svc, "Shaker", 90, 2, 20)

	_, err := svc.Checkout(ctx, &CheckoutInput{
		Items:         []CheckoutItem{{ProductID: product.ID, Quantity: 5}},
		PaymentMethod: enum.PaymentMethodCash,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Insufficient stock")

	after, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, 2, after[0].Stock, "stock is untouched on a failed checkout")

	sales, err := svc.ListSales(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestCheckout_EmptyCartRejected(t *testing.T) {
	svc, _ := newStoreService(t)

	_, err := svc.Checkout(context.Background(), &CheckoutInput{
		PaymentMethod: enum.PaymentMethodCash,
	})
	assert.Error(t, err)
}

func TestCheckout_AppliesCouponDiscount(t *testing.T) {
	svc, _ := newStoreService(t)
	ctx := context.Background()
	product := seedProduct(t, svc, "Gym Towel", 200, 5, 20)

	_, err := svc.CreateCoupon(ctx, &CreateCouponInput{Code: "WELCOME10", DiscountRate: 10})
	require.NoError(t, err)

	result, err := svc.Checkout(ctx, &CheckoutInput{
		Items:         []CheckoutItem{{ProductID: product.ID, Quantity: 1}},
		CouponCode:    "WELCOME10",
		PaymentMethod: enum.PaymentMethodCash,
	})
	require.NoError(t, err)

	// Gross 240, coupon takes 10% of it.
	assert.InDelta(t, 24.0, result.Total.CouponDiscount, 1e-6)
	assert.InDelta(t, 216.0, result.Total.FinalTotal, 1e-6)
}

func TestCheckout_UnknownCouponFails(t *testing.T) {
	svc, _ := newStoreService(t)
	ctx := context.Background()
	product := seedProduct(t, svc, "Wrist Wraps", 150, 5, 20)

	_, err := svc.Checkout(ctx, &CheckoutInput{
		Items:         []CheckoutItem{{ProductID: product.ID, Quantity: 1}},
		CouponCode:    "NOPE",
		PaymentMethod: enum.PaymentMethodCash,
	})
	assert.Error(t, err)
}

func TestCheckout_CardInstallmentsAddCommission(t *testing.T) {
	svc, store := newStoreService(t)
	ctx := context.Background()
	product := seedProduct(t, svc, "Lifting Belt", 100, 5, 20)

	commissionRepo := infraRepo.NewCommissionRateRepository(store)
	require.NoError(t, commissionRepo.Upsert(ctx, &entity.CommissionRate{Installments: 3, Rate: 10}))

	result, err := svc.Checkout(ctx, &CheckoutInput{
		Items:         []CheckoutItem{{ProductID: product.ID, Quantity: 1}},
		PaymentMethod: enum.PaymentMethodCard,
		Installments:  3,
	})
	require.NoError(t, err)

	// Gross 120, card surcharge 10% on top.
	assert.Equal(t, 10.0, result.Total.CommissionRate)
	assert.InDelta(t, 12.0, result.Total.CommissionAmount, 1e-6)
	assert.InDelta(t, 132.0, result.Total.FinalTotal, 1e-6)
}

func TestPreviewCart_DoesNotTouchStockOrSales(t *testing.T) {
	svc, _ := newStoreService(t)
	ctx := context.Background()
	product := seedProduct(t, svc, "Resistance Band", 80, 4, 10)

	total, err := svc.PreviewCart(ctx, &CheckoutInput{
		Items:         []CheckoutItem{{ProductID: product.ID, Quantity: 2}},
		PaymentMethod: enum.PaymentMethodCash,
	})
	require.NoError(t, err)
	assert.InDelta(t, 176.0, total.FinalTotal, 1e-6)

	after, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, after[0].Stock)

	sales, err := svc.ListSales(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestRestockProducts_SingleBatchWrite(t *testing.T) {
	svc, _ := newStoreService(t)
	ctx := context.Background()
	first := seedProduct(t, svc, "Water Bottle", 60, 3, 10)
	second := seedProduct(t, svc, "Chalk", 45, 0, 20)

	newCost := 30.0
	updated, err := svc.RestockProducts(ctx, []StockAdjustment{
		{ProductID: first.ID, AddStock: 12},
		{ProductID: second.ID, AddStock: 20, NewCost: &newCost},
	})
	require.NoError(t, err)
	require.Len(t, updated, 2)
	assert.Equal(t, 15, updated[0].Stock)
	assert.Equal(t, 20, updated[1].Stock)
	assert.Equal(t, 30.0, updated[1].Cost)
}
