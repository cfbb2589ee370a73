package service

import (
	"context"
	"time"

	"github.com/gymdesk/gymdesk-api/internal/billing"
	"github.com/gymdesk/gymdesk-api/internal/domain/entity"
	"github.com/gymdesk/gymdesk-api/internal/domain/enum"
	"github.com/gymdesk/gymdesk-api/internal/domain/repository"
	"github.com/gymdesk/gymdesk-api/pkg/apperror"
	"github.com/gymdesk/gymdesk-api/pkg/utils"
)

// StoreService handles product, coupon and checkout operations
type StoreService struct {
	productRepo    repository.ProductRepository
	saleRepo       repository.ProductSaleRepository
	couponRepo     repository.CouponRepository
	commissionRepo repository.CommissionRateRepository
}

// NewStoreService creates a new store service
func NewStoreService(
	productRepo repository.ProductRepository,
	saleRepo repository.ProductSaleRepository,
	couponRepo repository.CouponRepository,
	commissionRepo repository.CommissionRateRepository,
) *StoreService {
	return &StoreService{
		productRepo:    productRepo,
		saleRepo:       saleRepo,
		couponRepo:     couponRepo,
		commissionRepo: commissionRepo,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name     string
	Category enum.ProductCategory
	Price    float64
	Stock    int
	Cost     float64
	TaxRate  int
}

// CreateProduct adds a product to the store catalog.
func (s *StoreService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Product name is required")
	}
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Product price cannot be negative")
	}
	if !enum.IsValidTaxRate(input.TaxRate) {
		return nil, apperror.NewBadRequestError("Invalid tax rate")
	}

	product := &entity.Product{
		ID:       utils.NewID(),
		Name:     input.Name,
		Category: input.Category,
		Price:    input.Price,
		Stock:    input.Stock,
		Cost:     input.Cost,
		TaxRate:  input.TaxRate,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// ListProducts lists all products
func (s *StoreService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.List(ctx)
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	ID      string
	Name    *string
	Price   *float64
	Stock   *int
	Cost    *float64
	TaxRate *int
}

// UpdateProduct updates a product
func (s *StoreService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewBadRequestError("Product price cannot be negative")
		}
		product.Price = *input.Price
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Cost != nil {
		product.Cost = *input.Cost
	}
	if input.TaxRate != nil {
		if !enum.IsValidTaxRate(*input.TaxRate) {
			return nil, apperror.NewBadRequestError("Invalid tax rate")
		}
		product.TaxRate = *input.TaxRate
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// StockAdjustment is one line of a bulk stock/cost restock.
type StockAdjustment struct {
	ProductID string
	AddStock  int
	NewCost   *float64
}

// RestockProducts applies a delivery: stock added and unit costs
// updated across products in one write.
func (s *StoreService) RestockProducts(ctx context.Context, adjustments []StockAdjustment) ([]entity.Product, error) {
	if len(adjustments) == 0 {
		return nil, apperror.NewBadRequestError("No adjustments given")
	}

	updated := make([]entity.Product, 0, len(adjustments))
	for _, adj := range adjustments {
		product, err := s.productRepo.GetByID(ctx, adj.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, apperror.NewNotFoundError("Product")
		}
		product.Stock += adj.AddStock
		if adj.NewCost != nil {
			product.Cost = *adj.NewCost
		}
		updated = append(updated, *product)
	}

	if err := s.productRepo.UpdateBatch(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteProduct deletes a product
func (s *StoreService) DeleteProduct(ctx context.Context, id string) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}

// CreateCouponInput represents the create coupon input
type CreateCouponInput struct {
	Code         string
	DiscountRate float64
}

// CreateCoupon creates a discount coupon.
func (s *StoreService) CreateCoupon(ctx context.Context, input *CreateCouponInput) (*entity.Coupon, error) {
	if input.Code == "" {
		return nil, apperror.NewBadRequestError("Coupon code is required")
	}
	if input.DiscountRate <= 0 || input.DiscountRate > 100 {
		return nil, apperror.NewBadRequestError("Discount rate must be between 0 and 100")
	}

	existing, err := s.couponRepo.GetByCode(ctx, input.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("An active coupon with this code already exists")
	}

	coupon := &entity.Coupon{
		ID:           utils.NewID(),
		Code:         input.Code,
		DiscountRate: input.DiscountRate,
		IsActive:     true,
	}
	if err := s.couponRepo.Create(ctx, coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// ListCoupons lists all coupons
func (s *StoreService) ListCoupons(ctx context.Context) ([]entity.Coupon, error) {
	return s.couponRepo.List(ctx)
}

// DeactivateCoupon turns a coupon off without deleting its record.
func (s *StoreService) DeactivateCoupon(ctx context.Context, id string) (*entity.Coupon, error) {
	coupons, err := s.couponRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range coupons {
		if coupons[i].ID == id {
			coupons[i].IsActive = false
			if err := s.couponRepo.Update(ctx, &coupons[i]); err != nil {
				return nil, err
			}
			return &coupons[i], nil
		}
	}
	return nil, apperror.NewNotFoundError("Coupon")
}

// DeleteCoupon deletes a coupon
func (s *StoreService) DeleteCoupon(ctx context.Context, id string) error {
	return s.couponRepo.Delete(ctx, id)
}

// CheckoutItem is one requested cart line.
type CheckoutItem struct {
	ProductID string
	Quantity  int
}

// CheckoutInput represents the checkout input
type CheckoutInput struct {
	Items          []CheckoutItem
	ManualDiscount float64
	CouponCode     string
	PaymentMethod  enum.PaymentMethod
	Installments   int
	StaffID        string
}

// CheckoutResult carries the priced cart and the recorded sale.
type CheckoutResult struct {
	Total billing.CartTotal
	Sale  *entity.ProductSale
}

// PreviewCart prices a cart without recording anything, for the POS
// screen's live total.
func (s *StoreService) PreviewCart(ctx context.Context, input *CheckoutInput) (*billing.CartTotal, error) {
	lines, _, err := s.resolveCart(ctx, input.Items)
	if err != nil {
		return nil, err
	}
	opts, err := s.resolveCartOptions(ctx, input)
	if err != nil {
		return nil, err
	}
	total := billing.PriceCart(lines, opts)
	return &total, nil
}

// Checkout prices the cart, records the sale and decrements stock.
func (s *StoreService) Checkout(ctx context.Context, input *CheckoutInput) (*CheckoutResult, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Cart is empty")
	}

	lines, updated, err := s.resolveCart(ctx, input.Items)
	if err != nil {
		return nil, err
	}
	opts, err := s.resolveCartOptions(ctx, input)
	if err != nil {
		return nil, err
	}

	total := billing.PriceCart(lines, opts)

	saleItems := make([]entity.SaleItem, len(lines))
	for i, line := range lines {
		saleItems[i] = entity.SaleItem{
			ProductID:   line.Product.ID,
			Name:        line.Product.Name,
			Quantity:    line.Quantity,
			PriceAtSale: line.Product.Price,
		}
	}

	sale := &entity.ProductSale{
		ID:          utils.NewID(),
		Date:        time.Now().Format(time.RFC3339),
		Items:       saleItems,
		TotalAmount: total.FinalTotal,
		StaffID:     input.StaffID,
	}

	if err := s.productRepo.UpdateBatch(ctx, updated); err != nil {
		return nil, err
	}
	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	return &CheckoutResult{Total: total, Sale: sale}, nil
}

// ListSales lists sales, optionally filtered to one "YYYY-MM" period.
func (s *StoreService) ListSales(ctx context.Context, period string) ([]entity.ProductSale, error) {
	sales, err := s.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if period == "" {
		return sales, nil
	}
	filtered := sales[:0]
	for _, sale := range sales {
		if sale.InPeriod(period) {
			filtered = append(filtered, sale)
		}
	}
	return filtered, nil
}

// resolveCart loads the cart's products, checks stock and returns both
// the priced lines and the products with stock already decremented.
func (s *StoreService) resolveCart(ctx context.Context, items []CheckoutItem) ([]billing.CartLine, []entity.Product, error) {
	lines := make([]billing.CartLine, 0, len(items))
	updated := make([]entity.Product, 0, len(items))

	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, nil, apperror.NewBadRequestError("Quantity must be positive")
		}
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, nil, err
		}
		if product == nil {
			return nil, nil, apperror.NewNotFoundError("Product")
		}
		if product.Stock < item.Quantity {
			return nil, nil, apperror.NewConflictError("Insufficient stock for " + product.Name)
		}

		lines = append(lines, billing.CartLine{Product: *product, Quantity: item.Quantity})
		product.Stock -= item.Quantity
		updated = append(updated, *product)
	}

	return lines, updated, nil
}

func (s *StoreService) resolveCartOptions(ctx context.Context, input *CheckoutInput) (billing.CartOptions, error) {
	opts := billing.CartOptions{
		ManualDiscount: input.ManualDiscount,
		PaymentMethod:  input.PaymentMethod,
		Installments:   input.Installments,
	}

	if input.CouponCode != "" {
		coupon, err := s.couponRepo.GetByCode(ctx, input.CouponCode)
		if err != nil {
			return opts, err
		}
		if coupon == nil {
			return opts, apperror.NewNotFoundError("Coupon")
		}
		opts.Coupon = coupon
	}

	if input.PaymentMethod == enum.PaymentMethodCard {
		rates, err := s.commissionRepo.List(ctx)
		if err != nil {
			return opts, err
		}
		opts.CommissionRates = rates
	}

	return opts, nil
}
