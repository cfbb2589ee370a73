package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/gymdesk/gymdesk-api/internal/application/service"
	"github.com/gymdesk/gymdesk-api/internal/domain/enum"
	"github.com/gymdesk/gymdesk-api/internal/presentation/http/dto/request"
	"github.com/gymdesk/gymdesk-api/internal/presentation/http/dto/response"
)

// StoreHandler handles product, coupon and checkout endpoints
type StoreHandler struct {
	storeService *service.StoreService
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(storeService *service.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// CreateProduct handles POST /store/products
func (h *StoreHandler) CreateProduct(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	product, err := h.storeService.CreateProduct(c.Request.Context(), &service.CreateProductInput{
		Name:     req.Name,
		Category: enum.ProductCategory(req.Category),
		Price:    req.Price,
		Stock:    req.Stock,
		Cost:     req.Cost,
		TaxRate:  req.TaxRate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created", product)
}

// ListProducts handles GET /store/products
func (h *StoreHandler) ListProducts(c *gin.Context) {
	products, err := h.storeService.ListProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Products retrieved", products)
}

// UpdateProduct handles PUT /store/products/:id
func (h *StoreHandler) UpdateProduct(c *gin.Context) {
	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	product, err := h.storeService.UpdateProduct(c.Request.Context(), &service.UpdateProductInput{
		ID:      c.Param("id"),
		Name:    req.Name,
		Price:   req.Price,
		Stock:   req.Stock,
		Cost:    req.Cost,
		TaxRate: req.TaxRate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated", product)
}

// Restock handles POST /store/products/restock
func (h *StoreHandler) Restock(c *gin.Context) {
	var req request.RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	adjustments := make([]service.StockAdjustment, len(req.Items))
	for i, item := range req.Items {
		adjustments[i] = service.StockAdjustment{
			ProductID: item.ProductID,
			AddStock:  item.AddStock,
			NewCost:   item.NewCost,
		}
	}

	products, err := h.storeService.RestockProducts(c.Request.Context(), adjustments)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Products restocked", products)
}

// DeleteProduct handles DELETE /store/products/:id
func (h *StoreHandler) DeleteProduct(c *gin.Context) {
	if err := h.storeService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// CreateCoupon handles POST /store/coupons
func (h *StoreHandler) CreateCoupon(c *gin.Context) {
	var req request.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	coupon, err := h.storeService.CreateCoupon(c.Request.Context(), &service.CreateCouponInput{
		Code:         req.Code,
		DiscountRate: req.DiscountRate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Coupon created", coupon)
}

// ListCoupons handles GET /store/coupons
func (h *StoreHandler) ListCoupons(c *gin.Context) {
	coupons, err := h.storeService.ListCoupons(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Coupons retrieved", coupons)
}

// DeactivateCoupon handles POST /store/coupons/:id/deactivate
func (h *StoreHandler) DeactivateCoupon(c *gin.Context) {
	coupon, err := h.storeService.DeactivateCoupon(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Coupon deactivated", coupon)
}

// DeleteCoupon handles DELETE /store/coupons/:id
func (h *StoreHandler) DeleteCoupon(c *gin.Context) {
	if err := h.storeService.DeleteCoupon(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

func toCheckoutInput(c *gin.Context, req *request.CheckoutRequest) *service.CheckoutInput {
	items := make([]service.CheckoutItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.CheckoutItem{ProductID: item.ProductID, Quantity: item.Quantity}
	}
	return &service.CheckoutInput{
		Items:          items,
		ManualDiscount: req.ManualDiscount,
		CouponCode:     req.CouponCode,
		PaymentMethod:  enum.PaymentMethod(req.PaymentMethod),
		Installments:   req.Installments,
		StaffID:        GetStaffID(c),
	}
}

// PreviewCart handles POST /store/cart/preview
func (h *StoreHandler) PreviewCart(c *gin.Context) {
	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	total, err := h.storeService.PreviewCart(c.Request.Context(), toCheckoutInput(c, &req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart priced", total)
}

// Checkout handles POST /store/checkout
func (h *StoreHandler) Checkout(c *gin.Context) {
	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.storeService.Checkout(c.Request.Context(), toCheckoutInput(c, &req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale completed", gin.H{
		"total": result.Total,
		"sale":  result.Sale,
	})
}

// ListSales handles GET /store/sales?period=YYYY-MM
func (h *StoreHandler) ListSales(c *gin.Context) {
	sales, err := h.storeService.ListSales(c.Request.Context(), c.Query("period"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales retrieved", sales)
}
