package entity

import (
	"strings"

	"github.com/gymdesk/gymdesk-api/internal/domain/enum"
)

// Product is a store item. Price is VAT-exclusive; TaxRate is the VAT
// percentage applied on top. Cost is used only for margin reporting.
type Product struct {
	ID       string               `json:"id"`
	Name     string               `json:"name"`
	Category enum.ProductCategory `json:"category"`
	Price    float64              `json:"price"`
	Stock    int                  `json:"stock"`
	Cost     float64              `json:"cost"`
	TaxRate  int                  `json:"taxRate"`
}

// SaleItem is one line of a completed sale, priced at sale time.
type SaleItem struct {
	ProductID   string  `json:"productId"`
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	PriceAtSale float64 `json:"priceAtSale"`
}

// ProductSale is a completed checkout. TotalAmount is the final amount
// charged (VAT and discounts included).
type ProductSale struct {
	ID          string     `json:"id"`
	Date        string     `json:"date"` // ISO timestamp
	Items       []SaleItem `json:"items"`
	TotalAmount float64    `json:"totalAmount"`
	StaffID     string     `json:"staffId"`
}

// InPeriod reports whether the sale date falls within the given
// "YYYY-MM" period.
func (s *ProductSale) InPeriod(period string) bool {
	return s.Date != "" && strings.HasPrefix(s.Date, period)
}
