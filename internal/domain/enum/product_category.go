package enum

// ProductCategory classifies a store product
type ProductCategory string

const (
	ProductCategorySupplement ProductCategory = "supplement"
	ProductCategoryDrink      ProductCategory = "drink"
	ProductCategoryClothing   ProductCategory = "clothing"
	ProductCategoryEquipment  ProductCategory = "equipment"
	ProductCategoryOther      ProductCategory = "other"
)

// IsValid checks if the category is a known value
func (c ProductCategory) IsValid() bool {
	switch c {
	case ProductCategorySupplement, ProductCategoryDrink, ProductCategoryClothing,
		ProductCategoryEquipment, ProductCategoryOther:
		return true
	}
	return false
}

// ValidTaxRates are the VAT percentages a product may carry.
var ValidTaxRates = []int{0, 1, 8, 10, 18, 20}

// IsValidTaxRate reports whether rate is an allowed VAT percentage.
func IsValidTaxRate(rate int) bool {
	for _, r := range ValidTaxRates {
		if r == rate {
			return true
		}
	}
	return false
}
