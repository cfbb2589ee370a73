package repository

import (
	"context"

	"github.com/gymdesk/gymdesk-api/internal/domain/entity"
)

// ProductRepository defines the interface for store product data operations
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	// UpdateBatch persists several product updates in one collection
	// write (stock decrements at checkout, bulk stock/cost edits).
	UpdateBatch(ctx context.Context, products []entity.Product) error
	Delete(ctx context.Context, id string) error
}

// ProductSaleRepository defines the interface for completed sale data operations
type ProductSaleRepository interface {
	List(ctx context.Context) ([]entity.ProductSale, error)
	Create(ctx context.Context, sale *entity.ProductSale) error
}
