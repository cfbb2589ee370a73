package repository

import (
	"context"
	"fmt"

	"github.com/gymdesk/gymdesk-api/internal/domain/entity"
	"github.com/gymdesk/gymdesk-api/internal/domain/repository"
	"github.com/gymdesk/gymdesk-api/internal/infrastructure/storage"
)

type productRepository struct {
	col *collection[entity.Product]
}

// NewProductRepository creates a new product repository over the store.
func NewProductRepository(store storage.Store) repository.ProductRepository {
	return &productRepository{col: newCollection[entity.Product](store, storage.KeyProducts)}
}

func (r *productRepository) List(ctx context.Context) ([]entity.Product, error) {
	return r.col.load(ctx)
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	products, err := r.col.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, nil
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.col.mutate(ctx, func(products []entity.Product) ([]entity.Product, error) {
		return append(products, *product), nil
	})
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	return r.col.mutate(ctx, func(products []entity.Product) ([]entity.Product, error) {
		for i := range products {
			if products[i].ID == product.ID {
				products[i] = *product
				return products, nil
			}
		}
		return nil, fmt.Errorf("product %s not found", product.ID)
	})
}

// UpdateBatch applies all updates in a single collection write so a
// checkout decrements every line's stock atomically.
func (r *productRepository) UpdateBatch(ctx context.Context, updates []entity.Product) error {
	if len(updates) == 0 {
		return nil
	}
	return r.col.mutate(ctx, func(products []entity.Product) ([]entity.Product, error) {
		byID := make(map[string]int, len(products))
		for i := range products {
			byID[products[i].ID] = i
		}
		for _, update := range updates {
			i, ok := byID[update.ID]
			if !ok {
				return nil, fmt.Errorf("product %s not found", update.ID)
			}
			products[i] = update
		}
		return products, nil
	})
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	return r.col.mutate(ctx, func(products []entity.Product) ([]entity.Product, error) {
		for i := range products {
			if products[i].ID == id {
				return append(products[:i], products[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("product %s not found", id)
	})
}

type productSaleRepository struct {
	col *collection[entity.ProductSale]
}

// NewProductSaleRepository creates a new sale record repository over the store.
func NewProductSaleRepository(store storage.Store) repository.ProductSaleRepository {
	return &productSaleRepository{col: newCollection[entity.ProductSale](store, storage.KeyProductSales)}
}

func (r *productSaleRepository) List(ctx context.Context) ([]entity.ProductSale, error) {
	return r.col.load(ctx)
}

func (r *productSaleRepository) Create(ctx context.Context, sale *entity.ProductSale) error {
	return r.col.mutate(ctx, func(sales []entity.ProductSale) ([]entity.ProductSale, error) {
		return append(sales, *sale), nil
	})
}
