package port

import (
	"context"

	"github.com/rl1809/shop-core/internal/core/domain"
)

type ProductRepository interface {
	// AddProduct registers a product in the catalog
	AddProduct(ctx context.Context, product *domain.Product) error

	// FindByName returns the earliest-added product with the given name,
	// or domain.ErrNotFound
	FindByName(ctx context.Context, name string) (*domain.Product, error)

	// ListProducts returns a snapshot copy of the catalog in insertion order
	ListProducts(ctx context.Context) ([]*domain.Product, error)
}
