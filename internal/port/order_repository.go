package port

import (
	"context"

	"github.com/rl1809/shop-core/internal/core/domain"
)

type OrderRepository interface {
	// AddOrder stores a newly created order
	AddOrder(ctx context.Context, order *domain.Order) error

	// GetOrder returns the order with the given ID, or domain.ErrNotFound
	GetOrder(ctx context.Context, id string) (*domain.Order, error)

	// ListOrders returns a snapshot copy of all orders in creation order
	ListOrders(ctx context.Context) ([]*domain.Order, error)
}
