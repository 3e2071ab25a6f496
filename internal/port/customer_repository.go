package port

import (
	"context"

	"github.com/rl1809/shop-core/internal/core/domain"
)

type CustomerRepository interface {
	// AddCustomer registers a customer. Duplicate emails are not rejected;
	// lookups resolve to the earliest registration
	AddCustomer(ctx context.Context, customer *domain.Customer) error

	// FindByEmail returns the earliest-registered customer with the given
	// email, or domain.ErrNotFound
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)

	// FindByID returns the customer with the given ID, or domain.ErrNotFound
	FindByID(ctx context.Context, id string) (*domain.Customer, error)

	// ListCustomers returns a snapshot copy of the directory in insertion order
	ListCustomers(ctx context.Context) ([]*domain.Customer, error)
}
