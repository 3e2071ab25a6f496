package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/rl1809/shop-core/internal/core/domain"
)

// In-memory stores backing the repository ports. Each store guards its
// slice with an RWMutex so it is safe for concurrent use on its own;
// compound invariants across stores are the service's job.

type MemoryCatalog struct {
	mu       sync.RWMutex
	products []*domain.Product
}

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{}
}

func (c *MemoryCatalog) AddProduct(ctx context.Context, product *domain.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = append(c.products, product)
	return nil
}

func (c *MemoryCatalog) FindByName(ctx context.Context, name string) (*domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.Name() == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: product %q", domain.ErrNotFound, name)
}

func (c *MemoryCatalog) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*domain.Product, len(c.products))
	copy(out, c.products)
	return out, nil
}

type MemoryDirectory struct {
	mu        sync.RWMutex
	customers []*domain.Customer
}

func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{}
}

func (d *MemoryDirectory) AddCustomer(ctx context.Context, customer *domain.Customer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.customers = append(d.customers, customer)
	return nil
}

func (d *MemoryDirectory) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, c := range d.customers {
		if c.Email() == email {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: customer %q", domain.ErrNotFound, email)
}

func (d *MemoryDirectory) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, c := range d.customers {
		if c.ID() == id {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: customer id %q", domain.ErrNotFound, id)
}

func (d *MemoryDirectory) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*domain.Customer, len(d.customers))
	copy(out, d.customers)
	return out, nil
}

type MemoryOrderStore struct {
	mu     sync.RWMutex
	orders []*domain.Order
}

func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{}
}

func (s *MemoryOrderStore) AddOrder(ctx context.Context, order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, order)
	return nil
}

func (s *MemoryOrderStore) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID() == id {
			return o, nil
		}
	}
	return nil, fmt.Errorf("%w: order %q", domain.ErrNotFound, id)
}

func (s *MemoryOrderStore) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}
