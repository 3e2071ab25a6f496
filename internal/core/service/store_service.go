package service

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/rl1809/shop-core/internal/core/domain"
	"github.com/rl1809/shop-core/internal/port"
	"github.com/rl1809/shop-core/pkg/metrics"
)

// StoreService is the facade over the catalog, directory and order store.
// A single mutex serializes every operation, so compound mutations are
// atomic. In particular RecordOrder reads the order total, appends it to
// the customer history and bumps the spend accumulator in one critical
// section; concurrent recordings for the same customer cannot interleave
// and lose an update.
type StoreService struct {
	mu        sync.Mutex
	catalog   port.ProductRepository
	directory port.CustomerRepository
	orders    port.OrderRepository
	ids       port.IDGenerator
	clock     port.Clock
	metrics   *metrics.StoreMetrics
}

func NewStoreService(
	catalog port.ProductRepository,
	directory port.CustomerRepository,
	orders port.OrderRepository,
	ids port.IDGenerator,
	clock port.Clock,
	m *metrics.StoreMetrics,
) *StoreService {
	return &StoreService{
		catalog:   catalog,
		directory: directory,
		orders:    orders,
		ids:       ids,
		clock:     clock,
		metrics:   m,
	}
}

func (s *StoreService) fail(op string, err error) error {
	s.metrics.Failures.WithLabelValues(op).Inc()
	return err
}

// AddProduct registers a new in-stock product in the catalog.
func (s *StoreService) AddProduct(ctx context.Context, name string, price decimal.Decimal, description string, details domain.ProductDetails) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := domain.NewProduct(s.ids.NewID(), name, price, description, details)
	if err != nil {
		return nil, s.fail("add_product", err)
	}
	if err := s.catalog.AddProduct(ctx, product); err != nil {
		return nil, s.fail("add_product", err)
	}
	s.metrics.ProductsRegistered.Inc()
	return product, nil
}

// AddCustomer registers a new customer. The email is not validated and
// uniqueness is not enforced here; duplicate emails resolve to the
// earliest registration on lookup.
func (s *StoreService) AddCustomer(ctx context.Context, name, email, address string) (*domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer := domain.NewCustomer(s.ids.NewID(), name, email, address)
	if err := s.directory.AddCustomer(ctx, customer); err != nil {
		return nil, s.fail("add_customer", err)
	}
	s.metrics.CustomersRegistered.Inc()
	return customer, nil
}

// CreateOrder opens a pending order for the customer with the given email.
// If the customer is unknown, no order is created or stored.
func (s *StoreService) CreateOrder(ctx context.Context, customerEmail string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, err := s.directory.FindByEmail(ctx, customerEmail)
	if err != nil {
		return nil, s.fail("create_order", err)
	}
	order := domain.NewOrder(s.ids.NewID(), customer.ID(), customer.Name(), s.clock.Now())
	if err := s.orders.AddOrder(ctx, order); err != nil {
		return nil, s.fail("create_order", err)
	}
	s.metrics.OrdersCreated.Inc()
	return order, nil
}

// FindProductByName resolves the earliest-added product with that name.
func (s *StoreService) FindProductByName(ctx context.Context, name string) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.FindByName(ctx, name)
}

// FindCustomerByEmail resolves the earliest-registered customer with that email.
func (s *StoreService) FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.directory.FindByEmail(ctx, email)
}

// UpdateProductPrice replaces a product's price. Negative prices are rejected.
func (s *StoreService) UpdateProductPrice(ctx context.Context, name string, newPrice decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.catalog.FindByName(ctx, name)
	if err != nil {
		return s.fail("update_price", err)
	}
	if err := product.SetPrice(newPrice); err != nil {
		return s.fail("update_price", err)
	}
	return nil
}

// UpdateCustomerEmail replaces a customer's email after the minimal check.
func (s *StoreService) UpdateCustomerEmail(ctx context.Context, email, newEmail string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, err := s.directory.FindByEmail(ctx, email)
	if err != nil {
		return s.fail("update_email", err)
	}
	if err := customer.UpdateEmail(newEmail); err != nil {
		return s.fail("update_email", err)
	}
	return nil
}

// UpdateCustomerAddress replaces a customer's address unconditionally.
func (s *StoreService) UpdateCustomerAddress(ctx context.Context, email, newAddress string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, err := s.directory.FindByEmail(ctx, email)
	if err != nil {
		return s.fail("update_address", err)
	}
	customer.UpdateAddress(newAddress)
	return nil
}

// AddOrderItem appends a line item to an open order.
func (s *StoreService) AddOrderItem(ctx context.Context, orderID, productName string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return s.fail("add_item", err)
	}
	product, err := s.catalog.FindByName(ctx, productName)
	if err != nil {
		return s.fail("add_item", err)
	}
	if err := order.AddItem(product, quantity); err != nil {
		return s.fail("add_item", err)
	}
	s.metrics.ItemsAdded.Inc()
	return nil
}

// RemoveOrderItem removes the first matching line item from an order.
func (s *StoreService) RemoveOrderItem(ctx context.Context, orderID, productName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return s.fail("remove_item", err)
	}
	if err := order.RemoveItem(productName); err != nil {
		return s.fail("remove_item", err)
	}
	return nil
}

// SetOrderStatus replaces an order's status, membership-checked only.
func (s *StoreService) SetOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return s.fail("set_status", err)
	}
	if err := order.SetStatus(status); err != nil {
		return s.fail("set_status", err)
	}
	return nil
}

// RecordOrder appends an order to its customer's history and adds the
// order total, evaluated once here, to the customer's spend. Later edits
// to the order do not adjust the recorded spend.
func (s *StoreService) RecordOrder(ctx context.Context, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return s.fail("record_order", err)
	}
	customer, err := s.directory.FindByID(ctx, order.CustomerID())
	if err != nil {
		return s.fail("record_order", err)
	}
	customer.RecordOrder(order.ID(), order.Total())
	s.metrics.OrdersRecorded.Inc()
	return nil
}

// OrderSummary returns the formatted order summary. Pure read.
func (s *StoreService) OrderSummary(ctx context.Context, orderID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return "", s.fail("order_summary", err)
	}
	return order.Info(), nil
}

// Products returns a snapshot copy of the catalog.
func (s *StoreService) Products(ctx context.Context) ([]*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.ListProducts(ctx)
}

// Customers returns a snapshot copy of the directory.
func (s *StoreService) Customers(ctx context.Context) ([]*domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.directory.ListCustomers(ctx)
}

// Orders returns a snapshot copy of all orders.
func (s *StoreService) Orders(ctx context.Context) ([]*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.ListOrders(ctx)
}
