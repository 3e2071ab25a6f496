package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rl1809/shop-core/internal/core/domain"
	"github.com/rl1809/shop-core/internal/core/service"
)

var statusCycle = []domain.OrderStatus{
	domain.OrderStatusPending,
	domain.OrderStatusProcessing,
	domain.OrderStatusShipped,
	domain.OrderStatusDelivered,
	domain.OrderStatusCancelled,
}

// Model is an interactive storefront over the StoreService. Every store
// operation is compute-only, so they run directly in Update.
type Model struct {
	svc       *service.StoreService
	storeName string

	products  []*domain.Product
	customers []*domain.Customer

	selProduct  int
	selCustomer int

	// open order per customer ID, created on the first added item
	openOrders map[string]string

	status string
}

func NewModel(svc *service.StoreService, storeName string) Model {
	ctx := context.Background()
	products, _ := svc.Products(ctx)
	customers, _ := svc.Customers(ctx)
	return Model{
		svc:        svc,
		storeName:  storeName,
		products:   products,
		customers:  customers,
		openOrders: make(map[string]string),
		status:     "Ready",
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up":
			if m.selProduct > 0 {
				m.selProduct--
			}
		case "down":
			if m.selProduct < len(m.products)-1 {
				m.selProduct++
			}
		case "left":
			if m.selCustomer > 0 {
				m.selCustomer--
			}
		case "right":
			if m.selCustomer < len(m.customers)-1 {
				m.selCustomer++
			}
		case "enter":
			m.status = m.addItem()
		case "r":
			m.status = m.removeItem()
		case "s":
			m.status = m.advanceStatus()
		case "o":
			m.status = m.checkout()
		}
	}
	return m, nil
}

func (m *Model) currentCustomer() *domain.Customer {
	if len(m.customers) == 0 {
		return nil
	}
	return m.customers[m.selCustomer]
}

func (m *Model) currentProduct() *domain.Product {
	if len(m.products) == 0 {
		return nil
	}
	return m.products[m.selProduct]
}

// openOrder returns the customer's open order ID, creating one if needed.
func (m *Model) openOrder(ctx context.Context, customer *domain.Customer) (string, error) {
	if id, ok := m.openOrders[customer.ID()]; ok {
		return id, nil
	}
	order, err := m.svc.CreateOrder(ctx, customer.Email())
	if err != nil {
		return "", err
	}
	m.openOrders[customer.ID()] = order.ID()
	return order.ID(), nil
}

func (m *Model) addItem() string {
	customer, product := m.currentCustomer(), m.currentProduct()
	if customer == nil || product == nil {
		return "Nothing to add: seed the store with products and customers"
	}
	ctx := context.Background()
	orderID, err := m.openOrder(ctx, customer)
	if err != nil {
		return fmt.Sprintf("Create order failed: %v", err)
	}
	if err := m.svc.AddOrderItem(ctx, orderID, product.Name(), 1); err != nil {
		return fmt.Sprintf("Add item failed: %v", err)
	}
	return fmt.Sprintf("Added %s to order %s", product.Name(), orderID)
}

func (m *Model) removeItem() string {
	customer, product := m.currentCustomer(), m.currentProduct()
	if customer == nil || product == nil {
		return "Nothing to remove"
	}
	orderID, ok := m.openOrders[customer.ID()]
	if !ok {
		return "No open order"
	}
	if err := m.svc.RemoveOrderItem(context.Background(), orderID, product.Name()); err != nil {
		return fmt.Sprintf("Remove item failed: %v", err)
	}
	return fmt.Sprintf("Removed %s from order %s", product.Name(), orderID)
}

func (m *Model) advanceStatus() string {
	customer := m.currentCustomer()
	if customer == nil {
		return "No customer selected"
	}
	orderID, ok := m.openOrders[customer.ID()]
	if !ok {
		return "No open order"
	}
	ctx := context.Background()
	order, err := m.orderByID(ctx, orderID)
	if err != nil {
		return fmt.Sprintf("Status change failed: %v", err)
	}
	next := statusCycle[0]
	for i, s := range statusCycle {
		if s == order.Status() {
			next = statusCycle[(i+1)%len(statusCycle)]
			break
		}
	}
	if err := m.svc.SetOrderStatus(ctx, orderID, next); err != nil {
		return fmt.Sprintf("Status change failed: %v", err)
	}
	return fmt.Sprintf("Order %s is now %s", orderID, next)
}

func (m *Model) checkout() string {
	customer := m.currentCustomer()
	if customer == nil {
		return "No customer selected"
	}
	orderID, ok := m.openOrders[customer.ID()]
	if !ok {
		return "No open order"
	}
	if err := m.svc.RecordOrder(context.Background(), orderID); err != nil {
		return fmt.Sprintf("Checkout failed: %v", err)
	}
	delete(m.openOrders, customer.ID())
	return fmt.Sprintf("Recorded order %s for %s", orderID, customer.Name())
}

func (m *Model) orderByID(ctx context.Context, id string) (*domain.Order, error) {
	orders, err := m.svc.Orders(ctx)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		if o.ID() == id {
			return o, nil
		}
	}
	return nil, fmt.Errorf("order %s vanished", id)
}

func (m Model) View() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s storefront\n\n", m.storeName)

	fmt.Fprintln(b, "Catalog (up/down):")
	for i, p := range m.products {
		marker := " "
		if i == m.selProduct {
			marker = ">"
		}
		stock := ""
		if !p.InStock() {
			stock = " [out of stock]"
		}
		fmt.Fprintf(b, " %s %s%s\n", marker, p.Info(), stock)
	}

	fmt.Fprintln(b, "")
	fmt.Fprintln(b, "Customers (left/right):")
	for i, c := range m.customers {
		marker := " "
		if i == m.selCustomer {
			marker = "*"
		}
		fmt.Fprintf(b, " %s %s <%s> spent $%s\n", marker, c.Name(), c.Email(), c.TotalSpent().StringFixed(2))
	}

	if customer := m.currentCustomer(); customer != nil {
		if orderID, ok := m.openOrders[customer.ID()]; ok {
			if summary, err := m.svc.OrderSummary(context.Background(), orderID); err == nil {
				fmt.Fprintln(b, "")
				fmt.Fprintln(b, "Open order:")
				for _, line := range strings.Split(summary, "\n") {
					fmt.Fprintf(b, "  %s\n", line)
				}
			}
		}
	}

	fmt.Fprintf(b, "\nStatus: %s\n", m.status)
	fmt.Fprintln(b, "\nControls: enter add item, r remove item, s cycle status, o checkout, q quit")
	return b.String()
}
