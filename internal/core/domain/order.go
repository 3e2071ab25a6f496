package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// Valid reports whether s is one of the five known statuses. This is the
// only status check the store performs: any status may follow any other.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem pairs a product with a positive quantity. The subtotal is
// derived from the product's current price, never cached.
type OrderItem struct {
	product  *Product
	quantity int
}

func (it OrderItem) Product() *Product { return it.product }
func (it OrderItem) Quantity() int     { return it.quantity }

func (it OrderItem) Subtotal() decimal.Decimal {
	return it.product.Price().Mul(decimal.NewFromInt(int64(it.quantity)))
}

func (it OrderItem) Info() string {
	return fmt.Sprintf("%s x %d = $%s", it.product.Name(), it.quantity, it.Subtotal().StringFixed(2))
}

// Order aggregates line items for one customer. Items and status change
// only through the methods below, so the total is always the sum of the
// current items' subtotals; there is no stored total to drift.
type Order struct {
	id           string
	customerID   string
	customerName string
	items        []OrderItem
	createdAt    time.Time
	status       OrderStatus
}

func NewOrder(id, customerID, customerName string, createdAt time.Time) *Order {
	return &Order{
		id:           id,
		customerID:   customerID,
		customerName: customerName,
		createdAt:    createdAt,
		status:       OrderStatusPending,
	}
}

func (o *Order) ID() string           { return o.id }
func (o *Order) CustomerID() string   { return o.customerID }
func (o *Order) CustomerName() string { return o.customerName }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) Status() OrderStatus  { return o.status }

// Items returns a copy of the line items in insertion order.
func (o *Order) Items() []OrderItem {
	out := make([]OrderItem, len(o.items))
	copy(out, o.items)
	return out
}

// AddItem appends a line item. Repeated additions of the same product
// create separate line items rather than merging quantities. On failure
// nothing is appended.
func (o *Order) AddItem(product *Product, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive, got %d", ErrValidation, quantity)
	}
	if !product.InStock() {
		return fmt.Errorf("%w: %s", ErrOutOfStock, product.Name())
	}
	o.items = append(o.items, OrderItem{product: product, quantity: quantity})
	return nil
}

// RemoveItem removes the first line item whose product name matches.
// At most one item is removed per call even if duplicates exist.
func (o *Order) RemoveItem(productName string) error {
	for i, it := range o.items {
		if it.product.Name() == productName {
			o.items = append(o.items[:i], o.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: item %q not in order", ErrNotFound, productName)
}

// Total sums the current items' subtotals. An empty order totals zero.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// SetStatus replaces the status after a membership check. No transition
// ordering is enforced.
func (o *Order) SetStatus(status OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown order status %q", ErrValidation, status)
	}
	o.status = status
	return nil
}

// Info returns a multi-line order summary. Pure read, no side effects.
func (o *Order) Info() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "Order ID: %s\n", o.id)
	fmt.Fprintf(b, "Customer: %s\n", o.customerName)
	fmt.Fprintf(b, "Date: %s\n", o.createdAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(b, "Status: %s\n", o.status)
	fmt.Fprintln(b, "Items:")
	for _, it := range o.items {
		fmt.Fprintf(b, "  - %s\n", it.Info())
	}
	fmt.Fprintf(b, "Total: $%s", o.Total().StringFixed(2))
	return b.String()
}
