package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Customer is a directory entry. The order history holds order IDs only
// (back-references resolved through the order store), keeping ownership
// acyclic. The spend accumulator changes only through RecordOrder.
type Customer struct {
	id         string
	name       string
	email      string
	address    string
	orderIDs   []string
	totalSpent decimal.Decimal
}

func NewCustomer(id, name, email, address string) *Customer {
	return &Customer{
		id:      id,
		name:    name,
		email:   email,
		address: address,
	}
}

func (c *Customer) ID() string                  { return c.id }
func (c *Customer) Name() string                { return c.name }
func (c *Customer) Email() string               { return c.email }
func (c *Customer) Address() string             { return c.address }
func (c *Customer) TotalSpent() decimal.Decimal { return c.totalSpent }

// OrderIDs returns a copy of the recorded order history, in recording order.
func (c *Customer) OrderIDs() []string {
	out := make([]string, len(c.orderIDs))
	copy(out, c.orderIDs)
	return out
}

// UpdateEmail replaces the email after a minimal syntactic check. Full
// RFC validation is deliberately out of scope.
func (c *Customer) UpdateEmail(newEmail string) error {
	if !strings.Contains(newEmail, "@") {
		return fmt.Errorf("%w: email must contain '@'", ErrValidation)
	}
	c.email = newEmail
	return nil
}

// UpdateAddress replaces the address unconditionally.
func (c *Customer) UpdateAddress(newAddress string) {
	c.address = newAddress
}

// RecordOrder appends an order to the history and adds its total to the
// spend accumulator. The total is whatever the order was worth when the
// call was made; later edits to the order do not adjust recorded spend.
func (c *Customer) RecordOrder(orderID string, total decimal.Decimal) {
	c.orderIDs = append(c.orderIDs, orderID)
	c.totalSpent = c.totalSpent.Add(total)
}

// Info returns a multi-line customer summary.
func (c *Customer) Info() string {
	return fmt.Sprintf("Customer ID: %s\nName: %s\nEmail: %s\nAddress: %s\nTotal Spent: $%s",
		c.id, c.name, c.email, c.address, c.totalSpent.StringFixed(2))
}
