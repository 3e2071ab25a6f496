package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateEmail(t *testing.T) {
	c := NewCustomer("c1", "John Doe", "john@email.com", "123 Main St")

	require.NoError(t, c.UpdateEmail("john.doe@newemail.com"))
	assert.Equal(t, "john.doe@newemail.com", c.Email())
}

func TestUpdateEmail_Malformed(t *testing.T) {
	c := NewCustomer("c1", "John Doe", "john@email.com", "123 Main St")

	err := c.UpdateEmail("not-an-email")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "john@email.com", c.Email(), "email must be unchanged after a rejected update")
}

func TestUpdateAddress(t *testing.T) {
	c := NewCustomer("c1", "John Doe", "john@email.com", "123 Main St")
	c.UpdateAddress("456 Oak Ave")
	assert.Equal(t, "456 Oak Ave", c.Address())
}

func TestRecordOrder_Accumulates(t *testing.T) {
	c := NewCustomer("c1", "Jane Smith", "jane@email.com", "456 Oak Ave")

	c.RecordOrder("o1", decimal.NewFromInt(50))
	c.RecordOrder("o2", decimal.NewFromInt(30))

	assert.True(t, c.TotalSpent().Equal(decimal.NewFromInt(80)))
	assert.Equal(t, []string{"o1", "o2"}, c.OrderIDs())
}

func TestOrderIDs_ReturnsCopy(t *testing.T) {
	c := NewCustomer("c1", "Jane Smith", "jane@email.com", "456 Oak Ave")
	c.RecordOrder("o1", decimal.NewFromInt(10))

	ids := c.OrderIDs()
	ids[0] = "tampered"

	assert.Equal(t, []string{"o1"}, c.OrderIDs())
}

func TestCustomerInfo(t *testing.T) {
	c := NewCustomer("c1", "Jane Smith", "jane@email.com", "456 Oak Ave")
	c.RecordOrder("o1", decimal.NewFromFloat(19.99))

	info := c.Info()
	assert.Contains(t, info, "Customer ID: c1")
	assert.Contains(t, info, "Name: Jane Smith")
	assert.Contains(t, info, "Total Spent: $19.99")
}
