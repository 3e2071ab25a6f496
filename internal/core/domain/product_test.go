package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T, name string, price int64, details ProductDetails) *Product {
	t.Helper()
	p, err := NewProduct("p-"+name, name, decimal.NewFromInt(price), "test product", details)
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	p := newTestProduct(t, "Gaming Laptop", 1200, Electronics{Brand: "GamingPro", WarrantyYears: 2})

	assert.Equal(t, "Gaming Laptop", p.Name())
	assert.True(t, p.InStock())
	assert.True(t, p.Price().Equal(decimal.NewFromInt(1200)))
	assert.Equal(t, ProductKindElectronics, p.Details().Kind())
}

func TestNewProduct_NegativePrice(t *testing.T) {
	_, err := NewProduct("p1", "Bad", decimal.NewFromInt(-1), "", Clothing{Size: "M", Material: "Wool"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewProduct_NegativeWarranty(t *testing.T) {
	_, err := NewProduct("p1", "Bad", decimal.NewFromInt(10), "", Electronics{Brand: "X", WarrantyYears: -1})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewProduct_MissingDetails(t *testing.T) {
	_, err := NewProduct("p1", "Bad", decimal.NewFromInt(10), "", nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSetPrice(t *testing.T) {
	p := newTestProduct(t, "Smartphone", 800, Electronics{Brand: "TechCorp", WarrantyYears: 1})

	require.NoError(t, p.SetPrice(decimal.NewFromInt(750)))
	assert.True(t, p.Price().Equal(decimal.NewFromInt(750)))

	// zero is a valid price
	require.NoError(t, p.SetPrice(decimal.Zero))
	assert.True(t, p.Price().IsZero())
}

func TestSetPrice_NegativeRejectedNotClamped(t *testing.T) {
	p := newTestProduct(t, "Smartphone", 800, Electronics{Brand: "TechCorp", WarrantyYears: 1})

	err := p.SetPrice(decimal.NewFromInt(-5))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.True(t, p.Price().Equal(decimal.NewFromInt(800)), "price must be unchanged after a rejected update")
}

func TestProductInfo_Variants(t *testing.T) {
	laptop := newTestProduct(t, "Gaming Laptop", 1200, Electronics{Brand: "GamingPro", WarrantyYears: 2})
	assert.Contains(t, laptop.Info(), "Gaming Laptop - $1200.00")
	assert.Contains(t, laptop.Info(), "Brand: GamingPro, Warranty: 2 years")

	shirt := newTestProduct(t, "Cotton T-Shirt", 25, Clothing{Size: "L", Material: "Cotton"})
	assert.Contains(t, shirt.Info(), "Size: L, Material: Cotton")
}

func TestSetInStock(t *testing.T) {
	p := newTestProduct(t, "Blue Jeans", 60, Clothing{Size: "32", Material: "Denim"})
	p.SetInStock(false)
	assert.False(t, p.InStock())
	p.SetInStock(true)
	assert.True(t, p.InStock())
}
