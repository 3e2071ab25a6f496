package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type ProductKind string

const (
	ProductKindElectronics ProductKind = "electronics"
	ProductKindClothing    ProductKind = "clothing"
)

// ProductDetails is the closed set of product variants. Dispatch on the
// concrete type (or Kind) with a type switch.
type ProductDetails interface {
	Kind() ProductKind
}

type Electronics struct {
	Brand         string
	WarrantyYears int
}

func (Electronics) Kind() ProductKind { return ProductKindElectronics }

type Clothing struct {
	Size     string
	Material string
}

func (Clothing) Kind() ProductKind { return ProductKindClothing }

// Product is a catalog entry. Fields are unexported so the price
// invariant (never negative) holds for the lifetime of the value; all
// mutation goes through validating setters.
type Product struct {
	id          string
	name        string
	price       decimal.Decimal
	description string
	inStock     bool
	details     ProductDetails
}

// NewProduct creates an in-stock product. The price must not be negative
// and details must be one of the known variants.
func NewProduct(id, name string, price decimal.Decimal, description string, details ProductDetails) (*Product, error) {
	if price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if details == nil {
		return nil, fmt.Errorf("%w: product details are required", ErrValidation)
	}
	if e, ok := details.(Electronics); ok && e.WarrantyYears < 0 {
		return nil, fmt.Errorf("%w: warranty years must not be negative", ErrValidation)
	}
	return &Product{
		id:          id,
		name:        name,
		price:       price,
		description: description,
		inStock:     true,
		details:     details,
	}, nil
}

func (p *Product) ID() string              { return p.id }
func (p *Product) Name() string            { return p.name }
func (p *Product) Price() decimal.Decimal  { return p.price }
func (p *Product) Description() string     { return p.description }
func (p *Product) InStock() bool           { return p.inStock }
func (p *Product) Details() ProductDetails { return p.details }

// SetPrice replaces the price. Negative values are rejected, not clamped.
func (p *Product) SetPrice(newPrice decimal.Decimal) error {
	if newPrice.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	p.price = newPrice
	return nil
}

// SetInStock flips the availability flag.
func (p *Product) SetInStock(inStock bool) {
	p.inStock = inStock
}

// Info returns a one-line summary including the variant-specific fields.
func (p *Product) Info() string {
	base := fmt.Sprintf("%s: %s - $%s", p.id, p.name, p.price.StringFixed(2))
	switch d := p.details.(type) {
	case Electronics:
		return fmt.Sprintf("%s (Brand: %s, Warranty: %d years)", base, d.Brand, d.WarrantyYears)
	case Clothing:
		return fmt.Sprintf("%s (Size: %s, Material: %s)", base, d.Size, d.Material)
	default:
		return base
	}
}
