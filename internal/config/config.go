package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rl1809/shop-core/internal/core/domain"
)

// Config describes the seed data and options for a store session.
type Config struct {
	Store     StoreOptions   `yaml:"store" json:"store"`
	Products  []ProductSeed  `yaml:"products" json:"products"`
	Customers []CustomerSeed `yaml:"customers" json:"customers"`
}

type StoreOptions struct {
	Name string `yaml:"name" json:"name"`
}

// ProductSeed declares one catalog entry. Type selects the variant and
// decides which of the variant fields are read.
type ProductSeed struct {
	Name          string  `yaml:"name" json:"name"`
	Price         float64 `yaml:"price" json:"price"`
	Description   string  `yaml:"description" json:"description"`
	InStock       *bool   `yaml:"inStock" json:"inStock"`
	Type          string  `yaml:"type" json:"type"`
	Brand         string  `yaml:"brand" json:"brand"`
	WarrantyYears int     `yaml:"warrantyYears" json:"warrantyYears"`
	Size          string  `yaml:"size" json:"size"`
	Material      string  `yaml:"material" json:"material"`
}

type CustomerSeed struct {
	Name    string `yaml:"name" json:"name"`
	Email   string `yaml:"email" json:"email"`
	Address string `yaml:"address" json:"address"`
}

// New creates a Config with default options and no seed data.
func New() *Config {
	return &Config{
		Store: StoreOptions{Name: "shop-core"},
	}
}

// LoadFile loads configuration from a file (YAML or JSON based on extension).
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))

	var loaded Config
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			return fmt.Errorf("parsing YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &loaded); err != nil {
			return fmt.Errorf("parsing JSON config: %w", err)
		}
	default:
		// Try YAML first, then JSON
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			if err := json.Unmarshal(data, &loaded); err != nil {
				return fmt.Errorf("unable to parse config as YAML or JSON")
			}
		}
	}

	c.merge(&loaded)
	return nil
}

func (c *Config) merge(loaded *Config) {
	if loaded.Store.Name != "" {
		c.Store.Name = loaded.Store.Name
	}
	c.Products = append(c.Products, loaded.Products...)
	c.Customers = append(c.Customers, loaded.Customers...)
}

// InStockOrDefault reports the seed's stock flag; omitted means in stock.
func (s ProductSeed) InStockOrDefault() bool {
	if s.InStock == nil {
		return true
	}
	return *s.InStock
}

// Details maps the seed's type field to a domain product variant.
func (s ProductSeed) Details() (domain.ProductDetails, error) {
	switch strings.ToLower(s.Type) {
	case "electronics":
		return domain.Electronics{Brand: s.Brand, WarrantyYears: s.WarrantyYears}, nil
	case "clothing":
		return domain.Clothing{Size: s.Size, Material: s.Material}, nil
	default:
		return nil, fmt.Errorf("unknown product type %q for %q", s.Type, s.Name)
	}
}
