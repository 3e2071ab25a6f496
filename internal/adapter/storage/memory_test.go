package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rl1809/shop-core/internal/core/domain"
)

func testProduct(t *testing.T, id, name string) *domain.Product {
	t.Helper()
	p, err := domain.NewProduct(id, name, decimal.NewFromInt(10), "", domain.Clothing{Size: "M", Material: "Cotton"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}

func TestCatalog_FindByName_FirstMatch(t *testing.T) {
	ctx := context.Background()
	catalog := NewMemoryCatalog()

	first := testProduct(t, "p1", "Widget")
	second := testProduct(t, "p2", "Widget")
	catalog.AddProduct(ctx, first)
	catalog.AddProduct(ctx, second)

	got, err := catalog.FindByName(ctx, "Widget")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID() != "p1" {
		t.Errorf("expected earliest-added product p1, got %s", got.ID())
	}
}

func TestCatalog_FindByName_NotFound(t *testing.T) {
	ctx := context.Background()
	catalog := NewMemoryCatalog()

	_, err := catalog.FindByName(ctx, "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}

func TestCatalog_ListProducts_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	catalog := NewMemoryCatalog()
	catalog.AddProduct(ctx, testProduct(t, "p1", "Widget"))

	list, err := catalog.ListProducts(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list[0] = testProduct(t, "p9", "Tampered")

	again, _ := catalog.ListProducts(ctx)
	if again[0].ID() != "p1" {
		t.Error("mutating the returned slice must not affect the store")
	}
}

func TestDirectory_FindByEmail_FirstMatchWins(t *testing.T) {
	ctx := context.Background()
	dir := NewMemoryDirectory()

	dir.AddCustomer(ctx, domain.NewCustomer("c1", "John", "dup@email.com", "addr 1"))
	dir.AddCustomer(ctx, domain.NewCustomer("c2", "Jane", "dup@email.com", "addr 2"))

	got, err := dir.FindByEmail(ctx, "dup@email.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID() != "c1" {
		t.Errorf("duplicate emails must resolve to the earliest registration, got %s", got.ID())
	}
}

func TestDirectory_FindByID(t *testing.T) {
	ctx := context.Background()
	dir := NewMemoryDirectory()
	dir.AddCustomer(ctx, domain.NewCustomer("c1", "John", "john@email.com", "addr"))

	got, err := dir.FindByID(ctx, "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Email() != "john@email.com" {
		t.Errorf("unexpected customer: %s", got.Email())
	}

	if _, err := dir.FindByID(ctx, "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}

func TestOrderStore_GetOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryOrderStore()

	order := domain.NewOrder("o1", "c1", "John", time.Now())
	store.AddOrder(ctx, order)

	got, err := store.GetOrder(ctx, "o1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != order {
		t.Error("expected the stored order instance")
	}

	if _, err := store.GetOrder(ctx, "o2"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}

func TestCatalog_ConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	catalog := NewMemoryCatalog()

	total := 100
	var wg sync.WaitGroup
	for i := 0; i < total; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("p%d", n)
			if err := catalog.AddProduct(ctx, testProduct(t, id, "Bulk")); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	list, _ := catalog.ListProducts(ctx)
	if len(list) != total {
		t.Errorf("expected %d products, got %d", total, len(list))
	}
}
