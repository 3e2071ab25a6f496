package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/rl1809/shop-core/internal/adapter/idgen"
	"github.com/rl1809/shop-core/internal/adapter/storage"
	"github.com/rl1809/shop-core/internal/core/domain"
	"github.com/rl1809/shop-core/internal/core/service"
	"github.com/rl1809/shop-core/pkg/metrics"
)

const (
	totalOrders = 200
	unitPrice   = 25
)

// Hammers the facade from many goroutines to check that concurrent
// recordings cannot lose an update on the spend accumulator.
func main() {
	ctx := context.Background()

	svc := service.NewStoreService(
		storage.NewMemoryCatalog(),
		storage.NewMemoryDirectory(),
		storage.NewMemoryOrderStore(),
		idgen.NewUUIDGenerator(),
		idgen.NewSystemClock(),
		metrics.NewStoreMetrics(prometheus.NewRegistry()),
	)

	_, err := svc.AddProduct(ctx, "Flash Widget", decimal.NewFromInt(unitPrice), "stress-test widget",
		domain.Electronics{Brand: "LoadGen", WarrantyYears: 1})
	if err != nil {
		log.Fatalf("add product: %v", err)
	}

	customer, err := svc.AddCustomer(ctx, "Stress Tester", "stress@test.local", "1 Bench Rd")
	if err != nil {
		log.Fatalf("add customer: %v", err)
	}

	start := time.Now()

	var g errgroup.Group
	for i := 0; i < totalOrders; i++ {
		g.Go(func() error {
			order, err := svc.CreateOrder(ctx, "stress@test.local")
			if err != nil {
				return err
			}
			if err := svc.AddOrderItem(ctx, order.ID(), "Flash Widget", 1); err != nil {
				return err
			}
			return svc.RecordOrder(ctx, order.ID())
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("stress run failed: %v", err)
	}

	elapsed := time.Since(start)

	fmt.Println("========== STRESS TEST RESULTS ==========")
	fmt.Printf("Orders Recorded:  %d\n", totalOrders)
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Println("==========================================")

	wantSpent := decimal.NewFromInt(unitPrice * totalOrders)
	if customer.TotalSpent().Equal(wantSpent) {
		fmt.Printf("PASS: total spent is exactly $%s\n", wantSpent.StringFixed(2))
	} else {
		fmt.Printf("FAIL: expected total spent $%s, got $%s\n",
			wantSpent.StringFixed(2), customer.TotalSpent().StringFixed(2))
	}

	if got := len(customer.OrderIDs()); got == totalOrders {
		fmt.Printf("PASS: order history has %d entries\n", got)
	} else {
		fmt.Printf("FAIL: expected %d history entries, got %d\n", totalOrders, got)
	}

	orders, _ := svc.Orders(ctx)
	if len(orders) == totalOrders {
		fmt.Printf("PASS: order store holds %d orders\n", len(orders))
	} else {
		fmt.Printf("FAIL: expected %d stored orders, got %d\n", totalOrders, len(orders))
	}
}
