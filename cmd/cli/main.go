package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/rl1809/shop-core/internal/adapter/idgen"
	"github.com/rl1809/shop-core/internal/adapter/storage"
	"github.com/rl1809/shop-core/internal/adapter/tui"
	"github.com/rl1809/shop-core/internal/config"
	"github.com/rl1809/shop-core/internal/core/domain"
	"github.com/rl1809/shop-core/internal/core/service"
	"github.com/rl1809/shop-core/pkg/logging"
	"github.com/rl1809/shop-core/pkg/metrics"
)

const serviceName = "shop-cli"

func main() {
	configPath := flag.String("config", "examples/store.yaml", "seed/config file (YAML or JSON)")
	demo := flag.Bool("demo", false, "run the scripted walkthrough instead of the TUI")
	flag.Parse()

	cfg := config.New()
	if err := cfg.LoadFile(*configPath); err != nil {
		log.Fatalf("config error: %v", err)
	}

	svc := service.NewStoreService(
		storage.NewMemoryCatalog(),
		storage.NewMemoryDirectory(),
		storage.NewMemoryOrderStore(),
		idgen.NewUUIDGenerator(),
		idgen.NewSystemClock(),
		metrics.NewStoreMetrics(prometheus.NewRegistry()),
	)

	ctx := context.Background()
	if err := seed(ctx, svc, cfg); err != nil {
		log.Fatalf("seed error: %v", err)
	}

	if *demo {
		if err := runDemo(ctx, svc); err != nil {
			log.Fatalf("demo error: %v", err)
		}
		return
	}

	p := tea.NewProgram(tui.NewModel(svc, cfg.Store.Name))
	if _, err := p.Run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func seed(ctx context.Context, svc *service.StoreService, cfg *config.Config) error {
	for _, ps := range cfg.Products {
		details, err := ps.Details()
		if err != nil {
			return err
		}
		product, err := svc.AddProduct(ctx, ps.Name, decimal.NewFromFloat(ps.Price), ps.Description, details)
		if err != nil {
			return fmt.Errorf("seeding product %q: %w", ps.Name, err)
		}
		if !ps.InStockOrDefault() {
			product.SetInStock(false)
		}
		logging.Log(logging.Fields{
			Service: serviceName, Op: "add_product",
			ProductID: product.ID(), Status: "ok", Message: product.Name(),
		})
	}
	for _, cs := range cfg.Customers {
		customer, err := svc.AddCustomer(ctx, cs.Name, cs.Email, cs.Address)
		if err != nil {
			return fmt.Errorf("seeding customer %q: %w", cs.Email, err)
		}
		logging.Log(logging.Fields{
			Service: serviceName, Op: "add_customer",
			CustomerID: customer.ID(), Status: "ok", Message: customer.Email(),
		})
	}
	return nil
}

// runDemo walks the seeded store through the full order lifecycle: one
// order per customer, a couple of line items, a status jump, recording,
// and a final directory/catalog dump.
func runDemo(ctx context.Context, svc *service.StoreService) error {
	customers, err := svc.Customers(ctx)
	if err != nil {
		return err
	}
	products, err := svc.Products(ctx)
	if err != nil {
		return err
	}
	if len(customers) == 0 || len(products) == 0 {
		return fmt.Errorf("demo needs at least one seeded customer and product")
	}

	statuses := []domain.OrderStatus{domain.OrderStatusProcessing, domain.OrderStatusShipped}

	for i, customer := range customers {
		order, err := svc.CreateOrder(ctx, customer.Email())
		if err != nil {
			return err
		}
		logging.Log(logging.Fields{
			Service: serviceName, Op: "create_order",
			OrderID: order.ID(), CustomerID: customer.ID(), Status: "ok",
		})

		added := 0
		for _, p := range products {
			if !p.InStock() {
				continue
			}
			qty := 1 + (i+added)%2
			if err := svc.AddOrderItem(ctx, order.ID(), p.Name(), qty); err != nil {
				logging.Log(logging.Fields{
					Service: serviceName, Op: "add_item",
					OrderID: order.ID(), ProductID: p.ID(), Status: "failed", Message: err.Error(),
				})
				continue
			}
			added++
			if added == 2 {
				break
			}
		}

		status := statuses[i%len(statuses)]
		if err := svc.SetOrderStatus(ctx, order.ID(), status); err != nil {
			return err
		}
		if err := svc.RecordOrder(ctx, order.ID()); err != nil {
			return err
		}
		logging.Log(logging.Fields{
			Service: serviceName, Op: "record_order",
			OrderID: order.ID(), CustomerID: customer.ID(), Status: string(status),
		})

		summary, err := svc.OrderSummary(ctx, order.ID())
		if err != nil {
			return err
		}
		fmt.Printf("\n%s\n", summary)
	}

	fmt.Println("\n=== Customers ===")
	for _, c := range customers {
		fmt.Printf("\n%s\nOrders: %d\n", c.Info(), len(c.OrderIDs()))
	}

	fmt.Println("\n=== Catalog ===")
	for _, p := range products {
		fmt.Println(p.Info())
	}
	return nil
}
