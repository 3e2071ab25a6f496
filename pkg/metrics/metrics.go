package metrics

import "github.com/prometheus/client_golang/prometheus"

type StoreMetrics struct {
	ProductsRegistered  prometheus.Counter
	CustomersRegistered prometheus.Counter
	OrdersCreated       prometheus.Counter
	OrdersRecorded      prometheus.Counter
	ItemsAdded          prometheus.Counter
	Failures            *prometheus.CounterVec
}

// NewStoreMetrics builds and registers the store counters. Registration
// takes an explicit Registerer so tests can use private registries.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	m := &StoreMetrics{
		ProductsRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shopcore",
			Name:      "products_registered_total",
			Help:      "Total number of products registered in the catalog.",
		}),
		CustomersRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shopcore",
			Name:      "customers_registered_total",
			Help:      "Total number of customers registered in the directory.",
		}),
		OrdersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shopcore",
			Name:      "orders_created_total",
			Help:      "Total number of orders opened.",
		}),
		OrdersRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shopcore",
			Name:      "orders_recorded_total",
			Help:      "Total number of orders recorded onto customer histories.",
		}),
		ItemsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shopcore",
			Name:      "order_items_added_total",
			Help:      "Total number of line items added to orders.",
		}),
		Failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shopcore",
			Name:      "operation_failures_total",
			Help:      "Total number of failed store operations.",
		}, []string{"op"}),
	}

	reg.MustRegister(
		m.ProductsRegistered,
		m.CustomersRegistered,
		m.OrdersCreated,
		m.OrdersRecorded,
		m.ItemsAdded,
		m.Failures,
	)
	return m
}
