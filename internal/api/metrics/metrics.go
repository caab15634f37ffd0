package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

var (
	// RegistrationsTotal counts successfully created accounts.
	RegistrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Number of accounts registered.",
	})

	// LoginsTotal counts login attempts by result (success or failure).
	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Number of login attempts by result.",
	}, []string{"result"})

	// OrdersCreatedTotal counts orders accepted at checkout.
	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Number of orders created.",
	})

	// OrderStatusUpdatesTotal counts fulfillment transitions by target status.
	OrderStatusUpdatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_status_updates_total",
		Help:      "Number of order status transitions by target status.",
	}, []string{"status"})
)
