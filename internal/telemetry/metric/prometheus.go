package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the metrics recorded during a soak run.
type Registry struct {
	reg *prometheus.Registry

	// ItemsPushed counts items accepted by the queue under test.
	ItemsPushed prometheus.Counter

	// ItemsPopped counts items handed to consumers, stop sentinels
	// excluded.
	ItemsPopped prometheus.Counter

	// OrderViolations counts per-producer FIFO violations observed by
	// consumers. Any non-zero value fails the run.
	OrderViolations prometheus.Counter

	// MapOps counts sharded-map operations by kind (swap, pop, find).
	MapOps *prometheus.CounterVec
}

// NewRegistry creates a Registry with all collectors registered on a
// private Prometheus registry, alongside the standard Go runtime
// collectors.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		ItemsPushed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ckit_soak_items_pushed_total",
			Help: "Items pushed onto the queue under test.",
		}),
		ItemsPopped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ckit_soak_items_popped_total",
			Help: "Items popped from the queue under test.",
		}),
		OrderViolations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ckit_soak_order_violations_total",
			Help: "Per-producer FIFO ordering violations observed.",
		}),
		MapOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ckit_soak_map_ops_total",
			Help: "Sharded map operations by kind.",
		}, []string{"op"}),
	}

	r.reg.MustRegister(
		r.ItemsPushed,
		r.ItemsPopped,
		r.OrderViolations,
		r.MapOps,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// ObserveQueueDepth registers a gauge that reports the queue's current
// length each scrape. The callback must be safe for concurrent use.
func (r *Registry) ObserveQueueDepth(depth func() float64) {
	r.reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "ckit_soak_queue_depth",
		Help: "Current number of items in the queue under test.",
	}, depth))
}

// ObserveMapSize registers a gauge that reports the sharded map's entry
// count each scrape. The callback must be safe for concurrent use.
func (r *Registry) ObserveMapSize(size func() float64) {
	r.reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "ckit_soak_map_entries",
		Help: "Current number of entries in the sharded map.",
	}, size))
}

// Handler returns an HTTP handler serving the registry in Prometheus
// exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
