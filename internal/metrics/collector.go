// internal/metrics/collector.go
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go-cube-train/internal/event"
)

const namespace = "cubetrain"

// Collector переводит события движка в метрики Prometheus.
type Collector struct {
	Spawned  prometheus.Counter
	Evicted  prometheus.Counter
	Cleared  *prometheus.CounterVec
	Live     prometheus.Gauge
	TickTime prometheus.Histogram
}

// NewCollector registers every metric in reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		Spawned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entities_spawned_total",
			Help:      "entities created since start",
		}),
		Evicted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entities_evicted_total",
			Help:      "entities retired from the queue head",
		}),
		Cleared: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "field_clears_total",
			Help:      "full clears by reason",
		}, []string{"reason"}),
		Live: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "entities_live",
			Help:      "entities in the queue after the last tick",
		}),
		TickTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tick_duration_seconds",
			Help:      "wall time spent per tick",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 2, 12),
		}),
	}
	for _, m := range []prometheus.Collector{c.Spawned, c.Evicted, c.Cleared, c.Live, c.TickTime} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Collector) OnEvent(e event.Event) {
	switch e.Type {
	case event.EntitySpawned:
		c.Spawned.Inc()
	case event.EntityEvicted:
		c.Evicted.Inc()
	case event.FieldCleared:
		if d, ok := e.Data.(event.ClearData); ok {
			c.Cleared.WithLabelValues(d.Reason).Inc()
		}
	case event.TickDone:
		if d, ok := e.Data.(event.TickData); ok {
			c.Live.Set(float64(d.Live))
			c.TickTime.Observe(d.Duration)
		}
	}
}

// NewHandler creates a collector on a private registry and the HTTP
// handler exposing it, together with the Go runtime collectors.
func NewHandler() (*Collector, http.Handler, error) {
	reg := prometheus.NewRegistry()
	if err := reg.Register(prometheus.NewGoCollector()); err != nil {
		return nil, nil, err
	}
	c, err := NewCollector(reg)
	if err != nil {
		return nil, nil, err
	}
	return c, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}
