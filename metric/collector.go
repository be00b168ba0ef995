// File: metric/collector.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Prometheus surface for ring occupancy. The engine carries no
// instrumentation of its own; this collector samples the query
// methods at scrape time, so observed values are snapshots and may
// lag a running producer or consumer.

package metric

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// RingStats is the read-only query subset any ring satisfies,
// independent of its element type.
type RingStats interface {
	Len() int
	Cap() int
	Free() int
}

// RingCollector exports capacity, length and free-slot gauges for every
// registered ring, labeled by ring name.
type RingCollector struct {
	mu    sync.RWMutex
	rings map[string]RingStats

	capacityDesc *prometheus.Desc
	lengthDesc   *prometheus.Desc
	freeDesc     *prometheus.Desc
}

// NewRingCollector creates an empty collector.
func NewRingCollector() *RingCollector {
	return &RingCollector{
		rings: make(map[string]RingStats),
		capacityDesc: prometheus.NewDesc(
			prometheus.BuildFQName("hioload", "ring", "capacity"),
			"Usable ring capacity in elements.",
			[]string{"ring"}, nil,
		),
		lengthDesc: prometheus.NewDesc(
			prometheus.BuildFQName("hioload", "ring", "length"),
			"Elements currently stored in the ring.",
			[]string{"ring"}, nil,
		),
		freeDesc: prometheus.NewDesc(
			prometheus.BuildFQName("hioload", "ring", "free"),
			"Free slots remaining before pushes fail.",
			[]string{"ring"}, nil,
		),
	}
}

// Register adds or replaces a ring under the given name.
func (c *RingCollector) Register(name string, r RingStats) {
	c.mu.Lock()
	c.rings[name] = r
	c.mu.Unlock()
}

// Unregister removes a ring from the scrape set.
func (c *RingCollector) Unregister(name string) {
	c.mu.Lock()
	delete(c.rings, name)
	c.mu.Unlock()
}

// Describe implements prometheus.Collector.
func (c *RingCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.capacityDesc
	ch <- c.lengthDesc
	ch <- c.freeDesc
}

// Collect implements prometheus.Collector.
func (c *RingCollector) Collect(ch chan<- prometheus.Metric) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for name, r := range c.rings {
		ch <- prometheus.MustNewConstMetric(
			c.capacityDesc, prometheus.GaugeValue, float64(r.Cap()), name)
		ch <- prometheus.MustNewConstMetric(
			c.lengthDesc, prometheus.GaugeValue, float64(r.Len()), name)
		ch <- prometheus.MustNewConstMetric(
			c.freeDesc, prometheus.GaugeValue, float64(r.Free()), name)
	}
}

// Ensure compile-time compliance.
var _ prometheus.Collector = (*RingCollector)(nil)
