// Package metrics is a small dependency-free metrics registry exposing
// counters, gauges, and histograms in the Prometheus text exposition format
// over an HTTP /metrics endpoint.
package metrics

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultBuckets are the default histogram buckets, in seconds.
var DefaultBuckets = []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}

// Counter only goes up.
type Counter struct{ v atomic.Int64 }

func (c *Counter) Inc()         { c.v.Add(1) }
func (c *Counter) Add(n int64)  { c.v.Add(n) }
func (c *Counter) Value() int64 { return c.v.Load() }

// Gauge goes up and down.
type Gauge struct{ v atomic.Int64 }

func (g *Gauge) Set(n int64)  { g.v.Store(n) }
func (g *Gauge) Inc()         { g.v.Add(1) }
func (g *Gauge) Dec()         { g.v.Add(-1) }
func (g *Gauge) Value() int64 { return g.v.Load() }

// Histogram tracks a value distribution over fixed buckets.
type Histogram struct {
	mu      sync.Mutex
	bounds  []float64
	counts  []uint64
	sum     float64
	total   uint64
}

// Observe records one value.
func (h *Histogram) Observe(v float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sum += v
	h.total++
	for i, b := range h.bounds {
		if v <= b {
			h.counts[i]++
			break
		}
	}
}

// Since observes the seconds elapsed since t.
func (h *Histogram) Since(t time.Time) { h.Observe(time.Since(t).Seconds()) }

type entry struct {
	kind string // counter, gauge, histogram
	help string
	c    *Counter
	g    *Gauge
	h    *Histogram
}

// Registry holds named metrics and renders them on demand.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
	order   []string
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// WithLabels bakes label pairs into a metric name so each label combination
// is its own series: WithLabels("x_total", "stage", "embed") -> `x_total{stage="embed"}`.
func WithLabels(name string, kv ...string) string {
	if len(kv) < 2 {
		return name
	}
	var parts []string
	for i := 0; i+1 < len(kv); i += 2 {
		parts = append(parts, fmt.Sprintf("%s=%q", kv[i], kv[i+1]))
	}
	return name + "{" + strings.Join(parts, ",") + "}"
}

func (r *Registry) get(name, kind, help string) *entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[name]; ok {
		return e
	}
	e := &entry{kind: kind, help: help}
	r.entries[name] = e
	r.order = append(r.order, name)
	return e
}

// Counter returns (or registers) a counter.
func (r *Registry) Counter(name, help string) *Counter {
	e := r.get(name, "counter", help)
	if e.c == nil {
		e.c = &Counter{}
	}
	return e.c
}

// Gauge returns (or registers) a gauge.
func (r *Registry) Gauge(name, help string) *Gauge {
	e := r.get(name, "gauge", help)
	if e.g == nil {
		e.g = &Gauge{}
	}
	return e.g
}

// Histogram returns (or registers) a histogram. Nil buckets use DefaultBuckets.
func (r *Registry) Histogram(name, help string, buckets []float64) *Histogram {
	e := r.get(name, "histogram", help)
	if e.h == nil {
		if buckets == nil {
			buckets = DefaultBuckets
		}
		bounds := make([]float64, len(buckets))
		copy(bounds, buckets)
		sort.Float64s(bounds)
		e.h = &Histogram{bounds: bounds, counts: make([]uint64, len(bounds))}
	}
	return e.h
}

// Render produces the Prometheus text exposition of all metrics in
// registration order.
func (r *Registry) Render() string {
	r.mu.Lock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	entries := make(map[string]*entry, len(r.entries))
	for k, v := range r.entries {
		entries[k] = v
	}
	r.mu.Unlock()

	var b strings.Builder
	seen := make(map[string]bool)
	for _, name := range names {
		e := entries[name]
		base := baseName(name)
		if !seen[base] {
			seen[base] = true
			if e.help != "" {
				fmt.Fprintf(&b, "# HELP %s %s\n", base, e.help)
			}
			fmt.Fprintf(&b, "# TYPE %s %s\n", base, e.kind)
		}
		switch e.kind {
		case "counter":
			fmt.Fprintf(&b, "%s %d\n", name, e.c.Value())
		case "gauge":
			fmt.Fprintf(&b, "%s %d\n", name, e.g.Value())
		case "histogram":
			renderHistogram(&b, name, e.h)
		}
	}
	return b.String()
}

func renderHistogram(b *strings.Builder, name string, h *Histogram) {
	h.mu.Lock()
	bounds := h.bounds
	counts := make([]uint64, len(h.counts))
	copy(counts, h.counts)
	sum, total := h.sum, h.total
	h.mu.Unlock()

	var cum uint64
	for i, bound := range bounds {
		cum += counts[i]
		fmt.Fprintf(b, "%s_bucket{le=%q} %d\n", name, fmt.Sprintf("%g", bound), cum)
	}
	fmt.Fprintf(b, "%s_bucket{le=\"+Inf\"} %d\n", name, total)
	fmt.Fprintf(b, "%s_sum %g\n", name, sum)
	fmt.Fprintf(b, "%s_count %d\n", name, total)
}

// baseName strips the baked-in label block, if any.
func baseName(name string) string {
	if i := strings.IndexByte(name, '{'); i >= 0 {
		return name[:i]
	}
	return name
}

// Handler serves the registry at whatever path it is mounted on.
func (r *Registry) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4")
		fmt.Fprint(w, r.Render())
	})
}

// ServeAsync serves /metrics on addr in a background goroutine.
func (r *Registry) ServeAsync(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())
	go func() { _ = http.ListenAndServe(addr, mux) }()
}
