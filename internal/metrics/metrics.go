package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Registry groups the counters the API cares about. Exposed read-only
// through the metrics endpoint.
type Registry struct {
	Requests         Counter
	ProductFallbacks Counter
	OrderFallbacks   Counter
	OrdersCreated    Counter
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Snapshot returns the current counter values keyed by name.
func (r *Registry) Snapshot() map[string]uint64 {
	return map[string]uint64{
		"requests":          r.Requests.Load(),
		"product_fallbacks": r.ProductFallbacks.Load(),
		"order_fallbacks":   r.OrderFallbacks.Load(),
		"orders_created":    r.OrdersCreated.Load(),
	}
}
