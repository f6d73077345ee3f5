// Package status holds lock-free session counters shared by the game loop and its observers
package status

import "sync/atomic"

// Metric keys published by the round controller
const (
	BallsDropped  = "balls.dropped"
	BallsSettled  = "balls.settled"
	BallsInFlight = "balls.inflight"
	WagerTotal    = "wager.total"
	WagerSettled  = "wager.settled"
	PayoutTotal   = "payout.total"
	WagerRejected = "wager.rejected"
	TicksMax      = "ticks.max"
	PinHits       = "pin.hits"

	// SessionReturn is payout/wager over settled balls, a float metric
	SessionReturn = "return.session"
)

// Registry is the central metrics facade
// Writers cache pointers at construction; updates go straight to the atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// ReturnToPlayer returns paid/wagered over settled balls, 0 before any settlement
func (r *Registry) ReturnToPlayer() float64 {
	wagered := r.Ints.Get(WagerSettled).Load()
	if wagered == 0 {
		return 0
	}
	return float64(r.Ints.Get(PayoutTotal).Load()) / float64(wagered)
}

// IntSnapshot copies every int metric
func (r *Registry) IntSnapshot() map[string]int64 {
	out := make(map[string]int64, r.Ints.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out[key] = v.Load()
	})
	return out
}

// StoreMax raises v to n if n is larger
func StoreMax(v *atomic.Int64, n int64) {
	for {
		cur := v.Load()
		if n <= cur || v.CompareAndSwap(cur, n) {
			return
		}
	}
}
