package launch

import "sync/atomic"

// Gate is the launch slot. At most one holder at a time; the zero value is
// free.
type Gate struct {
	held atomic.Bool
}

// TryAcquire claims the slot. It never blocks.
func (g *Gate) TryAcquire() bool {
	return g.held.CompareAndSwap(false, true)
}

// Release frees the slot.
func (g *Gate) Release() {
	g.held.Store(false)
}

// Busy reports whether the slot is held.
func (g *Gate) Busy() bool {
	return g.held.Load()
}
