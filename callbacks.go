package progstream

import "sync/atomic"

// Counter keeps a running byte total that is safe to read from other
// goroutines while a wrapper is feeding it.
type Counter struct {
	total atomic.Int64
}

func NewCounter() *Counter { return &Counter{} }

// Callback returns a Callback that adds each count to the total.
func (c *Counter) Callback() Callback {
	return func(n int) { c.total.Add(int64(n)) }
}

// Total returns the bytes counted so far.
func (c *Counter) Total() int64 { return c.total.Load() }

// Reset sets the total back to zero and returns the previous value.
func (c *Counter) Reset() int64 { return c.total.Swap(0) }

// Chain returns a Callback that passes each count to cbs in order.
// Nil entries are skipped.
func Chain(cbs ...Callback) Callback {
	live := make([]Callback, 0, len(cbs))
	for _, cb := range cbs {
		if cb != nil {
			live = append(live, cb)
		}
	}
	switch len(live) {
	case 0:
		return nil
	case 1:
		return live[0]
	}
	return func(n int) {
		for _, cb := range live {
			cb(n)
		}
	}
}
