package service

import "sync/atomic"

// lamportClock issues origin epochs. Every tick is strictly greater than any
// epoch previously issued or observed on this node.
type lamportClock struct {
	v atomic.Uint64
}

func (c *lamportClock) Tick() uint64 {
	return c.v.Add(1)
}

// Observe raises the clock to e if it is behind.
func (c *lamportClock) Observe(e uint64) {
	for {
		cur := c.v.Load()
		if e <= cur || c.v.CompareAndSwap(cur, e) {
			return
		}
	}
}

func (c *lamportClock) Current() uint64 {
	return c.v.Load()
}
