package service

import (
	"sync"
	"sync/atomic"
	"time"
)

// ewmaAlpha weighs the newest per-minute sample against the running average.
const ewmaAlpha = 0.5

// renewalMeter measures renewals per minute. Mark is called on the renew path
// and only touches an atomic counter; Roll closes the current bucket.
type renewalMeter struct {
	count atomic.Int64

	mu          sync.Mutex
	bucketStart time.Time
	rate        float64
	primed      bool
}

func newRenewalMeter(now time.Time) *renewalMeter {
	return &renewalMeter{bucketStart: now}
}

func (m *renewalMeter) Mark() {
	m.count.Add(1)
}

// Roll folds the renewals counted since the previous roll into the moving
// average and returns the new per-minute rate.
func (m *renewalMeter) Roll(now time.Time) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	elapsed := now.Sub(m.bucketStart)
	if elapsed <= 0 {
		return m.rate
	}
	perMinute := float64(m.count.Swap(0)) * float64(time.Minute) / float64(elapsed)
	if m.primed {
		m.rate = ewmaAlpha*perMinute + (1-ewmaAlpha)*m.rate
	} else {
		m.rate = perMinute
		m.primed = true
	}
	m.bucketStart = now
	return m.rate
}

func (m *renewalMeter) Rate() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rate
}

// expectedRenewalsPerMinute is the rate a healthy fleet of n instances produces.
func expectedRenewalsPerMinute(n int, renewalInterval time.Duration) float64 {
	if n <= 0 || renewalInterval <= 0 {
		return 0
	}
	return float64(n) * float64(time.Minute) / float64(renewalInterval)
}

// selfPreservationActive reports whether eviction must be suppressed: the
// observed renewal rate fell below threshold of the expected one.
func selfPreservationActive(enabled bool, expected, observed, threshold float64) bool {
	return enabled && expected > 0 && observed < threshold*expected
}
