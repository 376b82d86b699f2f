package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRenewalMeter_Roll(t *testing.T) {
	start := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	m := newRenewalMeter(start)

	for i := 0; i < 120; i++ {
		m.Mark()
	}
	assert.InDelta(t, 120.0, m.Roll(start.Add(time.Minute)), 0.001)

	for i := 0; i < 40; i++ {
		m.Mark()
	}
	assert.InDelta(t, 80.0, m.Roll(start.Add(2*time.Minute)), 0.001)
	assert.InDelta(t, 80.0, m.Rate(), 0.001)

	// a half-minute bucket is scaled to a per-minute figure
	for i := 0; i < 40; i++ {
		m.Mark()
	}
	assert.InDelta(t, 80.0, m.Roll(start.Add(2*time.Minute+30*time.Second)), 0.001)

	assert.InDelta(t, 80.0, m.Roll(start.Add(2*time.Minute+30*time.Second)), 0.001, "zero-length bucket keeps the rate")
}

func TestExpectedRenewalsPerMinute(t *testing.T) {
	assert.Equal(t, 20.0, expectedRenewalsPerMinute(10, 30*time.Second))
	assert.Equal(t, 10.0, expectedRenewalsPerMinute(10, time.Minute))
	assert.Equal(t, 0.0, expectedRenewalsPerMinute(0, 30*time.Second))
	assert.Equal(t, 0.0, expectedRenewalsPerMinute(5, 0))
}

func TestSelfPreservationActive(t *testing.T) {
	tests := []struct {
		name     string
		enabled  bool
		expected float64
		observed float64
		want     bool
	}{
		{name: "healthy", enabled: true, expected: 100, observed: 90, want: false},
		{name: "exactly at threshold", enabled: true, expected: 100, observed: 85, want: false},
		{name: "below threshold", enabled: true, expected: 100, observed: 84, want: true},
		{name: "disabled", enabled: false, expected: 100, observed: 0, want: false},
		{name: "empty registry", enabled: true, expected: 0, observed: 0, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, selfPreservationActive(tt.enabled, tt.expected, tt.observed, 0.85))
		})
	}
}
