package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "myregistry"

// Metrics holds the registry collectors. Build it with NewMetrics(nil) when
// the collectors must not be registered (tests).
type Metrics struct {
	Instances        prometheus.Gauge
	SelfPreservation prometheus.Gauge
	Registrations    prometheus.Counter
	Renewals         prometheus.Counter
	Cancels          prometheus.Counter
	Evictions        prometheus.Counter
	DeltasEnqueued   prometheus.Counter
	DeltasDropped    prometheus.Counter
	DeltasSent       *prometheus.CounterVec
	RemoteDeltas     *prometheus.CounterVec
	FullSyncs        *prometheus.CounterVec
	MirrorErrors     prometheus.Counter
}

// NewMetrics creates collectors and registers them with reg when it is non-nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Instances: f.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace, Subsystem: "registry", Name: "instances",
			Help: "Number of live leases held by this node.",
		}),
		SelfPreservation: f.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace, Subsystem: "registry", Name: "self_preservation",
			Help: "1 while eviction is suppressed by self-preservation.",
		}),
		Registrations: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace, Subsystem: "registry", Name: "registrations_total",
			Help: "Local registrations.",
		}),
		Renewals: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace, Subsystem: "registry", Name: "renewals_total",
			Help: "Local renewals.",
		}),
		Cancels: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace, Subsystem: "registry", Name: "cancels_total",
			Help: "Local cancellations that removed a lease.",
		}),
		Evictions: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace, Subsystem: "registry", Name: "evictions_total",
			Help: "Leases removed by the evictor.",
		}),
		DeltasEnqueued: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace, Subsystem: "gossip", Name: "deltas_enqueued_total",
			Help: "Deltas queued for replication.",
		}),
		DeltasDropped: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace, Subsystem: "gossip", Name: "deltas_dropped_total",
			Help: "Deltas dropped because the replication queue was full.",
		}),
		DeltasSent: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace, Subsystem: "gossip", Name: "deltas_sent_total",
			Help: "Deltas sent to peers.",
		}, []string{"peer", "result"}),
		RemoteDeltas: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace, Subsystem: "gossip", Name: "remote_deltas_total",
			Help: "Deltas received from peers by outcome.",
		}, []string{"result"}),
		FullSyncs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace, Subsystem: "gossip", Name: "full_syncs_total",
			Help: "Full synchronization rounds per peer.",
		}, []string{"peer", "result"}),
		MirrorErrors: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace, Subsystem: "mirror", Name: "errors_total",
			Help: "Failed writes to the registry mirror.",
		}),
	}
}
