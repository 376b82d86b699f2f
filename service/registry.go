package service

import (
	"context"
	"fmt"
	"net"
	"regexp"
	"sync"
	"sync/atomic"
	"time"

	"myregistry/domain"
	"myregistry/helpers"
	"myregistry/interfaces"

	"github.com/benbjohnson/clock"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	defaultEvictionInterval        = 60 * time.Second
	defaultRenewalRateInterval     = time.Minute
	defaultExpectedRenewalInterval = 30 * time.Second
	defaultRenewalPercentThreshold = 0.85
	defaultMinInstances            = 10
)

var hostnameRE = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

// RegistryConfig tunes eviction and self-preservation. Zero values fall back to defaults.
type RegistryConfig struct {
	// EvictionInterval is the period of the evictor. Default 60s.
	EvictionInterval time.Duration
	// RenewalRateInterval is the period at which self-preservation is re-evaluated. Default 1m.
	RenewalRateInterval time.Duration
	// ExpectedRenewalInterval is how often a healthy client renews. Default 30s.
	ExpectedRenewalInterval time.Duration
	// RenewalPercentThreshold is the fraction of expected renewals below which eviction stops. Default 0.85.
	RenewalPercentThreshold float64
	// MinInstances is the lease count below which self-preservation never engages. Default 10.
	MinInstances int
	// WarmUp is how long after start the rate is measured but not acted upon.
	// Default RenewalRateInterval + ExpectedRenewalInterval.
	WarmUp                  time.Duration
	DisableSelfPreservation bool
}

func (c RegistryConfig) withDefaults() RegistryConfig {
	c.EvictionInterval = helpers.OrDefault(c.EvictionInterval, defaultEvictionInterval)
	c.RenewalRateInterval = helpers.OrDefault(c.RenewalRateInterval, defaultRenewalRateInterval)
	c.ExpectedRenewalInterval = helpers.OrDefault(c.ExpectedRenewalInterval, defaultExpectedRenewalInterval)
	c.RenewalPercentThreshold = helpers.OrDefault(c.RenewalPercentThreshold, defaultRenewalPercentThreshold)
	c.MinInstances = helpers.OrDefault(c.MinInstances, defaultMinInstances)
	c.WarmUp = helpers.OrDefault(c.WarmUp, c.RenewalRateInterval+c.ExpectedRenewalInterval)
	return c
}

// Registry is the membership state machine on top of LeaseStore. Local
// mutations are published to subscribed sinks after they are committed;
// remote deltas are applied silently.
type Registry struct {
	nodeID  string
	cfg     RegistryConfig
	store   *LeaseStore
	clock   clock.Clock
	meter   *renewalMeter
	started atomic.Pointer[time.Time]
	metrics *Metrics
	logger  log.Logger

	selfPreservation atomic.Bool

	sinksMu sync.RWMutex
	sinks   []interfaces.DeltaSink

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewRegistry creates a registry over store. Panics on nil dependencies.
func NewRegistry(store *LeaseStore, cfg RegistryConfig, clk clock.Clock, metrics *Metrics, logger log.Logger) *Registry {
	store = helpers.NilPanic(store, "service.registry.go: store is required")
	clk = helpers.NilPanic(clk, "service.registry.go: clock is required")
	r := &Registry{
		nodeID:  store.nodeID,
		cfg:     cfg.withDefaults(),
		store:   store,
		clock:   clk,
		meter:   newRenewalMeter(clk.Now()),
		metrics: helpers.NilPanic(metrics, "service.registry.go: metrics is required"),
		logger:  log.WithPrefix(helpers.NilPanic(logger, "service.registry.go: logger is required"), "component", "Registry"),
		stop:    make(chan struct{}),
	}
	r.markStarted()
	return r
}

func (r *Registry) markStarted() {
	now := r.clock.Now()
	r.started.Store(&now)
}

// Subscribe adds a sink for locally-originated deltas.
func (r *Registry) Subscribe(sink interfaces.DeltaSink) {
	r.sinksMu.Lock()
	defer r.sinksMu.Unlock()
	r.sinks = append(r.sinks, helpers.NilPanic(sink, "service.registry.go: sink is required"))
}

// Register validates instance, stores its lease and emits REGISTER.
func (r *Registry) Register(ctx context.Context, instance domain.Instance, leaseDuration time.Duration) (domain.Instance, error) {
	if err := validateInstance(instance); err != nil {
		return domain.Instance{}, err
	}
	if instance.Status == "" {
		instance.Status = domain.StatusUp
	}

	res, err := r.store.Put(ctx, instance, leaseDuration)
	if err != nil {
		return domain.Instance{}, err
	}
	r.metrics.Registrations.Inc()
	level.Info(r.logger).Log(
		"msg", "instance registered",
		"instance", instance.Key(),
		"status", res.Instance.Status,
		"lease", leaseDuration,
		"replaced", res.Existed,
	)
	r.emit(domain.OperationRegister, res.Instance)
	return res.Instance, nil
}

// Renew extends a live lease and emits RENEW. Expired leases give instance_not_found.
func (r *Registry) Renew(ctx context.Context, key domain.InstanceKey) (domain.Instance, error) {
	inst, err := r.store.Renew(ctx, key)
	if err != nil {
		return domain.Instance{}, err
	}
	r.meter.Mark()
	r.metrics.Renewals.Inc()
	r.emit(domain.OperationRenew, inst)
	return inst, nil
}

// Cancel always acknowledges; the boolean tells whether something was removed.
func (r *Registry) Cancel(ctx context.Context, key domain.InstanceKey) (bool, error) {
	removed, existed, err := r.store.Cancel(ctx, key)
	if err != nil {
		return false, err
	}
	if !existed {
		level.Debug(r.logger).Log("msg", "cancel of unknown instance", "instance", key)
		return false, nil
	}
	r.metrics.Cancels.Inc()
	level.Info(r.logger).Log("msg", "instance cancelled", "instance", key)
	r.emit(domain.OperationCancel, removed)
	return true, nil
}

// SetStatus changes the advertised status without touching lease timing.
func (r *Registry) SetStatus(ctx context.Context, key domain.InstanceKey, status domain.Status) (domain.Instance, error) {
	if !status.Valid() {
		return domain.Instance{}, NewBadParameterError(fmt.Sprintf("unknown status %q", status), nil)
	}
	inst, err := r.store.SetStatus(ctx, key, status)
	if err != nil {
		return domain.Instance{}, err
	}
	level.Info(r.logger).Log("msg", "instance status changed", "instance", key, "status", status)
	r.emit(domain.OperationStatusChange, inst)
	return inst, nil
}

// Query lists instances of app whose status is in statuses, UP when none are given.
func (r *Registry) Query(app string, statuses ...domain.Status) []domain.Instance {
	keep := statusSet(statuses)
	out := make([]domain.Instance, 0)
	for _, inst := range r.store.ListByApp(app) {
		if keep[inst.Status] {
			out = append(out, inst)
		}
	}
	return out
}

// QueryAll is Query over every application, keyed by app name.
func (r *Registry) QueryAll(statuses ...domain.Status) map[string][]domain.Instance {
	keep := statusSet(statuses)
	out := make(map[string][]domain.Instance)
	for _, inst := range r.store.ListAll() {
		if keep[inst.Status] {
			out[inst.AppName] = append(out[inst.AppName], inst)
		}
	}
	return out
}

// Evict runs one evictor pass and returns the number of expired leases removed.
// While self-preservation is active nothing is evicted.
func (r *Registry) Evict(ctx context.Context) int {
	now := r.clock.Now()
	if purged := r.store.PurgeTombstones(now); purged > 0 {
		level.Debug(r.logger).Log("msg", "tombstones purged", "count", purged)
	}
	if r.selfPreservation.Load() {
		level.Warn(r.logger).Log("msg", "eviction suppressed by self-preservation")
		return 0
	}

	removed := r.store.SweepExpired(now)
	for _, inst := range removed {
		level.Info(r.logger).Log("msg", "lease expired", "instance", inst.Key(), "last_renewal", inst.LastRenewalTimestamp)
		r.emit(domain.OperationExpire, inst)
	}
	r.metrics.Evictions.Add(float64(len(removed)))
	r.metrics.Instances.Set(float64(r.store.Count()))
	return len(removed)
}

// EvaluateSelfPreservation closes the current renewal bucket and decides
// whether eviction must be suppressed. The mode stays off during warm-up and
// while the registry holds fewer than MinInstances leases.
func (r *Registry) EvaluateSelfPreservation() bool {
	now := r.clock.Now()
	observed := r.meter.Roll(now)
	count := r.store.Count()
	expected := expectedRenewalsPerMinute(count, r.cfg.ExpectedRenewalInterval)
	enabled := !r.cfg.DisableSelfPreservation &&
		count >= r.cfg.MinInstances &&
		now.Sub(*r.started.Load()) >= r.cfg.WarmUp
	active := selfPreservationActive(enabled, expected, observed, r.cfg.RenewalPercentThreshold)

	if prev := r.selfPreservation.Swap(active); prev != active {
		logger := level.Info(r.logger)
		if active {
			logger = level.Warn(r.logger)
		}
		logger.Log(
			"msg", "self-preservation mode changed",
			"active", active,
			"expected_renewals_per_min", expected,
			"observed_renewals_per_min", observed,
		)
	}
	r.metrics.Instances.Set(float64(count))
	if active {
		r.metrics.SelfPreservation.Set(1)
	} else {
		r.metrics.SelfPreservation.Set(0)
	}
	return active
}

func (r *Registry) SelfPreservationActive() bool {
	return r.selfPreservation.Load()
}

// ApplyRemoteDelta merges a peer's delta. It never publishes to sinks.
func (r *Registry) ApplyRemoteDelta(ctx context.Context, delta domain.Delta) error {
	if err := validateDelta(delta); err != nil {
		r.metrics.RemoteDeltas.WithLabelValues("rejected").Inc()
		return err
	}
	applied, err := r.store.Apply(ctx, delta)
	if err != nil {
		r.metrics.RemoteDeltas.WithLabelValues("failed").Inc()
		return err
	}
	if !applied {
		r.metrics.RemoteDeltas.WithLabelValues("discarded").Inc()
		return NewConflictDiscardedError(fmt.Sprintf("delta %s is not newer than local state", delta), nil)
	}
	if delta.Operation == domain.OperationRenew {
		r.meter.Mark()
	}
	r.metrics.RemoteDeltas.WithLabelValues("applied").Inc()
	level.Debug(r.logger).Log("msg", "remote delta applied", "delta", delta)
	return nil
}

// SyncSnapshot returns the full local view with its digest.
func (r *Registry) SyncSnapshot() domain.FullSyncMessage {
	instances, tombstones := r.store.Snapshot()
	return domain.FullSyncMessage{
		NodeID:     r.nodeID,
		Digest:     syncDigest(instances, tombstones),
		Instances:  instances,
		Tombstones: tombstones,
	}
}

// MergeSyncMessage applies every entry of msg newer than local state.
func (r *Registry) MergeSyncMessage(ctx context.Context, msg domain.FullSyncMessage) int {
	now := r.clock.Now()
	deltas := make([]domain.Delta, 0, len(msg.Instances)+len(msg.Tombstones))
	for _, inst := range msg.Instances {
		deltas = append(deltas, domain.Delta{
			AppName: inst.AppName, InstanceID: inst.InstanceID, Operation: domain.OperationRegister,
			Instance: &inst, OriginEpoch: inst.OriginEpoch, OriginNodeID: inst.OriginNodeID, Timestamp: now,
		})
	}
	for _, t := range msg.Tombstones {
		deltas = append(deltas, domain.Delta{
			AppName: t.AppName, InstanceID: t.InstanceID, Operation: domain.OperationCancel,
			OriginEpoch: t.OriginEpoch, OriginNodeID: t.OriginNodeID, Timestamp: now,
		})
	}

	applied := 0
	for _, d := range deltas {
		err := r.ApplyRemoteDelta(ctx, d)
		switch {
		case err == nil:
			applied++
		case IsConflictDiscardedError(err):
		default:
			level.Warn(r.logger).Log("msg", "failed to merge sync entry", "from", msg.NodeID, "delta", d, "err", err)
		}
	}
	if applied > 0 {
		level.Info(r.logger).Log("msg", "merged full sync", "from", msg.NodeID, "applied", applied)
	}
	return applied
}

// Status reports the registry part of the node status.
func (r *Registry) Status() domain.NodeStatus {
	count := r.store.Count()
	return domain.NodeStatus{
		NodeID:                 r.nodeID,
		SelfPreservation:       r.selfPreservation.Load(),
		Instances:              count,
		ExpectedRenewalsPerMin: expectedRenewalsPerMinute(count, r.cfg.ExpectedRenewalInterval),
		ObservedRenewalsPerMin: r.meter.Rate(),
	}
}

// Start launches the evictor and the self-preservation timers.
func (r *Registry) Start() {
	r.markStarted()
	evictTicker := r.clock.Ticker(r.cfg.EvictionInterval)
	rateTicker := r.clock.Ticker(r.cfg.RenewalRateInterval)
	r.wg.Add(2)
	go r.loop(evictTicker, func() { r.Evict(context.Background()) })
	go r.loop(rateTicker, func() { r.EvaluateSelfPreservation() })
}

// Stop stops the timers and waits for them to exit.
func (r *Registry) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })
	r.wg.Wait()
}

func (r *Registry) loop(ticker *clock.Ticker, tick func()) {
	defer r.wg.Done()
	defer ticker.Stop()
	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			tick()
		}
	}
}

func (r *Registry) emit(op domain.Operation, inst domain.Instance) {
	delta := domain.Delta{
		AppName:      inst.AppName,
		InstanceID:   inst.InstanceID,
		Operation:    op,
		Instance:     &inst,
		OriginEpoch:  inst.OriginEpoch,
		OriginNodeID: inst.OriginNodeID,
		Timestamp:    r.clock.Now(),
	}

	r.sinksMu.RLock()
	sinks := r.sinks
	r.sinksMu.RUnlock()
	for _, sink := range sinks {
		sink.Broadcast(delta)
	}
}

func statusSet(statuses []domain.Status) map[domain.Status]bool {
	if len(statuses) == 0 {
		statuses = []domain.Status{domain.StatusUp}
	}
	out := make(map[domain.Status]bool, len(statuses))
	for _, s := range statuses {
		out[s] = true
	}
	return out
}

func validateInstance(instance domain.Instance) error {
	switch {
	case instance.AppName == "":
		return NewInvalidLeaseError("app name is required", nil)
	case instance.InstanceID == "":
		return NewInvalidLeaseError("instance id is required", nil)
	case !validHost(instance.Host):
		return NewInvalidLeaseError(fmt.Sprintf("host %q is not a valid IP address or hostname", instance.Host), nil)
	case instance.Port < 1 || instance.Port > 65535:
		return NewInvalidLeaseError(fmt.Sprintf("port %d is out of range 1-65535", instance.Port), nil)
	case instance.Status != "" && !instance.Status.Valid():
		return NewInvalidLeaseError(fmt.Sprintf("unknown status %q", instance.Status), nil)
	}
	return nil
}

func validateDelta(delta domain.Delta) error {
	switch {
	case delta.AppName == "" || delta.InstanceID == "":
		return NewBadParameterError("delta key is incomplete", nil)
	case !delta.Operation.Valid():
		return NewBadParameterError(fmt.Sprintf("unknown operation %q", delta.Operation), nil)
	case delta.OriginNodeID == "" || delta.OriginEpoch == 0:
		return NewBadParameterError(fmt.Sprintf("delta %s has no origin version", delta.Key()), nil)
	case delta.Operation.IsRemoval():
		return nil
	case delta.Instance == nil:
		return NewBadParameterError(fmt.Sprintf("delta %s has no instance snapshot", delta), nil)
	case delta.Instance.LeaseDuration <= 0:
		return NewInvalidLeaseError(fmt.Sprintf("delta %s carries a non-positive lease", delta), nil)
	}
	return nil
}

func validHost(host string) bool {
	if host == "" || len(host) > 253 {
		return false
	}
	return net.ParseIP(host) != nil || hostnameRE.MatchString(host)
}
