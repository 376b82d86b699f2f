package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"myregistry/domain"
	"myregistry/helpers"

	"github.com/benbjohnson/clock"
)

const (
	defaultLockTimeout  = 5 * time.Second
	defaultTombstoneTTL = 90 * time.Second
)

// LeaseStoreConfig tunes lease timing. Zero values fall back to defaults.
type LeaseStoreConfig struct {
	// GraceMultiplier stretches every lease: expiresAt = lastRenewal + lease*grace. Default 1.0.
	GraceMultiplier float64
	// LockTimeout bounds the wait for a per-instance lock. Default 5s.
	LockTimeout time.Duration
	// TombstoneTTL is how long removals are remembered. Default 90s; a Node
	// derives it from the full-sync interval instead.
	TombstoneTTL time.Duration
}

func (c LeaseStoreConfig) withDefaults() LeaseStoreConfig {
	c.GraceMultiplier = helpers.OrDefault(c.GraceMultiplier, 1.0)
	c.LockTimeout = helpers.OrDefault(c.LockTimeout, defaultLockTimeout)
	c.TombstoneTTL = helpers.OrDefault(c.TombstoneTTL, defaultTombstoneTTL)
	return c
}

// PutResult describes the outcome of LeaseStore.Put.
type PutResult struct {
	Instance    domain.Instance
	Existed     bool
	PriorStatus domain.Status
}

// LeaseStore keeps one lease per instance key.
//
// Writers serialize per key through a one-slot channel lock; readers load an
// immutable state through an atomic pointer and never block.
type LeaseStore struct {
	nodeID string
	cfg    LeaseStoreConfig
	clock  clock.Clock
	epochs *lamportClock

	mu      sync.RWMutex
	records map[domain.InstanceKey]*leaseRecord
}

type leaseRecord struct {
	lock  chan struct{}
	state atomic.Pointer[leaseState]
}

func (r *leaseRecord) unlock() {
	<-r.lock
}

// leaseState is never mutated after it is published.
type leaseState struct {
	instance  domain.Instance
	deleted   bool
	deletedAt time.Time
}

func (st *leaseState) live() bool {
	return st != nil && !st.deleted
}

// NewLeaseStore creates an empty store. Panics on empty nodeID or nil clock.
func NewLeaseStore(nodeID string, cfg LeaseStoreConfig, clk clock.Clock) *LeaseStore {
	return &LeaseStore{
		nodeID:  helpers.StrPanic(nodeID, "service.lease_store.go: nodeID is required"),
		cfg:     cfg.withDefaults(),
		clock:   helpers.NilPanic(clk, "service.lease_store.go: clock is required"),
		epochs:  &lamportClock{},
		records: make(map[domain.InstanceKey]*leaseRecord),
	}
}

// Put creates or overwrites the lease of instance. lastRenewal and
// registration are reset to now and a fresh local version is assigned.
func (s *LeaseStore) Put(ctx context.Context, instance domain.Instance, leaseDuration time.Duration) (PutResult, error) {
	if leaseDuration <= 0 {
		return PutResult{}, NewInvalidLeaseError(fmt.Sprintf("lease duration must be positive, got %s", leaseDuration), nil)
	}
	rec, err := s.acquire(ctx, instance.Key(), true)
	if err != nil {
		return PutResult{}, err
	}
	defer rec.unlock()

	now := s.clock.Now()
	var result PutResult
	if prior := rec.state.Load(); prior.live() {
		result.Existed = true
		result.PriorStatus = prior.instance.Status
	}

	next := instance.Clone()
	next.LeaseDuration = leaseDuration
	next.LastRenewalTimestamp = now
	next.RegistrationTimestamp = now
	s.stamp(&next)
	rec.state.Store(&leaseState{instance: next})

	result.Instance = next.Clone()
	return result, nil
}

// Renew extends the lease of key. Fails with instance_not_found when the lease
// is absent, removed or already past its expiry; the latter is left for the sweeper.
func (s *LeaseStore) Renew(ctx context.Context, key domain.InstanceKey) (domain.Instance, error) {
	rec, err := s.acquire(ctx, key, false)
	if err != nil {
		return domain.Instance{}, err
	}
	if rec == nil {
		return domain.Instance{}, instanceNotFound(key)
	}
	defer rec.unlock()

	now := s.clock.Now()
	st := rec.state.Load()
	if !st.live() || s.expired(st.instance, now) {
		return domain.Instance{}, instanceNotFound(key)
	}

	next := st.instance
	if now.After(next.LastRenewalTimestamp) {
		next.LastRenewalTimestamp = now
	}
	s.stamp(&next)
	rec.state.Store(&leaseState{instance: next})
	return next.Clone(), nil
}

// Cancel removes the lease of key and leaves a tombstone. It is idempotent:
// the boolean is false when nothing was removed.
func (s *LeaseStore) Cancel(ctx context.Context, key domain.InstanceKey) (domain.Instance, bool, error) {
	rec, err := s.acquire(ctx, key, false)
	if err != nil {
		return domain.Instance{}, false, err
	}
	if rec == nil {
		return domain.Instance{}, false, nil
	}
	defer rec.unlock()

	st := rec.state.Load()
	if !st.live() {
		return domain.Instance{}, false, nil
	}
	return s.tombstone(rec, st.instance, s.clock.Now()), true, nil
}

// SetStatus changes the status of a live lease without touching its timing.
func (s *LeaseStore) SetStatus(ctx context.Context, key domain.InstanceKey, status domain.Status) (domain.Instance, error) {
	rec, err := s.acquire(ctx, key, false)
	if err != nil {
		return domain.Instance{}, err
	}
	if rec == nil {
		return domain.Instance{}, instanceNotFound(key)
	}
	defer rec.unlock()

	st := rec.state.Load()
	if !st.live() || s.expired(st.instance, s.clock.Now()) {
		return domain.Instance{}, instanceNotFound(key)
	}

	next := st.instance
	next.Status = status
	s.stamp(&next)
	rec.state.Store(&leaseState{instance: next})
	return next.Clone(), nil
}

// SweepExpired removes every lease whose expiry is before now and returns the
// tombstoned instances. Leases whose lock is held by a writer are skipped
// without waiting and picked up by the next sweep.
func (s *LeaseStore) SweepExpired(now time.Time) []domain.Instance {
	var removed []domain.Instance
	for _, rec := range s.snapshotRecords() {
		st := rec.state.Load()
		if !st.live() || !s.expired(st.instance, now) {
			continue
		}
		locked := s.tryAcquire(st.instance.Key())
		if locked == nil {
			continue
		}
		st = locked.state.Load()
		if st.live() && s.expired(st.instance, now) {
			removed = append(removed, s.tombstone(locked, st.instance, now))
		}
		locked.unlock()
	}
	sortInstances(removed)
	return removed
}

// PurgeTombstones forgets removals older than the tombstone TTL.
func (s *LeaseStore) PurgeTombstones(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	for key, rec := range s.records {
		if !s.purgeable(rec.state.Load(), now) {
			continue
		}
		select {
		case rec.lock <- struct{}{}:
		default:
			continue
		}
		if s.purgeable(rec.state.Load(), now) {
			delete(s.records, key)
			purged++
		}
		rec.unlock()
	}
	return purged
}

// Apply merges a remote delta. It returns false when the delta is not newer
// than the stored state (including an equal version, which is the same write).
func (s *LeaseStore) Apply(ctx context.Context, delta domain.Delta) (bool, error) {
	if !delta.Operation.IsRemoval() && delta.Instance == nil {
		return false, NewBadParameterError(fmt.Sprintf("delta %s has no instance snapshot", delta), nil)
	}
	s.epochs.Observe(delta.OriginEpoch)

	rec, err := s.acquire(ctx, delta.Key(), true)
	if err != nil {
		return false, err
	}
	defer rec.unlock()

	now := s.clock.Now()
	cur := rec.state.Load()
	if cur != nil && !delta.Version().Newer(cur.instance.Version()) {
		return false, nil
	}

	var next domain.Instance
	switch {
	case delta.Instance != nil:
		next = delta.Instance.Clone()
	case cur != nil:
		next = cur.instance
	}
	next.AppName = delta.AppName
	next.InstanceID = delta.InstanceID
	next.OriginEpoch = delta.OriginEpoch
	next.OriginNodeID = delta.OriginNodeID

	if delta.Operation.IsRemoval() {
		rec.state.Store(&leaseState{instance: next, deleted: true, deletedAt: now})
		return true, nil
	}

	next.LastRenewalTimestamp = now
	if next.RegistrationTimestamp.IsZero() {
		next.RegistrationTimestamp = now
	}
	rec.state.Store(&leaseState{instance: next})
	return true, nil
}

// Get returns the live instance stored under key.
func (s *LeaseStore) Get(key domain.InstanceKey) (domain.Instance, bool) {
	s.mu.RLock()
	rec := s.records[key]
	s.mu.RUnlock()
	if rec == nil {
		return domain.Instance{}, false
	}
	st := rec.state.Load()
	if !st.live() {
		return domain.Instance{}, false
	}
	return st.instance.Clone(), true
}

// ListByApp returns live instances of app ordered by instance id.
func (s *LeaseStore) ListByApp(app string) []domain.Instance {
	return s.list(func(i domain.Instance) bool { return i.AppName == app })
}

// ListAll returns every live instance ordered by app then instance id.
func (s *LeaseStore) ListAll() []domain.Instance {
	return s.list(func(domain.Instance) bool { return true })
}

// Count returns the number of live leases.
func (s *LeaseStore) Count() int {
	n := 0
	for _, rec := range s.snapshotRecords() {
		if rec.state.Load().live() {
			n++
		}
	}
	return n
}

// Snapshot returns live instances and tombstones for anti-entropy.
func (s *LeaseStore) Snapshot() ([]domain.Instance, []domain.Tombstone) {
	var instances []domain.Instance
	var tombstones []domain.Tombstone
	for _, rec := range s.snapshotRecords() {
		st := rec.state.Load()
		switch {
		case st == nil:
		case st.deleted:
			tombstones = append(tombstones, domain.Tombstone{
				AppName:      st.instance.AppName,
				InstanceID:   st.instance.InstanceID,
				OriginEpoch:  st.instance.OriginEpoch,
				OriginNodeID: st.instance.OriginNodeID,
				DeletedAt:    st.deletedAt,
			})
		default:
			instances = append(instances, st.instance.Clone())
		}
	}
	sortInstances(instances)
	sort.Slice(tombstones, func(i, j int) bool {
		return tombstones[i].Key().String() < tombstones[j].Key().String()
	})
	return instances, tombstones
}

// ObserveEpoch raises the local epoch clock to at least e.
func (s *LeaseStore) ObserveEpoch(e uint64) {
	s.epochs.Observe(e)
}

// Grace returns the configured grace multiplier.
func (s *LeaseStore) Grace() float64 {
	return s.cfg.GraceMultiplier
}

func (s *LeaseStore) list(keep func(domain.Instance) bool) []domain.Instance {
	out := make([]domain.Instance, 0)
	for _, rec := range s.snapshotRecords() {
		st := rec.state.Load()
		if st.live() && keep(st.instance) {
			out = append(out, st.instance.Clone())
		}
	}
	sortInstances(out)
	return out
}

// acquire returns the locked record for key. With create=false a missing record
// yields (nil, nil). The record is re-validated after locking because
// PurgeTombstones may have unlinked it in the meantime.
func (s *LeaseStore) acquire(ctx context.Context, key domain.InstanceKey, create bool) (*leaseRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.LockTimeout)
	defer cancel()

	for {
		rec := s.lookup(key, create)
		if rec == nil {
			return nil, nil
		}
		select {
		case rec.lock <- struct{}{}:
		case <-ctx.Done():
			return nil, NewTimeoutError(fmt.Sprintf("timed out waiting for lock on %s", key), ctx.Err())
		}

		s.mu.RLock()
		current := s.records[key]
		s.mu.RUnlock()
		if current == rec {
			return rec, nil
		}
		rec.unlock()
	}
}

// tryAcquire locks the current record of key without waiting. It returns nil
// when the key is unknown or its lock is taken.
func (s *LeaseStore) tryAcquire(key domain.InstanceKey) *leaseRecord {
	rec := s.lookup(key, false)
	if rec == nil {
		return nil
	}
	select {
	case rec.lock <- struct{}{}:
	default:
		return nil
	}
	s.mu.RLock()
	current := s.records[key]
	s.mu.RUnlock()
	if current != rec {
		rec.unlock()
		return nil
	}
	return rec
}

func (s *LeaseStore) lookup(key domain.InstanceKey, create bool) *leaseRecord {
	s.mu.RLock()
	rec := s.records[key]
	s.mu.RUnlock()
	if rec != nil || !create {
		return rec
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if rec = s.records[key]; rec == nil {
		rec = &leaseRecord{lock: make(chan struct{}, 1)}
		s.records[key] = rec
	}
	return rec
}

func (s *LeaseStore) snapshotRecords() []*leaseRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*leaseRecord, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	return out
}

// tombstone must be called with rec locked.
func (s *LeaseStore) tombstone(rec *leaseRecord, instance domain.Instance, now time.Time) domain.Instance {
	s.stamp(&instance)
	rec.state.Store(&leaseState{instance: instance, deleted: true, deletedAt: now})
	return instance.Clone()
}

func (s *LeaseStore) stamp(instance *domain.Instance) {
	instance.OriginEpoch = s.epochs.Tick()
	instance.OriginNodeID = s.nodeID
}

func (s *LeaseStore) expired(instance domain.Instance, now time.Time) bool {
	return now.After(instance.ExpiresAt(s.cfg.GraceMultiplier))
}

func (s *LeaseStore) purgeable(st *leaseState, now time.Time) bool {
	if st == nil {
		return true
	}
	return st.deleted && now.Sub(st.deletedAt) >= s.cfg.TombstoneTTL
}

func instanceNotFound(key domain.InstanceKey) *MyError {
	return NewInstanceNotFoundError(fmt.Sprintf("instance %s has no live lease", key), nil)
}

func sortInstances(instances []domain.Instance) {
	sort.Slice(instances, func(i, j int) bool {
		if instances[i].AppName != instances[j].AppName {
			return instances[i].AppName < instances[j].AppName
		}
		return instances[i].InstanceID < instances[j].InstanceID
	})
}
