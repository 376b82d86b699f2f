package service

import (
	"context"
	"sync"
	"time"

	"myregistry/domain"
	"myregistry/helpers"
	"myregistry/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	mirrorBuffer       = 1024
	mirrorWriteTimeout = 2 * time.Second
)

// Mirror copies locally-originated mutations into an external cache so a
// restarted node can warm up before its first full sync. It is best-effort:
// failures are logged and counted, never returned to the registry.
type Mirror struct {
	cache   interfaces.Cache[domain.Instance]
	metrics *Metrics
	logger  log.Logger

	deltas   chan domain.Delta
	stop     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewMirror creates a mirror over cache. Panics on nil dependencies.
func NewMirror(cache interfaces.Cache[domain.Instance], metrics *Metrics, logger log.Logger) *Mirror {
	return &Mirror{
		cache:   helpers.NilPanic(cache, "service.mirror.go: cache is required"),
		metrics: helpers.NilPanic(metrics, "service.mirror.go: metrics is required"),
		logger:  log.WithPrefix(helpers.NilPanic(logger, "service.mirror.go: logger is required"), "component", "Mirror"),
		deltas:  make(chan domain.Delta, mirrorBuffer),
		stop:    make(chan struct{}),
	}
}

// Broadcast queues delta for mirroring. A full buffer drops the delta.
func (m *Mirror) Broadcast(delta domain.Delta) {
	select {
	case m.deltas <- delta:
	default:
		m.metrics.MirrorErrors.Inc()
		level.Warn(m.logger).Log("msg", "mirror buffer full, delta dropped", "delta", delta)
	}
}

// Restore reads every mirrored instance. An empty mirror is not an error.
func (m *Mirror) Restore(ctx context.Context) ([]domain.Instance, error) {
	items, err := m.cache.ListAllValues(ctx)
	if err != nil {
		if IsEntityNotFoundError(err) {
			return nil, nil
		}
		return nil, err
	}
	return items, nil
}

func (m *Mirror) Start() {
	m.wg.Add(1)
	go m.run()
}

// Stop drains queued deltas and waits for the worker.
func (m *Mirror) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })
	m.wg.Wait()
}

func (m *Mirror) run() {
	defer m.wg.Done()
	for {
		select {
		case d := <-m.deltas:
			m.apply(d)
		case <-m.stop:
			for {
				select {
				case d := <-m.deltas:
					m.apply(d)
				default:
					return
				}
			}
		}
	}
}

func (m *Mirror) apply(d domain.Delta) {
	ctx, cancel := context.WithTimeout(context.Background(), mirrorWriteTimeout)
	defer cancel()

	key := d.Key().String()
	var err error
	switch {
	case d.Operation.IsRemoval():
		err = m.cache.DeleteValue(ctx, key)
	case d.Instance != nil:
		err = m.cache.WriteValue(ctx, key, *d.Instance, int(d.Instance.LeaseDuration.Milliseconds()))
	default:
		return
	}
	if err != nil {
		m.metrics.MirrorErrors.Inc()
		level.Error(m.logger).Log("msg", "mirror write failed", "delta", d, "err", err)
	}
}
