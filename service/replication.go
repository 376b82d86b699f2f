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
	"myregistry/interfaces"

	"github.com/benbjohnson/clock"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"
)

const (
	defaultQueueSize       = 10000
	defaultBatchSize       = 250
	defaultSyncInterval    = 30 * time.Second
	defaultSyncConcurrency = 4
	defaultDedupSize       = 65536
)

// GossipConfig tunes replication. Zero values fall back to defaults.
type GossipConfig struct {
	// QueueSize bounds pending outbound deltas; the oldest is dropped on overflow. Default 10000.
	QueueSize int
	// BatchSize caps deltas per outbound call. Default 250.
	BatchSize int
	// SyncInterval is the period of full synchronization. Default 30s.
	SyncInterval time.Duration
	// SyncConcurrency bounds concurrent calls to peers. Default 4.
	SyncConcurrency int
	// DedupSize is the number of recently seen delta ids remembered. Default 65536.
	DedupSize int
}

func (c GossipConfig) withDefaults() GossipConfig {
	c.QueueSize = helpers.OrDefault(c.QueueSize, defaultQueueSize)
	c.BatchSize = helpers.OrDefault(c.BatchSize, defaultBatchSize)
	c.SyncInterval = helpers.OrDefault(c.SyncInterval, defaultSyncInterval)
	c.SyncConcurrency = helpers.OrDefault(c.SyncConcurrency, defaultSyncConcurrency)
	c.DedupSize = helpers.OrDefault(c.DedupSize, defaultDedupSize)
	return c
}

// Gossip replicates local deltas to peers and merges theirs.
//
// Outbound deltas go through a bounded queue drained by one sender; a peer
// that fails a send is marked degraded and skipped until a full sync with it
// succeeds. Full sync runs periodically against every peer and repairs
// anything incremental replication lost.
type Gossip struct {
	nodeID  string
	cfg     GossipConfig
	peers   []domain.Peer
	client  interfaces.PeerClient
	replica interfaces.ReplicaStore
	clock   clock.Clock
	metrics *Metrics
	logger  log.Logger

	queue   *deltaQueue
	seen    *lru.Cache[domain.DeltaID, struct{}]
	dropped atomic.Uint64

	degradedMu sync.RWMutex
	degraded   map[string]bool

	cancel   context.CancelFunc
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewGossip creates the replication component. Panics on nil dependencies.
func NewGossip(
	nodeID string,
	peers []domain.Peer,
	client interfaces.PeerClient,
	replica interfaces.ReplicaStore,
	cfg GossipConfig,
	clk clock.Clock,
	metrics *Metrics,
	logger log.Logger,
) *Gossip {
	cfg = cfg.withDefaults()
	seen, err := lru.New[domain.DeltaID, struct{}](cfg.DedupSize)
	if err != nil {
		panic(fmt.Sprintf("service.replication.go: dedup cache: %v", err))
	}
	return &Gossip{
		nodeID:   helpers.StrPanic(nodeID, "service.replication.go: nodeID is required"),
		cfg:      cfg,
		peers:    append([]domain.Peer(nil), peers...),
		client:   helpers.NilPanic(client, "service.replication.go: peer client is required"),
		replica:  helpers.NilPanic(replica, "service.replication.go: replica store is required"),
		clock:    helpers.NilPanic(clk, "service.replication.go: clock is required"),
		metrics:  helpers.NilPanic(metrics, "service.replication.go: metrics is required"),
		logger:   log.WithPrefix(helpers.NilPanic(logger, "service.replication.go: logger is required"), "component", "Gossip"),
		queue:    newDeltaQueue(cfg.QueueSize),
		seen:     seen,
		degraded: make(map[string]bool),
	}
}

// Broadcast enqueues a local delta for replication. It never blocks.
func (g *Gossip) Broadcast(delta domain.Delta) {
	if len(g.peers) == 0 {
		return
	}
	g.seen.Add(delta.ID(), struct{}{})
	g.metrics.DeltasEnqueued.Inc()
	if g.queue.Push(delta) {
		total := g.dropped.Add(1)
		g.metrics.DeltasDropped.Inc()
		level.Warn(g.logger).Log("msg", "replication queue full, dropped oldest delta", "dropped_total", total)
	}
}

// OnReceive applies a batch received from a peer. Deltas already seen are
// skipped; deltas older than local state are counted as discarded.
func (g *Gossip) OnReceive(ctx context.Context, batch domain.DeltaBatch) domain.ReceiveResult {
	var res domain.ReceiveResult
	for _, d := range batch.Deltas {
		id := d.ID()
		if seen, _ := g.seen.ContainsOrAdd(id, struct{}{}); seen {
			res.Duplicates++
			g.metrics.RemoteDeltas.WithLabelValues("duplicate").Inc()
			continue
		}

		err := g.replica.ApplyRemoteDelta(ctx, d)
		switch {
		case err == nil:
			res.Applied++
		case IsConflictDiscardedError(err):
			res.Discarded++
		default:
			if IsTimeoutError(err) {
				g.seen.Remove(id)
			}
			res.Failed++
			level.Warn(g.logger).Log("msg", "failed to apply remote delta", "from", batch.OriginNodeID, "delta", d, "err", err)
		}
	}
	return res
}

// OnFullSync answers a peer's full sync: merges what the peer knows and
// returns the local view, or only the digest when both views already match.
func (g *Gossip) OnFullSync(ctx context.Context, msg domain.FullSyncMessage) domain.FullSyncMessage {
	g.markHealthy(msg.NodeID)
	local := g.replica.SyncSnapshot()
	if msg.Digest == local.Digest {
		return domain.FullSyncMessage{NodeID: g.nodeID, Digest: local.Digest}
	}
	g.replica.MergeSyncMessage(ctx, msg)
	return g.replica.SyncSnapshot()
}

// FullSync runs one anti-entropy round against every peer, degraded ones
// included, and returns how many peers were synchronized.
func (g *Gossip) FullSync(ctx context.Context) int {
	if len(g.peers) == 0 {
		return 0
	}
	local := g.replica.SyncSnapshot()

	var synced atomic.Int64
	var eg errgroup.Group
	eg.SetLimit(g.cfg.SyncConcurrency)
	for _, peer := range g.peers {
		eg.Go(func() error {
			resp, err := g.client.FullSync(ctx, peer, local)
			if err != nil {
				g.metrics.FullSyncs.WithLabelValues(peer.ID, "error").Inc()
				if ctx.Err() == nil {
					g.markDegraded(peer, err)
				}
				return nil
			}
			if resp.Digest != local.Digest {
				g.replica.MergeSyncMessage(ctx, resp)
			}
			g.metrics.FullSyncs.WithLabelValues(peer.ID, "ok").Inc()
			g.markHealthy(peer.ID)
			synced.Add(1)
			return nil
		})
	}
	_ = eg.Wait()
	return int(synced.Load())
}

// Start launches the sender and the periodic full sync.
func (g *Gossip) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel
	ticker := g.clock.Ticker(g.cfg.SyncInterval)

	g.wg.Add(2)
	go g.sendLoop(ctx)
	go g.syncLoop(ctx, ticker)
}

// Stop cancels the loops and makes one best-effort attempt to flush pending
// deltas within ctx.
func (g *Gossip) Stop(ctx context.Context) {
	g.stopOnce.Do(func() {
		if g.cancel != nil {
			g.cancel()
		}
		g.wg.Wait()

		flushed := 0
		for batch := g.queue.PopBatch(g.cfg.BatchSize); len(batch) > 0 && ctx.Err() == nil; batch = g.queue.PopBatch(g.cfg.BatchSize) {
			g.send(ctx, batch)
			flushed += len(batch)
		}
		level.Info(g.logger).Log("msg", "gossip stopped", "flushed", flushed, "pending", g.queue.Len())
	})
}

// DegradedPeers returns the ids of peers currently skipped by incremental replication.
func (g *Gossip) DegradedPeers() []string {
	g.degradedMu.RLock()
	defer g.degradedMu.RUnlock()
	out := make([]string, 0, len(g.degraded))
	for id := range g.degraded {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Dropped returns the number of deltas dropped on queue overflow.
func (g *Gossip) Dropped() uint64 {
	return g.dropped.Load()
}

func (g *Gossip) sendLoop(ctx context.Context) {
	defer g.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case <-g.queue.ready:
			for ctx.Err() == nil {
				batch := g.queue.PopBatch(g.cfg.BatchSize)
				if len(batch) == 0 {
					break
				}
				g.send(ctx, batch)
			}
		}
	}
}

func (g *Gossip) syncLoop(ctx context.Context, ticker *clock.Ticker) {
	defer g.wg.Done()
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			g.FullSync(ctx)
		}
	}
}

// send posts batch to every healthy peer. Failures are not retried here.
func (g *Gossip) send(ctx context.Context, batch []domain.Delta) {
	msg := domain.DeltaBatch{OriginNodeID: g.nodeID, Deltas: batch}
	n := float64(len(batch))

	var eg errgroup.Group
	eg.SetLimit(g.cfg.SyncConcurrency)
	for _, peer := range g.peers {
		if g.isDegraded(peer.ID) {
			g.metrics.DeltasSent.WithLabelValues(peer.ID, "skipped").Add(n)
			continue
		}
		eg.Go(func() error {
			if err := g.client.SendDeltas(ctx, peer, msg); err != nil {
				g.metrics.DeltasSent.WithLabelValues(peer.ID, "error").Add(n)
				if ctx.Err() == nil {
					g.markDegraded(peer, err)
				}
				return nil
			}
			g.metrics.DeltasSent.WithLabelValues(peer.ID, "ok").Add(n)
			return nil
		})
	}
	_ = eg.Wait()
}

func (g *Gossip) isDegraded(peerID string) bool {
	g.degradedMu.RLock()
	defer g.degradedMu.RUnlock()
	return g.degraded[peerID]
}

func (g *Gossip) markDegraded(peer domain.Peer, err error) {
	g.degradedMu.Lock()
	was := g.degraded[peer.ID]
	g.degraded[peer.ID] = true
	g.degradedMu.Unlock()

	if !was {
		level.Warn(g.logger).Log(
			"msg", "peer degraded",
			"peer", peer.ID,
			"url", peer.URL,
			"err", NewPeerUnreachableError(fmt.Sprintf("peer %s is unreachable", peer.ID), err),
		)
	}
}

func (g *Gossip) markHealthy(peerID string) {
	g.degradedMu.Lock()
	was := g.degraded[peerID]
	delete(g.degraded, peerID)
	g.degradedMu.Unlock()

	if was {
		level.Info(g.logger).Log("msg", "peer recovered", "peer", peerID)
	}
}
