package service

import (
	"context"

	"myregistry/domain"
	"myregistry/helpers"
	"myregistry/interfaces"

	"github.com/benbjohnson/clock"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// tombstoneSyncRounds is the default tombstone TTL in full-sync intervals.
const tombstoneSyncRounds = 3

// NodeConfig assembles a registry node.
type NodeConfig struct {
	NodeID   string
	Peers    []domain.Peer
	Lease    LeaseStoreConfig
	Registry RegistryConfig
	Gossip   GossipConfig
}

// Node wires the lease store, registry, gossip and optional mirror of one
// process and owns their lifecycle.
type Node struct {
	nodeID   string
	registry *Registry
	gossip   *Gossip
	mirror   *Mirror
	client   *clientFacade
	logger   log.Logger
}

// NewNode builds a node. mirrorCache may be nil to run without a mirror.
func NewNode(
	cfg NodeConfig,
	peerClient interfaces.PeerClient,
	mirrorCache interfaces.Cache[domain.Instance],
	clk clock.Clock,
	metrics *Metrics,
	logger log.Logger,
) *Node {
	logger = helpers.NilPanic(logger, "service.node.go: logger is required")

	if cfg.Lease.TombstoneTTL == 0 {
		// a removal must outlive the full-sync rounds that could resurrect it
		cfg.Lease.TombstoneTTL = tombstoneSyncRounds * cfg.Gossip.withDefaults().SyncInterval
	}
	store := NewLeaseStore(cfg.NodeID, cfg.Lease, clk)
	registry := NewRegistry(store, cfg.Registry, clk, metrics, logger)
	gossip := NewGossip(cfg.NodeID, cfg.Peers, peerClient, registry, cfg.Gossip, clk, metrics, logger)
	registry.Subscribe(gossip)

	n := &Node{
		nodeID:   cfg.NodeID,
		registry: registry,
		gossip:   gossip,
		client:   NewClientFacade(registry),
		logger:   log.WithPrefix(logger, "component", "Node"),
	}
	if mirrorCache != nil {
		n.mirror = NewMirror(mirrorCache, metrics, logger)
		registry.Subscribe(n.mirror)
	}
	return n
}

// Client returns the client-facing API.
func (n *Node) Client() interfaces.ClientAPI {
	return n.client
}

// Peer returns the replication endpoint served to other nodes.
func (n *Node) Peer() interfaces.PeerAPI {
	return n.gossip
}

// Start restores from the mirror, runs one full sync and launches background loops.
// Restore and sync failures are logged; the node starts with whatever it has.
func (n *Node) Start(ctx context.Context) {
	if n.mirror != nil {
		restored, err := n.mirror.Restore(ctx)
		if err != nil {
			level.Error(n.logger).Log("msg", "mirror restore failed", "err", err)
		} else if len(restored) > 0 {
			applied := n.registry.MergeSyncMessage(ctx, domain.FullSyncMessage{NodeID: n.nodeID, Instances: restored})
			level.Info(n.logger).Log("msg", "restored from mirror", "found", len(restored), "applied", applied)
		}
		n.mirror.Start()
	}

	synced := n.gossip.FullSync(ctx)
	level.Info(n.logger).Log("msg", "initial full sync done", "peers_synced", synced, "peers", len(n.gossip.peers))

	n.registry.Start()
	n.gossip.Start()
	level.Info(n.logger).Log("msg", "node started", "node_id", n.nodeID)
}

// Stop stops the timers, flushes replication within ctx and drains the mirror.
func (n *Node) Stop(ctx context.Context) {
	n.registry.Stop()
	n.gossip.Stop(ctx)
	if n.mirror != nil {
		n.mirror.Stop()
	}
	level.Info(n.logger).Log("msg", "node stopped", "node_id", n.nodeID)
}

// Status merges registry and replication state.
func (n *Node) Status() domain.NodeStatus {
	st := n.registry.Status()
	st.DegradedPeers = n.gossip.DegradedPeers()
	st.DroppedDeltas = n.gossip.Dropped()
	return st
}
