package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"myregistry/domain"
	"myregistry/interfaces/mock"

	"github.com/benbjohnson/clock"
	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_RestoresFromMirrorAndMirrorsMutations(t *testing.T) {
	ctx := context.Background()
	restored := testInstance("orders", "i-1")
	restored.LeaseDuration = time.Minute
	restored.OriginEpoch = 7
	restored.OriginNodeID = "old"

	cache := &mock.CacheMock[domain.Instance]{
		ListAllValuesFunc: func(ctx context.Context) ([]domain.Instance, error) {
			return []domain.Instance{restored}, nil
		},
	}
	n := NewNode(NodeConfig{NodeID: "a"}, &mock.PeerClientMock{}, cache, clock.NewMock(), NewMetrics(nil), log.NewNopLogger())
	n.Start(ctx)

	got, err := n.Client().Query(ctx, "orders", "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint64(7), got[0].OriginEpoch)

	require.NoError(t, n.Client().SetStatus(ctx, "orders", "i-1", "DOWN"))
	n.Stop(ctx)

	writes := cache.WriteValueCalls()
	require.Len(t, writes, 1, "restored entries are not written back")
	assert.Equal(t, domain.StatusDown, writes[0].Item.Status)
	assert.Equal(t, uint64(8), writes[0].Item.OriginEpoch, "local clock advanced past restored epochs")
}

func TestNode_StatusCombinesRegistryAndGossip(t *testing.T) {
	ctx := context.Background()
	client := &mock.PeerClientMock{
		FullSyncFunc: func(ctx context.Context, peer domain.Peer, msg domain.FullSyncMessage) (domain.FullSyncMessage, error) {
			return domain.FullSyncMessage{}, errors.New("connection refused")
		},
	}
	cfg := NodeConfig{NodeID: "a", Peers: []domain.Peer{{ID: "b", URL: "http://b"}}}
	n := NewNode(cfg, client, nil, clock.NewMock(), NewMetrics(nil), log.NewNopLogger())
	n.Start(ctx)
	defer n.Stop(ctx)

	require.NoError(t, n.Client().Register(ctx, validCommand()))

	st := n.Status()
	assert.Equal(t, "a", st.NodeID)
	assert.Equal(t, 1, st.Instances)
	assert.Equal(t, 2.0, st.ExpectedRenewalsPerMin)
	assert.Equal(t, []string{"b"}, st.DegradedPeers)
	assert.False(t, st.SelfPreservation)
}

func TestNode_PeerEndpointAppliesRemoteDeltas(t *testing.T) {
	ctx := context.Background()
	n := NewNode(NodeConfig{NodeID: "a"}, &mock.PeerClientMock{}, nil, clock.NewMock(), NewMetrics(nil), log.NewNopLogger())

	res := n.Peer().OnReceive(ctx, domain.DeltaBatch{OriginNodeID: "b", Deltas: []domain.Delta{renewDelta("i-1", 3)}})
	assert.Equal(t, 1, res.Applied)

	got, err := n.Client().Query(ctx, "orders", "")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestNewNode_TombstoneTTL(t *testing.T) {
	tests := []struct {
		name string
		cfg  NodeConfig
		want time.Duration
	}{
		{name: "default sync interval", cfg: NodeConfig{NodeID: "a"}, want: 90 * time.Second},
		{name: "follows sync interval", cfg: NodeConfig{NodeID: "a", Gossip: GossipConfig{SyncInterval: 5 * time.Minute}}, want: 15 * time.Minute},
		{name: "explicit ttl wins", cfg: NodeConfig{NodeID: "a", Lease: LeaseStoreConfig{TombstoneTTL: 2 * time.Minute}, Gossip: GossipConfig{SyncInterval: 5 * time.Minute}}, want: 2 * time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNode(tt.cfg, &mock.PeerClientMock{}, nil, clock.NewMock(), NewMetrics(nil), log.NewNopLogger())
			assert.Equal(t, tt.want, n.registry.store.cfg.TombstoneTTL)
		})
	}
}

func TestNode_CancelSurvivesSlowFullSync(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMock()
	cfg := NodeConfig{NodeID: "a", Gossip: GossipConfig{SyncInterval: 5 * time.Minute}}
	n := NewNode(cfg, &mock.PeerClientMock{}, nil, clk, NewMetrics(nil), log.NewNopLogger())

	cmd := validCommand()
	require.NoError(t, n.Client().Register(ctx, cmd))
	// view of a peer that missed the cancel
	stale := n.registry.SyncSnapshot()
	stale.NodeID = "b"
	require.Len(t, stale.Instances, 1)
	require.NoError(t, n.Client().Cancel(ctx, cmd.AppName, cmd.InstanceID))

	clk.Add(2 * cfg.Gossip.SyncInterval)
	n.registry.Evict(ctx)

	assert.Equal(t, 0, n.registry.MergeSyncMessage(ctx, stale), "tombstone outlives two sync rounds")
	got, err := n.Client().Query(ctx, cmd.AppName, StatusFilterAll)
	require.NoError(t, err)
	assert.Empty(t, got)
}
