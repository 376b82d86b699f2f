package service

import (
	"testing"

	"myregistry/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queuedDelta(epoch uint64) domain.Delta {
	return domain.Delta{AppName: "orders", InstanceID: "i-1", Operation: domain.OperationRenew, OriginEpoch: epoch, OriginNodeID: "n1"}
}

func TestDeltaQueue_FIFO(t *testing.T) {
	q := newDeltaQueue(4)
	for e := uint64(1); e <= 3; e++ {
		assert.False(t, q.Push(queuedDelta(e)))
	}
	assert.Equal(t, 3, q.Len())

	batch := q.PopBatch(2)
	require.Len(t, batch, 2)
	assert.Equal(t, uint64(1), batch[0].OriginEpoch)
	assert.Equal(t, uint64(2), batch[1].OriginEpoch)

	batch = q.PopBatch(10)
	require.Len(t, batch, 1)
	assert.Equal(t, uint64(3), batch[0].OriginEpoch)
	assert.Nil(t, q.PopBatch(10))
}

func TestDeltaQueue_DropsOldest(t *testing.T) {
	q := newDeltaQueue(3)
	for e := uint64(1); e <= 3; e++ {
		q.Push(queuedDelta(e))
	}
	assert.True(t, q.Push(queuedDelta(4)))
	assert.True(t, q.Push(queuedDelta(5)))

	batch := q.PopBatch(10)
	require.Len(t, batch, 3)
	assert.Equal(t, []uint64{3, 4, 5}, []uint64{batch[0].OriginEpoch, batch[1].OriginEpoch, batch[2].OriginEpoch})
}

func TestDeltaQueue_SignalsReady(t *testing.T) {
	q := newDeltaQueue(2)
	q.Push(queuedDelta(1))
	q.Push(queuedDelta(2))

	select {
	case <-q.ready:
	default:
		t.Fatal("expected ready signal")
	}
	select {
	case <-q.ready:
		t.Fatal("ready must coalesce")
	default:
	}
}
