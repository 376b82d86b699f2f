package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion_Newer(t *testing.T) {
	tests := []struct {
		name string
		a, b Version
		want bool
	}{
		{name: "higher epoch wins", a: Version{Epoch: 2, NodeID: "a"}, b: Version{Epoch: 1, NodeID: "z"}, want: true},
		{name: "lower epoch loses", a: Version{Epoch: 1, NodeID: "z"}, b: Version{Epoch: 2, NodeID: "a"}, want: false},
		{name: "tie broken by node id", a: Version{Epoch: 3, NodeID: "b"}, b: Version{Epoch: 3, NodeID: "a"}, want: true},
		{name: "tie lower node id", a: Version{Epoch: 3, NodeID: "a"}, b: Version{Epoch: 3, NodeID: "b"}, want: false},
		{name: "equal is not newer", a: Version{Epoch: 3, NodeID: "a"}, b: Version{Epoch: 3, NodeID: "a"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Newer(tt.b))
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range AllStatuses {
		got, err := ParseStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	got, err := ParseStatus("out_of_service")
	require.NoError(t, err)
	assert.Equal(t, StatusOutOfService, got)

	_, err = ParseStatus("SLEEPING")
	require.Error(t, err)
	_, err = ParseStatus("")
	require.Error(t, err)
}

func TestInstance_ExpiresAt(t *testing.T) {
	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	inst := Instance{LastRenewalTimestamp: now, LeaseDuration: 30 * time.Second}

	assert.Equal(t, now.Add(30*time.Second), inst.ExpiresAt(1))
	assert.Equal(t, now.Add(60*time.Second), inst.ExpiresAt(2))
}

func TestInstance_CloneCopiesMetadata(t *testing.T) {
	inst := Instance{AppName: "orders", InstanceID: "i-1", Metadata: map[string]string{"zone": "a"}}
	clone := inst.Clone()
	clone.Metadata["zone"] = "b"

	assert.Equal(t, "a", inst.Metadata["zone"])
	assert.Equal(t, InstanceKey{AppName: "orders", InstanceID: "i-1"}, clone.Key())
}

func TestOperation_IsRemoval(t *testing.T) {
	assert.True(t, OperationCancel.IsRemoval())
	assert.True(t, OperationExpire.IsRemoval())
	assert.False(t, OperationRegister.IsRemoval())
	assert.False(t, OperationRenew.IsRemoval())
	assert.False(t, OperationStatusChange.IsRemoval())
	assert.False(t, Operation("BOGUS").Valid())
}

func TestDelta_ID(t *testing.T) {
	d := Delta{AppName: "orders", InstanceID: "i-1", Operation: OperationRenew, OriginEpoch: 7, OriginNodeID: "n1"}
	same := d
	same.Operation = OperationStatusChange

	assert.Equal(t, d.ID(), same.ID())
	assert.Equal(t, "orders/i-1", d.Key().String())
	assert.Equal(t, "RENEW orders/i-1@7:n1", d.String())
}
