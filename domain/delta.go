package domain

import (
	"fmt"
	"time"
)

// Operation is the kind of mutation carried by a Delta.
type Operation string

const (
	OperationRegister     Operation = "REGISTER"
	OperationRenew        Operation = "RENEW"
	OperationCancel       Operation = "CANCEL"
	OperationStatusChange Operation = "STATUS_CHANGE"
	OperationExpire       Operation = "EXPIRE"
)

func (o Operation) Valid() bool {
	switch o {
	case OperationRegister, OperationRenew, OperationCancel, OperationStatusChange, OperationExpire:
		return true
	}
	return false
}

// IsRemoval reports whether applying the operation removes the instance.
func (o Operation) IsRemoval() bool {
	return o == OperationCancel || o == OperationExpire
}

// Delta is a single replicated mutation. Instance is the post-mutation
// snapshot; it may be nil for removals.
type Delta struct {
	AppName      string    `json:"app_name"`
	InstanceID   string    `json:"instance_id"`
	Operation    Operation `json:"operation"`
	Instance     *Instance `json:"instance,omitempty"`
	OriginEpoch  uint64    `json:"origin_epoch"`
	OriginNodeID string    `json:"origin_node_id"`
	Timestamp    time.Time `json:"timestamp"`
}

// DeltaID is the identity used for de-duplication.
type DeltaID struct {
	Key     InstanceKey
	Version Version
}

func (d Delta) Key() InstanceKey {
	return InstanceKey{AppName: d.AppName, InstanceID: d.InstanceID}
}

func (d Delta) Version() Version {
	return Version{Epoch: d.OriginEpoch, NodeID: d.OriginNodeID}
}

func (d Delta) ID() DeltaID {
	return DeltaID{Key: d.Key(), Version: d.Version()}
}

func (d Delta) String() string {
	return fmt.Sprintf("%s %s@%d:%s", d.Operation, d.Key(), d.OriginEpoch, d.OriginNodeID)
}

// DeltaBatch is the payload of one incremental replication call.
type DeltaBatch struct {
	OriginNodeID string  `json:"origin_node_id"`
	Deltas       []Delta `json:"deltas"`
}

// ReceiveResult counts what happened to a received batch.
type ReceiveResult struct {
	Applied    int `json:"applied"`
	Discarded  int `json:"discarded"`
	Duplicates int `json:"duplicates"`
	Failed     int `json:"failed"`
}

// FullSyncMessage carries a node's complete view for anti-entropy.
// A message with only NodeID and Digest means "already in sync".
type FullSyncMessage struct {
	NodeID     string      `json:"node_id"`
	Digest     uint64      `json:"digest"`
	Instances  []Instance  `json:"instances,omitempty"`
	Tombstones []Tombstone `json:"tombstones,omitempty"`
}
