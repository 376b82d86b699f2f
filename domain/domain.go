package domain

import (
	"maps"
	"time"
)

// Instance represents a registered service instance stored by MyRegistry.
// Key is (AppName, InstanceID); OriginEpoch/OriginNodeID identify the last write.
type Instance struct {
	InstanceID            string            `json:"instance_id"`
	AppName               string            `json:"app_name"`
	Host                  string            `json:"host"`
	Port                  int               `json:"port"`
	Status                Status            `json:"status"`
	Metadata              map[string]string `json:"metadata,omitempty"`
	LastRenewalTimestamp  time.Time         `json:"last_renewal_timestamp"`
	RegistrationTimestamp time.Time         `json:"registration_timestamp"`
	LeaseDuration         time.Duration     `json:"lease_duration"`
	OriginEpoch           uint64            `json:"origin_epoch"`
	OriginNodeID          string            `json:"origin_node_id"`
}

// Key returns the registry key of the instance.
func (i Instance) Key() InstanceKey {
	return InstanceKey{AppName: i.AppName, InstanceID: i.InstanceID}
}

// Version returns the version of the last write applied to the instance.
func (i Instance) Version() Version {
	return Version{Epoch: i.OriginEpoch, NodeID: i.OriginNodeID}
}

// Clone returns a deep copy (metadata map included).
func (i Instance) Clone() Instance {
	out := i
	if i.Metadata != nil {
		out.Metadata = maps.Clone(i.Metadata)
	}
	return out
}

// ExpiresAt returns lastRenewal + leaseDuration*grace.
func (i Instance) ExpiresAt(grace float64) time.Time {
	return i.LastRenewalTimestamp.Add(time.Duration(float64(i.LeaseDuration) * grace))
}

// InstanceKey identifies an instance inside the registry.
type InstanceKey struct {
	AppName    string `json:"app_name"`
	InstanceID string `json:"instance_id"`
}

func (k InstanceKey) String() string {
	return k.AppName + "/" + k.InstanceID
}

// Version orders writes to the same key. Higher epoch wins; equal epochs are
// ordered by node id.
type Version struct {
	Epoch  uint64 `json:"epoch"`
	NodeID string `json:"node_id"`
}

// Newer reports whether v strictly dominates other. Equal versions denote the same write.
func (v Version) Newer(other Version) bool {
	if v.Epoch != other.Epoch {
		return v.Epoch > other.Epoch
	}
	return v.NodeID > other.NodeID
}

// Tombstone records a removed instance so that older writes cannot resurrect it.
type Tombstone struct {
	AppName      string    `json:"app_name"`
	InstanceID   string    `json:"instance_id"`
	OriginEpoch  uint64    `json:"origin_epoch"`
	OriginNodeID string    `json:"origin_node_id"`
	DeletedAt    time.Time `json:"deleted_at"`
}

func (t Tombstone) Key() InstanceKey {
	return InstanceKey{AppName: t.AppName, InstanceID: t.InstanceID}
}

func (t Tombstone) Version() Version {
	return Version{Epoch: t.OriginEpoch, NodeID: t.OriginNodeID}
}

// Peer is another registry node taking part in replication.
type Peer struct {
	ID  string `json:"id" yaml:"id"`
	URL string `json:"url" yaml:"url"`
}

// NodeStatus is a point-in-time view of a node for operators.
type NodeStatus struct {
	NodeID                 string
	SelfPreservation       bool
	Instances              int
	ExpectedRenewalsPerMin float64
	ObservedRenewalsPerMin float64
	DegradedPeers          []string
	DroppedDeltas          uint64
}
