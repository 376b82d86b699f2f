package interfaces

import (
	"context"
	"time"

	"myregistry/domain"
)

// Registry is the membership state machine used by the client facade.
//
//go:generate moq -stub -out mock/registry.go -pkg mock . Registry
type Registry interface {
	// Register creates or overwrites the instance lease.
	// Returns:
	// 1) (stored instance, nil) on success;
	// 2) bad_parameter when the instance fails validation;
	// 3) invalid_lease when leaseDuration <= 0;
	// 4) timeout when the instance lock is contended.
	Register(ctx context.Context, instance domain.Instance, leaseDuration time.Duration) (domain.Instance, error)

	// Renew extends the lease. Returns instance_not_found when absent or already expired.
	Renew(ctx context.Context, key domain.InstanceKey) (domain.Instance, error)

	// Cancel removes the lease. Reports false when there was nothing to remove.
	Cancel(ctx context.Context, key domain.InstanceKey) (bool, error)

	// SetStatus changes the advertised status without touching lease timing.
	SetStatus(ctx context.Context, key domain.InstanceKey, status domain.Status) (domain.Instance, error)

	// Query lists live instances of app whose status is one of statuses (UP when none given).
	Query(app string, statuses ...domain.Status) []domain.Instance

	// QueryAll is Query across every application, grouped by app name.
	QueryAll(statuses ...domain.Status) map[string][]domain.Instance
}

// ReplicaStore is the replication-facing side of the registry.
//
//go:generate moq -stub -out mock/replica_store.go -pkg mock . ReplicaStore
type ReplicaStore interface {
	// ApplyRemoteDelta merges a delta received from a peer. It never re-emits.
	// Returns conflict_discarded when the delta is not newer than the stored state.
	ApplyRemoteDelta(ctx context.Context, delta domain.Delta) error

	// SyncSnapshot returns this node's full view with its digest.
	SyncSnapshot() domain.FullSyncMessage

	// MergeSyncMessage applies every entry of msg that is newer than local state.
	// Returns the number of entries applied.
	MergeSyncMessage(ctx context.Context, msg domain.FullSyncMessage) int
}

// DeltaSink receives locally-originated deltas after they are committed.
// Implementations must not block.
//
//go:generate moq -stub -out mock/delta_sink.go -pkg mock . DeltaSink
type DeltaSink interface {
	Broadcast(delta domain.Delta)
}
