package interfaces

import (
	"context"

	"myregistry/domain"
)

// PeerClient is the outbound transport used by gossip.
//
//go:generate moq -stub -out mock/peer_client.go -pkg mock . PeerClient
type PeerClient interface {
	// SendDeltas posts an incremental batch to the peer.
	// Returns peer_unreachable on transport failure or a non-200 reply.
	SendDeltas(ctx context.Context, peer domain.Peer, batch domain.DeltaBatch) error

	// FullSync sends msg to the peer and returns its reply.
	// Returns peer_unreachable on transport failure or a non-200 reply.
	FullSync(ctx context.Context, peer domain.Peer, msg domain.FullSyncMessage) (domain.FullSyncMessage, error)
}

// PeerAPI is the inbound side of gossip, served to peers.
//
//go:generate moq -stub -out mock/peer_api.go -pkg mock . PeerAPI
type PeerAPI interface {
	OnReceive(ctx context.Context, batch domain.DeltaBatch) domain.ReceiveResult
	OnFullSync(ctx context.Context, msg domain.FullSyncMessage) domain.FullSyncMessage
}
