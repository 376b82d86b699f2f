package handlers

import (
	"net/http"

	"myregistry/adapters/peerhttp"
	"myregistry/domain"
	"myregistry/helpers"
	"myregistry/interfaces"
	"myregistry/service"

	"github.com/labstack/echo/v4"
)

// PeerServer serves replication calls from other registry nodes.
type PeerServer struct {
	peer interfaces.PeerAPI
}

func NewPeerServer(peer interfaces.PeerAPI) *PeerServer {
	return &PeerServer{peer: helpers.NilPanic(peer, "handlers.peer.go: peer api is required")}
}

// RegisterPeerHandlers adds the replication routes to router.
func RegisterPeerHandlers(router EchoRouter, s *PeerServer) {
	router.POST(peerhttp.DeltasPath, s.ReceiveDeltas)
	router.POST(peerhttp.SyncPath, s.FullSync)
}

// ReceiveDeltas (POST /v1/peer/deltas) applies a batch and reports what happened to it.
func (s *PeerServer) ReceiveDeltas(ectx echo.Context) error {
	var batch domain.DeltaBatch
	if err := ectx.Bind(&batch); err != nil {
		return service.NewBadParameterError("invalid delta batch", err)
	}
	if batch.OriginNodeID == "" {
		return service.NewBadParameterError("origin_node_id is required", nil)
	}

	res := s.peer.OnReceive(ectx.Request().Context(), batch)
	return ectx.JSON(http.StatusOK, res)
}

// FullSync (POST /v1/peer/sync) merges the caller's view and answers with ours.
func (s *PeerServer) FullSync(ectx echo.Context) error {
	var msg domain.FullSyncMessage
	if err := ectx.Bind(&msg); err != nil {
		return service.NewBadParameterError("invalid sync message", err)
	}
	if msg.NodeID == "" {
		return service.NewBadParameterError("node_id is required", nil)
	}

	return ectx.JSON(http.StatusOK, s.peer.OnFullSync(ectx.Request().Context(), msg))
}
