package peerhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"myregistry/domain"
	"myregistry/helpers"
	"myregistry/interfaces"
	"myregistry/service"
)

const (
	DeltasPath = "/v1/peer/deltas"
	SyncPath   = "/v1/peer/sync"

	defaultCallTimeout = 5 * time.Second
)

// New creates an interfaces.PeerClient that replicates over HTTP+JSON:
// POST {peer.URL}/v1/peer/deltas and POST {peer.URL}/v1/peer/sync.
// Every failure is reported as peer_unreachable. Panics on nil client.
func New(client *http.Client) interfaces.PeerClient {
	return &peerHTTP{
		client: helpers.NilPanic(client, "adapters.peerhttp.client.go: http client is required"),
	}
}

type peerHTTP struct {
	client *http.Client
}

func (p *peerHTTP) SendDeltas(ctx context.Context, peer domain.Peer, batch domain.DeltaBatch) error {
	var res domain.ReceiveResult
	return p.post(ctx, peer, DeltasPath, batch, &res)
}

func (p *peerHTTP) FullSync(ctx context.Context, peer domain.Peer, msg domain.FullSyncMessage) (domain.FullSyncMessage, error) {
	var out domain.FullSyncMessage
	if err := p.post(ctx, peer, SyncPath, msg, &out); err != nil {
		return domain.FullSyncMessage{}, err
	}
	return out, nil
}

func (p *peerHTTP) post(ctx context.Context, peer domain.Peer, path string, in, out any) error {
	if peer.URL == "" {
		return service.NewPeerUnreachableError(fmt.Sprintf("peer %s has no url", peer.ID), nil)
	}
	ctx, cancel := context.WithTimeout(ctx, defaultCallTimeout)
	defer cancel()

	body, err := json.Marshal(in)
	if err != nil {
		return service.NewInternalServerError("peer request marshal error", fmt.Errorf("can't marshal %T, err: %w", in, err))
	}
	reqURL := strings.TrimRight(peer.URL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return unreachable(peer, path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return unreachable(peer, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return unreachable(peer, path, fmt.Errorf("peer returned %d", resp.StatusCode))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return unreachable(peer, path, fmt.Errorf("can't decode response, err: %w", err))
	}
	return nil
}

func unreachable(peer domain.Peer, path string, err error) error {
	return service.NewPeerUnreachableError(fmt.Sprintf("peer %s call %s failed", peer.ID, path), err)
}
