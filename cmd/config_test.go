package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"myregistry/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range []string{envHTTPPort, envGRPCPort, envNodeID, envConfigPath, envRedisAddr, envLogLevel} {
		t.Setenv(env, "")
	}
}

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_ServicePortRequired(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "SERVICE_PORT_HTTP is required")
}

func TestLoadConfig_InvalidPorts(t *testing.T) {
	tests := []struct {
		name string
		http string
		grpc string
		want string
	}{
		{"http not a number", "not-a-number", "", "SERVICE_PORT_HTTP"},
		{"http out of range", "70000", "", "SERVICE_PORT_HTTP must be 1-65535"},
		{"grpc not a number", "8080", "x", "SERVICE_PORT_GRPC"},
		{"grpc zero", "8080", "0", "SERVICE_PORT_GRPC must be 1-65535"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(envHTTPPort, tt.http)
			t.Setenv(envGRPCPort, tt.grpc)

			cfg, err := LoadConfig()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv(envHTTPPort, "8080")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 0, cfg.GRPCPort)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Len(t, cfg.Node.NodeID, 36, "random uuid node id")
	assert.Empty(t, cfg.Node.Peers)
	assert.Zero(t, cfg.Node.Registry.EvictionInterval, "zero falls back to service defaults")
}

func TestLoadConfig_EnvValues(t *testing.T) {
	clearEnv(t)
	t.Setenv(envHTTPPort, "9000")
	t.Setenv(envGRPCPort, "9001")
	t.Setenv(envNodeID, "node-a")
	t.Setenv(envRedisAddr, "redis://other:6380")
	t.Setenv(envLogLevel, "DEBUG")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.HTTPPort)
	assert.Equal(t, 9001, cfg.GRPCPort)
	assert.Equal(t, "node-a", cfg.Node.NodeID)
	assert.Equal(t, "redis://other:6380", cfg.Redis.Addr)
	assert.NotNil(t, cfg.LogLevel)
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv(envHTTPPort, "8080")
	t.Setenv(envLogLevel, "verbose")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestLoadConfig_YAML(t *testing.T) {
	clearEnv(t)
	t.Setenv(envHTTPPort, "8080")
	t.Setenv(envConfigPath, writeYAML(t, `
node_id: node-a
peers:
  - id: node-b
    url: http://node-b:8080/
  - id: node-c
    url: https://node-c:8443
registry:
  eviction_interval_ms: 5000
  renewal_rate_interval_ms: 60000
  expected_renewal_interval_ms: 10000
  renewal_percent_threshold: 0.5
  disable_self_preservation: true
  self_preservation_min_instances: 3
  self_preservation_warm_up_ms: 30000
  grace_multiplier: 1.5
  lock_timeout_ms: 250
  tombstone_ttl_ms: 120000
gossip:
  queue_size: 100
  batch_size: 10
  sync_interval_ms: 15000
  sync_concurrency: 2
  dedup_size: 1000
`))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	node := cfg.Node
	assert.Equal(t, "node-a", node.NodeID)
	assert.Equal(t, []domain.Peer{
		{ID: "node-b", URL: "http://node-b:8080"},
		{ID: "node-c", URL: "https://node-c:8443"},
	}, node.Peers)

	assert.Equal(t, 5*time.Second, node.Registry.EvictionInterval)
	assert.Equal(t, time.Minute, node.Registry.RenewalRateInterval)
	assert.Equal(t, 10*time.Second, node.Registry.ExpectedRenewalInterval)
	assert.Equal(t, 0.5, node.Registry.RenewalPercentThreshold)
	assert.True(t, node.Registry.DisableSelfPreservation)
	assert.Equal(t, 3, node.Registry.MinInstances)
	assert.Equal(t, 30*time.Second, node.Registry.WarmUp)

	assert.Equal(t, 1.5, node.Lease.GraceMultiplier)
	assert.Equal(t, 250*time.Millisecond, node.Lease.LockTimeout)
	assert.Equal(t, 2*time.Minute, node.Lease.TombstoneTTL)

	assert.Equal(t, 100, node.Gossip.QueueSize)
	assert.Equal(t, 10, node.Gossip.BatchSize)
	assert.Equal(t, 15*time.Second, node.Gossip.SyncInterval)
	assert.Equal(t, 2, node.Gossip.SyncConcurrency)
	assert.Equal(t, 1000, node.Gossip.DedupSize)
}

func TestLoadConfig_EnvOverridesYAML(t *testing.T) {
	clearEnv(t)
	t.Setenv(envHTTPPort, "8080")
	t.Setenv(envNodeID, "from-env")
	t.Setenv(envConfigPath, writeYAML(t, "node_id: from-yaml\n"))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Node.NodeID)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unparsable", "peers: [", "load config"},
		{"peer without id", "peers:\n  - url: http://b\n", "peers[0].id is required"},
		{"peer without url", "peers:\n  - id: b\n", "peers[0].url"},
		{"peer is self", "node_id: a\npeers:\n  - id: a\n    url: http://a\n", "equals the node id"},
		{"duplicate peer", "peers:\n  - id: b\n    url: http://b\n  - id: b\n    url: http://b2\n", "peers[1].id \"b\" is duplicated"},
		{"negative duration", "registry:\n  lock_timeout_ms: -1\n", "registry.lock_timeout_ms"},
		{"threshold above one", "registry:\n  renewal_percent_threshold: 1.5\n", "registry.renewal_percent_threshold"},
		{"negative floor", "registry:\n  self_preservation_min_instances: -1\n", "registry.self_preservation_min_instances"},
		{"negative queue", "gossip:\n  queue_size: -5\n", "gossip.queue_size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(envHTTPPort, "8080")
			t.Setenv(envConfigPath, writeYAML(t, tt.yaml))

			cfg, err := LoadConfig()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadConfig_MissingYAMLFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(envHTTPPort, "8080")
	t.Setenv(envConfigPath, filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}
