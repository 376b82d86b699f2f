package main

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"myregistry/adapters/myredis"
	"myregistry/domain"
	"myregistry/service"

	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	envHTTPPort   = "SERVICE_PORT_HTTP"
	envGRPCPort   = "SERVICE_PORT_GRPC"
	envNodeID     = "NODE_ID"
	envConfigPath = "CONFIG_PATH"
	envRedisAddr  = "REDIS_ADDR"
	envLogLevel   = "LOG_LEVEL"
)

// MyRegistryConfig is built by LoadConfig from environment variables and the optional YAML file.
// GRPCPort 0 disables the health server; an empty Redis.Addr disables the mirror.
type MyRegistryConfig struct {
	HTTPPort int
	GRPCPort int
	Redis    myredis.RedisConfig
	LogLevel level.Option
	Node     service.NodeConfig
}

type yamlConfig struct {
	NodeID   string        `yaml:"node_id"`
	Peers    []domain.Peer `yaml:"peers"`
	Registry yamlRegistry  `yaml:"registry"`
	Gossip   yamlGossip    `yaml:"gossip"`
}

// yamlRegistry holds lease and eviction tuning; durations are in milliseconds.
type yamlRegistry struct {
	EvictionIntervalMs        int     `yaml:"eviction_interval_ms"`
	RenewalRateIntervalMs     int     `yaml:"renewal_rate_interval_ms"`
	ExpectedRenewalIntervalMs int     `yaml:"expected_renewal_interval_ms"`
	RenewalPercentThreshold   float64 `yaml:"renewal_percent_threshold"`
	DisableSelfPreservation   bool    `yaml:"disable_self_preservation"`
	MinInstances              int     `yaml:"self_preservation_min_instances"`
	WarmUpMs                  int     `yaml:"self_preservation_warm_up_ms"`
	GraceMultiplier           float64 `yaml:"grace_multiplier"`
	LockTimeoutMs             int     `yaml:"lock_timeout_ms"`
	TombstoneTTLMs            int     `yaml:"tombstone_ttl_ms"`
}

type yamlGossip struct {
	QueueSize       int `yaml:"queue_size"`
	BatchSize       int `yaml:"batch_size"`
	SyncIntervalMs  int `yaml:"sync_interval_ms"`
	SyncConcurrency int `yaml:"sync_concurrency"`
	DedupSize       int `yaml:"dedup_size"`
}

func loadYAMLConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out yamlConfig
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoadConfig loads configuration from environment variables and, when CONFIG_PATH is set, from YAML.
// SERVICE_PORT_HTTP is required. Environment values override YAML.
func LoadConfig() (*MyRegistryConfig, error) {
	httpPort, err := parsePort(envHTTPPort, true)
	if err != nil {
		return nil, err
	}
	grpcPort, err := parsePort(envGRPCPort, false)
	if err != nil {
		return nil, err
	}
	logLevel, err := parseLogLevel(os.Getenv(envLogLevel))
	if err != nil {
		return nil, err
	}

	raw := &yamlConfig{}
	if configPath := strings.TrimSpace(os.Getenv(envConfigPath)); configPath != "" {
		if !filepath.IsAbs(configPath) {
			abs, absErr := filepath.Abs(configPath)
			if absErr != nil {
				return nil, absErr
			}
			configPath = abs
		}
		raw, err = loadYAMLConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", configPath, err)
		}
	}

	nodeID := strings.TrimSpace(os.Getenv(envNodeID))
	if nodeID == "" {
		nodeID = strings.TrimSpace(raw.NodeID)
	}
	if nodeID == "" {
		nodeID = uuid.NewString()
	}

	peers, err := validatePeers(nodeID, raw.Peers)
	if err != nil {
		return nil, err
	}
	lease, registry, err := raw.Registry.toConfig()
	if err != nil {
		return nil, err
	}
	gossip, err := raw.Gossip.toConfig()
	if err != nil {
		return nil, err
	}

	return &MyRegistryConfig{
		HTTPPort: httpPort,
		GRPCPort: grpcPort,
		Redis:    myredis.RedisConfig{Addr: strings.TrimSpace(os.Getenv(envRedisAddr))},
		LogLevel: logLevel,
		Node: service.NodeConfig{
			NodeID:   nodeID,
			Peers:    peers,
			Lease:    lease,
			Registry: registry,
			Gossip:   gossip,
		},
	}, nil
}

func parsePort(env string, required bool) (int, error) {
	s := strings.TrimSpace(os.Getenv(env))
	if s == "" {
		if required {
			return 0, fmt.Errorf("%s is required", env)
		}
		return 0, nil
	}
	port, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", env, err)
	}
	if port <= 0 || port > 65535 {
		return 0, fmt.Errorf("%s must be 1-65535, got %d", env, port)
	}
	return port, nil
}

func parseLogLevel(s string) (level.Option, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return level.AllowDebug(), nil
	case "", "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	}
	return nil, fmt.Errorf("%s must be one of debug|info|warn|error, got %q", envLogLevel, s)
}

func validatePeers(nodeID string, peers []domain.Peer) ([]domain.Peer, error) {
	seen := make(map[string]bool, len(peers))
	out := make([]domain.Peer, 0, len(peers))
	for i, p := range peers {
		p.ID = strings.TrimSpace(p.ID)
		p.URL = strings.TrimRight(strings.TrimSpace(p.URL), "/")
		switch {
		case p.ID == "":
			return nil, fmt.Errorf("peers[%d].id is required", i)
		case p.ID == nodeID:
			return nil, fmt.Errorf("peers[%d].id %q equals the node id", i, p.ID)
		case seen[p.ID]:
			return nil, fmt.Errorf("peers[%d].id %q is duplicated", i, p.ID)
		}
		u, err := url.Parse(p.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, fmt.Errorf("peers[%d].url %q must be an absolute http(s) url", i, p.URL)
		}
		seen[p.ID] = true
		out = append(out, p)
	}
	return out, nil
}

func (r yamlRegistry) toConfig() (service.LeaseStoreConfig, service.RegistryConfig, error) {
	durations := []struct {
		key string
		ms  int
	}{
		{"registry.eviction_interval_ms", r.EvictionIntervalMs},
		{"registry.renewal_rate_interval_ms", r.RenewalRateIntervalMs},
		{"registry.expected_renewal_interval_ms", r.ExpectedRenewalIntervalMs},
		{"registry.lock_timeout_ms", r.LockTimeoutMs},
		{"registry.tombstone_ttl_ms", r.TombstoneTTLMs},
		{"registry.self_preservation_warm_up_ms", r.WarmUpMs},
	}
	for _, d := range durations {
		if d.ms < 0 {
			return service.LeaseStoreConfig{}, service.RegistryConfig{}, fmt.Errorf("%s must not be negative, got %d", d.key, d.ms)
		}
	}
	if r.RenewalPercentThreshold < 0 || r.RenewalPercentThreshold > 1 {
		return service.LeaseStoreConfig{}, service.RegistryConfig{}, fmt.Errorf("registry.renewal_percent_threshold must be within [0, 1], got %v", r.RenewalPercentThreshold)
	}
	if r.MinInstances < 0 {
		return service.LeaseStoreConfig{}, service.RegistryConfig{}, fmt.Errorf("registry.self_preservation_min_instances must not be negative, got %d", r.MinInstances)
	}
	if r.GraceMultiplier < 0 {
		return service.LeaseStoreConfig{}, service.RegistryConfig{}, fmt.Errorf("registry.grace_multiplier must not be negative, got %v", r.GraceMultiplier)
	}

	lease := service.LeaseStoreConfig{
		GraceMultiplier: r.GraceMultiplier,
		LockTimeout:     ms(r.LockTimeoutMs),
		TombstoneTTL:    ms(r.TombstoneTTLMs),
	}
	registry := service.RegistryConfig{
		EvictionInterval:        ms(r.EvictionIntervalMs),
		RenewalRateInterval:     ms(r.RenewalRateIntervalMs),
		ExpectedRenewalInterval: ms(r.ExpectedRenewalIntervalMs),
		RenewalPercentThreshold: r.RenewalPercentThreshold,
		MinInstances:            r.MinInstances,
		WarmUp:                  ms(r.WarmUpMs),
		DisableSelfPreservation: r.DisableSelfPreservation,
	}
	return lease, registry, nil
}

func (g yamlGossip) toConfig() (service.GossipConfig, error) {
	values := []struct {
		key string
		v   int
	}{
		{"gossip.queue_size", g.QueueSize},
		{"gossip.batch_size", g.BatchSize},
		{"gossip.sync_interval_ms", g.SyncIntervalMs},
		{"gossip.sync_concurrency", g.SyncConcurrency},
		{"gossip.dedup_size", g.DedupSize},
	}
	for _, v := range values {
		if v.v < 0 {
			return service.GossipConfig{}, fmt.Errorf("%s must not be negative, got %d", v.key, v.v)
		}
	}
	return service.GossipConfig{
		QueueSize:       g.QueueSize,
		BatchSize:       g.BatchSize,
		SyncInterval:    ms(g.SyncIntervalMs),
		SyncConcurrency: g.SyncConcurrency,
		DedupSize:       g.DedupSize,
	}, nil
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}
