package myredis

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"myregistry/domain"
	"myregistry/service"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRedisAddr = "redis://localhost:6379"
const testPrefix = "test-instance"

func setupTestRedis(t *testing.T) (redis.UniversalClient, func()) {
	t.Helper()
	client, err := NewRedisUniversalClient(testRedisAddr, WithTimeouts(time.Second))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("redis is not reachable at %s: %v", testRedisAddr, err)
	}

	flushTestKeys := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		keys, _ := client.Keys(ctx, testPrefix+":*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
	}
	flushTestKeys()

	cleanup := func() {
		flushTestKeys()
		client.Close()
	}
	return client, cleanup
}

func newTestCache(client redis.UniversalClient) *redisCache[domain.Instance] {
	return NewCache[domain.Instance](client, testPrefix, marshalInstance, unmarshalInstance)
}

func sampleInstance(id string) domain.Instance {
	return domain.Instance{
		AppName:              "orders",
		InstanceID:           id,
		Host:                 "127.0.0.1",
		Port:                 9000,
		Status:               domain.StatusUp,
		Metadata:             map[string]string{"zone": "a"},
		LastRenewalTimestamp: time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC),
		LeaseDuration:        90 * time.Second,
		OriginEpoch:          3,
		OriginNodeID:         "node-a",
	}
}

func TestCache_WriteValue(t *testing.T) {
	ctx := context.Background()
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	cache := newTestCache(client)
	inst := sampleInstance("inst-1")

	t.Run("success", func(t *testing.T) {
		err := cache.WriteValue(ctx, inst.Key().String(), inst, 60000)
		require.NoError(t, err)

		items, err := cache.ListAllValues(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, inst, items[0])

		ttl, err := client.TTL(ctx, testPrefix+":orders/inst-1").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, 50*time.Second)
	})

	t.Run("when Redis write fails returns internal_server_error", func(t *testing.T) {
		closedClient, err := NewRedisUniversalClient(testRedisAddr)
		require.NoError(t, err)
		closedClient.Close()
		cacheClosed := newTestCache(closedClient)

		err = cacheClosed.WriteValue(ctx, "x", inst, 60000)
		require.Error(t, err)
		assert.True(t, service.IsInternalServerError(err))
	})
}

func TestCache_DeleteValue(t *testing.T) {
	ctx := context.Background()
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	cache := newTestCache(client)
	inst := sampleInstance("inst-del")
	err := cache.WriteValue(ctx, inst.Key().String(), inst, 60000)
	require.NoError(t, err)

	err = cache.DeleteValue(ctx, inst.Key().String())
	require.NoError(t, err)

	items, err := cache.ListAllValues(ctx)
	require.Error(t, err)
	assert.True(t, service.IsEntityNotFoundError(err))
	assert.Nil(t, items)
}

func TestCache_ListAllValues(t *testing.T) {
	ctx := context.Background()
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	cache := newTestCache(client)

	t.Run("empty cache returns entity not found", func(t *testing.T) {
		items, err := cache.ListAllValues(ctx)
		require.Error(t, err)
		assert.True(t, service.IsEntityNotFoundError(err))
		assert.Nil(t, items)
	})

	t.Run("returns all values across chunks", func(t *testing.T) {
		for i := 0; i < scanBatch+5; i++ {
			inst := sampleInstance("list-" + strconv.Itoa(i))
			require.NoError(t, cache.WriteValue(ctx, inst.Key().String(), inst, 60000))
		}

		items, err := cache.ListAllValues(ctx)
		require.NoError(t, err)
		assert.Len(t, items, scanBatch+5)
	})

	t.Run("invalid JSON in redis yields entity not found", func(t *testing.T) {
		keys, err := client.Keys(ctx, testPrefix+":*").Result()
		require.NoError(t, err)
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		err = client.Set(ctx, testPrefix+":badjson", "invalid json", 0).Err()
		require.NoError(t, err)

		items, err := cache.ListAllValues(ctx)
		require.Error(t, err)
		assert.True(t, service.IsEntityNotFoundError(err))
		assert.Nil(t, items)
	})
}

func TestInstanceJSON(t *testing.T) {
	inst := sampleInstance("i-1")
	b, err := marshalInstance(inst)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Equal(t, "orders", raw["app_name"])

	got, err := unmarshalInstance(b)
	require.NoError(t, err)
	assert.Equal(t, inst, got)

	_, err = unmarshalInstance([]byte("{"))
	assert.Error(t, err)
}
