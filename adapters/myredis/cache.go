package myredis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"myregistry/service"

	"github.com/go-redis/redis/v8"
)

// scanBatch is the COUNT hint for SCAN and the MGET chunk size.
const scanBatch = 200

type redisCache[T any] struct {
	client    redis.UniversalClient
	prefix    string
	marshal   func(T) ([]byte, error)
	unmarshal func([]byte) (T, error)
	zero      T
}

// NewCache creates redis implementation of generic cache interface.
// Keys are stored as prefix:key.
func NewCache[T any](client redis.UniversalClient, prefix string, marshal func(T) ([]byte, error), unmarshal func([]byte) (T, error)) *redisCache[T] {
	var zero T
	return &redisCache[T]{
		client:    client,
		prefix:    prefix,
		zero:      zero,
		marshal:   marshal,
		unmarshal: unmarshal,
	}
}

// WriteValue stores item under key. A non-positive ttlMs stores it without expiry.
func (r *redisCache[T]) WriteValue(ctx context.Context, key string, item T, ttlMs int) error {
	bytes, err := r.marshal(item)
	if err != nil {
		return service.NewInternalServerError("Redis marshal item error", fmt.Errorf("can't marshal item of type %T, err: %w", item, err))
	}

	ttl := time.Duration(max(ttlMs, 0)) * time.Millisecond
	err = r.client.Set(ctx, r.generateKey(key), bytes, ttl).Err()
	if err != nil {
		return service.NewInternalServerError("Redis write key error", fmt.Errorf("can't write item of type %T to redis (key='%s'), err: %w", item, key, err))
	}

	return nil
}

func (r *redisCache[T]) DeleteValue(ctx context.Context, key string) error {
	err := r.client.Del(ctx, r.generateKey(key)).Err()
	if err != nil {
		return service.NewInternalServerError("Redis delete key error", fmt.Errorf("can't delete item of type %T from redis (key='%s'), err: %w", r.zero, key, err))
	}
	return nil
}

// ListAllValues scans keys under the cache prefix and fetches their values in
// MGET chunks. Values that vanished or fail to unmarshal are skipped.
func (r *redisCache[T]) ListAllValues(ctx context.Context) ([]T, error) {
	var fullKeys []string
	iter := r.client.Scan(ctx, 0, r.prefix+":*", scanBatch).Iterator()
	for iter.Next(ctx) {
		if strings.HasPrefix(iter.Val(), r.prefix+":") {
			fullKeys = append(fullKeys, iter.Val())
		}
	}
	if err := iter.Err(); err != nil {
		return nil, service.NewInternalServerError("Redis scan keys error", fmt.Errorf("redis scan keys error, err: %w", err))
	}

	if len(fullKeys) == 0 {
		return nil, service.NewEntityNotFoundError("Entity not found", nil)
	}

	items := make([]T, 0, len(fullKeys))
	for start := 0; start < len(fullKeys); start += scanBatch {
		chunk := fullKeys[start:min(start+scanBatch, len(fullKeys))]
		values, err := r.client.MGet(ctx, chunk...).Result()
		if err != nil {
			return nil, service.NewInternalServerError("Redis get values error", fmt.Errorf("redis mget error, err: %w", err))
		}
		for _, v := range values {
			s, ok := v.(string)
			if !ok {
				continue
			}
			item, err := r.unmarshal([]byte(s))
			if err != nil {
				continue
			}
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil, service.NewEntityNotFoundError("Entity not found", nil)
	}

	return items, nil
}

func (r *redisCache[T]) generateKey(key string) string {
	return r.prefix + ":" + key
}
