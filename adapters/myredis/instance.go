package myredis

import (
	"encoding/json"

	"myregistry/domain"
	"myregistry/interfaces"

	"github.com/go-redis/redis/v8"
)

// InstancePrefix is the key prefix of mirrored instances.
const InstancePrefix = "instance"

// NewInstanceCache stores instances as JSON under instance:<app>/<id>.
func NewInstanceCache(client redis.UniversalClient) interfaces.Cache[domain.Instance] {
	return NewCache[domain.Instance](client, InstancePrefix, marshalInstance, unmarshalInstance)
}

func marshalInstance(i domain.Instance) ([]byte, error) {
	return json.Marshal(i)
}

func unmarshalInstance(b []byte) (domain.Instance, error) {
	var i domain.Instance
	err := json.Unmarshal(b, &i)
	return i, err
}
