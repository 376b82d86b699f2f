package service

import (
	"sort"
	"strconv"

	"myregistry/domain"

	"github.com/cespare/xxhash/v2"
)

// syncDigest hashes the versions of every entry so two nodes can tell cheaply
// whether their views differ. Contents are not hashed: equal versions carry
// equal writes.
func syncDigest(instances []domain.Instance, tombstones []domain.Tombstone) uint64 {
	lines := make([]string, 0, len(instances)+len(tombstones))
	for _, i := range instances {
		lines = append(lines, digestLine(i.Key(), i.Version(), "live"))
	}
	for _, t := range tombstones {
		lines = append(lines, digestLine(t.Key(), t.Version(), "dead"))
	}
	sort.Strings(lines)

	d := xxhash.New()
	for _, l := range lines {
		_, _ = d.WriteString(l)
	}
	return d.Sum64()
}

func digestLine(key domain.InstanceKey, v domain.Version, state string) string {
	return key.String() + "@" + strconv.FormatUint(v.Epoch, 10) + ":" + v.NodeID + ":" + state + "\n"
}
