package handlers

import (
	"maps"
	"time"

	"myregistry/domain"
	"myregistry/service"
)

// toInstanceInfo converts a domain instance to its API shape.
func toInstanceInfo(i domain.Instance) InstanceInfo {
	var metadata *map[string]string
	if len(i.Metadata) > 0 {
		metadata = service.Ptr(maps.Clone(i.Metadata))
	}
	return InstanceInfo{
		AppName:               i.AppName,
		InstanceId:            i.InstanceID,
		Host:                  i.Host,
		Port:                  i.Port,
		Status:                i.Status.String(),
		Metadata:              metadata,
		LeaseDurationSec:      int(i.LeaseDuration / time.Second),
		LastRenewalTimestamp:  i.LastRenewalTimestamp.UTC(),
		RegistrationTimestamp: i.RegistrationTimestamp.UTC(),
	}
}

// toInstancesResponse converts domain instances to API response.
func toInstancesResponse(instances []domain.Instance) InstancesResponse {
	out := make([]InstanceInfo, 0, len(instances))
	for _, i := range instances {
		out = append(out, toInstanceInfo(i))
	}
	return InstancesResponse{Instances: out}
}

func toApplicationsResponse(apps map[string][]domain.Instance) ApplicationsResponse {
	out := make(map[string][]InstanceInfo, len(apps))
	for app, instances := range apps {
		out[app] = toInstancesResponse(instances).Instances
	}
	return ApplicationsResponse{Applications: out}
}

func toNodeStatusResponse(st domain.NodeStatus) NodeStatusResponse {
	degraded := st.DegradedPeers
	if degraded == nil {
		degraded = []string{}
	}
	return NodeStatusResponse{
		NodeId:                 st.NodeID,
		SelfPreservation:       st.SelfPreservation,
		Instances:              st.Instances,
		ExpectedRenewalsPerMin: st.ExpectedRenewalsPerMin,
		ObservedRenewalsPerMin: st.ObservedRenewalsPerMin,
		DegradedPeers:          degraded,
		DroppedDeltas:          int64(st.DroppedDeltas),
	}
}
