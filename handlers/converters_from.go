package handlers

import (
	"maps"

	"myregistry/interfaces"
	"myregistry/service"
)

// fromRegisterRequest converts RegisterRequest to interfaces.RegisterCommand.
// Field validation is left to the client facade.
func fromRegisterRequest(app string, req RegisterRequest) interfaces.RegisterCommand {
	return interfaces.RegisterCommand{
		AppName:          app,
		InstanceID:       req.InstanceId,
		Host:             req.Host,
		Port:             req.Port,
		Status:           service.Value(req.Status),
		Metadata:         maps.Clone(service.Value(req.Metadata)),
		LeaseDurationSec: req.LeaseDurationSec,
	}
}
