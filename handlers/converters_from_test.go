package handlers

import (
	"testing"

	"myregistry/interfaces"
	"myregistry/service"

	"github.com/stretchr/testify/assert"
)

func TestFromRegisterRequest(t *testing.T) {
	tests := []struct {
		name     string
		app      string
		request  RegisterRequest
		expected interfaces.RegisterCommand
	}{
		{
			name: "all fields",
			app:  "orders",
			request: RegisterRequest{
				InstanceId:       "inst-1",
				Host:             "10.0.0.1",
				Port:             9000,
				LeaseDurationSec: 30,
				Status:           service.Ptr("DOWN"),
				Metadata:         &map[string]string{"zone": "a"},
			},
			expected: interfaces.RegisterCommand{
				AppName:          "orders",
				InstanceID:       "inst-1",
				Host:             "10.0.0.1",
				Port:             9000,
				Status:           "DOWN",
				Metadata:         map[string]string{"zone": "a"},
				LeaseDurationSec: 30,
			},
		},
		{
			name: "optional fields absent",
			app:  "orders",
			request: RegisterRequest{
				InstanceId:       "inst-2",
				Host:             "svc.local",
				Port:             80,
				LeaseDurationSec: 90,
			},
			expected: interfaces.RegisterCommand{
				AppName:          "orders",
				InstanceID:       "inst-2",
				Host:             "svc.local",
				Port:             80,
				LeaseDurationSec: 90,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, fromRegisterRequest(tt.app, tt.request))
		})
	}
}

func TestFromRegisterRequest_CopiesMetadata(t *testing.T) {
	metadata := map[string]string{"zone": "a"}
	cmd := fromRegisterRequest("orders", RegisterRequest{InstanceId: "i", Metadata: &metadata})
	metadata["zone"] = "b"
	assert.Equal(t, "a", cmd.Metadata["zone"])
}
