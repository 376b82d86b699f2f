package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"myregistry/domain"
	"myregistry/interfaces"
	"myregistry/interfaces/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCommand() interfaces.RegisterCommand {
	return interfaces.RegisterCommand{
		AppName:          "orders",
		InstanceID:       "i-1",
		Host:             "10.0.0.1",
		Port:             8080,
		Metadata:         map[string]string{"zone": "a"},
		LeaseDurationSec: 90,
	}
}

func TestNewClientFacade_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "service.facade.go: registry is required", func() {
		NewClientFacade(nil)
	})
}

func TestClientFacade_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success maps command to registry call", func(t *testing.T) {
		registry := &mock.RegistryMock{}
		f := NewClientFacade(registry)

		cmd := validCommand()
		cmd.Status = "starting"
		require.NoError(t, f.Register(ctx, cmd))

		calls := registry.RegisterCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, 90*time.Second, calls[0].LeaseDuration)
		assert.Equal(t, domain.Instance{
			AppName:    "orders",
			InstanceID: "i-1",
			Host:       "10.0.0.1",
			Port:       8080,
			Status:     domain.StatusStarting,
			Metadata:   map[string]string{"zone": "a"},
		}, calls[0].Instance)
	})

	tests := []struct {
		name   string
		mutate func(*interfaces.RegisterCommand)
	}{
		{"empty app", func(c *interfaces.RegisterCommand) { c.AppName = "" }},
		{"empty instance id", func(c *interfaces.RegisterCommand) { c.InstanceID = "" }},
		{"missing lease", func(c *interfaces.RegisterCommand) { c.LeaseDurationSec = 0 }},
		{"negative lease", func(c *interfaces.RegisterCommand) { c.LeaseDurationSec = -5 }},
		{"unknown status", func(c *interfaces.RegisterCommand) { c.Status = "SLEEPING" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := &mock.RegistryMock{}
			f := NewClientFacade(registry)
			cmd := validCommand()
			tt.mutate(&cmd)

			err := f.Register(ctx, cmd)
			assert.True(t, IsInvalidLeaseError(err), "got %v", err)
			assert.Empty(t, registry.RegisterCalls())
		})
	}

	t.Run("registry error keeps its code", func(t *testing.T) {
		registry := &mock.RegistryMock{
			RegisterFunc: func(ctx context.Context, instance domain.Instance, leaseDuration time.Duration) (domain.Instance, error) {
				return domain.Instance{}, NewTimeoutError("lock busy", nil)
			},
		}
		err := NewClientFacade(registry).Register(ctx, validCommand())
		assert.True(t, IsTimeoutError(err))
	})

	t.Run("foreign error becomes internal_server_error", func(t *testing.T) {
		registry := &mock.RegistryMock{
			RegisterFunc: func(ctx context.Context, instance domain.Instance, leaseDuration time.Duration) (domain.Instance, error) {
				return domain.Instance{}, errors.New("boom")
			},
		}
		err := NewClientFacade(registry).Register(ctx, validCommand())
		assert.True(t, IsInternalServerError(err))
		assert.ErrorContains(t, err, "boom")
	})
}

func TestClientFacade_RenewCancelSetStatus(t *testing.T) {
	ctx := context.Background()
	k := domain.InstanceKey{AppName: "orders", InstanceID: "i-1"}

	t.Run("renew not found", func(t *testing.T) {
		registry := &mock.RegistryMock{
			RenewFunc: func(ctx context.Context, key domain.InstanceKey) (domain.Instance, error) {
				return domain.Instance{}, NewInstanceNotFoundError("gone", nil)
			},
		}
		err := NewClientFacade(registry).Renew(ctx, "orders", "i-1")
		assert.True(t, IsInstanceNotFoundError(err))
		require.Len(t, registry.RenewCalls(), 1)
		assert.Equal(t, k, registry.RenewCalls()[0].Key)
	})

	t.Run("cancel of unknown instance acknowledges", func(t *testing.T) {
		registry := &mock.RegistryMock{}
		require.NoError(t, NewClientFacade(registry).Cancel(ctx, "orders", "i-1"))
		assert.Equal(t, k, registry.CancelCalls()[0].Key)
	})

	t.Run("cancel requires key", func(t *testing.T) {
		err := NewClientFacade(&mock.RegistryMock{}).Cancel(ctx, "orders", "")
		assert.True(t, IsBadParameterError(err))
	})

	t.Run("set status parses name", func(t *testing.T) {
		registry := &mock.RegistryMock{}
		require.NoError(t, NewClientFacade(registry).SetStatus(ctx, "orders", "i-1", "out_of_service"))
		assert.Equal(t, domain.StatusOutOfService, registry.SetStatusCalls()[0].Status)
	})

	t.Run("set status rejects unknown name", func(t *testing.T) {
		registry := &mock.RegistryMock{}
		err := NewClientFacade(registry).SetStatus(ctx, "orders", "i-1", "BROKEN")
		assert.True(t, IsBadParameterError(err))
		assert.Empty(t, registry.SetStatusCalls())
	})
}

func TestClientFacade_Query(t *testing.T) {
	ctx := context.Background()
	up := testInstance("orders", "i-1")
	registry := &mock.RegistryMock{
		QueryFunc: func(app string, statuses ...domain.Status) []domain.Instance {
			return []domain.Instance{up}
		},
		QueryAllFunc: func(statuses ...domain.Status) map[string][]domain.Instance {
			return map[string][]domain.Instance{"orders": {up}}
		},
	}
	f := NewClientFacade(registry)

	got, err := f.Query(ctx, "orders", "")
	require.NoError(t, err)
	assert.Equal(t, []domain.Instance{up}, got)
	assert.Equal(t, []domain.Status{domain.StatusUp}, registry.QueryCalls()[0].Statuses)

	all, err := f.QueryAll(ctx, "all")
	require.NoError(t, err)
	assert.Len(t, all["orders"], 1)
	assert.Equal(t, domain.AllStatuses, registry.QueryAllCalls()[0].Statuses)

	_, err = f.Query(ctx, "", "")
	assert.True(t, IsBadParameterError(err))

	_, err = f.QueryAll(ctx, "UP,NAPPING")
	assert.True(t, IsBadParameterError(err))
}

func TestParseStatusFilter(t *testing.T) {
	tests := []struct {
		filter  string
		want    []domain.Status
		wantErr bool
	}{
		{filter: "", want: []domain.Status{domain.StatusUp}},
		{filter: "ALL", want: domain.AllStatuses},
		{filter: "all", want: domain.AllStatuses},
		{filter: "DOWN", want: []domain.Status{domain.StatusDown}},
		{filter: "up, starting", want: []domain.Status{domain.StatusUp, domain.StatusStarting}},
		{filter: ",", wantErr: true},
		{filter: "UP,bogus", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			got, err := ParseStatusFilter(tt.filter)
			if tt.wantErr {
				assert.True(t, IsBadParameterError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
