package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"myregistry/domain"
	"myregistry/helpers"
	"myregistry/interfaces"
)

// StatusFilterAll selects every status in queries.
const StatusFilterAll = "ALL"

type clientFacade struct {
	registry interfaces.Registry
}

// NewClientFacade creates the client-facing API over registry.
func NewClientFacade(registry interfaces.Registry) *clientFacade {
	return &clientFacade{
		registry: helpers.NilPanic(registry, "service.facade.go: registry is required"),
	}
}

// Register rejects malformed registration input with invalid_lease.
func (f *clientFacade) Register(ctx context.Context, cmd interfaces.RegisterCommand) error {
	if cmd.AppName == "" || cmd.InstanceID == "" {
		return NewInvalidLeaseError("app name and instance id are required", nil)
	}
	if cmd.LeaseDurationSec <= 0 {
		return NewInvalidLeaseError(fmt.Sprintf("lease_duration_sec must be a positive number of seconds, got %d", cmd.LeaseDurationSec), nil)
	}

	var status domain.Status
	if cmd.Status != "" {
		parsed, err := domain.ParseStatus(cmd.Status)
		if err != nil {
			return NewInvalidLeaseError(err.Error(), nil)
		}
		status = parsed
	}

	instance := domain.Instance{
		AppName:    cmd.AppName,
		InstanceID: cmd.InstanceID,
		Host:       cmd.Host,
		Port:       cmd.Port,
		Status:     status,
		Metadata:   cmd.Metadata,
	}
	_, err := f.registry.Register(ctx, instance, time.Duration(cmd.LeaseDurationSec)*time.Second)
	return translate(err)
}

func (f *clientFacade) Renew(ctx context.Context, app, instanceID string) error {
	if err := requireKey(app, instanceID); err != nil {
		return err
	}
	_, err := f.registry.Renew(ctx, domain.InstanceKey{AppName: app, InstanceID: instanceID})
	return translate(err)
}

func (f *clientFacade) Cancel(ctx context.Context, app, instanceID string) error {
	if err := requireKey(app, instanceID); err != nil {
		return err
	}
	_, err := f.registry.Cancel(ctx, domain.InstanceKey{AppName: app, InstanceID: instanceID})
	return translate(err)
}

func (f *clientFacade) SetStatus(ctx context.Context, app, instanceID, status string) error {
	if err := requireKey(app, instanceID); err != nil {
		return err
	}
	parsed, err := domain.ParseStatus(status)
	if err != nil {
		return NewBadParameterError(err.Error(), nil)
	}
	_, err = f.registry.SetStatus(ctx, domain.InstanceKey{AppName: app, InstanceID: instanceID}, parsed)
	return translate(err)
}

func (f *clientFacade) Query(ctx context.Context, app, statusFilter string) ([]domain.Instance, error) {
	if app == "" {
		return nil, NewBadParameterError("app name is required", nil)
	}
	statuses, err := ParseStatusFilter(statusFilter)
	if err != nil {
		return nil, err
	}
	return f.registry.Query(app, statuses...), nil
}

func (f *clientFacade) QueryAll(ctx context.Context, statusFilter string) (map[string][]domain.Instance, error) {
	statuses, err := ParseStatusFilter(statusFilter)
	if err != nil {
		return nil, err
	}
	return f.registry.QueryAll(statuses...), nil
}

// ParseStatusFilter turns a query filter into statuses.
// "" selects UP, "ALL" every status, anything else is a comma-separated list.
func ParseStatusFilter(filter string) ([]domain.Status, error) {
	filter = strings.TrimSpace(filter)
	switch {
	case filter == "":
		return []domain.Status{domain.StatusUp}, nil
	case strings.EqualFold(filter, StatusFilterAll):
		return domain.AllStatuses, nil
	}

	var out []domain.Status
	for _, part := range strings.Split(filter, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		s, err := domain.ParseStatus(part)
		if err != nil {
			return nil, NewBadParameterError(fmt.Sprintf("invalid status filter: %v", err), nil)
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, NewBadParameterError(fmt.Sprintf("invalid status filter %q", filter), nil)
	}
	return out, nil
}

func requireKey(app, instanceID string) error {
	if app == "" {
		return NewBadParameterError("app name is required", nil)
	}
	if instanceID == "" {
		return NewBadParameterError("instance id is required", nil)
	}
	return nil
}

// translate keeps registry errors as they are and wraps anything unexpected.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if myErr := ToMyError(err); myErr != nil {
		return myErr
	}
	return NewInternalServerError("registry failure", err)
}
