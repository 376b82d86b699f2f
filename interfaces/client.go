package interfaces

import (
	"context"

	"myregistry/domain"
)

// RegisterCommand is a client registration after transport decoding.
type RegisterCommand struct {
	AppName          string
	InstanceID       string
	Host             string
	Port             int
	Status           string
	Metadata         map[string]string
	LeaseDurationSec int
}

// ClientAPI is the client-facing facade. Errors are always *service.MyError.
//
//go:generate moq -stub -out mock/client_api.go -pkg mock . ClientAPI
type ClientAPI interface {
	Register(ctx context.Context, cmd RegisterCommand) error
	Renew(ctx context.Context, app, instanceID string) error
	// Cancel acknowledges whether or not the instance existed.
	Cancel(ctx context.Context, app, instanceID string) error
	SetStatus(ctx context.Context, app, instanceID, status string) error
	// Query filter: "" means UP only, "ALL" every status, otherwise a comma-separated list.
	Query(ctx context.Context, app, statusFilter string) ([]domain.Instance, error)
	QueryAll(ctx context.Context, statusFilter string) (map[string][]domain.Instance, error)
}

// StatusReporter exposes node state for operators.
//
//go:generate moq -stub -out mock/status_reporter.go -pkg mock . StatusReporter
type StatusReporter interface {
	Status() domain.NodeStatus
}
