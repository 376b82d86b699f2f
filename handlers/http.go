// Package handlers contains http handlers for myregistry.
//
//go:generate oapi-codegen -config openapi-api.config.yaml ../api/registry.openapi.yaml
//go:generate oapi-codegen -config openapi-types.config.yaml ../api/registry.openapi.yaml
package handlers

import (
	"fmt"
	"net/http"

	"myregistry/helpers"
	"myregistry/interfaces"
	"myregistry/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// HTTPServer implements ServerInterface generated from the OpenAPI document.
type HTTPServer struct {
	client interfaces.ClientAPI
	status interfaces.StatusReporter
	logger log.Logger
}

// NewHTTPServer creates a new HTTPServer.
func NewHTTPServer(client interfaces.ClientAPI, status interfaces.StatusReporter, logger log.Logger) *HTTPServer {
	logger = log.WithPrefix(helpers.NilPanic(logger, "handlers.http.go: logger is required"), "component", "HTTPServer")
	return &HTTPServer{
		client: helpers.NilPanic(client, "handlers.http.go: client api is required"),
		status: helpers.NilPanic(status, "handlers.http.go: status reporter is required"),
		logger: logger,
	}
}

// RegisterInstance (POST /v1/apps/{app}) creates or overwrites a lease. Returns 204, 400 on invalid input.
func (h *HTTPServer) RegisterInstance(ectx echo.Context, app string) error {
	var req RegisterRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}

	ctx := ectx.Request().Context()
	if err := h.client.Register(ctx, fromRegisterRequest(app, req)); err != nil {
		return fmt.Errorf("registerInstance failed for %s/%s, err: %w", app, req.InstanceId, err)
	}

	return ectx.NoContent(http.StatusNoContent)
}

// RenewInstance (PUT /v1/apps/{app}/{instance_id}) extends a lease. Returns 404 when the lease is gone.
func (h *HTTPServer) RenewInstance(ectx echo.Context, app string, instanceId string) error {
	ctx := ectx.Request().Context()
	if err := h.client.Renew(ctx, app, instanceId); err != nil {
		return fmt.Errorf("renewInstance failed for %s/%s, err: %w", app, instanceId, err)
	}

	return ectx.NoContent(http.StatusNoContent)
}

// CancelInstance (DELETE /v1/apps/{app}/{instance_id}) removes a lease. Unknown instances are acknowledged too.
func (h *HTTPServer) CancelInstance(ectx echo.Context, app string, instanceId string) error {
	ctx := ectx.Request().Context()
	if err := h.client.Cancel(ctx, app, instanceId); err != nil {
		return fmt.Errorf("cancelInstance failed for %s/%s, err: %w", app, instanceId, err)
	}

	return ectx.NoContent(http.StatusNoContent)
}

// SetInstanceStatus (PUT /v1/apps/{app}/{instance_id}/status?value=S) changes the advertised status.
func (h *HTTPServer) SetInstanceStatus(ectx echo.Context, app string, instanceId string, params SetInstanceStatusParams) error {
	ctx := ectx.Request().Context()
	if err := h.client.SetStatus(ctx, app, instanceId, params.Value); err != nil {
		return fmt.Errorf("setInstanceStatus failed for %s/%s, err: %w", app, instanceId, err)
	}

	level.Debug(h.logger).Log("msg", "status set over http", "app", app, "instance_id", instanceId, "status", params.Value)
	return ectx.NoContent(http.StatusNoContent)
}

// QueryInstances (GET /v1/apps/{app}) lists instances of one application.
func (h *HTTPServer) QueryInstances(ectx echo.Context, app string, params QueryInstancesParams) error {
	ctx := ectx.Request().Context()
	instances, err := h.client.Query(ctx, app, service.Value(params.Status))
	if err != nil {
		return fmt.Errorf("queryInstances failed for %s, err: %w", app, err)
	}

	return ectx.JSON(http.StatusOK, toInstancesResponse(instances))
}

// QueryApplications (GET /v1/apps) lists instances of every application.
func (h *HTTPServer) QueryApplications(ectx echo.Context, params QueryApplicationsParams) error {
	ctx := ectx.Request().Context()
	apps, err := h.client.QueryAll(ctx, service.Value(params.Status))
	if err != nil {
		return fmt.Errorf("queryApplications failed, err: %w", err)
	}

	return ectx.JSON(http.StatusOK, toApplicationsResponse(apps))
}

// GetNodeStatus (GET /v1/status) reports node state.
func (h *HTTPServer) GetNodeStatus(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, toNodeStatusResponse(h.status.Status()))
}
