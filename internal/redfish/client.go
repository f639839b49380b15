package redfish

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rackops/fwctl/internal/config"
	"github.com/rackops/fwctl/internal/exception"
	"github.com/rackops/fwctl/internal/logger"
	"github.com/rackops/fwctl/internal/protocol"

	"github.com/stmcginnis/gofish"
)

const (
	updateServiceEndpoint = "/redfish/v1/UpdateService"
	simpleUpdateEndpoint  = "/redfish/v1/UpdateService/Actions/UpdateService.SimpleUpdate"
	taskListEndpoint      = "/redfish/v1/TaskService/Tasks"
)

// Connector opens an authenticated session against a target's
// management endpoint
type Connector func(host string, creds protocol.Credentials, timeout time.Duration) (*gofish.APIClient, error)

// FixedEndpointConnector ignores the requested host and always dials
// endpoint; used by tests to point the adapter at a stub controller
func FixedEndpointConnector(endpoint string) Connector {
	return func(string, protocol.Credentials, time.Duration) (*gofish.APIClient, error) {
		return gofish.ConnectDefault(endpoint)
	}
}

// Client is our Redfish protocol adapter. It is the preferred protocol
// for every operation and the only adapter that also feeds the health
// gate. Connections are established per call with the provided
// credentials; nothing is cached here.
type Client struct {
	log     logger.Logger
	conf    config.Protocols
	connect Connector
}

// SetConnector overrides how sessions are established
func (c *Client) SetConnector(fn Connector) {
	c.connect = fn
}

// NewClient returns a new redfish Client
func NewClient(conf config.Protocols) *Client {
	return &Client{
		log:     logger.New(),
		conf:    conf,
		connect: connect,
	}
}

// Protocol implements protocol.Client
func (c *Client) Protocol() protocol.ID {
	return protocol.Redfish
}

// Priority implements protocol.Client; redfish is always tried first
func (c *Client) Priority() int {
	return 1
}

// Close implements protocol.Client; connections are per-call so there
// is nothing held open
func (c *Client) Close() error {
	return nil
}

// DetectCapability implements protocol.Client. Never returns an error;
// any failure folds into an unsupported capability with a diagnostic.
func (c *Client) DetectCapability(ctx context.Context, identity protocol.ServerIdentity, creds protocol.Credentials) protocol.Capability {
	capability := protocol.Capability{Protocol: protocol.Redfish}

	api, err := c.connect(identity.Host, creds, c.conf.CallTimeout)

	if err != nil {
		capability.Diagnostic = fmt.Sprintf("connect: %s", err.Error())
		return capability
	}

	defer api.Logout()

	managers, err := api.Service.Managers()

	if err != nil || len(managers) == 0 {
		capability.Diagnostic = fmt.Sprintf("managers: %v", err)
		return capability
	}

	manager := managers[0]

	capability.Supported = true
	capability.FirmwareVersion = manager.FirmwareVersion
	capability.ManagerType = string(manager.ManagerType)
	capability.Generation = protocol.ParseGeneration(manager.FirmwareVersion)
	capability.LicenseTier = protocol.InferLicenseTier(countEnabledFeatures(api, manager))
	capability.UpdateModes = c.updateModes(api)

	return capability
}

// HealthCheck implements protocol.Client. Never returns an error; a
// failed connection maps to an unreachable status.
func (c *Client) HealthCheck(ctx context.Context, identity protocol.ServerIdentity, creds protocol.Credentials) protocol.Health {
	started := time.Now()

	health := protocol.Health{
		Protocol:  protocol.Redfish,
		CheckedAt: started,
	}

	api, err := c.connect(identity.Host, creds, c.conf.CallTimeout)

	if err != nil {
		health.Status = protocol.Unreachable
		health.ErrorKind = classifyConnectError(err)
		return health
	}

	defer api.Logout()

	health.Latency = time.Since(started)

	if _, err := api.Service.Systems(); err != nil {
		health.Status = protocol.Degraded
		health.ErrorKind = "systems collection unavailable"
		return health
	}

	health.Status = protocol.Healthy

	return health
}

// PerformFirmwareUpdate implements protocol.Client. Requests missing
// required fields for their mode fail fast before any network call.
func (c *Client) PerformFirmwareUpdate(ctx context.Context, req *protocol.UpdateRequest) (*protocol.UpdateResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	api, err := c.connect(req.Host, req.Credentials, c.conf.CallTimeout)

	if err != nil {
		return nil, connectError("update", err)
	}

	defer api.Logout()

	// a busy or errored controller queue is a blocking precondition
	queue, err := jobQueueStatus(api)

	if err != nil {
		return nil, exception.Transient(string(protocol.Redfish), "job-queue", err)
	}

	switch queue {
	case protocol.QueueError:
		return nil, exception.Permanent(string(protocol.Redfish), "job-queue", exception.ErrQueueNotAvailable)
	case protocol.QueueBusy:
		return nil, exception.Transient(string(protocol.Redfish), "job-queue", exception.ErrQueueNotAvailable)
	}

	started := time.Now()

	var taskRef string

	switch req.Mode {
	case protocol.ModeSimpleImage:
		taskRef, err = c.submitSimpleUpdate(api, req.Components[0].ImageURI, req.ApplyTime)
	case protocol.ModeInstallFromRepo:
		taskRef, err = c.submitSimpleUpdate(api, req.RepositoryURL, req.ApplyTime)
	case protocol.ModeMultipart:
		taskRef, err = c.submitMultipart(api, req.Components[0])
	}

	if err != nil {
		return nil, err
	}

	return &protocol.UpdateResult{
		Protocol:  protocol.Redfish,
		TaskRef:   taskRef,
		Status:    protocol.StatusQueued,
		StartedAt: started,
		Messages: []string{
			fmt.Sprintf("update submitted, task %s", taskRef),
		},
	}, nil
}

// validateRequest enforces the per-mode required fields up front
func validateRequest(req *protocol.UpdateRequest) error {
	switch req.Mode {
	case protocol.ModeSimpleImage:
		if len(req.Components) == 0 || req.Components[0].ImageURI == "" {
			return exception.Permanent(
				string(protocol.Redfish),
				"update",
				fmt.Errorf("simple-image update requires a component image uri"),
			)
		}
	case protocol.ModeInstallFromRepo:
		if req.RepositoryURL == "" {
			return exception.Permanent(
				string(protocol.Redfish),
				"update",
				fmt.Errorf("install-from-repository update requires a repository url"),
			)
		}
	case protocol.ModeMultipart:
		if len(req.Components) == 0 || req.Components[0].Stream == nil || req.Components[0].Filename == "" {
			return exception.Permanent(
				string(protocol.Redfish),
				"update",
				fmt.Errorf("multipart update requires a component stream and filename"),
			)
		}
	default:
		return exception.Permanent(string(protocol.Redfish), "update", exception.ErrUnsupportedMode)
	}

	return nil
}

// submitSimpleUpdate posts the SimpleUpdate action and returns the task
// locator from the Location header
func (c *Client) submitSimpleUpdate(api *gofish.APIClient, imageURI string, applyTime protocol.ApplyTime) (string, error) {
	payload := map[string]interface{}{
		"ImageURI": imageURI,
	}

	if opApplyTime := redfishApplyTime(applyTime); opApplyTime != "" {
		payload["@Redfish.OperationApplyTime"] = opApplyTime
	}

	resp, err := api.Post(simpleUpdateEndpoint, payload)

	if err != nil {
		return "", exception.Transient(string(protocol.Redfish), "simple-update", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted && resp.StatusCode != http.StatusOK {
		return "", exception.Transient(
			string(protocol.Redfish),
			"simple-update",
			fmt.Errorf("unexpected status code %d", resp.StatusCode),
		)
	}

	location := resp.Header.Get("Location")

	if location == "" {
		return "", exception.Transient(
			string(protocol.Redfish),
			"simple-update",
			fmt.Errorf("no task location in response"),
		)
	}

	return location, nil
}

// submitMultipart streams a firmware image through the update service
// HTTP push URI
func (c *Client) submitMultipart(api *gofish.APIClient, component protocol.Component) (string, error) {
	us, err := updateService(api)

	if err != nil {
		return "", exception.Transient(string(protocol.Redfish), "multipart", err)
	}

	if us.HTTPPushURI == "" {
		return "", exception.Permanent(
			string(protocol.Redfish),
			"multipart",
			fmt.Errorf("update service does not advertise an http push uri"),
		)
	}

	resp, err := api.PostMultipart(us.HTTPPushURI, map[string]io.Reader{
		component.Filename: component.Stream,
	})

	if err != nil {
		return "", exception.Transient(string(protocol.Redfish), "multipart", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted && resp.StatusCode != http.StatusOK {
		return "", exception.Transient(
			string(protocol.Redfish),
			"multipart",
			fmt.Errorf("unexpected status code %d", resp.StatusCode),
		)
	}

	location := resp.Header.Get("Location")

	if location == "" {
		return "", exception.Transient(
			string(protocol.Redfish),
			"multipart",
			fmt.Errorf("no task location in response"),
		)
	}

	return location, nil
}

// redfishApplyTime maps our apply-time policy onto the redfish value
func redfishApplyTime(applyTime protocol.ApplyTime) string {
	switch applyTime {
	case protocol.ApplyImmediate:
		return "Immediate"
	case protocol.ApplyOnReset:
		return "OnReset"
	case protocol.ApplyAtMaintenanceWindow:
		return "AtMaintenanceWindowStart"
	default:
		return ""
	}
}

// connect opens an authenticated session against the target's
// management endpoint
func connect(host string, creds protocol.Credentials, timeout time.Duration) (*gofish.APIClient, error) {
	endpoint := host

	if !strings.Contains(endpoint, "://") {
		endpoint = "https://" + endpoint
	}

	if creds.Port != 0 {
		endpoint = fmt.Sprintf("%s:%d", endpoint, creds.Port)
	}

	return gofish.Connect(gofish.ClientConfig{
		Endpoint:   endpoint,
		Username:   creds.Username,
		Password:   creds.Password,
		Insecure:   true,
		HTTPClient: &http.Client{Timeout: timeout},
	})
}

// connectError classifies a failed connection for update execution
func connectError(op string, err error) error {
	if isAuthError(err) {
		return exception.Auth(string(protocol.Redfish), op, err)
	}

	return exception.Transient(string(protocol.Redfish), op, err)
}

func classifyConnectError(err error) string {
	if isAuthError(err) {
		return string(exception.KindAuth)
	}

	return string(exception.KindTransient)
}

func isAuthError(err error) bool {
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "401") ||
		strings.Contains(msg, "unauthorized") ||
		strings.Contains(msg, "authentication")
}
