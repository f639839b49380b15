package soap

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rackops/fwctl/internal/config"
	"github.com/rackops/fwctl/internal/exception"
	"github.com/rackops/fwctl/internal/logger"
	"github.com/rackops/fwctl/internal/protocol"
)

// Client speaks the legacy SOAP management service still present on
// older controller generations. It only knows how to stage updates from
// a repository; image streaming never existed on this surface.
type Client struct {
	log  logger.Logger
	conf config.Protocols
	http *http.Client

	// endpointFor is swapped out in tests to target a stub service
	endpointFor func(host string, port int) string
}

// NewClient returns a new soap Client. Controller certs are self-signed
// so verification is disabled, matching how the vendor tooling connects.
func NewClient(conf config.Protocols) *Client {
	return &Client{
		log:  logger.New(),
		conf: conf,
		http: &http.Client{
			Timeout: conf.CallTimeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
		endpointFor: defaultEndpoint,
	}
}

// SetEndpointResolver overrides how the service url is derived
func (c *Client) SetEndpointResolver(fn func(host string, port int) string) {
	c.endpointFor = fn
}

func defaultEndpoint(host string, port int) string {
	if port == 0 {
		port = 443
	}

	return fmt.Sprintf("https://%s:%d/wsman", host, port)
}

// Protocol implements protocol.Client
func (c *Client) Protocol() protocol.ID {
	return protocol.Soap
}

// Priority implements protocol.Client; soap is the first fallback after
// redfish
func (c *Client) Priority() int {
	return 2
}

// Close implements protocol.Client
func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// DetectCapability implements protocol.Client
func (c *Client) DetectCapability(ctx context.Context, identity protocol.ServerIdentity, creds protocol.Credentials) protocol.Capability {
	capability := protocol.Capability{Protocol: protocol.Soap}

	ident, err := c.identify(ctx, identity.Host, creds)

	if err != nil {
		capability.Diagnostic = err.Error()
		return capability
	}

	capability.Supported = true
	capability.FirmwareVersion = ident.FirmwareVersion
	capability.ManagerType = ident.Model
	capability.Generation = protocol.ParseGeneration(ident.FirmwareVersion)
	capability.LicenseTier = protocol.InferLicenseTier(ident.EnabledFeatures)
	capability.UpdateModes = []protocol.UpdateMode{protocol.ModeInstallFromRepo}

	return capability
}

// HealthCheck implements protocol.Client
func (c *Client) HealthCheck(ctx context.Context, identity protocol.ServerIdentity, creds protocol.Credentials) protocol.Health {
	started := time.Now()

	health := protocol.Health{
		Protocol:  protocol.Soap,
		CheckedAt: started,
	}

	if _, err := c.identify(ctx, identity.Host, creds); err != nil {
		health.Status = protocol.Unreachable
		health.ErrorKind = string(exception.KindOf(err))
		return health
	}

	health.Status = protocol.Healthy
	health.Latency = time.Since(started)

	return health
}

// PerformFirmwareUpdate implements protocol.Client
func (c *Client) PerformFirmwareUpdate(ctx context.Context, req *protocol.UpdateRequest) (*protocol.UpdateResult, error) {
	if req.Mode != protocol.ModeInstallFromRepo {
		return nil, exception.Permanent(string(protocol.Soap), "update", exception.ErrUnsupportedMode)
	}

	if req.RepositoryURL == "" {
		return nil, exception.Permanent(
			string(protocol.Soap),
			"update",
			fmt.Errorf("install-from-repository update requires a repository url"),
		)
	}

	started := time.Now()

	install := &installResponse{}

	err := c.call(ctx, req.Host, req.Credentials, "InstallFromRepository", installRequest{
		RepositoryURI: req.RepositoryURL,
		ApplyTime:     string(req.ApplyTime),
	}, install)

	if err != nil {
		return nil, err
	}

	if install.JobID == "" {
		return nil, exception.Transient(
			string(protocol.Soap),
			"update",
			fmt.Errorf("service accepted install but returned no job id"),
		)
	}

	return &protocol.UpdateResult{
		Protocol:  protocol.Soap,
		TaskRef:   install.JobID,
		Status:    protocol.StatusQueued,
		StartedAt: started,
		Messages: []string{
			fmt.Sprintf("install staged, job %s", install.JobID),
		},
	}, nil
}

// TrackTask implements protocol.TaskTracker by polling the job until it
// reaches a terminal state
func (c *Client) TrackTask(ctx context.Context, req *protocol.UpdateRequest, taskRef string) (*protocol.UpdateResult, error) {
	result := &protocol.UpdateResult{
		Protocol:  protocol.Soap,
		TaskRef:   taskRef,
		Status:    protocol.StatusInProgress,
		StartedAt: time.Now(),
		Messages:  []string{},
	}

	for attempt := 1; attempt <= c.conf.PollMaxAttempts; attempt++ {
		job := &jobResponse{}

		err := c.call(ctx, req.Host, req.Credentials, "GetJob", jobRequest{JobID: taskRef}, job)

		if err != nil {
			return nil, err
		}

		c.log.Debug().
			Str("host", req.Host).
			Str("job", taskRef).
			Str("state", job.State).
			Int("attempt", attempt).
			Msg("polling update job")

		switch strings.ToLower(job.State) {
		case "completed":
			result.Status = protocol.StatusCompleted
			result.CompletedAt = time.Now()
			result.Messages = append(result.Messages, "job completed")
			return result, nil
		case "failed", "exception", "killed":
			result.Status = protocol.StatusFailed
			result.CompletedAt = time.Now()

			return nil, exception.Permanent(
				string(protocol.Soap),
				"track",
				fmt.Errorf("job %s ended in state %s: %s", taskRef, job.State, job.Message),
			)
		}

		select {
		case <-ctx.Done():
			return nil, exception.Transient(string(protocol.Soap), "track", ctx.Err())
		case <-time.After(c.conf.PollInterval):
		}
	}

	return nil, exception.Transient(
		string(protocol.Soap),
		"track",
		fmt.Errorf("job %s did not finish within %d polls", taskRef, c.conf.PollMaxAttempts),
	)
}

// identify queries the service identity document
func (c *Client) identify(ctx context.Context, host string, creds protocol.Credentials) (*identifyResponse, error) {
	ident := &identifyResponse{}

	if err := c.call(ctx, host, creds, "Identify", identifyRequest{}, ident); err != nil {
		return nil, err
	}

	return ident, nil
}

// call performs one request/response exchange against the service
func (c *Client) call(ctx context.Context, host string, creds protocol.Credentials, action string, payload interface{}, out interface{}) error {
	body, err := marshalEnvelope(payload)

	if err != nil {
		return exception.Permanent(string(protocol.Soap), action, err)
	}

	endpoint := c.endpointFor(host, creds.Port)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))

	if err != nil {
		return exception.Permanent(string(protocol.Soap), action, err)
	}

	httpReq.Header.Set("Content-Type", "application/soap+xml;charset=UTF-8")
	httpReq.Header.Set("SOAPAction", action)
	httpReq.SetBasicAuth(creds.Username, creds.Password)

	resp, err := c.http.Do(httpReq)

	if err != nil {
		return exception.Transient(string(protocol.Soap), action, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return exception.Auth(
			string(protocol.Soap),
			action,
			fmt.Errorf("service rejected credentials with status %d", resp.StatusCode),
		)
	}

	if resp.StatusCode != http.StatusOK {
		return exception.Transient(
			string(protocol.Soap),
			action,
			fmt.Errorf("unexpected status code %d", resp.StatusCode),
		)
	}

	raw, err := io.ReadAll(resp.Body)

	if err != nil {
		return exception.Transient(string(protocol.Soap), action, err)
	}

	return unmarshalEnvelope(raw, action, out)
}

// marshalEnvelope wraps payload in a soap envelope
func marshalEnvelope(payload interface{}) ([]byte, error) {
	inner, err := xml.Marshal(payload)

	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	buf.WriteString(xml.Header)
	buf.WriteString(`<Envelope xmlns="http://www.w3.org/2003/05/soap-envelope"><Body>`)
	buf.Write(inner)
	buf.WriteString(`</Body></Envelope>`)

	return buf.Bytes(), nil
}

// unmarshalEnvelope extracts the response body or maps a fault onto our
// error taxonomy. Receiver faults are retried since they describe a
// service-side condition; everything else is permanent.
func unmarshalEnvelope(raw []byte, action string, out interface{}) error {
	parsed := &responseEnvelope{}

	if err := xml.Unmarshal(raw, parsed); err != nil {
		return exception.Transient(string(protocol.Soap), action, err)
	}

	if parsed.Body.Fault != nil {
		fault := parsed.Body.Fault

		err := fmt.Errorf("fault %s: %s", fault.Code.Value, fault.Reason.Text)

		if strings.Contains(strings.ToLower(fault.Code.Value), "receiver") {
			return exception.Transient(string(protocol.Soap), action, err)
		}

		return exception.Permanent(string(protocol.Soap), action, err)
	}

	if err := xml.Unmarshal(parsed.Body.Inner, out); err != nil {
		return exception.Transient(string(protocol.Soap), action, err)
	}

	return nil
}
