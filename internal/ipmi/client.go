package ipmi

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/rackops/fwctl/internal/config"
	"github.com/rackops/fwctl/internal/exception"
	"github.com/rackops/fwctl/internal/logger"
	"github.com/rackops/fwctl/internal/protocol"
)

// CommandRunner executes one ipmitool invocation and returns stdout
type CommandRunner func(ctx context.Context, host string, creds protocol.Credentials, args ...string) (string, error)

// Client is the last-resort adapter. It shells out to ipmitool, which
// is more resilient than the native libraries against the odd firmware
// stacks this protocol exists to reach. IPMI carries no update surface;
// it is detection and health only.
type Client struct {
	log  logger.Logger
	conf config.Protocols
	run  CommandRunner
}

// NewClient returns a new ipmi Client
func NewClient(conf config.Protocols) *Client {
	client := &Client{
		log:  logger.New(),
		conf: conf,
	}

	client.run = client.ipmitoolRun

	return client
}

// SetRunner overrides command execution; used by tests
func (c *Client) SetRunner(run CommandRunner) {
	c.run = run
}

// Protocol implements protocol.Client
func (c *Client) Protocol() protocol.ID {
	return protocol.IPMI
}

// Priority implements protocol.Client; always last
func (c *Client) Priority() int {
	return 4
}

// Close implements protocol.Client
func (c *Client) Close() error {
	return nil
}

// DetectCapability implements protocol.Client. IPMI reports firmware
// identity but advertises no update modes; the manager will never pick
// it for execution, only for visibility into otherwise dark hosts.
func (c *Client) DetectCapability(ctx context.Context, identity protocol.ServerIdentity, creds protocol.Credentials) protocol.Capability {
	capability := protocol.Capability{Protocol: protocol.IPMI}

	output, err := c.run(ctx, identity.Host, creds, "mc", "info")

	if err != nil {
		capability.Diagnostic = err.Error()
		return capability
	}

	version := parseField(output, "Firmware Revision")

	if version == "" {
		capability.Diagnostic = "mc info output was unparseable"
		return capability
	}

	capability.Supported = true
	capability.FirmwareVersion = version
	capability.ManagerType = parseField(output, "Manufacturer Name")
	capability.Generation = protocol.ParseGeneration(version)
	capability.LicenseTier = protocol.LicenseUnknown
	capability.UpdateModes = []protocol.UpdateMode{}

	return capability
}

// HealthCheck implements protocol.Client
func (c *Client) HealthCheck(ctx context.Context, identity protocol.ServerIdentity, creds protocol.Credentials) protocol.Health {
	started := time.Now()

	health := protocol.Health{
		Protocol:  protocol.IPMI,
		CheckedAt: started,
	}

	output, err := c.run(ctx, identity.Host, creds, "chassis", "power", "status")

	if err != nil {
		health.Status = protocol.Unreachable
		health.ErrorKind = string(exception.KindOf(err))
		return health
	}

	health.Latency = time.Since(started)

	if strings.Contains(strings.ToLower(output), "off") {
		health.Status = protocol.Degraded
		health.ErrorKind = "chassis power is off"
		return health
	}

	health.Status = protocol.Healthy

	return health
}

// PerformFirmwareUpdate implements protocol.Client. There is no ipmi
// update path; the permanent classification makes the manager fall
// through immediately instead of retrying.
func (c *Client) PerformFirmwareUpdate(ctx context.Context, req *protocol.UpdateRequest) (*protocol.UpdateResult, error) {
	return nil, exception.Permanent(string(protocol.IPMI), "update", exception.ErrUnsupportedMode)
}

// ipmitoolRun shells out to ipmitool, falling back from lanplus to the
// legacy lan interface when the session setup fails
func (c *Client) ipmitoolRun(ctx context.Context, host string, creds protocol.Credentials, args ...string) (string, error) {
	baseArgs := []string{
		"-I", "lanplus",
		"-H", host,
		"-U", creds.Username,
		"-P", creds.Password,
	}

	if creds.Port != 0 {
		baseArgs = append(baseArgs, "-p", strconv.Itoa(creds.Port))
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.conf.CallTimeout)
	defer cancel()

	output, stderr, err := c.execute(timeoutCtx, append(baseArgs, args...))

	if err == nil {
		return output, nil
	}

	if strings.Contains(stderr, "lanplus") || strings.Contains(err.Error(), "exit status") {
		c.log.Debug().Str("host", host).Msg("lanplus failed, trying legacy lan interface")

		baseArgs[1] = "lan"

		output, stderr, err = c.execute(timeoutCtx, append(baseArgs, args...))

		if err == nil {
			return output, nil
		}
	}

	if strings.Contains(stderr, "authentication") || strings.Contains(stderr, "password") {
		return "", exception.Auth(
			string(protocol.IPMI),
			strings.Join(args, " "),
			fmt.Errorf("ipmitool failed: %w, stderr: %s", err, stderr),
		)
	}

	return "", exception.Transient(
		string(protocol.IPMI),
		strings.Join(args, " "),
		fmt.Errorf("ipmitool failed: %w, stderr: %s", err, stderr),
	)
}

func (c *Client) execute(ctx context.Context, args []string) (string, string, error) {
	cmd := exec.CommandContext(ctx, "ipmitool", args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	return strings.TrimSpace(stdout.String()), stderr.String(), err
}

// parseField extracts a "key : value" line from ipmitool output
func parseField(output string, key string) string {
	for _, line := range strings.Split(output, "\n") {
		parts := strings.SplitN(line, ":", 2)

		if len(parts) != 2 {
			continue
		}

		if strings.EqualFold(strings.TrimSpace(parts[0]), key) {
			return strings.TrimSpace(parts[1])
		}
	}

	return ""
}
