package vendorcli

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/rackops/fwctl/internal/config"
	"github.com/rackops/fwctl/internal/exception"
	"github.com/rackops/fwctl/internal/logger"
	"github.com/rackops/fwctl/internal/protocol"

	"golang.org/x/crypto/ssh"
)

// CommandRunner executes one management CLI command on the target
// controller and returns its combined output
type CommandRunner func(ctx context.Context, host string, creds protocol.Credentials, command string) (string, error)

// Client drives the vendor management CLI over ssh. It exists for
// hosts whose redfish and soap surfaces are broken or disabled but
// whose controller shell still works.
type Client struct {
	log  logger.Logger
	conf config.Protocols
	run  CommandRunner
}

// NewClient returns a new vendorcli Client
func NewClient(conf config.Protocols) *Client {
	client := &Client{
		log:  logger.New(),
		conf: conf,
	}

	client.run = client.sshRun

	return client
}

// SetRunner overrides command execution; used by tests
func (c *Client) SetRunner(run CommandRunner) {
	c.run = run
}

// Protocol implements protocol.Client
func (c *Client) Protocol() protocol.ID {
	return protocol.VendorCLI
}

// Priority implements protocol.Client
func (c *Client) Priority() int {
	return 3
}

// Close implements protocol.Client; sessions are per-command
func (c *Client) Close() error {
	return nil
}

// DetectCapability implements protocol.Client
func (c *Client) DetectCapability(ctx context.Context, identity protocol.ServerIdentity, creds protocol.Credentials) protocol.Capability {
	capability := protocol.Capability{Protocol: protocol.VendorCLI}

	output, err := c.run(ctx, identity.Host, creds, "getversion")

	if err != nil {
		capability.Diagnostic = err.Error()
		return capability
	}

	version := parseField(output, "Firmware Version")

	if version == "" {
		capability.Diagnostic = "cli reachable but version output was unparseable"
		return capability
	}

	capability.Supported = true
	capability.FirmwareVersion = version
	capability.ManagerType = parseField(output, "Model")
	capability.Generation = protocol.ParseGeneration(version)
	capability.LicenseTier = parseLicenseTier(parseField(output, "License"))
	capability.UpdateModes = []protocol.UpdateMode{
		protocol.ModeInstallFromRepo,
		protocol.ModeOSDriver,
	}

	return capability
}

// HealthCheck implements protocol.Client
func (c *Client) HealthCheck(ctx context.Context, identity protocol.ServerIdentity, creds protocol.Credentials) protocol.Health {
	started := time.Now()

	health := protocol.Health{
		Protocol:  protocol.VendorCLI,
		CheckedAt: started,
	}

	if _, err := c.run(ctx, identity.Host, creds, "getsysinfo"); err != nil {
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
	var command string

	switch req.Mode {
	case protocol.ModeInstallFromRepo:
		if req.RepositoryURL == "" {
			return nil, exception.Permanent(
				string(protocol.VendorCLI),
				"update",
				fmt.Errorf("install-from-repository update requires a repository url"),
			)
		}

		command = fmt.Sprintf("update -f %s", req.RepositoryURL)
	case protocol.ModeOSDriver:
		if len(req.Components) == 0 || req.Components[0].ImageURI == "" {
			return nil, exception.Permanent(
				string(protocol.VendorCLI),
				"update",
				fmt.Errorf("os-driver update requires a component image uri"),
			)
		}

		command = fmt.Sprintf("driverpack install -u %s", req.Components[0].ImageURI)
	default:
		return nil, exception.Permanent(string(protocol.VendorCLI), "update", exception.ErrUnsupportedMode)
	}

	if req.ApplyTime == protocol.ApplyOnReset {
		command += " --reboot-required"
	}

	started := time.Now()

	output, err := c.run(ctx, req.Host, req.Credentials, command)

	if err != nil {
		return nil, err
	}

	jobID := parseField(output, "JOB_ID")

	if jobID == "" {
		return nil, exception.Transient(
			string(protocol.VendorCLI),
			"update",
			fmt.Errorf("cli accepted update but printed no job id"),
		)
	}

	return &protocol.UpdateResult{
		Protocol:  protocol.VendorCLI,
		TaskRef:   jobID,
		Status:    protocol.StatusQueued,
		StartedAt: started,
		Messages: []string{
			fmt.Sprintf("update staged via cli, job %s", jobID),
		},
	}, nil
}

// TrackTask implements protocol.TaskTracker
func (c *Client) TrackTask(ctx context.Context, req *protocol.UpdateRequest, taskRef string) (*protocol.UpdateResult, error) {
	result := &protocol.UpdateResult{
		Protocol:  protocol.VendorCLI,
		TaskRef:   taskRef,
		Status:    protocol.StatusInProgress,
		StartedAt: time.Now(),
		Messages:  []string{},
	}

	command := fmt.Sprintf("jobqueue view -i %s", taskRef)

	for attempt := 1; attempt <= c.conf.PollMaxAttempts; attempt++ {
		output, err := c.run(ctx, req.Host, req.Credentials, command)

		if err != nil {
			return nil, err
		}

		state := parseField(output, "Status")

		c.log.Debug().
			Str("host", req.Host).
			Str("job", taskRef).
			Str("state", state).
			Int("attempt", attempt).
			Msg("polling cli job")

		switch strings.ToLower(state) {
		case "completed":
			result.Status = protocol.StatusCompleted
			result.CompletedAt = time.Now()
			result.Messages = append(result.Messages, "job completed")
			return result, nil
		case "failed", "exception", "killed":
			result.Status = protocol.StatusFailed
			result.CompletedAt = time.Now()

			return nil, exception.Permanent(
				string(protocol.VendorCLI),
				"track",
				fmt.Errorf("job %s ended in state %s", taskRef, state),
			)
		}

		select {
		case <-ctx.Done():
			return nil, exception.Transient(string(protocol.VendorCLI), "track", ctx.Err())
		case <-time.After(c.conf.PollInterval):
		}
	}

	return nil, exception.Transient(
		string(protocol.VendorCLI),
		"track",
		fmt.Errorf("job %s did not finish within %d polls", taskRef, c.conf.PollMaxAttempts),
	)
}

// sshRun opens an ssh session on the controller and executes command.
// Controllers never have known host keys so verification is skipped.
func (c *Client) sshRun(ctx context.Context, host string, creds protocol.Credentials, command string) (string, error) {
	port := creds.Port

	if port == 0 {
		port = 22
	}

	auth := []ssh.AuthMethod{}

	if creds.PrivateKey != "" {
		signer, err := ssh.ParsePrivateKey([]byte(creds.PrivateKey))

		if err != nil {
			return "", exception.Auth(string(protocol.VendorCLI), "ssh", err)
		}

		auth = append(auth, ssh.PublicKeys(signer))
	}

	if creds.Password != "" {
		auth = append(auth, ssh.Password(creds.Password))
	}

	sshConf := &ssh.ClientConfig{
		User:            creds.Username,
		Auth:            auth,
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         c.conf.CallTimeout,
	}

	addr := net.JoinHostPort(host, strconv.Itoa(port))

	client, err := ssh.Dial("tcp", addr, sshConf)

	if err != nil {
		if strings.Contains(err.Error(), "unable to authenticate") {
			return "", exception.Auth(string(protocol.VendorCLI), "ssh", err)
		}

		return "", exception.Transient(string(protocol.VendorCLI), "ssh", err)
	}

	defer client.Close()

	session, err := client.NewSession()

	if err != nil {
		return "", exception.Transient(string(protocol.VendorCLI), "ssh", err)
	}

	defer session.Close()

	output, err := session.CombinedOutput(command)

	if err != nil {
		return "", exception.Transient(string(protocol.VendorCLI), command, err)
	}

	if err := ctx.Err(); err != nil {
		return "", exception.Transient(string(protocol.VendorCLI), command, err)
	}

	return string(output), nil
}

// parseField extracts a "key = value" line from cli output
func parseField(output string, key string) string {
	scanner := bufio.NewScanner(strings.NewReader(output))

	for scanner.Scan() {
		line := scanner.Text()

		parts := strings.SplitN(line, "=", 2)

		if len(parts) != 2 {
			continue
		}

		if strings.EqualFold(strings.TrimSpace(parts[0]), key) {
			return strings.TrimSpace(parts[1])
		}
	}

	return ""
}

// parseLicenseTier maps the cli license name onto a tier
func parseLicenseTier(name string) protocol.LicenseTier {
	switch strings.ToLower(name) {
	case "datacenter":
		return protocol.LicenseDatacenter
	case "enterprise":
		return protocol.LicenseEnterprise
	case "express":
		return protocol.LicenseExpress
	case "basic":
		return protocol.LicenseBasic
	default:
		return protocol.LicenseUnknown
	}
}
