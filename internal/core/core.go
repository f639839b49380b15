package core

import (
	"context"

	"github.com/rackops/fwctl/internal/config"
	"github.com/rackops/fwctl/internal/creds"
	"github.com/rackops/fwctl/internal/event"
	"github.com/rackops/fwctl/internal/exception"
	"github.com/rackops/fwctl/internal/job"
	"github.com/rackops/fwctl/internal/logger"
	"github.com/rackops/fwctl/internal/protocol"
	"github.com/rackops/fwctl/internal/updater"
)

// GateFactory builds a pre/post-update health gate bound to a single
// host and the credentials chosen for it
type GateFactory func(host string, credentials protocol.Credentials) updater.Gate

// Core represents our core data structure
type Core struct {
	ctx          context.Context
	cancel       context.CancelFunc
	conf         *config.Config
	resolver     creds.Resolver
	detector     protocol.Detector
	manager      *protocol.Manager
	jobs         job.Service
	orchestrator updater.Orchestrator
	gates        GateFactory
	events       event.Manager
	log          logger.Logger
}

// New returns new core module for given configuration and collaborators
func New(
	conf *config.Config,
	resolver creds.Resolver,
	detector protocol.Detector,
	manager *protocol.Manager,
	jobs job.Service,
	orchestrator updater.Orchestrator,
	gates GateFactory,
	events event.Manager,
) *Core {
	ctx, cancel := context.WithCancel(context.Background())

	return &Core{
		ctx:          ctx,
		cancel:       cancel,
		conf:         conf,
		resolver:     resolver,
		detector:     detector,
		manager:      manager,
		jobs:         jobs,
		orchestrator: orchestrator,
		gates:        gates,
		events:       events,
		log:          logger.New(),
	}
}

// Stop cancels any in-flight work and releases protocol resources
func (c *Core) Stop() error {
	c.cancel()
	return c.manager.Close()
}

// Conf returns the current active configuration
func (c *Core) Conf() *config.Config {
	return c.conf
}

// Detect scans a host across every protocol, walking the credential
// candidates in precedence order until one of them yields a supported
// capability. The last scan is returned when none do so the caller
// still gets per-protocol diagnostics.
func (c *Core) Detect(ctx context.Context, host string) *protocol.DetectionResult {
	identity := protocol.ServerIdentity{Host: host}

	var result *protocol.DetectionResult

	for _, candidate := range c.resolver.Resolve(host) {
		result = c.detector.Detect(ctx, identity, candidate)

		if result.Healthiest != nil {
			return result
		}

		c.log.Debug().
			Str("host", host).
			Str("username", candidate.Username).
			Msg("no supported protocol for credential, trying next candidate")
	}

	if result == nil {
		result = &protocol.DetectionResult{
			Host:         host,
			Capabilities: []protocol.Capability{},
		}
	}

	return result
}

// Health checks a host across every protocol, walking credential
// candidates until one produces at least a partially reachable picture
func (c *Core) Health(ctx context.Context, host string) []protocol.Health {
	identity := protocol.ServerIdentity{Host: host}

	var results []protocol.Health

	for _, candidate := range c.resolver.Resolve(host) {
		results = c.manager.Health(ctx, identity, candidate)

		if anyReachable(results) {
			return results
		}
	}

	return results
}

// RunUpdate executes a one-shot firmware update without the maintenance
// state machine. When the request carries no credentials the resolver's
// candidates are tried in order, moving to the next only on
// authentication failures.
func (c *Core) RunUpdate(ctx context.Context, req *protocol.UpdateRequest) (*protocol.UpdateResult, error) {
	candidates := c.candidatesFor(req)

	var lastErr error

	for _, candidate := range candidates {
		attempt := *req
		attempt.Credentials = candidate

		result, err := c.manager.RunUpdate(ctx, &attempt)

		if err == nil {
			return result, nil
		}

		lastErr = err

		if exception.KindOf(err) != exception.KindAuth {
			return nil, err
		}

		c.log.Warn().
			Err(err).
			Str("host", req.Host).
			Str("username", candidate.Username).
			Msg("authentication failed, trying next credential candidate")
	}

	return nil, lastErr
}

// StartUpdateJob runs the full phased update workflow for req: health
// gate, maintenance entry, apply, task tracking, post-check, and
// maintenance exit, with every phase persisted to the job store.
// Credentials are chosen by detection when the request carries none.
func (c *Core) StartUpdateJob(ctx context.Context, req *protocol.UpdateRequest) (*job.UpdateJob, error) {
	chosen := *req
	chosen.Credentials = c.chooseCredentials(ctx, req)

	run := updater.New(
		c.jobs,
		c.orchestrator,
		c.manager,
		c.gates(req.Host, chosen.Credentials),
		c.conf.Maintenance,
		c.events.Send,
	)

	return run.Run(ctx, &chosen)
}

// CurrentPhase returns the phase of a previously started update job
func (c *Core) CurrentPhase(jobID string) (job.Phase, error) {
	updateJob, err := c.jobs.GetJob(jobID)

	if err != nil {
		return "", err
	}

	return updateJob.Phase, nil
}

// GetAllJobs returns every recorded update job
func (c *Core) GetAllJobs() ([]*job.UpdateJob, error) {
	return c.jobs.GetAllJobs()
}

// GetJob returns a single update job by id
func (c *Core) GetJob(id string) (*job.UpdateJob, error) {
	return c.jobs.GetJob(id)
}

// GetJobsByHost returns every recorded update job for a host
func (c *Core) GetJobsByHost(host string) ([]*job.UpdateJob, error) {
	return c.jobs.GetJobsByHost(host)
}

// RegisterEventListener registers a channel to receive all events
func (c *Core) RegisterEventListener(channel chan event.Event) int {
	return c.events.RegisterListener(channel)
}

// RemoveEventListener removes a previously registered listener
func (c *Core) RemoveEventListener(id int) {
	c.events.RemoveListener(id)
}

// candidatesFor returns the credentials to try for a request. An
// explicit credential on the request always wins over resolution.
func (c *Core) candidatesFor(req *protocol.UpdateRequest) []protocol.Credentials {
	if req.Credentials != (protocol.Credentials{}) {
		return []protocol.Credentials{req.Credentials}
	}

	return c.resolver.Resolve(req.Host)
}

// chooseCredentials picks the first candidate that detection accepts.
// When none is accepted the first candidate is returned anyway so the
// workflow fails through the health gate with a full diagnostic trail.
func (c *Core) chooseCredentials(ctx context.Context, req *protocol.UpdateRequest) protocol.Credentials {
	candidates := c.candidatesFor(req)

	identity := protocol.ServerIdentity{Host: req.Host}

	for _, candidate := range candidates {
		result := c.detector.Detect(ctx, identity, candidate)

		if result.Healthiest != nil {
			return candidate
		}
	}

	if len(candidates) > 0 {
		return candidates[0]
	}

	return protocol.Credentials{}
}

func anyReachable(results []protocol.Health) bool {
	for _, health := range results {
		if health.Status != protocol.Unreachable {
			return true
		}
	}

	return false
}
