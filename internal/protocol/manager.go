package protocol

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rackops/fwctl/internal/config"
	"github.com/rackops/fwctl/internal/event"
	"github.com/rackops/fwctl/internal/exception"
	"github.com/rackops/fwctl/internal/logger"
)

// Manager coordinates the registered protocol clients for discovery and
// execution. Clients are always iterated ascending by priority.
type Manager struct {
	log           logger.Logger
	clients       []Client
	retryAttempts int
	retryDelay    time.Duration
	sink          event.Sink
}

// NewManager returns a new Manager. The client list is sorted by
// priority at construction so iteration order is deterministic and
// stable regardless of registration order. A nil sink disables events.
func NewManager(clients []Client, conf config.Protocols, sink event.Sink) *Manager {
	sorted := make([]Client, len(clients))
	copy(sorted, clients)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() < sorted[j].Priority()
	})

	if sink == nil {
		sink = func(event.Event) {}
	}

	return &Manager{
		log:           logger.New(),
		clients:       sorted,
		retryAttempts: conf.RetryAttempts,
		retryDelay:    conf.RetryDelay,
		sink:          sink,
	}
}

// Detect runs capability detection across all clients in priority order.
// A misbehaving client never aborts the scan; its entry comes back
// unsupported with a diagnostic. Healthiest is the supported capability
// owned by the lowest-priority-number client.
func (m *Manager) Detect(ctx context.Context, identity ServerIdentity, creds Credentials) *DetectionResult {
	result := &DetectionResult{
		Host:         identity.Host,
		Capabilities: []Capability{},
	}

	for _, client := range m.clients {
		capability := m.safeDetect(ctx, client, identity, creds)

		result.Capabilities = append(result.Capabilities, capability)

		if !capability.Supported {
			continue
		}

		m.sink(event.Event{
			Type:    event.CapabilityDetected,
			Host:    identity.Host,
			Payload: capability,
		})

		if result.Healthiest == nil {
			healthiest := capability
			result.Healthiest = &healthiest
		}
	}

	return result
}

// RunUpdate executes req against the first eligible client, retrying
// transient failures with a delay and falling back to the next-priority
// client on permanent or authentication failures. If every eligible
// client is exhausted the last captured error is returned to preserve
// diagnostic fidelity.
func (m *Manager) RunUpdate(ctx context.Context, req *UpdateRequest) (*UpdateResult, error) {
	identity := ServerIdentity{Host: req.Host}

	var lastErr error

	for _, client := range m.clients {
		capability := m.safeDetect(ctx, client, identity, req.Credentials)

		if !capability.Supported || !capability.SupportsMode(req.Mode) {
			m.log.Debug().
				Str("host", req.Host).
				Str("protocol", string(client.Protocol())).
				Str("mode", string(req.Mode)).
				Msg("skipping ineligible protocol")

			continue
		}

		result, err := m.attemptUpdate(ctx, client, req)

		if err == nil {
			m.sink(event.Event{
				Type:    event.UpdateResult,
				Host:    req.Host,
				Payload: *result,
			})

			return result, nil
		}

		if ctx.Err() != nil {
			return nil, err
		}

		lastErr = err

		m.log.Warn().
			Err(err).
			Str("host", req.Host).
			Str("protocol", string(client.Protocol())).
			Msg("protocol failed, falling back to next priority")
	}

	if lastErr != nil {
		return nil, lastErr
	}

	return nil, exception.Critical("manager", "update", exception.ErrAllProtocolsExhausted)
}

// Health runs health checks across all clients in priority order; a
// client failure converts to an unreachable record rather than aborting
// the scan.
func (m *Manager) Health(ctx context.Context, identity ServerIdentity, creds Credentials) []Health {
	results := []Health{}

	for _, client := range m.clients {
		health := m.safeHealth(ctx, client, identity, creds)

		results = append(results, health)

		m.sink(event.Event{
			Type:    event.HealthChecked,
			Host:    identity.Host,
			Payload: health,
		})
	}

	return results
}

// Track follows a previously submitted task to a terminal state by
// dispatching to the owning client. A client that cannot track tasks is
// a permanent error since retrying will never change the answer.
func (m *Manager) Track(ctx context.Context, id ID, req *UpdateRequest, taskRef string) (*UpdateResult, error) {
	for _, client := range m.clients {
		if client.Protocol() != id {
			continue
		}

		tracker, ok := client.(TaskTracker)

		if !ok {
			return nil, exception.Permanent(
				string(id),
				"track",
				fmt.Errorf("protocol does not support task tracking"),
			)
		}

		result, err := tracker.TrackTask(ctx, req, taskRef)

		if err != nil {
			return nil, err
		}

		m.sink(event.Event{
			Type:    event.UpdateResult,
			Host:    req.Host,
			Payload: *result,
		})

		return result, nil
	}

	return nil, exception.Permanent(string(id), "track", fmt.Errorf("no client registered for protocol"))
}

// Close releases all client resources, returning the first error seen
func (m *Manager) Close() error {
	var firstErr error

	for _, client := range m.clients {
		if err := client.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// attemptUpdate runs a bounded retry loop against a single client.
// Transient errors are retried after a ctx-aware delay; anything else
// abandons the client immediately so the caller can fall back.
func (m *Manager) attemptUpdate(ctx context.Context, client Client, req *UpdateRequest) (*UpdateResult, error) {
	var lastErr error

	for attempt := 1; attempt <= m.retryAttempts; attempt++ {
		m.sink(event.Event{
			Type: event.UpdateAttempt,
			Host: req.Host,
			Payload: map[string]any{
				"protocol": client.Protocol(),
				"attempt":  attempt,
			},
		})

		result, err := client.PerformFirmwareUpdate(ctx, req)

		if err == nil {
			return result, nil
		}

		lastErr = err

		if !exception.Retryable(err) {
			return nil, err
		}

		if attempt == m.retryAttempts {
			break
		}

		m.sink(event.Event{
			Type: event.ProtocolFallback,
			Host: req.Host,
			Payload: FallbackNotice{
				Protocol: client.Protocol(),
				Attempt:  attempt,
				Delay:    m.retryDelay,
				Kind:     string(exception.KindOf(err)),
				Reason:   err.Error(),
			},
		})

		select {
		case <-ctx.Done():
			return nil, exception.Transient(string(client.Protocol()), "retry-delay", ctx.Err())
		case <-time.After(m.retryDelay):
		}
	}

	return nil, lastErr
}

func (m *Manager) safeDetect(ctx context.Context, client Client, identity ServerIdentity, creds Credentials) (capability Capability) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Error().
				Str("protocol", string(client.Protocol())).
				Str("host", identity.Host).
				Msg("capability detection panicked")

			capability = Capability{
				Protocol:   client.Protocol(),
				Supported:  false,
				Diagnostic: fmt.Sprintf("detection panic: %v", r),
			}
		}
	}()

	return client.DetectCapability(ctx, identity, creds)
}

func (m *Manager) safeHealth(ctx context.Context, client Client, identity ServerIdentity, creds Credentials) (health Health) {
	defer func() {
		if r := recover(); r != nil {
			health = Health{
				Protocol:  client.Protocol(),
				Status:    Unreachable,
				CheckedAt: time.Now(),
				ErrorKind: fmt.Sprintf("health check panic: %v", r),
			}
		}
	}()

	return client.HealthCheck(ctx, identity, creds)
}
