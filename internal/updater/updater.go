package updater

import (
	"context"
	"fmt"
	"strings"

	"github.com/rackops/fwctl/internal/config"
	"github.com/rackops/fwctl/internal/event"
	"github.com/rackops/fwctl/internal/exception"
	"github.com/rackops/fwctl/internal/healthgate"
	"github.com/rackops/fwctl/internal/job"
	"github.com/rackops/fwctl/internal/logger"
	"github.com/rackops/fwctl/internal/protocol"
)

// legal forward transitions; FAILED is reachable from anywhere
var nextPhase = map[job.Phase]job.Phase{
	job.PhasePrecheck:         job.PhaseEnterMaintenance,
	job.PhaseEnterMaintenance: job.PhaseApply,
	job.PhaseApply:            job.PhasePostcheck,
	job.PhasePostcheck:        job.PhaseExitMaintenance,
	job.PhaseExitMaintenance:  job.PhaseDone,
}

// Updater walks one firmware update through its phases: precheck,
// maintenance entry, apply, postcheck, maintenance exit. There is no
// automatic rollback; a failure stops the walk where it stands and the
// job record says exactly how far it got. An apply or postcheck failure
// deliberately leaves the host in maintenance for a human to inspect.
type Updater struct {
	log          logger.Logger
	jobs         job.Service
	orchestrator Orchestrator
	runner       Runner
	gate         Gate
	conf         config.Maintenance
	sink         event.Sink
}

// New returns a new Updater. A nil sink disables events.
func New(
	jobs job.Service,
	orchestrator Orchestrator,
	runner Runner,
	gate Gate,
	conf config.Maintenance,
	sink event.Sink,
) *Updater {
	if sink == nil {
		sink = func(event.Event) {}
	}

	return &Updater{
		log:          logger.New(),
		jobs:         jobs,
		orchestrator: orchestrator,
		runner:       runner,
		gate:         gate,
		conf:         conf,
		sink:         sink,
	}
}

// Run executes one complete update for req. Cancellation is honored at
// phase boundaries only; a phase in flight always finishes or fails on
// its own terms.
func (u *Updater) Run(ctx context.Context, req *protocol.UpdateRequest) (*job.UpdateJob, error) {
	updateJob, err := u.jobs.CreateJob(req.Host, string(req.Mode))

	if err != nil {
		return nil, err
	}

	// PRECHECK
	gateResult := u.gate.Evaluate(ctx)

	if err := u.jobs.RecordReadiness(updateJob.ID, gateResult.ReadinessScore); err != nil {
		u.log.Error().Err(err).Str("job", updateJob.ID).Msg("failed to record readiness")
	}

	if !gateResult.Passed {
		return u.fail(updateJob.ID, job.StatusFailed, fmt.Sprintf(
			"precheck blocked update: %s",
			summarizeBlocking(gateResult),
		))
	}

	// ENTER_MAINTENANCE
	if _, err := u.transition(ctx, updateJob.ID, job.PhaseEnterMaintenance); err != nil {
		return nil, err
	}

	taskRef, err := u.orchestrator.EnterMaintenanceMode(ctx, req.Host, u.conf.EvacuateVMs, u.conf.TimeoutMinutes)

	if err != nil {
		return u.fail(updateJob.ID, job.StatusFailed, fmt.Sprintf(
			"failed to enter maintenance mode: %s", err.Error(),
		))
	}

	if taskRef != "" {
		if err := u.orchestrator.AwaitTask(ctx, taskRef); err != nil {
			return u.fail(updateJob.ID, job.StatusFailed, fmt.Sprintf(
				"maintenance entry did not complete: %s", err.Error(),
			))
		}
	}

	if err := u.jobs.RecordMaintenance(updateJob.ID, true); err != nil {
		u.log.Error().Err(err).Str("job", updateJob.ID).Msg("failed to record maintenance state")
	}

	// APPLY
	if _, err := u.transition(ctx, updateJob.ID, job.PhaseApply); err != nil {
		return nil, err
	}

	u.sink(event.Event{Type: event.UpdateAttempt, Host: req.Host, Payload: req})

	result, err := u.runner.RunUpdate(ctx, req)

	if err != nil {
		return u.fail(updateJob.ID, job.StatusFailed, fmt.Sprintf(
			"update failed, host left in maintenance: %s", err.Error(),
		))
	}

	if err := u.jobs.RecordTask(updateJob.ID, string(result.Protocol), result.TaskRef); err != nil {
		u.log.Error().Err(err).Str("job", updateJob.ID).Msg("failed to record task")
	}

	if result.Status == protocol.StatusQueued && result.TaskRef != "" {
		result, err = u.runner.Track(ctx, result.Protocol, req, result.TaskRef)

		if err != nil {
			return u.fail(updateJob.ID, job.StatusFailed, fmt.Sprintf(
				"update task failed, host left in maintenance: %s", err.Error(),
			))
		}
	}

	u.sink(event.Event{Type: event.UpdateResult, Host: req.Host, Payload: result})

	if result.Status != protocol.StatusCompleted {
		return u.fail(updateJob.ID, job.StatusFailed, fmt.Sprintf(
			"update ended in status %s, host left in maintenance", result.Status,
		))
	}

	// POSTCHECK
	if _, err := u.transition(ctx, updateJob.ID, job.PhasePostcheck); err != nil {
		return nil, err
	}

	postResult := u.gate.Evaluate(ctx)

	if !postResult.Passed {
		// firmware is already applied; flag the host instead of
		// pretending the update can be undone
		return u.fail(updateJob.ID, job.StatusNeedsAttention, fmt.Sprintf(
			"postcheck regressed, host left in maintenance: %s",
			summarizeBlocking(postResult),
		))
	}

	// EXIT_MAINTENANCE
	if _, err := u.transition(ctx, updateJob.ID, job.PhaseExitMaintenance); err != nil {
		return nil, err
	}

	exitRef, err := u.orchestrator.ExitMaintenanceMode(ctx, req.Host)

	if err != nil {
		return u.fail(updateJob.ID, job.StatusNeedsAttention, fmt.Sprintf(
			"updated but failed to exit maintenance mode: %s", err.Error(),
		))
	}

	if exitRef != "" {
		if err := u.orchestrator.AwaitTask(ctx, exitRef); err != nil {
			return u.fail(updateJob.ID, job.StatusNeedsAttention, fmt.Sprintf(
				"updated but maintenance exit did not complete: %s", err.Error(),
			))
		}
	}

	if err := u.jobs.RecordMaintenance(updateJob.ID, false); err != nil {
		u.log.Error().Err(err).Str("job", updateJob.ID).Msg("failed to record maintenance state")
	}

	// DONE
	return u.jobs.Complete(updateJob.ID, job.StatusCompleted, "update completed")
}

// transition moves the job forward one phase, enforcing the legal order
// and the safe-point cancellation contract
func (u *Updater) transition(ctx context.Context, id string, to job.Phase) (*job.UpdateJob, error) {
	if err := ctx.Err(); err != nil {
		updateJob, failErr := u.fail(id, job.StatusFailed, fmt.Sprintf(
			"canceled before %s", to,
		))

		if failErr != nil {
			return nil, failErr
		}

		return updateJob, exception.Transient("updater", "transition", err)
	}

	current, err := u.jobs.GetJob(id)

	if err != nil {
		return nil, err
	}

	if nextPhase[current.Phase] != to {
		return nil, exception.Critical(
			"updater",
			"transition",
			fmt.Errorf("illegal phase transition %s -> %s", current.Phase, to),
		)
	}

	return u.jobs.RecordPhase(id, to)
}

// fail finalizes the job and returns it with a typed error
func (u *Updater) fail(id string, status job.Status, message string) (*job.UpdateJob, error) {
	u.log.Warn().Str("job", id).Str("status", string(status)).Msg(message)

	updateJob, err := u.jobs.Complete(id, status, message)

	if err != nil {
		return nil, err
	}

	return updateJob, fmt.Errorf("%s", message)
}

// summarizeBlocking flattens the gate's blocking findings for the job
// record
func summarizeBlocking(result *healthgate.Result) string {
	if len(result.BlockingIssues) == 0 {
		return "no blocking findings reported"
	}

	parts := []string{}

	for _, check := range result.BlockingIssues {
		parts = append(parts, fmt.Sprintf("%s/%s: %s", check.Category, check.Component, check.Message))
	}

	return strings.Join(parts, "; ")
}
