package updater_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/rackops/fwctl/internal/config"
	"github.com/rackops/fwctl/internal/event"
	"github.com/rackops/fwctl/internal/healthgate"
	"github.com/rackops/fwctl/internal/job"
	mock_updater "github.com/rackops/fwctl/internal/mock/updater"
	"github.com/rackops/fwctl/internal/protocol"
	"github.com/rackops/fwctl/internal/test_util"
	"github.com/rackops/fwctl/internal/updater"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

type harness struct {
	updater      *updater.Updater
	jobs         job.Service
	orchestrator *mock_updater.MockOrchestrator
	runner       *mock_updater.MockRunner
	gate         *mock_updater.MockGate
	events       *[]event.Event
}

func newHarness(t *testing.T, ctrl *gomock.Controller, dbFile string) *harness {
	db, err := test_util.GetDBConnection(dbFile)

	if err != nil {
		t.Logf("failed to create test db: %s", err.Error())
		t.FailNow()
	}

	if err := test_util.Migrate(db, job.UpdateJob{}); err != nil {
		t.Logf("failed to migrate test db: %s", err.Error())
		t.FailNow()
	}

	events := &[]event.Event{}
	sink := func(evt event.Event) { *events = append(*events, evt) }

	jobs := job.NewService(job.NewSqliteRepo(db), sink)

	orchestrator := mock_updater.NewMockOrchestrator(ctrl)
	runner := mock_updater.NewMockRunner(ctrl)
	gate := mock_updater.NewMockGate(ctrl)

	u := updater.New(jobs, orchestrator, runner, gate, config.Maintenance{
		EvacuateVMs:    true,
		TimeoutMinutes: 90,
	}, sink)

	return &harness{
		updater:      u,
		jobs:         jobs,
		orchestrator: orchestrator,
		runner:       runner,
		gate:         gate,
		events:       events,
	}
}

func passingGate() *healthgate.Result {
	return &healthgate.Result{
		Passed:         true,
		OverallHealth:  healthgate.OverallHealthy,
		ReadinessScore: 100,
	}
}

func blockedGate() *healthgate.Result {
	return &healthgate.Result{
		Passed:         false,
		OverallHealth:  healthgate.OverallCritical,
		ReadinessScore: 30,
		BlockingIssues: []healthgate.Check{
			{
				Category:  healthgate.CategoryThermal,
				Component: "CPU1 Temp",
				Status:    healthgate.StatusCritical,
				Message:   "reading exceeds critical threshold",
				Blocking:  true,
			},
		},
	}
}

func testRequest() *protocol.UpdateRequest {
	return &protocol.UpdateRequest{
		Host:          "10.0.0.5",
		Mode:          protocol.ModeInstallFromRepo,
		RepositoryURL: "https://repo.local/catalog",
	}
}

func phasesSeen(events []event.Event) []job.Phase {
	phases := []job.Phase{}

	for _, evt := range events {
		if evt.Type != event.PhaseChange {
			continue
		}

		phases = append(phases, evt.Payload.(job.UpdateJob).Phase)
	}

	return phases
}

func TestUpdater(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dbFile := "updater.db"

	defer func() {
		os.RemoveAll(dbFile)
	}()

	t.Run("walks every phase in order on success", func(st *testing.T) {
		h := newHarness(st, ctrl, dbFile)

		h.gate.EXPECT().Evaluate(gomock.Any()).Return(passingGate()).Times(2)
		h.orchestrator.EXPECT().EnterMaintenanceMode(gomock.Any(), "10.0.0.5", true, 90).Return("mm-task-1", nil)
		h.orchestrator.EXPECT().AwaitTask(gomock.Any(), "mm-task-1").Return(nil)
		h.runner.EXPECT().RunUpdate(gomock.Any(), gomock.Any()).Return(&protocol.UpdateResult{
			Protocol: protocol.Redfish,
			TaskRef:  "JID_1",
			Status:   protocol.StatusQueued,
		}, nil)
		h.runner.EXPECT().Track(gomock.Any(), protocol.Redfish, gomock.Any(), "JID_1").Return(&protocol.UpdateResult{
			Protocol: protocol.Redfish,
			TaskRef:  "JID_1",
			Status:   protocol.StatusCompleted,
		}, nil)
		h.orchestrator.EXPECT().ExitMaintenanceMode(gomock.Any(), "10.0.0.5").Return("", nil)

		updateJob, err := h.updater.Run(context.Background(), testRequest())

		assert.NoError(st, err)
		assert.Equal(st, job.StatusCompleted, updateJob.Status)
		assert.Equal(st, job.PhaseDone, updateJob.Phase)
		assert.Equal(st, 100, updateJob.ReadinessScore)
		assert.False(st, updateJob.InMaintenance)

		assert.Equal(st, []job.Phase{
			job.PhasePrecheck,
			job.PhaseEnterMaintenance,
			job.PhaseApply,
			job.PhasePostcheck,
			job.PhaseExitMaintenance,
			job.PhaseDone,
		}, phasesSeen(*h.events))

		attemptSeen := false
		resultSeen := false

		for _, evt := range *h.events {
			switch evt.Type {
			case event.UpdateAttempt:
				attemptSeen = true
				assert.Equal(st, "10.0.0.5", evt.Host)
			case event.UpdateResult:
				resultSeen = true
				assert.Equal(st, protocol.StatusCompleted, evt.Payload.(*protocol.UpdateResult).Status)
			}
		}

		assert.True(st, attemptSeen)
		assert.True(st, resultSeen)
	})

	t.Run("blocked precheck fails without touching the host", func(st *testing.T) {
		h := newHarness(st, ctrl, dbFile)

		h.gate.EXPECT().Evaluate(gomock.Any()).Return(blockedGate())

		updateJob, err := h.updater.Run(context.Background(), testRequest())

		assert.Error(st, err)
		assert.Equal(st, job.StatusFailed, updateJob.Status)
		assert.Equal(st, job.PhaseFailed, updateJob.Phase)
		assert.Contains(st, updateJob.Message, "CPU1 Temp")
	})

	t.Run("maintenance entry failure fails the job", func(st *testing.T) {
		h := newHarness(st, ctrl, dbFile)

		h.gate.EXPECT().Evaluate(gomock.Any()).Return(passingGate())
		h.orchestrator.EXPECT().
			EnterMaintenanceMode(gomock.Any(), "10.0.0.5", true, 90).
			Return("", fmt.Errorf("cluster degraded, refusing to drain"))

		updateJob, err := h.updater.Run(context.Background(), testRequest())

		assert.Error(st, err)
		assert.Equal(st, job.StatusFailed, updateJob.Status)
		assert.Contains(st, updateJob.Message, "enter maintenance")
	})

	t.Run("idempotent maintenance entry skips the await", func(st *testing.T) {
		h := newHarness(st, ctrl, dbFile)

		h.gate.EXPECT().Evaluate(gomock.Any()).Return(passingGate()).Times(2)
		// empty task ref means the host was already in maintenance
		h.orchestrator.EXPECT().EnterMaintenanceMode(gomock.Any(), "10.0.0.5", true, 90).Return("", nil)
		h.runner.EXPECT().RunUpdate(gomock.Any(), gomock.Any()).Return(&protocol.UpdateResult{
			Protocol: protocol.Redfish,
			Status:   protocol.StatusCompleted,
		}, nil)
		h.orchestrator.EXPECT().ExitMaintenanceMode(gomock.Any(), "10.0.0.5").Return("", nil)

		updateJob, err := h.updater.Run(context.Background(), testRequest())

		assert.NoError(st, err)
		assert.Equal(st, job.StatusCompleted, updateJob.Status)
	})

	t.Run("apply failure leaves the host in maintenance", func(st *testing.T) {
		h := newHarness(st, ctrl, dbFile)

		h.gate.EXPECT().Evaluate(gomock.Any()).Return(passingGate())
		h.orchestrator.EXPECT().EnterMaintenanceMode(gomock.Any(), "10.0.0.5", true, 90).Return("", nil)
		h.runner.EXPECT().
			RunUpdate(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("all protocols exhausted"))

		updateJob, err := h.updater.Run(context.Background(), testRequest())

		assert.Error(st, err)
		assert.Equal(st, job.StatusFailed, updateJob.Status)
		assert.Contains(st, updateJob.Message, "left in maintenance")
		assert.True(st, updateJob.InMaintenance)
	})

	t.Run("postcheck regression parks the host as needs-attention", func(st *testing.T) {
		h := newHarness(st, ctrl, dbFile)

		gomock.InOrder(
			h.gate.EXPECT().Evaluate(gomock.Any()).Return(passingGate()),
			h.gate.EXPECT().Evaluate(gomock.Any()).Return(blockedGate()),
		)
		h.orchestrator.EXPECT().EnterMaintenanceMode(gomock.Any(), "10.0.0.5", true, 90).Return("", nil)
		h.runner.EXPECT().RunUpdate(gomock.Any(), gomock.Any()).Return(&protocol.UpdateResult{
			Protocol: protocol.Redfish,
			Status:   protocol.StatusCompleted,
		}, nil)

		updateJob, err := h.updater.Run(context.Background(), testRequest())

		assert.Error(st, err)
		assert.Equal(st, job.StatusNeedsAttention, updateJob.Status)
		assert.True(st, updateJob.InMaintenance)
	})

	t.Run("exit maintenance failure is needs-attention not failed", func(st *testing.T) {
		h := newHarness(st, ctrl, dbFile)

		h.gate.EXPECT().Evaluate(gomock.Any()).Return(passingGate()).Times(2)
		h.orchestrator.EXPECT().EnterMaintenanceMode(gomock.Any(), "10.0.0.5", true, 90).Return("", nil)
		h.runner.EXPECT().RunUpdate(gomock.Any(), gomock.Any()).Return(&protocol.UpdateResult{
			Protocol: protocol.Redfish,
			Status:   protocol.StatusCompleted,
		}, nil)
		h.orchestrator.EXPECT().
			ExitMaintenanceMode(gomock.Any(), "10.0.0.5").
			Return("", fmt.Errorf("scheduler unavailable"))

		updateJob, err := h.updater.Run(context.Background(), testRequest())

		assert.Error(st, err)
		assert.Equal(st, job.StatusNeedsAttention, updateJob.Status)
	})

	t.Run("cancellation is honored at the next phase boundary", func(st *testing.T) {
		h := newHarness(st, ctrl, dbFile)

		ctx, cancel := context.WithCancel(context.Background())

		h.gate.EXPECT().Evaluate(gomock.Any()).DoAndReturn(
			func(context.Context) *healthgate.Result {
				cancel()
				return passingGate()
			},
		)

		_, err := h.updater.Run(ctx, testRequest())

		assert.Error(st, err)
	})

	t.Run("failed update task leaves maintenance and fails", func(st *testing.T) {
		h := newHarness(st, ctrl, dbFile)

		h.gate.EXPECT().Evaluate(gomock.Any()).Return(passingGate())
		h.orchestrator.EXPECT().EnterMaintenanceMode(gomock.Any(), "10.0.0.5", true, 90).Return("", nil)
		h.runner.EXPECT().RunUpdate(gomock.Any(), gomock.Any()).Return(&protocol.UpdateResult{
			Protocol: protocol.Soap,
			TaskRef:  "JID_9",
			Status:   protocol.StatusQueued,
		}, nil)
		h.runner.EXPECT().
			Track(gomock.Any(), protocol.Soap, gomock.Any(), "JID_9").
			Return(nil, fmt.Errorf("job JID_9 ended in state Failed"))

		updateJob, err := h.updater.Run(context.Background(), testRequest())

		assert.Error(st, err)
		assert.Equal(st, job.StatusFailed, updateJob.Status)
		assert.Equal(st, "JID_9", updateJob.TaskRef)
	})
}
