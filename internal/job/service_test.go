package job_test

import (
	"testing"

	"github.com/rackops/fwctl/internal/event"
	"github.com/rackops/fwctl/internal/job"
	mock_job "github.com/rackops/fwctl/internal/mock/job"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestJobService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("creates a job in the initial phase and emits it", func(st *testing.T) {
		repo := mock_job.NewMockRepo(ctrl)

		events := []event.Event{}
		sink := func(evt event.Event) { events = append(events, evt) }

		service := job.NewService(repo, sink)

		repo.EXPECT().AddJob(gomock.Any()).DoAndReturn(
			func(updateJob *job.UpdateJob) (*job.UpdateJob, error) {
				assert.NotEmpty(st, updateJob.ID)
				assert.Equal(st, job.PhasePrecheck, updateJob.Phase)
				assert.Equal(st, job.StatusRunning, updateJob.Status)
				return updateJob, nil
			},
		)

		created, err := service.CreateJob("10.0.0.5", "simple-image")

		assert.NoError(st, err)
		assert.Equal(st, "10.0.0.5", created.Host)
		assert.Len(st, events, 1)
		assert.Equal(st, event.PhaseChange, events[0].Type)
	})

	t.Run("records phase transitions", func(st *testing.T) {
		repo := mock_job.NewMockRepo(ctrl)
		service := job.NewService(repo, nil)

		stored := &job.UpdateJob{ID: "job-1", Phase: job.PhasePrecheck}

		repo.EXPECT().GetJobByID("job-1").Return(stored, nil)
		repo.EXPECT().UpdateJob(gomock.Any()).DoAndReturn(
			func(updateJob *job.UpdateJob) (*job.UpdateJob, error) {
				return updateJob, nil
			},
		)

		updated, err := service.RecordPhase("job-1", job.PhaseApply)

		assert.NoError(st, err)
		assert.Equal(st, job.PhaseApply, updated.Phase)
	})

	t.Run("completion stamps terminal phase and time", func(st *testing.T) {
		repo := mock_job.NewMockRepo(ctrl)
		service := job.NewService(repo, nil)

		stored := &job.UpdateJob{ID: "job-1", Phase: job.PhaseExitMaintenance}

		repo.EXPECT().GetJobByID("job-1").Return(stored, nil)
		repo.EXPECT().UpdateJob(gomock.Any()).DoAndReturn(
			func(updateJob *job.UpdateJob) (*job.UpdateJob, error) {
				return updateJob, nil
			},
		)

		completed, err := service.Complete("job-1", job.StatusCompleted, "ok")

		assert.NoError(st, err)
		assert.Equal(st, job.PhaseDone, completed.Phase)
		assert.NotNil(st, completed.CompletedAt)
	})

	t.Run("failed completion lands in the failed phase", func(st *testing.T) {
		repo := mock_job.NewMockRepo(ctrl)
		service := job.NewService(repo, nil)

		stored := &job.UpdateJob{ID: "job-1", Phase: job.PhaseApply}

		repo.EXPECT().GetJobByID("job-1").Return(stored, nil)
		repo.EXPECT().UpdateJob(gomock.Any()).DoAndReturn(
			func(updateJob *job.UpdateJob) (*job.UpdateJob, error) {
				return updateJob, nil
			},
		)

		failed, err := service.Complete("job-1", job.StatusNeedsAttention, "postcheck regressed")

		assert.NoError(st, err)
		assert.Equal(st, job.PhaseFailed, failed.Phase)
		assert.Equal(st, job.StatusNeedsAttention, failed.Status)
	})
}
