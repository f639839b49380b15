package job_test

import (
	"os"
	"testing"

	"github.com/rackops/fwctl/internal/exception"
	"github.com/rackops/fwctl/internal/job"
	"github.com/rackops/fwctl/internal/test_util"

	"github.com/stretchr/testify/assert"
)

func TestJobSqliteRepo(t *testing.T) {
	testDBFile := "job.db"

	defer func() {
		os.RemoveAll(testDBFile)
	}()

	db, err := test_util.GetDBConnection(testDBFile)

	if err != nil {
		t.Logf("failed to create test db: %s", err.Error())
		t.FailNow()
	}

	if err := test_util.Migrate(db, job.UpdateJob{}); err != nil {
		t.Logf("failed to migrate test db: %s", err.Error())
		t.FailNow()
	}

	repo := job.NewSqliteRepo(db)

	newJob := &job.UpdateJob{
		ID:     "job-1",
		Host:   "10.0.0.5",
		Mode:   "install-from-repository",
		Phase:  job.PhasePrecheck,
		Status: job.StatusRunning,
	}

	t.Run("GetJobByID returns record not found error", func(st *testing.T) {
		_, err := repo.GetJobByID("noop")

		assert.Error(st, err)
		assert.Equal(st, exception.ErrRecordNotFound, err)
	})

	t.Run("adds job", func(st *testing.T) {
		created, err := repo.AddJob(newJob)

		assert.NoError(st, err)
		assert.Equal(st, newJob, created)
	})

	t.Run("rejects job without id", func(st *testing.T) {
		_, err := repo.AddJob(&job.UpdateJob{Host: "10.0.0.5"})

		assert.Error(st, err)
	})

	t.Run("gets job by id", func(st *testing.T) {
		found, err := repo.GetJobByID("job-1")

		assert.NoError(st, err)
		assert.Equal(st, newJob.Host, found.Host)
		assert.Equal(st, job.PhasePrecheck, found.Phase)
	})

	t.Run("gets jobs by host", func(st *testing.T) {
		found, err := repo.GetJobsByHost("10.0.0.5")

		assert.NoError(st, err)
		assert.Len(st, found, 1)

		none, err := repo.GetJobsByHost("10.0.0.99")

		assert.NoError(st, err)
		assert.Len(st, none, 0)
	})

	t.Run("updates job", func(st *testing.T) {
		newJob.Phase = job.PhaseApply
		newJob.TaskRef = "JID_1"

		updated, err := repo.UpdateJob(newJob)

		assert.NoError(st, err)
		assert.Equal(st, job.PhaseApply, updated.Phase)

		found, err := repo.GetJobByID("job-1")

		assert.NoError(st, err)
		assert.Equal(st, "JID_1", found.TaskRef)
	})

	t.Run("lists all jobs", func(st *testing.T) {
		all, err := repo.GetAllJobs()

		assert.NoError(st, err)
		assert.Len(st, all, 1)
	})

	t.Run("removes job", func(st *testing.T) {
		err := repo.RemoveJob("job-1")

		assert.NoError(st, err)

		_, err = repo.GetJobByID("job-1")

		assert.Error(st, err)
		assert.Equal(st, exception.ErrRecordNotFound, err)
	})
}
