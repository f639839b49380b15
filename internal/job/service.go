package job

import (
	"time"

	"github.com/rackops/fwctl/internal/event"
	"github.com/rackops/fwctl/internal/logger"

	"github.com/google/uuid"
)

// JobService represents our job.Service implementation
type JobService struct {
	log  logger.Logger
	repo Repo
	sink event.Sink
}

// NewService returns a new instance of JobService. A nil sink disables
// events.
func NewService(repo Repo, sink event.Sink) *JobService {
	if sink == nil {
		sink = func(event.Event) {}
	}

	return &JobService{
		log:  logger.New(),
		repo: repo,
		sink: sink,
	}
}

// GetAllJobs returns all update jobs
func (s *JobService) GetAllJobs() ([]*UpdateJob, error) {
	return s.repo.GetAllJobs()
}

// GetJob returns a single update job by id
func (s *JobService) GetJob(id string) (*UpdateJob, error) {
	return s.repo.GetJobByID(id)
}

// GetJobsByHost returns the update history for one host
func (s *JobService) GetJobsByHost(host string) ([]*UpdateJob, error) {
	return s.repo.GetJobsByHost(host)
}

// CreateJob records the start of an update run in its initial phase
func (s *JobService) CreateJob(host string, mode string) (*UpdateJob, error) {
	updateJob := &UpdateJob{
		ID:     uuid.New().String(),
		Host:   host,
		Mode:   mode,
		Phase:  PhasePrecheck,
		Status: StatusRunning,
	}

	created, err := s.repo.AddJob(updateJob)

	if err != nil {
		return nil, err
	}

	s.emitPhase(created)

	return created, nil
}

// RecordPhase transitions a job to phase and persists it
func (s *JobService) RecordPhase(id string, phase Phase) (*UpdateJob, error) {
	updateJob, err := s.repo.GetJobByID(id)

	if err != nil {
		return nil, err
	}

	updateJob.Phase = phase

	updated, err := s.repo.UpdateJob(updateJob)

	if err != nil {
		return nil, err
	}

	s.emitPhase(updated)

	return updated, nil
}

// RecordReadiness stores the precheck readiness score
func (s *JobService) RecordReadiness(id string, score int) error {
	updateJob, err := s.repo.GetJobByID(id)

	if err != nil {
		return err
	}

	updateJob.ReadinessScore = score

	_, err = s.repo.UpdateJob(updateJob)

	return err
}

// RecordTask stores the protocol and task locator chosen at execution
func (s *JobService) RecordTask(id string, protocol string, taskRef string) error {
	updateJob, err := s.repo.GetJobByID(id)

	if err != nil {
		return err
	}

	updateJob.Protocol = protocol
	updateJob.TaskRef = taskRef

	_, err = s.repo.UpdateJob(updateJob)

	return err
}

// RecordMaintenance tracks whether the host currently sits in
// cluster maintenance mode
func (s *JobService) RecordMaintenance(id string, inMaintenance bool) error {
	updateJob, err := s.repo.GetJobByID(id)

	if err != nil {
		return err
	}

	updateJob.InMaintenance = inMaintenance

	_, err = s.repo.UpdateJob(updateJob)

	return err
}

// Complete finalizes a job with its terminal status
func (s *JobService) Complete(id string, status Status, message string) (*UpdateJob, error) {
	updateJob, err := s.repo.GetJobByID(id)

	if err != nil {
		return nil, err
	}

	now := time.Now()

	updateJob.Status = status
	updateJob.Message = message
	updateJob.CompletedAt = &now

	if status == StatusCompleted {
		updateJob.Phase = PhaseDone
	} else {
		updateJob.Phase = PhaseFailed
	}

	updated, err := s.repo.UpdateJob(updateJob)

	if err != nil {
		return nil, err
	}

	s.emitPhase(updated)

	return updated, nil
}

func (s *JobService) emitPhase(updateJob *UpdateJob) {
	s.sink(event.Event{
		Type:    event.PhaseChange,
		Host:    updateJob.Host,
		Payload: *updateJob,
	})
}
