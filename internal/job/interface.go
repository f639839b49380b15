package job

import "time"

//go:generate mockgen -destination=../mock/job/mock_job.go -package=mock_job . Repo,Service

type Status string
type Phase string

const (
	StatusRunning        Status = "running"
	StatusCompleted      Status = "completed"
	StatusFailed         Status = "failed"
	StatusNeedsAttention Status = "needs-attention"
)

const (
	PhasePrecheck         Phase = "PRECHECK"
	PhaseEnterMaintenance Phase = "ENTER_MAINTENANCE"
	PhaseApply            Phase = "APPLY"
	PhasePostcheck        Phase = "POSTCHECK"
	PhaseExitMaintenance  Phase = "EXIT_MAINTENANCE"
	PhaseDone             Phase = "DONE"
	PhaseFailed           Phase = "FAILED"
)

// UpdateJob is the persisted record of one firmware update run
type UpdateJob struct {
	ID             string
	Host           string
	Phase          Phase
	Status         Status
	Protocol       string
	Mode           string
	TaskRef        string
	Message        string
	ReadinessScore int
	InMaintenance  bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
	CompletedAt    *time.Time
}

type Repo interface {
	GetAllJobs() ([]*UpdateJob, error)
	GetJobByID(jobID string) (*UpdateJob, error)
	GetJobsByHost(host string) ([]*UpdateJob, error)
	AddJob(updateJob *UpdateJob) (*UpdateJob, error)
	UpdateJob(updateJob *UpdateJob) (*UpdateJob, error)
	RemoveJob(id string) error
}

type Service interface {
	GetAllJobs() ([]*UpdateJob, error)
	GetJob(id string) (*UpdateJob, error)
	GetJobsByHost(host string) ([]*UpdateJob, error)
	CreateJob(host string, mode string) (*UpdateJob, error)
	RecordPhase(id string, phase Phase) (*UpdateJob, error)
	RecordReadiness(id string, score int) error
	RecordTask(id string, protocol string, taskRef string) error
	RecordMaintenance(id string, inMaintenance bool) error
	Complete(id string, status Status, message string) (*UpdateJob, error)
}
