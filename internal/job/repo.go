package job

import (
	"errors"

	"github.com/rackops/fwctl/internal/exception"

	"gorm.io/gorm"
)

// SqliteRepo is our job repo implementation for sqlite
type SqliteRepo struct {
	db *gorm.DB
}

// NewSqliteRepo returns a new job repo backed by db
func NewSqliteRepo(db *gorm.DB) *SqliteRepo {
	return &SqliteRepo{db: db}
}

// GetAllJobs returns all update jobs from the database
func (r *SqliteRepo) GetAllJobs() ([]*UpdateJob, error) {
	jobs := []*UpdateJob{}

	if result := r.db.Order("created_at desc").Find(&jobs); result.Error != nil {
		return nil, result.Error
	}

	return jobs, nil
}

// GetJobByID returns a single update job from the database
func (r *SqliteRepo) GetJobByID(jobID string) (*UpdateJob, error) {
	updateJob := UpdateJob{ID: jobID}

	if result := r.db.First(&updateJob); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, exception.ErrRecordNotFound
		}

		return nil, result.Error
	}

	return &updateJob, nil
}

// GetJobsByHost returns all update jobs recorded for a host
func (r *SqliteRepo) GetJobsByHost(host string) ([]*UpdateJob, error) {
	jobs := []*UpdateJob{}

	result := r.db.
		Where("host = ?", host).
		Order("created_at desc").
		Find(&jobs)

	if result.Error != nil {
		return nil, result.Error
	}

	return jobs, nil
}

// AddJob persists a new update job
func (r *SqliteRepo) AddJob(updateJob *UpdateJob) (*UpdateJob, error) {
	if updateJob.ID == "" {
		return nil, errors.New("job id cannot be empty")
	}

	if result := r.db.Create(updateJob); result.Error != nil {
		return nil, result.Error
	}

	return updateJob, nil
}

// UpdateJob persists changes to an existing update job
func (r *SqliteRepo) UpdateJob(updateJob *UpdateJob) (*UpdateJob, error) {
	if updateJob.ID == "" {
		return nil, errors.New("job id cannot be empty")
	}

	if result := r.db.Save(updateJob); result.Error != nil {
		return nil, result.Error
	}

	return updateJob, nil
}

// RemoveJob deletes an update job record
func (r *SqliteRepo) RemoveJob(id string) error {
	if id == "" {
		return errors.New("job id cannot be empty")
	}

	return r.db.Delete(&UpdateJob{ID: id}).Error
}
