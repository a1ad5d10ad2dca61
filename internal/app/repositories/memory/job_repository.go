package memory

import (
	"context"

	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

// JobRepository stores job postings in memory
type JobRepository struct {
	jobs *table[*models.Job]
}

func NewJobRepository() *JobRepository {
	return &JobRepository{jobs: newTable(cloneJob)}
}

func cloneJob(j *models.Job) *models.Job {
	c := *j
	c.Requirements = cloneStrings(j.Requirements)
	c.ApplicationLink = cloneStringPtr(j.ApplicationLink)
	c.ContactEmail = cloneStringPtr(j.ContactEmail)
	c.PostedBy = nil
	return &c
}

func (r *JobRepository) List(_ context.Context, filter models.JobFilter) ([]*models.Job, error) {
	return r.jobs.list(func(j *models.Job) bool {
		return matchJob(j, filter)
	}), nil
}

func matchJob(j *models.Job, f models.JobFilter) bool {
	if f.Type != "" && j.Type != f.Type {
		return false
	}
	if f.Location != "" && !containsFold(j.Location, f.Location) {
		return false
	}
	if f.Keyword == "" {
		return true
	}
	if containsFold(j.Title, f.Keyword) || containsFold(j.Company, f.Keyword) || containsFold(j.Description, f.Keyword) {
		return true
	}
	for _, req := range j.Requirements {
		if containsFold(req, f.Keyword) {
			return true
		}
	}
	return false
}

func (r *JobRepository) GetByID(_ context.Context, id string) (*models.Job, error) {
	j, ok := r.jobs.get(id)
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return j, nil
}

func (r *JobRepository) Create(_ context.Context, job *models.Job) error {
	job.ID = newID()
	job.CreatedAt = now()
	job.UpdatedAt = job.CreatedAt
	r.jobs.insert(job.ID, job)
	return nil
}

func (r *JobRepository) Update(_ context.Context, job *models.Job) error {
	job.UpdatedAt = now()
	_, ok := r.jobs.modify(job.ID, func(existing *models.Job) *models.Job {
		updated := cloneJob(job)
		updated.CreatedAt = existing.CreatedAt
		updated.PostedByID = existing.PostedByID
		return updated
	})
	if !ok {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

func (r *JobRepository) Delete(_ context.Context, id string) error {
	if !r.jobs.remove(id) {
		return apperrors.ErrResourceNotFound
	}
	return nil
}
