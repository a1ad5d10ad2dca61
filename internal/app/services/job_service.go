package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	appAuth "github.com/yigit/alumnihub/internal/app/auth"
	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/repositories"
	"github.com/yigit/alumnihub/internal/pkg/helpers"
)

// JobService defines the job board operations
type JobService interface {
	ListJobs(ctx context.Context, filter models.JobFilter) ([]*models.Job, error)
	GetJob(ctx context.Context, id string) (*models.Job, error)
	CreateJob(ctx context.Context, identity appAuth.Identity, req *dto.CreateJobRequest) (*models.Job, error)
	UpdateJob(ctx context.Context, identity appAuth.Identity, id string, req *dto.UpdateJobRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, identity appAuth.Identity, id string) error
}

type jobServiceImpl struct {
	jobRepo repositories.JobRepository
	users   populator
	logger  zerolog.Logger
}

// NewJobService creates a new JobService
func NewJobService(jobRepo repositories.JobRepository, userRepo repositories.UserRepository, logger zerolog.Logger) JobService {
	return &jobServiceImpl{
		jobRepo: jobRepo,
		users:   populator{users: userRepo},
		logger:  logger,
	}
}

func (s *jobServiceImpl) populate(ctx context.Context, jobs ...*models.Job) error {
	ids := make([]string, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.PostedByID)
	}
	summaries, err := s.users.summaries(ctx, ids...)
	if err != nil {
		return err
	}
	for _, j := range jobs {
		sum, ok := summaries[j.PostedByID]
		j.PostedBy = contactShape(sum, ok)
	}
	return nil
}

// ListJobs returns the postings matching the filter with their posters
func (s *jobServiceImpl) ListJobs(ctx context.Context, filter models.JobFilter) ([]*models.Job, error) {
	jobs, err := s.jobRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing jobs: %w", err)
	}
	if err := s.populate(ctx, jobs...); err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetJob returns one posting with its poster
func (s *jobServiceImpl) GetJob(ctx context.Context, id string) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound("Job", err)
	}
	if err := s.populate(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func cleanRequirements(in []string) []string {
	out := make([]string, 0, len(in))
	for _, r := range in {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}

// CreateJob stores a posting owned by the caller
func (s *jobServiceImpl) CreateJob(ctx context.Context, identity appAuth.Identity, req *dto.CreateJobRequest) (*models.Job, error) {
	job := &models.Job{
		Title:           req.Title,
		Company:         req.Company,
		Location:        req.Location,
		Type:            req.Type,
		Description:     req.Description,
		Requirements:    cleanRequirements(req.Requirements),
		ApplicationLink: helpers.StringPtr(strings.TrimSpace(req.ApplicationLink)),
		ContactEmail:    helpers.StringPtr(strings.TrimSpace(req.ContactEmail)),
		PostedByID:      identity.UserID,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("error creating job: %w", err)
	}
	s.logger.Info().Str("jobID", job.ID).Str("userID", identity.UserID).Msg("Job created")
	return job, nil
}

// UpdateJob applies the fields present in req; only the poster or an admin may do so
func (s *jobServiceImpl) UpdateJob(ctx context.Context, identity appAuth.Identity, id string, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound("Job", err)
	}
	if err := appAuth.ValidateOwnership(identity, job.PostedByID, appAuth.JobAdminOverride); err != nil {
		return nil, err
	}

	for _, f := range []struct {
		dst   *string
		v     *string
		field string
	}{
		{&job.Title, req.Title, "Title"},
		{&job.Company, req.Company, "Company"},
		{&job.Location, req.Location, "Location"},
		{&job.Description, req.Description, "Description"},
	} {
		if err := requiredField(f.dst, f.v, f.field); err != nil {
			return nil, err
		}
	}
	if req.Type != nil {
		job.Type = *req.Type
	}
	if req.Requirements != nil {
		job.Requirements = cleanRequirements(*req.Requirements)
	}
	optionalField(&job.ApplicationLink, req.ApplicationLink)
	optionalField(&job.ContactEmail, req.ContactEmail)

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, notFound("Job", err)
	}
	if err := s.populate(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// DeleteJob removes a posting; only the poster or an admin may do so
func (s *jobServiceImpl) DeleteJob(ctx context.Context, identity appAuth.Identity, id string) error {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return notFound("Job", err)
	}
	if err := appAuth.ValidateOwnership(identity, job.PostedByID, appAuth.JobAdminOverride); err != nil {
		return err
	}
	if err := s.jobRepo.Delete(ctx, id); err != nil {
		return notFound("Job", err)
	}
	s.logger.Info().Str("jobID", id).Str("userID", identity.UserID).Msg("Job deleted")
	return nil
}
