package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

var jobColumns = []string{
	"id::text", "title", "company", "location", "type", "description", "requirements",
	"application_link", "contact_email", "posted_by::text", "created_at", "updated_at",
}

// JobRepository handles database operations for job postings
type JobRepository struct {
	db *pgxpool.Pool
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{db: db}
}

func scanJob(row pgx.Row) (*models.Job, error) {
	var j models.Job
	err := row.Scan(
		&j.ID, &j.Title, &j.Company, &j.Location, &j.Type, &j.Description, &j.Requirements,
		&j.ApplicationLink, &j.ContactEmail, &j.PostedByID, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if j.Requirements == nil {
		j.Requirements = []string{}
	}
	return &j, nil
}

// List retrieves job postings matching the filter, newest first
func (r *JobRepository) List(ctx context.Context, filter models.JobFilter) ([]*models.Job, error) {
	query := psql.Select(jobColumns...).From("jobs").OrderBy("created_at DESC", "id DESC")

	if filter.Type != "" {
		query = query.Where(squirrel.Eq{"type": filter.Type})
	}
	if filter.Location != "" {
		query = query.Where(squirrel.ILike{"location": containsPattern(filter.Location)})
	}
	if filter.Keyword != "" {
		query = query.Where(jobKeywordPredicate(filter.Keyword))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	jobs := make([]*models.Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// jobKeywordPredicate matches keyword in the title, company, description or any requirement
func jobKeywordPredicate(keyword string) squirrel.Sqlizer {
	pattern := containsPattern(keyword)
	return squirrel.Or{
		squirrel.ILike{"title": pattern},
		squirrel.ILike{"company": pattern},
		squirrel.ILike{"description": pattern},
		squirrel.Expr("EXISTS (SELECT 1 FROM unnest(requirements) AS req WHERE req ILIKE ?)", pattern),
	}
}

// GetByID retrieves a job posting by ID
func (r *JobRepository) GetByID(ctx context.Context, id string) (*models.Job, error) {
	if !validID(id) {
		return nil, apperrors.ErrResourceNotFound
	}

	sql, args, err := psql.Select(jobColumns...).From("jobs").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	job, err := scanJob(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapNoRows(err)
	}
	return job, nil
}

// Create creates a new job posting
func (r *JobRepository) Create(ctx context.Context, job *models.Job) error {
	if job.Requirements == nil {
		job.Requirements = []string{}
	}

	sql, args, err := psql.Insert("jobs").
		Columns("title", "company", "location", "type", "description", "requirements",
			"application_link", "contact_email", "posted_by").
		Values(job.Title, job.Company, job.Location, job.Type, job.Description, job.Requirements,
			job.ApplicationLink, job.ContactEmail, job.PostedByID).
		Suffix("RETURNING id::text, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt); err != nil {
		return fmt.Errorf("error creating job: %w", err)
	}
	return nil
}

// Update overwrites the editable fields of a job posting
func (r *JobRepository) Update(ctx context.Context, job *models.Job) error {
	if !validID(job.ID) {
		return apperrors.ErrResourceNotFound
	}
	if job.Requirements == nil {
		job.Requirements = []string{}
	}

	sql, args, err := psql.Update("jobs").
		Set("title", job.Title).
		Set("company", job.Company).
		Set("location", job.Location).
		Set("type", job.Type).
		Set("description", job.Description).
		Set("requirements", job.Requirements).
		Set("application_link", job.ApplicationLink).
		Set("contact_email", job.ContactEmail).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": job.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&job.UpdatedAt); err != nil {
		return mapNoRows(err)
	}
	return nil
}

// Delete removes a job posting
func (r *JobRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return apperrors.ErrResourceNotFound
	}

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting job: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}
