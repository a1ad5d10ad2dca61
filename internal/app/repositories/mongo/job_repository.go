package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/yigit/alumnihub/internal/app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type jobDocument struct {
	ID              primitive.ObjectID `bson:"_id"`
	Title           string             `bson:"title"`
	Company         string             `bson:"company"`
	Location        string             `bson:"location"`
	Type            string             `bson:"type"`
	Description     string             `bson:"description"`
	Requirements    []string           `bson:"requirements"`
	ApplicationLink *string            `bson:"application_link,omitempty"`
	ContactEmail    *string            `bson:"contact_email,omitempty"`
	PostedBy        primitive.ObjectID `bson:"posted_by"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

func (d *jobDocument) toModel() *models.Job {
	reqs := d.Requirements
	if reqs == nil {
		reqs = []string{}
	}
	return &models.Job{
		ID:              d.ID.Hex(),
		Title:           d.Title,
		Company:         d.Company,
		Location:        d.Location,
		Type:            models.JobType(d.Type),
		Description:     d.Description,
		Requirements:    reqs,
		ApplicationLink: d.ApplicationLink,
		ContactEmail:    d.ContactEmail,
		PostedByID:      hexOrEmpty(d.PostedBy),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// JobRepository stores job postings in the jobs collection
type JobRepository struct {
	coll *mongo.Collection
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{coll: db.Collection(jobsCollection)}
}

// jobFilter translates a listing filter into a query document
func jobFilter(filter models.JobFilter) bson.M {
	query := bson.M{}
	if filter.Type != "" {
		query["type"] = string(filter.Type)
	}
	if filter.Location != "" {
		query["location"] = containsRegex(filter.Location)
	}
	if filter.Keyword != "" {
		re := containsRegex(filter.Keyword)
		query["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"company": re},
			bson.M{"description": re},
			bson.M{"requirements": re},
		}
	}
	return query
}

// List retrieves job postings matching the filter, newest first
func (r *JobRepository) List(ctx context.Context, filter models.JobFilter) ([]*models.Job, error) {
	return findAll(ctx, r.coll, jobFilter(filter), (*jobDocument).toModel)
}

// GetByID retrieves a job posting by ID
func (r *JobRepository) GetByID(ctx context.Context, id string) (*models.Job, error) {
	doc, err := findByID[jobDocument](ctx, r.coll, id)
	if err != nil {
		return nil, err
	}
	return doc.toModel(), nil
}

// Create creates a new job posting
func (r *JobRepository) Create(ctx context.Context, job *models.Job) error {
	if job.Requirements == nil {
		job.Requirements = []string{}
	}
	postedBy, err := ownerRef(job.PostedByID)
	if err != nil {
		return err
	}

	ts := now()
	doc := jobDocument{
		ID:              primitive.NewObjectID(),
		Title:           job.Title,
		Company:         job.Company,
		Location:        job.Location,
		Type:            string(job.Type),
		Description:     job.Description,
		Requirements:    job.Requirements,
		ApplicationLink: job.ApplicationLink,
		ContactEmail:    job.ContactEmail,
		PostedBy:        postedBy,
		CreatedAt:       ts,
		UpdatedAt:       ts,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("error creating job: %w", err)
	}

	job.ID = doc.ID.Hex()
	job.CreatedAt, job.UpdatedAt = ts, ts
	return nil
}

// Update overwrites the editable fields of a job posting
func (r *JobRepository) Update(ctx context.Context, job *models.Job) error {
	fields := bson.M{
		"title":            job.Title,
		"company":          job.Company,
		"location":         job.Location,
		"type":             string(job.Type),
		"description":      job.Description,
		"requirements":     job.Requirements,
		"application_link": job.ApplicationLink,
		"contact_email":    job.ContactEmail,
	}
	updatedAt, err := setByID(ctx, r.coll, job.ID, fields)
	if err != nil {
		return err
	}
	job.UpdatedAt = updatedAt
	return nil
}

// Delete removes a job posting
func (r *JobRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}
