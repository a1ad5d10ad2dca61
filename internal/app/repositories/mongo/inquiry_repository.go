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

type inquiryDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Subject   string             `bson:"subject"`
	Message   string             `bson:"message"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d *inquiryDocument) toModel() *models.Inquiry {
	return &models.Inquiry{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Email:     d.Email,
		Subject:   d.Subject,
		Message:   d.Message,
		Status:    models.InquiryStatus(d.Status),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// InquiryRepository stores contact inquiries
type InquiryRepository struct {
	coll *mongo.Collection
}

// NewInquiryRepository creates a new InquiryRepository
func NewInquiryRepository(db *mongo.Database) *InquiryRepository {
	return &InquiryRepository{coll: db.Collection(inquiriesCollection)}
}

// List retrieves all inquiries, newest first
func (r *InquiryRepository) List(ctx context.Context) ([]*models.Inquiry, error) {
	return findAll(ctx, r.coll, bson.M{}, (*inquiryDocument).toModel)
}

// GetByID retrieves an inquiry by ID
func (r *InquiryRepository) GetByID(ctx context.Context, id string) (*models.Inquiry, error) {
	doc, err := findByID[inquiryDocument](ctx, r.coll, id)
	if err != nil {
		return nil, err
	}
	return doc.toModel(), nil
}

// Create stores a new inquiry with status new
func (r *InquiryRepository) Create(ctx context.Context, inquiry *models.Inquiry) error {
	if inquiry.Status == "" {
		inquiry.Status = models.InquiryStatusNew
	}

	ts := now()
	doc := inquiryDocument{
		ID:        primitive.NewObjectID(),
		Name:      inquiry.Name,
		Email:     inquiry.Email,
		Subject:   inquiry.Subject,
		Message:   inquiry.Message,
		Status:    string(inquiry.Status),
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("error creating inquiry: %w", err)
	}

	inquiry.ID = doc.ID.Hex()
	inquiry.CreatedAt, inquiry.UpdatedAt = ts, ts
	return nil
}

// UpdateStatus sets the handling status of an inquiry
func (r *InquiryRepository) UpdateStatus(ctx context.Context, id string, status models.InquiryStatus) error {
	_, err := setByID(ctx, r.coll, id, bson.M{"status": string(status)})
	return err
}
