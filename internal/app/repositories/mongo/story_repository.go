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

type storyDocument struct {
	ID              primitive.ObjectID `bson:"_id"`
	Name            string             `bson:"name"`
	Role            string             `bson:"role"`
	Company         string             `bson:"company"`
	Content         string             `bson:"content"`
	Image           *string            `bson:"image,omitempty"`
	LinkedinProfile *string            `bson:"linkedin_profile,omitempty"`
	User            primitive.ObjectID `bson:"user"`
	Status          string             `bson:"status"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

func (d *storyDocument) toModel() *models.SuccessStory {
	return &models.SuccessStory{
		ID:              d.ID.Hex(),
		Name:            d.Name,
		Role:            d.Role,
		Company:         d.Company,
		Content:         d.Content,
		Image:           d.Image,
		LinkedinProfile: d.LinkedinProfile,
		UserID:          hexOrEmpty(d.User),
		Status:          models.StoryStatus(d.Status),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// StoryRepository stores success stories
type StoryRepository struct {
	coll *mongo.Collection
}

// NewStoryRepository creates a new StoryRepository
func NewStoryRepository(db *mongo.Database) *StoryRepository {
	return &StoryRepository{coll: db.Collection(storiesCollection)}
}

// List retrieves stories, optionally restricted to one status
func (r *StoryRepository) List(ctx context.Context, status models.StoryStatus) ([]*models.SuccessStory, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = string(status)
	}
	return findAll(ctx, r.coll, filter, (*storyDocument).toModel)
}

// GetByID retrieves a story by ID
func (r *StoryRepository) GetByID(ctx context.Context, id string) (*models.SuccessStory, error) {
	doc, err := findByID[storyDocument](ctx, r.coll, id)
	if err != nil {
		return nil, err
	}
	return doc.toModel(), nil
}

// Create creates a new story
func (r *StoryRepository) Create(ctx context.Context, story *models.SuccessStory) error {
	userID, err := ownerRef(story.UserID)
	if err != nil {
		return err
	}

	ts := now()
	doc := storyDocument{
		ID:              primitive.NewObjectID(),
		Name:            story.Name,
		Role:            story.Role,
		Company:         story.Company,
		Content:         story.Content,
		Image:           story.Image,
		LinkedinProfile: story.LinkedinProfile,
		User:            userID,
		Status:          string(story.Status),
		CreatedAt:       ts,
		UpdatedAt:       ts,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("error creating story: %w", err)
	}

	story.ID = doc.ID.Hex()
	story.CreatedAt, story.UpdatedAt = ts, ts
	return nil
}

// Update overwrites the editable fields and status of a story
func (r *StoryRepository) Update(ctx context.Context, story *models.SuccessStory) error {
	updatedAt, err := setByID(ctx, r.coll, story.ID, bson.M{
		"name":             story.Name,
		"role":             story.Role,
		"company":          story.Company,
		"content":          story.Content,
		"image":            story.Image,
		"linkedin_profile": story.LinkedinProfile,
		"status":           string(story.Status),
	})
	if err != nil {
		return err
	}
	story.UpdatedAt = updatedAt
	return nil
}

// Delete removes a story
func (r *StoryRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}
