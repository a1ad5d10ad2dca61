package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type postDocument struct {
	ID        primitive.ObjectID   `bson:"_id"`
	Content   string               `bson:"content"`
	Image     *string              `bson:"image,omitempty"`
	Author    primitive.ObjectID   `bson:"author"`
	Likes     []primitive.ObjectID `bson:"likes"`
	CreatedAt time.Time            `bson:"created_at"`
	UpdatedAt time.Time            `bson:"updated_at"`
}

func likeIDs(likes []primitive.ObjectID) []string {
	out := make([]string, 0, len(likes))
	for _, oid := range likes {
		out = append(out, oid.Hex())
	}
	return out
}

func (d *postDocument) toModel() *models.Post {
	return &models.Post{
		ID:        d.ID.Hex(),
		Content:   d.Content,
		Image:     d.Image,
		AuthorID:  hexOrEmpty(d.Author),
		Likes:     likeIDs(d.Likes),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// PostRepository stores feed posts with their likes embedded
type PostRepository struct {
	coll *mongo.Collection
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{coll: db.Collection(postsCollection)}
}

// List retrieves all posts, newest first
func (r *PostRepository) List(ctx context.Context) ([]*models.Post, error) {
	return findAll(ctx, r.coll, bson.M{}, (*postDocument).toModel)
}

// GetByID retrieves a post with its likes
func (r *PostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	doc, err := findByID[postDocument](ctx, r.coll, id)
	if err != nil {
		return nil, err
	}
	return doc.toModel(), nil
}

// Create creates a new post with no likes
func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	author, err := ownerRef(post.AuthorID)
	if err != nil {
		return err
	}

	ts := now()
	doc := postDocument{
		ID:        primitive.NewObjectID(),
		Content:   post.Content,
		Image:     post.Image,
		Author:    author,
		Likes:     []primitive.ObjectID{},
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("error creating post: %w", err)
	}

	post.ID = doc.ID.Hex()
	post.Likes = []string{}
	post.CreatedAt, post.UpdatedAt = ts, ts
	return nil
}

// Update overwrites content and image of a post
func (r *PostRepository) Update(ctx context.Context, post *models.Post) error {
	updatedAt, err := setByID(ctx, r.coll, post.ID, bson.M{
		"content": post.Content,
		"image":   post.Image,
	})
	if err != nil {
		return err
	}
	post.UpdatedAt = updatedAt
	return nil
}

// Delete removes a post
func (r *PostRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

// ToggleLike pulls userID from the likes when present and adds it otherwise.
// Each step is a single atomic document update.
func (r *PostRepository) ToggleLike(ctx context.Context, postID, userID string) ([]string, error) {
	pid, ok := objectID(postID)
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	uid, ok := objectID(userID)
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}

	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc postDocument
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": pid, "likes": uid},
		bson.M{"$pull": bson.M{"likes": uid}},
		after,
	).Decode(&doc)
	if err == nil {
		return likeIDs(doc.Likes), nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("error removing like: %w", err)
	}

	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": pid},
		bson.M{"$addToSet": bson.M{"likes": uid}},
		after,
	).Decode(&doc)
	if err != nil {
		return nil, mapNoDocuments(err)
	}
	return likeIDs(doc.Likes), nil
}
