package mongo

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestObjectID(t *testing.T) {
	oid := primitive.NewObjectID()

	got, ok := objectID(oid.Hex())
	assert.True(t, ok)
	assert.Equal(t, oid, got)

	_, ok = objectID("not-an-object-id")
	assert.False(t, ok)
}

func TestCreateRejectsMalformedOwner(t *testing.T) {
	_, err := ownerRef("")
	assert.Error(t, err)

	// No server is needed: the owner is checked before any round trip.
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://127.0.0.1:1"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	db := client.Database("alumnihub_test")

	post := &models.Post{Content: "hi", AuthorID: "not-an-object-id"}
	assert.ErrorContains(t, NewPostRepository(db).Create(context.Background(), post), "invalid owner id")
	assert.Empty(t, post.ID)

	job := &models.Job{Title: "Backend Intern", PostedByID: "42"}
	assert.ErrorContains(t, NewJobRepository(db).Create(context.Background(), job), "invalid owner id")
	assert.Empty(t, job.ID)
}

func TestContainsRegexQuotesInput(t *testing.T) {
	re := containsRegex("c++ (senior)")
	assert.Equal(t, "i", re.Options)

	compiled := regexp.MustCompile("(?i)" + re.Pattern)
	assert.True(t, compiled.MatchString("Looking for C++ (Senior) devs"))
	assert.False(t, compiled.MatchString("c senior"))
}

func TestJobFilter(t *testing.T) {
	assert.Empty(t, jobFilter(models.JobFilter{}))

	q := jobFilter(models.JobFilter{Type: models.JobTypeRemote, Location: "izmir", Keyword: "go"})
	assert.Equal(t, "Remote", q["type"])
	assert.Equal(t, containsRegex("izmir"), q["location"])

	or, ok := q["$or"].(bson.A)
	require.True(t, ok)
	assert.Len(t, or, 4)
	assert.Contains(t, or, bson.M{"requirements": containsRegex("go")})
}

func TestDocumentConversion(t *testing.T) {
	author := primitive.NewObjectID()
	liker := primitive.NewObjectID()
	doc := &postDocument{ID: primitive.NewObjectID(), Content: "hi", Author: author, Likes: []primitive.ObjectID{liker}}

	post := doc.toModel()
	assert.Equal(t, author.Hex(), post.AuthorID)
	assert.Equal(t, []string{liker.Hex()}, post.Likes)

	job := (&jobDocument{ID: primitive.NewObjectID()}).toModel()
	assert.Equal(t, []string{}, job.Requirements)
	assert.Empty(t, job.PostedByID)
}

func TestMalformedIDsNeverReachTheDatabase(t *testing.T) {
	ctx := context.Background()
	posts := &PostRepository{}

	_, err := posts.ToggleLike(ctx, "bad", primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	_, err = findByID[jobDocument](ctx, nil, "bad")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	assert.ErrorIs(t, deleteByID(ctx, nil, "bad"), apperrors.ErrResourceNotFound)
}
