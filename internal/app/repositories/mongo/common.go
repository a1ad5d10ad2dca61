// Package mongo implements the repositories on MongoDB. Documents keep
// ObjectID references and are converted to the shared models on the way out.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/yigit/alumnihub/internal/pkg/apperrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names
const (
	usersCollection     = "users"
	jobsCollection      = "jobs"
	storiesCollection   = "successstories"
	postsCollection     = "posts"
	eventsCollection    = "events"
	inquiriesCollection = "inquiries"
)

// objectID parses a hex id. Malformed ids are reported as unknown.
func objectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}

// ownerRef parses the owner reference of a new document
func ownerRef(id string) (primitive.ObjectID, error) {
	oid, ok := objectID(id)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("invalid owner id %q", id)
	}
	return oid, nil
}

// hexOrEmpty renders a reference, leaving unset references empty
func hexOrEmpty(oid primitive.ObjectID) string {
	if oid.IsZero() {
		return ""
	}
	return oid.Hex()
}

func mapNoDocuments(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperrors.ErrResourceNotFound
	}
	return err
}

// now is truncated to the millisecond precision BSON dates keep
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// containsRegex matches s literally anywhere, ignoring case
func containsRegex(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
}

// findAll decodes every document matching filter and converts it with conv
func findAll[D any, M any](ctx context.Context, coll *mongo.Collection, filter interface{}, conv func(*D) *M) ([]*M, error) {
	cursor, err := coll.Find(ctx, filter, newestFirst())
	if err != nil {
		return nil, fmt.Errorf("error executing find on %s: %w", coll.Name(), err)
	}

	var docs []D
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", coll.Name(), err)
	}

	out := make([]*M, 0, len(docs))
	for i := range docs {
		out = append(out, conv(&docs[i]))
	}
	return out, nil
}

// findByID loads one document by hex id
func findByID[D any](ctx context.Context, coll *mongo.Collection, id string) (*D, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}

	var doc D
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, mapNoDocuments(err)
	}
	return &doc, nil
}

// setByID applies $set to one document and returns the new updated_at
func setByID(ctx context.Context, coll *mongo.Collection, id string, fields bson.M) (time.Time, error) {
	oid, ok := objectID(id)
	if !ok {
		return time.Time{}, apperrors.ErrResourceNotFound
	}

	updatedAt := now()
	fields["updated_at"] = updatedAt
	res, err := coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return time.Time{}, fmt.Errorf("error updating %s: %w", coll.Name(), err)
	}
	if res.MatchedCount == 0 {
		return time.Time{}, apperrors.ErrResourceNotFound
	}
	return updatedAt, nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return apperrors.ErrResourceNotFound
	}

	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("error deleting from %s: %w", coll.Name(), err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

// EnsureIndexes creates the unique email index and the listing indexes
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("users_email_key"),
	})
	if err != nil {
		return fmt.Errorf("error creating users email index: %w", err)
	}

	for _, name := range []string{jobsCollection, storiesCollection, postsCollection, eventsCollection, inquiriesCollection} {
		_, err := db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		})
		if err != nil {
			return fmt.Errorf("error creating %s created_at index: %w", name, err)
		}
	}
	return nil
}
