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

type eventDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Date        time.Time          `bson:"date"`
	Time        string             `bson:"time"`
	Location    string             `bson:"location"`
	Type        string             `bson:"type"`
	Organizer   primitive.ObjectID `bson:"organizer"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d *eventDocument) toModel() *models.Event {
	return &models.Event{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Date:        d.Date.UTC(),
		Time:        d.Time,
		Location:    d.Location,
		Type:        models.EventType(d.Type),
		OrganizerID: hexOrEmpty(d.Organizer),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// EventRepository stores events
type EventRepository struct {
	coll *mongo.Collection
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{coll: db.Collection(eventsCollection)}
}

// List retrieves events, optionally of one type, newest first
func (r *EventRepository) List(ctx context.Context, filter models.EventFilter) ([]*models.Event, error) {
	query := bson.M{}
	if filter.Type != "" {
		query["type"] = string(filter.Type)
	}
	return findAll(ctx, r.coll, query, (*eventDocument).toModel)
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	doc, err := findByID[eventDocument](ctx, r.coll, id)
	if err != nil {
		return nil, err
	}
	return doc.toModel(), nil
}

// Create creates a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	organizer, err := ownerRef(event.OrganizerID)
	if err != nil {
		return err
	}

	ts := now()
	doc := eventDocument{
		ID:          primitive.NewObjectID(),
		Title:       event.Title,
		Description: event.Description,
		Date:        event.Date,
		Time:        event.Time,
		Location:    event.Location,
		Type:        string(event.Type),
		Organizer:   organizer,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("error creating event: %w", err)
	}

	event.ID = doc.ID.Hex()
	event.CreatedAt, event.UpdatedAt = ts, ts
	return nil
}

// Update overwrites the editable fields of an event
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	updatedAt, err := setByID(ctx, r.coll, event.ID, bson.M{
		"title":       event.Title,
		"description": event.Description,
		"date":        event.Date,
		"time":        event.Time,
		"location":    event.Location,
		"type":        string(event.Type),
	})
	if err != nil {
		return err
	}
	event.UpdatedAt = updatedAt
	return nil
}

// Delete removes an event
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}
