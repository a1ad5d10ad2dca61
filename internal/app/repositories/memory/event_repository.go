package memory

import (
	"context"

	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

// EventRepository stores events in memory
type EventRepository struct {
	events *table[*models.Event]
}

func NewEventRepository() *EventRepository {
	return &EventRepository{events: newTable(cloneEvent)}
}

func cloneEvent(e *models.Event) *models.Event {
	c := *e
	c.Organizer = nil
	return &c
}

func (r *EventRepository) List(_ context.Context, filter models.EventFilter) ([]*models.Event, error) {
	return r.events.list(func(e *models.Event) bool {
		return filter.Type == "" || e.Type == filter.Type
	}), nil
}

func (r *EventRepository) GetByID(_ context.Context, id string) (*models.Event, error) {
	e, ok := r.events.get(id)
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return e, nil
}

func (r *EventRepository) Create(_ context.Context, event *models.Event) error {
	event.ID = newID()
	event.CreatedAt = now()
	event.UpdatedAt = event.CreatedAt
	r.events.insert(event.ID, event)
	return nil
}

func (r *EventRepository) Update(_ context.Context, event *models.Event) error {
	event.UpdatedAt = now()
	_, ok := r.events.modify(event.ID, func(existing *models.Event) *models.Event {
		updated := cloneEvent(event)
		updated.CreatedAt = existing.CreatedAt
		updated.OrganizerID = existing.OrganizerID
		return updated
	})
	if !ok {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

func (r *EventRepository) Delete(_ context.Context, id string) error {
	if !r.events.remove(id) {
		return apperrors.ErrResourceNotFound
	}
	return nil
}
