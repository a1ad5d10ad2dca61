package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	appAuth "github.com/yigit/alumnihub/internal/app/auth"
	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/repositories"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
	"github.com/yigit/alumnihub/internal/pkg/helpers"
)

// EventService defines the event calendar operations
type EventService interface {
	ListEvents(ctx context.Context, filter models.EventFilter) ([]*models.Event, error)
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	CreateEvent(ctx context.Context, identity appAuth.Identity, req *dto.CreateEventRequest) (*models.Event, error)
	UpdateEvent(ctx context.Context, identity appAuth.Identity, id string, req *dto.UpdateEventRequest) (*models.Event, error)
	DeleteEvent(ctx context.Context, identity appAuth.Identity, id string) error
}

type eventServiceImpl struct {
	eventRepo repositories.EventRepository
	users     populator
	logger    zerolog.Logger
}

// NewEventService creates a new EventService
func NewEventService(eventRepo repositories.EventRepository, userRepo repositories.UserRepository, logger zerolog.Logger) EventService {
	return &eventServiceImpl{
		eventRepo: eventRepo,
		users:     populator{users: userRepo},
		logger:    logger,
	}
}

func (s *eventServiceImpl) populate(ctx context.Context, events ...*models.Event) error {
	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.OrganizerID)
	}
	summaries, err := s.users.summaries(ctx, ids...)
	if err != nil {
		return err
	}
	for _, e := range events {
		sum, ok := summaries[e.OrganizerID]
		e.Organizer = contactShape(sum, ok)
	}
	return nil
}

func parseDate(value string) (time.Time, error) {
	t, err := helpers.ParseEventDate(value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("Invalid date")
	}
	return t, nil
}

// ListEvents returns events, optionally of one type
func (s *eventServiceImpl) ListEvents(ctx context.Context, filter models.EventFilter) ([]*models.Event, error) {
	events, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	if err := s.populate(ctx, events...); err != nil {
		return nil, err
	}
	return events, nil
}

// GetEvent returns one event with its organizer
func (s *eventServiceImpl) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound("Event", err)
	}
	if err := s.populate(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// CreateEvent stores an event organized by the caller
func (s *eventServiceImpl) CreateEvent(ctx context.Context, identity appAuth.Identity, req *dto.CreateEventRequest) (*models.Event, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Time:        req.Time,
		Location:    req.Location,
		Type:        req.Type,
		OrganizerID: identity.UserID,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("error creating event: %w", err)
	}
	s.logger.Info().Str("eventID", event.ID).Str("userID", identity.UserID).Msg("Event created")
	return event, nil
}

// UpdateEvent applies the fields present in req; the organizer or an admin may do so
func (s *eventServiceImpl) UpdateEvent(ctx context.Context, identity appAuth.Identity, id string, req *dto.UpdateEventRequest) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound("Event", err)
	}
	if err := appAuth.ValidateOwnership(identity, event.OrganizerID, appAuth.EventAdminOverride); err != nil {
		return nil, err
	}

	for _, f := range []struct {
		dst   *string
		v     *string
		field string
	}{
		{&event.Title, req.Title, "Title"},
		{&event.Description, req.Description, "Description"},
		{&event.Time, req.Time, "Time"},
		{&event.Location, req.Location, "Location"},
	} {
		if err := requiredField(f.dst, f.v, f.field); err != nil {
			return nil, err
		}
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		event.Date = date
	}
	if req.Type != nil {
		event.Type = *req.Type
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, notFound("Event", err)
	}
	if err := s.populate(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// DeleteEvent removes an event; the organizer or an admin may do so
func (s *eventServiceImpl) DeleteEvent(ctx context.Context, identity appAuth.Identity, id string) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return notFound("Event", err)
	}
	if err := appAuth.ValidateOwnership(identity, event.OrganizerID, appAuth.EventAdminOverride); err != nil {
		return err
	}
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return notFound("Event", err)
	}
	return nil
}
