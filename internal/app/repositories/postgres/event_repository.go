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

var eventColumns = []string{
	"id::text", "title", "description", "date", "time", "location", "type",
	"organizer_id::text", "created_at", "updated_at",
}

// EventRepository handles database operations for events
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	var e models.Event
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.Time, &e.Location, &e.Type,
		&e.OrganizerID, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// List retrieves events, optionally of one type, newest first
func (r *EventRepository) List(ctx context.Context, filter models.EventFilter) ([]*models.Event, error) {
	query := psql.Select(eventColumns...).From("events").OrderBy("created_at DESC", "id DESC")
	if filter.Type != "" {
		query = query.Where(squirrel.Eq{"type": filter.Type})
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

	events := make([]*models.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	if !validID(id) {
		return nil, apperrors.ErrResourceNotFound
	}

	sql, args, err := psql.Select(eventColumns...).From("events").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	event, err := scanEvent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapNoRows(err)
	}
	return event, nil
}

// Create creates a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	sql, args, err := psql.Insert("events").
		Columns("title", "description", "date", "time", "location", "type", "organizer_id").
		Values(event.Title, event.Description, event.Date, event.Time, event.Location, event.Type, event.OrganizerID).
		Suffix("RETURNING id::text, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt); err != nil {
		return fmt.Errorf("error creating event: %w", err)
	}
	return nil
}

// Update overwrites the editable fields of an event
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	if !validID(event.ID) {
		return apperrors.ErrResourceNotFound
	}

	sql, args, err := psql.Update("events").
		Set("title", event.Title).
		Set("description", event.Description).
		Set("date", event.Date).
		Set("time", event.Time).
		Set("location", event.Location).
		Set("type", event.Type).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": event.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&event.UpdatedAt); err != nil {
		return mapNoRows(err)
	}
	return nil
}

// Delete removes an event
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return apperrors.ErrResourceNotFound
	}

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}
