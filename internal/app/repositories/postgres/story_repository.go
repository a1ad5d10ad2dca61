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

var storyColumns = []string{
	"id::text", "name", "role", "company", "content", "image", "linkedin_profile",
	"user_id::text", "status", "created_at", "updated_at",
}

// StoryRepository handles database operations for success stories
type StoryRepository struct {
	db *pgxpool.Pool
}

// NewStoryRepository creates a new StoryRepository
func NewStoryRepository(db *pgxpool.Pool) *StoryRepository {
	return &StoryRepository{db: db}
}

func scanStory(row pgx.Row) (*models.SuccessStory, error) {
	var s models.SuccessStory
	err := row.Scan(
		&s.ID, &s.Name, &s.Role, &s.Company, &s.Content, &s.Image, &s.LinkedinProfile,
		&s.UserID, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// List retrieves stories, optionally restricted to one status
func (r *StoryRepository) List(ctx context.Context, status models.StoryStatus) ([]*models.SuccessStory, error) {
	query := psql.Select(storyColumns...).From("success_stories").OrderBy("created_at DESC", "id DESC")
	if status != "" {
		query = query.Where(squirrel.Eq{"status": status})
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

	stories := make([]*models.SuccessStory, 0)
	for rows.Next() {
		story, err := scanStory(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		stories = append(stories, story)
	}
	return stories, rows.Err()
}

// GetByID retrieves a story by ID
func (r *StoryRepository) GetByID(ctx context.Context, id string) (*models.SuccessStory, error) {
	if !validID(id) {
		return nil, apperrors.ErrResourceNotFound
	}

	sql, args, err := psql.Select(storyColumns...).From("success_stories").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	story, err := scanStory(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapNoRows(err)
	}
	return story, nil
}

// Create creates a new story
func (r *StoryRepository) Create(ctx context.Context, story *models.SuccessStory) error {
	sql, args, err := psql.Insert("success_stories").
		Columns("name", "role", "company", "content", "image", "linkedin_profile", "user_id", "status").
		Values(story.Name, story.Role, story.Company, story.Content, story.Image, story.LinkedinProfile,
			story.UserID, story.Status).
		Suffix("RETURNING id::text, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&story.ID, &story.CreatedAt, &story.UpdatedAt); err != nil {
		return fmt.Errorf("error creating story: %w", err)
	}
	return nil
}

// Update overwrites the editable fields and status of a story
func (r *StoryRepository) Update(ctx context.Context, story *models.SuccessStory) error {
	if !validID(story.ID) {
		return apperrors.ErrResourceNotFound
	}

	sql, args, err := psql.Update("success_stories").
		Set("name", story.Name).
		Set("role", story.Role).
		Set("company", story.Company).
		Set("content", story.Content).
		Set("image", story.Image).
		Set("linkedin_profile", story.LinkedinProfile).
		Set("status", story.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": story.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&story.UpdatedAt); err != nil {
		return mapNoRows(err)
	}
	return nil
}

// Delete removes a story
func (r *StoryRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return apperrors.ErrResourceNotFound
	}

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM success_stories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting story: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}
