package memory

import (
	"context"

	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

// StoryRepository stores success stories in memory
type StoryRepository struct {
	stories *table[*models.SuccessStory]
}

func NewStoryRepository() *StoryRepository {
	return &StoryRepository{stories: newTable(cloneStory)}
}

func cloneStory(s *models.SuccessStory) *models.SuccessStory {
	c := *s
	c.Image = cloneStringPtr(s.Image)
	c.LinkedinProfile = cloneStringPtr(s.LinkedinProfile)
	c.User = nil
	return &c
}

func (r *StoryRepository) List(_ context.Context, status models.StoryStatus) ([]*models.SuccessStory, error) {
	return r.stories.list(func(s *models.SuccessStory) bool {
		return status == "" || s.Status == status
	}), nil
}

func (r *StoryRepository) GetByID(_ context.Context, id string) (*models.SuccessStory, error) {
	s, ok := r.stories.get(id)
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return s, nil
}

func (r *StoryRepository) Create(_ context.Context, story *models.SuccessStory) error {
	story.ID = newID()
	story.CreatedAt = now()
	story.UpdatedAt = story.CreatedAt
	r.stories.insert(story.ID, story)
	return nil
}

func (r *StoryRepository) Update(_ context.Context, story *models.SuccessStory) error {
	story.UpdatedAt = now()
	_, ok := r.stories.modify(story.ID, func(existing *models.SuccessStory) *models.SuccessStory {
		updated := cloneStory(story)
		updated.CreatedAt = existing.CreatedAt
		updated.UserID = existing.UserID
		return updated
	})
	if !ok {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

func (r *StoryRepository) Delete(_ context.Context, id string) error {
	if !r.stories.remove(id) {
		return apperrors.ErrResourceNotFound
	}
	return nil
}
