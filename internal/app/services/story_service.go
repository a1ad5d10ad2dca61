package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	appAuth "github.com/yigit/alumnihub/internal/app/auth"
	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/repositories"
	"github.com/yigit/alumnihub/internal/pkg/filestorage"
	"github.com/yigit/alumnihub/internal/pkg/helpers"
)

// StoryService defines the success story operations
type StoryService interface {
	// ListStories returns approved stories only
	ListStories(ctx context.Context) ([]*models.SuccessStory, error)
	GetStory(ctx context.Context, id string) (*models.SuccessStory, error)
	// CreateStory stores an approved story; imageURL is the uploaded image, if any
	CreateStory(ctx context.Context, identity appAuth.Identity, req *dto.CreateStoryRequest, imageURL string) (*models.SuccessStory, error)
	UpdateStory(ctx context.Context, identity appAuth.Identity, id string, req *dto.UpdateStoryRequest, imageURL string) (*models.SuccessStory, error)
	DeleteStory(ctx context.Context, identity appAuth.Identity, id string) error
	// SetStatus records an admin moderation decision
	SetStatus(ctx context.Context, identity appAuth.Identity, id string, status models.StoryStatus) (*models.SuccessStory, error)
}

type storyServiceImpl struct {
	storyRepo repositories.StoryRepository
	users     populator
	images    images
	logger    zerolog.Logger
}

// NewStoryService creates a new StoryService
func NewStoryService(
	storyRepo repositories.StoryRepository,
	userRepo repositories.UserRepository,
	storage filestorage.FileStorage,
	logger zerolog.Logger,
) StoryService {
	return &storyServiceImpl{
		storyRepo: storyRepo,
		users:     populator{users: userRepo},
		images:    images{storage: storage, logger: logger},
		logger:    logger,
	}
}

func (s *storyServiceImpl) populate(ctx context.Context, stories ...*models.SuccessStory) error {
	ids := make([]string, 0, len(stories))
	for _, st := range stories {
		ids = append(ids, st.UserID)
	}
	summaries, err := s.users.summaries(ctx, ids...)
	if err != nil {
		return err
	}
	for _, st := range stories {
		sum, ok := summaries[st.UserID]
		st.User = profileShape(sum, ok)
	}
	return nil
}

// ListStories returns approved stories, newest first
func (s *storyServiceImpl) ListStories(ctx context.Context) ([]*models.SuccessStory, error) {
	stories, err := s.storyRepo.List(ctx, models.StoryStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("error listing stories: %w", err)
	}
	if err := s.populate(ctx, stories...); err != nil {
		return nil, err
	}
	return stories, nil
}

// GetStory returns one story with its author
func (s *storyServiceImpl) GetStory(ctx context.Context, id string) (*models.SuccessStory, error) {
	story, err := s.storyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound("Story", err)
	}
	if err := s.populate(ctx, story); err != nil {
		return nil, err
	}
	return story, nil
}

// CreateStory stores a story owned by the caller. Stories are published immediately.
func (s *storyServiceImpl) CreateStory(ctx context.Context, identity appAuth.Identity, req *dto.CreateStoryRequest, imageURL string) (*models.SuccessStory, error) {
	image := helpers.StringPtr(imageURL)
	if image == nil {
		var err error
		if image, err = s.images.linked(nil, req.Image); err != nil {
			return nil, err
		}
	}

	story := &models.SuccessStory{
		Name:            req.Name,
		Role:            req.Role,
		Company:         req.Company,
		Content:         req.Content,
		Image:           image,
		LinkedinProfile: helpers.StringPtr(strings.TrimSpace(req.LinkedinProfile)),
		UserID:          identity.UserID,
		Status:          models.StoryStatusApproved,
	}

	if err := s.storyRepo.Create(ctx, story); err != nil {
		s.images.discard(ctx, helpers.StringPtr(imageURL))
		return nil, fmt.Errorf("error creating story: %w", err)
	}
	s.logger.Info().Str("storyID", story.ID).Str("userID", identity.UserID).Msg("Story created")
	return story, nil
}

// UpdateStory applies the fields present in req; only the author may do so
func (s *storyServiceImpl) UpdateStory(ctx context.Context, identity appAuth.Identity, id string, req *dto.UpdateStoryRequest, imageURL string) (story *models.SuccessStory, err error) {
	defer func() {
		if err != nil {
			s.images.discard(ctx, helpers.StringPtr(imageURL))
		}
	}()

	story, err = s.storyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound("Story", err)
	}
	if err := appAuth.ValidateOwnership(identity, story.UserID, appAuth.StoryAdminOverride); err != nil {
		return nil, err
	}

	for _, f := range []struct {
		dst   *string
		v     *string
		field string
	}{
		{&story.Name, req.Name, "Name"},
		{&story.Role, req.Role, "Role"},
		{&story.Company, req.Company, "Company"},
		{&story.Content, req.Content, "Content"},
	} {
		if err := requiredField(f.dst, f.v, f.field); err != nil {
			return nil, err
		}
	}
	optionalField(&story.LinkedinProfile, req.LinkedinProfile)

	previous := story.Image
	switch {
	case imageURL != "":
		story.Image = helpers.StringPtr(imageURL)
	case req.Image != nil:
		if story.Image, err = s.images.linked(story.Image, *req.Image); err != nil {
			return nil, err
		}
	}

	if err := s.storyRepo.Update(ctx, story); err != nil {
		return nil, notFound("Story", err)
	}
	s.images.replaced(ctx, previous, story.Image)

	if err := s.populate(ctx, story); err != nil {
		return nil, err
	}
	return story, nil
}

// DeleteStory removes a story and its image; only the author may do so
func (s *storyServiceImpl) DeleteStory(ctx context.Context, identity appAuth.Identity, id string) error {
	story, err := s.storyRepo.GetByID(ctx, id)
	if err != nil {
		return notFound("Story", err)
	}
	if err := appAuth.ValidateOwnership(identity, story.UserID, appAuth.StoryAdminOverride); err != nil {
		return err
	}
	if err := s.storyRepo.Delete(ctx, id); err != nil {
		return notFound("Story", err)
	}
	s.images.discard(ctx, story.Image)
	return nil
}

// SetStatus approves or rejects a story
func (s *storyServiceImpl) SetStatus(ctx context.Context, identity appAuth.Identity, id string, status models.StoryStatus) (*models.SuccessStory, error) {
	if err := appAuth.ValidateAdmin(identity); err != nil {
		return nil, err
	}

	story, err := s.storyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound("Story", err)
	}
	story.Status = status
	if err := s.storyRepo.Update(ctx, story); err != nil {
		return nil, notFound("Story", err)
	}

	s.logger.Info().Str("storyID", id).Str("status", string(status)).Msg("Story moderated")
	if err := s.populate(ctx, story); err != nil {
		return nil, err
	}
	return story, nil
}
