package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	appAuth "github.com/yigit/alumnihub/internal/app/auth"
	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/repositories"
	"github.com/yigit/alumnihub/internal/pkg/filestorage"
	"github.com/yigit/alumnihub/internal/pkg/helpers"
)

// PostService defines the feed operations
type PostService interface {
	ListPosts(ctx context.Context) ([]*models.Post, error)
	GetPost(ctx context.Context, id string) (*models.Post, error)
	CreatePost(ctx context.Context, identity appAuth.Identity, req *dto.CreatePostRequest, imageURL string) (*models.Post, error)
	UpdatePost(ctx context.Context, identity appAuth.Identity, id string, req *dto.UpdatePostRequest, imageURL string) (*models.Post, error)
	DeletePost(ctx context.Context, identity appAuth.Identity, id string) error
	// ToggleLike likes the post for the caller, or unlikes it when already liked
	ToggleLike(ctx context.Context, identity appAuth.Identity, id string) ([]string, error)
}

type postServiceImpl struct {
	postRepo repositories.PostRepository
	users    populator
	images   images
	logger   zerolog.Logger
}

// NewPostService creates a new PostService
func NewPostService(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	storage filestorage.FileStorage,
	logger zerolog.Logger,
) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
		users:    populator{users: userRepo},
		images:   images{storage: storage, logger: logger},
		logger:   logger,
	}
}

func (s *postServiceImpl) populate(ctx context.Context, posts ...*models.Post) error {
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.AuthorID)
	}
	summaries, err := s.users.summaries(ctx, ids...)
	if err != nil {
		return err
	}
	for _, p := range posts {
		sum, ok := summaries[p.AuthorID]
		p.Author = authorShape(sum, ok)
	}
	return nil
}

// ListPosts returns the feed, newest first
func (s *postServiceImpl) ListPosts(ctx context.Context) ([]*models.Post, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	if err := s.populate(ctx, posts...); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPost returns one post with its author
func (s *postServiceImpl) GetPost(ctx context.Context, id string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound("Post", err)
	}
	if err := s.populate(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// CreatePost publishes a post by the caller
func (s *postServiceImpl) CreatePost(ctx context.Context, identity appAuth.Identity, req *dto.CreatePostRequest, imageURL string) (*models.Post, error) {
	post := &models.Post{
		Content:  req.Content,
		Image:    helpers.StringPtr(imageURL),
		AuthorID: identity.UserID,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		s.images.discard(ctx, post.Image)
		return nil, fmt.Errorf("error creating post: %w", err)
	}
	if err := s.populate(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// UpdatePost edits content or image; only the author may do so
func (s *postServiceImpl) UpdatePost(ctx context.Context, identity appAuth.Identity, id string, req *dto.UpdatePostRequest, imageURL string) (post *models.Post, err error) {
	defer func() {
		if err != nil {
			s.images.discard(ctx, helpers.StringPtr(imageURL))
		}
	}()

	post, err = s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound("Post", err)
	}
	if err := appAuth.ValidateOwnership(identity, post.AuthorID, appAuth.PostEditAdminOverride); err != nil {
		return nil, err
	}
	if err := requiredField(&post.Content, req.Content, "Content"); err != nil {
		return nil, err
	}

	previous := post.Image
	switch {
	case imageURL != "":
		post.Image = helpers.StringPtr(imageURL)
	case req.Image != nil:
		if post.Image, err = s.images.linked(post.Image, *req.Image); err != nil {
			return nil, err
		}
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, notFound("Post", err)
	}
	s.images.replaced(ctx, previous, post.Image)

	if err := s.populate(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post; the author or an admin may do so
func (s *postServiceImpl) DeletePost(ctx context.Context, identity appAuth.Identity, id string) error {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return notFound("Post", err)
	}
	if err := appAuth.ValidateOwnership(identity, post.AuthorID, appAuth.PostDeleteAdminOverride); err != nil {
		return err
	}
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return notFound("Post", err)
	}
	s.images.discard(ctx, post.Image)
	s.logger.Info().Str("postID", id).Str("userID", identity.UserID).Msg("Post deleted")
	return nil
}

// ToggleLike flips the caller's like and returns the resulting likes
func (s *postServiceImpl) ToggleLike(ctx context.Context, identity appAuth.Identity, id string) ([]string, error) {
	likes, err := s.postRepo.ToggleLike(ctx, id, identity.UserID)
	if err != nil {
		return nil, notFound("Post", err)
	}
	return likes, nil
}
