package memory

import (
	"context"

	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

// PostRepository stores feed posts in memory
type PostRepository struct {
	posts *table[*models.Post]
}

func NewPostRepository() *PostRepository {
	return &PostRepository{posts: newTable(clonePost)}
}

func clonePost(p *models.Post) *models.Post {
	c := *p
	c.Image = cloneStringPtr(p.Image)
	c.Likes = cloneStrings(p.Likes)
	if c.Likes == nil {
		c.Likes = []string{}
	}
	c.Author = nil
	return &c
}

func (r *PostRepository) List(_ context.Context) ([]*models.Post, error) {
	return r.posts.list(nil), nil
}

func (r *PostRepository) GetByID(_ context.Context, id string) (*models.Post, error) {
	p, ok := r.posts.get(id)
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return p, nil
}

func (r *PostRepository) Create(_ context.Context, post *models.Post) error {
	post.ID = newID()
	post.CreatedAt = now()
	post.UpdatedAt = post.CreatedAt
	post.Likes = []string{}
	r.posts.insert(post.ID, post)
	return nil
}

func (r *PostRepository) Update(_ context.Context, post *models.Post) error {
	post.UpdatedAt = now()
	_, ok := r.posts.modify(post.ID, func(existing *models.Post) *models.Post {
		existing.Content = post.Content
		existing.Image = cloneStringPtr(post.Image)
		existing.UpdatedAt = post.UpdatedAt
		return existing
	})
	if !ok {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

func (r *PostRepository) Delete(_ context.Context, id string) error {
	if !r.posts.remove(id) {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

func (r *PostRepository) ToggleLike(_ context.Context, postID, userID string) ([]string, error) {
	p, ok := r.posts.modify(postID, func(existing *models.Post) *models.Post {
		likes := make([]string, 0, len(existing.Likes)+1)
		removed := false
		for _, id := range existing.Likes {
			if id == userID {
				removed = true
				continue
			}
			likes = append(likes, id)
		}
		if !removed {
			likes = append(likes, userID)
		}
		existing.Likes = likes
		return existing
	})
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return p.Likes, nil
}
