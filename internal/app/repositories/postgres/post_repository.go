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

// likesColumn aggregates post_likes in like order
const likesColumn = `COALESCE((SELECT array_agg(l.user_id::text ORDER BY l.created_at, l.user_id)
	FROM post_likes l WHERE l.post_id = p.id), '{}') AS likes`

var postColumns = []string{
	"p.id::text", "p.content", "p.image", "p.author_id::text", likesColumn, "p.created_at", "p.updated_at",
}

// PostRepository handles database operations for feed posts and their likes
type PostRepository struct {
	db *pgxpool.Pool
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{db: db}
}

func scanPost(row pgx.Row) (*models.Post, error) {
	var p models.Post
	if err := row.Scan(&p.ID, &p.Content, &p.Image, &p.AuthorID, &p.Likes, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if p.Likes == nil {
		p.Likes = []string{}
	}
	return &p, nil
}

// List retrieves all posts, newest first
func (r *PostRepository) List(ctx context.Context) ([]*models.Post, error) {
	sql, args, err := psql.Select(postColumns...).From("posts p").OrderBy("p.created_at DESC", "p.id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	posts := make([]*models.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// GetByID retrieves a post with its likes
func (r *PostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	if !validID(id) {
		return nil, apperrors.ErrResourceNotFound
	}

	sql, args, err := psql.Select(postColumns...).From("posts p").Where(squirrel.Eq{"p.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	post, err := scanPost(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapNoRows(err)
	}
	return post, nil
}

// Create creates a new post with no likes
func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	sql, args, err := psql.Insert("posts").
		Columns("content", "image", "author_id").
		Values(post.Content, post.Image, post.AuthorID).
		Suffix("RETURNING id::text, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt); err != nil {
		return fmt.Errorf("error creating post: %w", err)
	}
	post.Likes = []string{}
	return nil
}

// Update overwrites content and image of a post
func (r *PostRepository) Update(ctx context.Context, post *models.Post) error {
	if !validID(post.ID) {
		return apperrors.ErrResourceNotFound
	}

	err := r.db.QueryRow(ctx,
		`UPDATE posts SET content = $1, image = $2, updated_at = NOW() WHERE id = $3 RETURNING updated_at`,
		post.Content, post.Image, post.ID,
	).Scan(&post.UpdatedAt)
	if err != nil {
		return mapNoRows(err)
	}
	return nil
}

// Delete removes a post; its likes go with it
func (r *PostRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return apperrors.ErrResourceNotFound
	}

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting post: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

// ToggleLike flips userID's like on the post inside one transaction.
// The post row is locked so concurrent toggles on the same post serialize.
func (r *PostRepository) ToggleLike(ctx context.Context, postID, userID string) ([]string, error) {
	if !validID(postID) || !validID(userID) {
		return nil, apperrors.ErrResourceNotFound
	}

	var likes []string
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var locked string
		if err := tx.QueryRow(ctx, `SELECT id::text FROM posts WHERE id = $1 FOR UPDATE`, postID).Scan(&locked); err != nil {
			return mapNoRows(err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`, postID, userID)
		if err != nil {
			return fmt.Errorf("error removing like: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			if _, err := tx.Exec(ctx,
				`INSERT INTO post_likes (post_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
				postID, userID); err != nil {
				return fmt.Errorf("error adding like: %w", err)
			}
		}

		return tx.QueryRow(ctx,
			`SELECT COALESCE(array_agg(user_id::text ORDER BY created_at, user_id), '{}') FROM post_likes WHERE post_id = $1`,
			postID).Scan(&likes)
	})
	if err != nil {
		return nil, err
	}
	if likes == nil {
		likes = []string{}
	}
	return likes, nil
}
