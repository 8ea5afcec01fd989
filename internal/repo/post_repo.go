package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RayBDev/devconnector/internal/models"
)

type PostRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewPostRepo(pool *pgxpool.Pool, timeout time.Duration) *PostRepo {
	return &PostRepo{pool: pool, timeout: timeout}
}

func (r *PostRepo) Create(ctx context.Context, post *models.Post) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		INSERT INTO posts (id, user_id, text, name, avatar)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, post.ID, post.UserID, post.Text, post.Name, post.Avatar)

	if err := row.Scan(&post.CreatedAt); err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	post.Likes = []models.Like{}
	post.Comments = []models.Comment{}
	return nil
}

func (r *PostRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, text, name, avatar, created_at
		FROM posts
		WHERE id = $1
	`, id)

	var post models.Post
	if err := row.Scan(&post.ID, &post.UserID, &post.Text, &post.Name, &post.Avatar, &post.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}

	if err := r.attachReactions(ctx, []*models.Post{&post}); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostRepo) List(ctx context.Context) ([]models.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, text, name, avatar, created_at
		FROM posts
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.ID, &post.UserID, &post.Text, &post.Name, &post.Avatar, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	refs := make([]*models.Post, len(posts))
	for i := range posts {
		refs[i] = &posts[i]
	}
	if err := r.attachReactions(ctx, refs); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Like records one like per user per post. ErrDuplicate means the user
// already liked it.
func (r *PostRepo) Like(ctx context.Context, postID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `
		INSERT INTO post_likes (post_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, postID, userID)
	if err != nil {
		return fmt.Errorf("like post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDuplicate
	}
	return nil
}

// Unlike removes the user's like. ErrNotFound means there was none.
func (r *PostRepo) Unlike(ctx context.Context, postID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `
		DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2
	`, postID, userID)
	if err != nil {
		return fmt.Errorf("unlike post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostRepo) AddComment(ctx context.Context, postID string, comment *models.Comment) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		INSERT INTO post_comments (id, post_id, user_id, text, name, avatar)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`, comment.ID, postID, comment.UserID, comment.Text, comment.Name, comment.Avatar)

	if err := row.Scan(&comment.CreatedAt); err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

func (r *PostRepo) DeleteComment(ctx context.Context, postID, commentID string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `
		DELETE FROM post_comments WHERE id = $1 AND post_id = $2
	`, commentID, postID)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// attachReactions fills likes and comments for the given posts with one
// query per table.
func (r *PostRepo) attachReactions(ctx context.Context, posts []*models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]string, len(posts))
	byID := make(map[string]*models.Post, len(posts))
	for i, post := range posts {
		ids[i] = post.ID
		byID[post.ID] = post
		post.Likes = []models.Like{}
		post.Comments = []models.Comment{}
	}

	likeRows, err := r.pool.Query(ctx, `
		SELECT post_id, user_id FROM post_likes WHERE post_id = ANY($1)
	`, ids)
	if err != nil {
		return fmt.Errorf("load likes: %w", err)
	}
	defer likeRows.Close()
	for likeRows.Next() {
		var postID, userID string
		if err := likeRows.Scan(&postID, &userID); err != nil {
			return fmt.Errorf("scan like: %w", err)
		}
		post := byID[postID]
		post.Likes = append(post.Likes, models.Like{UserID: userID})
	}
	if err := likeRows.Err(); err != nil {
		return fmt.Errorf("load likes: %w", err)
	}

	commentRows, err := r.pool.Query(ctx, `
		SELECT id, post_id, user_id, text, name, avatar, created_at
		FROM post_comments
		WHERE post_id = ANY($1)
		ORDER BY created_at DESC
	`, ids)
	if err != nil {
		return fmt.Errorf("load comments: %w", err)
	}
	defer commentRows.Close()
	for commentRows.Next() {
		var postID string
		var comment models.Comment
		if err := commentRows.Scan(&comment.ID, &postID, &comment.UserID, &comment.Text, &comment.Name, &comment.Avatar, &comment.CreatedAt); err != nil {
			return fmt.Errorf("scan comment: %w", err)
		}
		post := byID[postID]
		post.Comments = append(post.Comments, comment)
	}
	if err := commentRows.Err(); err != nil {
		return fmt.Errorf("load comments: %w", err)
	}

	return nil
}
