package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/RayBDev/devconnector/internal/models"
	"github.com/RayBDev/devconnector/internal/repo"
	"github.com/RayBDev/devconnector/internal/utils"
	"github.com/RayBDev/devconnector/internal/validation"
)

type PostStore interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	Delete(ctx context.Context, id string) error
	Like(ctx context.Context, postID, userID string) error
	Unlike(ctx context.Context, postID, userID string) error
	AddComment(ctx context.Context, postID string, comment *models.Comment) error
	DeleteComment(ctx context.Context, postID, commentID string) error
}

type PostService struct {
	posts PostStore
}

func NewPostService(posts PostStore) *PostService {
	return &PostService{posts: posts}
}

func (s *PostService) Create(ctx context.Context, userID, text, name, avatar string) (*models.Post, error) {
	if errs := validation.PostText(text); !errs.Valid() {
		return nil, utils.NewFieldError(http.StatusBadRequest, errs)
	}

	post := &models.Post{
		ID:     uuid.NewString(),
		UserID: userID,
		Text:   text,
		Name:   name,
		Avatar: avatar,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return posts, nil
}

func (s *PostService) GetByID(ctx context.Context, id string) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, errNoPost()
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	return post, nil
}

// Delete removes a post, owner only.
func (s *PostService) Delete(ctx context.Context, postID, userID string) error {
	post, err := s.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return utils.NewSingleFieldError(http.StatusUnauthorized, "notauthorized", "User not authorized")
	}
	if err := s.posts.Delete(ctx, postID); err != nil && !errors.Is(err, repo.ErrNotFound) {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

func (s *PostService) Like(ctx context.Context, postID, userID string) (*models.Post, error) {
	if _, err := s.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	if err := s.posts.Like(ctx, postID, userID); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, utils.NewSingleFieldError(http.StatusBadRequest, "alreadyliked", "User already liked this post")
		}
		return nil, fmt.Errorf("like post: %w", err)
	}
	return s.GetByID(ctx, postID)
}

func (s *PostService) Unlike(ctx context.Context, postID, userID string) (*models.Post, error) {
	if _, err := s.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	if err := s.posts.Unlike(ctx, postID, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, utils.NewSingleFieldError(http.StatusBadRequest, "notliked", "You have not yet liked this post")
		}
		return nil, fmt.Errorf("unlike post: %w", err)
	}
	return s.GetByID(ctx, postID)
}

func (s *PostService) AddComment(ctx context.Context, postID, userID, text, name, avatar string) (*models.Post, error) {
	if errs := validation.PostText(text); !errs.Valid() {
		return nil, utils.NewFieldError(http.StatusBadRequest, errs)
	}
	if _, err := s.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ID:     uuid.NewString(),
		UserID: userID,
		Text:   text,
		Name:   name,
		Avatar: avatar,
	}
	if err := s.posts.AddComment(ctx, postID, comment); err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}
	return s.GetByID(ctx, postID)
}

func (s *PostService) DeleteComment(ctx context.Context, postID, commentID string) (*models.Post, error) {
	if _, err := s.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	if err := s.posts.DeleteComment(ctx, postID, commentID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, utils.NewSingleFieldError(http.StatusNotFound, "commentnotexists", "Comment does not exist")
		}
		return nil, fmt.Errorf("delete comment: %w", err)
	}
	return s.GetByID(ctx, postID)
}

func errNoPost() error {
	return utils.NewSingleFieldError(http.StatusNotFound, "nopostfound", "No post found with that ID")
}
