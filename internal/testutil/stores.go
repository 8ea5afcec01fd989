// Package testutil provides in-memory store and mailer fakes for
// service and handler tests.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/RayBDev/devconnector/internal/models"
	"github.com/RayBDev/devconnector/internal/repo"
)

type UserStore struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]*models.User)}
}

func (s *UserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return repo.ErrDuplicate
		}
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	s.users[user.ID] = &clone
	return nil
}

func (s *UserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (s *UserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (s *UserStore) UpdatePassword(_ context.Context, userID, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return repo.ErrNotFound
	}
	user.PasswordHash = passwordHash
	user.UpdatedAt = time.Now()
	return nil
}

// PasswordHash exposes the stored digest so tests can check what was
// persisted.
func (s *UserStore) PasswordHash(userID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user, ok := s.users[userID]; ok {
		return user.PasswordHash
	}
	return ""
}

type RecordingMailer struct {
	mu    sync.Mutex
	sends []ResetMail
	Fail  error
}

type ResetMail struct {
	Name     string
	Email    string
	ResetURL string
}

func NewRecordingMailer() *RecordingMailer {
	return &RecordingMailer{}
}

func (m *RecordingMailer) SendPasswordReset(_ context.Context, toName, toEmail, resetURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return m.Fail
	}
	m.sends = append(m.sends, ResetMail{Name: toName, Email: toEmail, ResetURL: resetURL})
	return nil
}

func (m *RecordingMailer) Sends() []ResetMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ResetMail, len(m.sends))
	copy(out, m.sends)
	return out
}

type ProfileStore struct {
	mu       sync.Mutex
	profiles map[string]*models.Profile
}

func NewProfileStore() *ProfileStore {
	return &ProfileStore{profiles: make(map[string]*models.Profile)}
}

func (s *ProfileStore) Upsert(_ context.Context, profile *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for userID, existing := range s.profiles {
		if existing.Handle == profile.Handle && userID != profile.UserID {
			return repo.ErrDuplicate
		}
	}
	if existing, ok := s.profiles[profile.UserID]; ok {
		profile.ID = existing.ID
		profile.Experience = existing.Experience
		profile.Education = existing.Education
		profile.CreatedAt = existing.CreatedAt
	} else {
		profile.CreatedAt = time.Now()
		profile.Experience = []models.Experience{}
		profile.Education = []models.Education{}
	}
	profile.UpdatedAt = time.Now()
	clone := *profile
	s.profiles[profile.UserID] = &clone
	return nil
}

func (s *ProfileStore) GetByUserID(_ context.Context, userID string) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.profiles[userID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	clone := *profile
	return &clone, nil
}

func (s *ProfileStore) GetByHandle(_ context.Context, handle string) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, profile := range s.profiles {
		if profile.Handle == handle {
			clone := *profile
			return &clone, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (s *ProfileStore) List(_ context.Context) ([]models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Profile
	for _, profile := range s.profiles {
		out = append(out, *profile)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *ProfileStore) AddExperience(_ context.Context, userID string, exp models.Experience) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.profiles[userID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	profile.Experience = append([]models.Experience{exp}, profile.Experience...)
	clone := *profile
	return &clone, nil
}

func (s *ProfileStore) AddEducation(_ context.Context, userID string, edu models.Education) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.profiles[userID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	profile.Education = append([]models.Education{edu}, profile.Education...)
	clone := *profile
	return &clone, nil
}

type PostStore struct {
	mu    sync.Mutex
	posts map[string]*models.Post
}

func NewPostStore() *PostStore {
	return &PostStore{posts: make(map[string]*models.Post)}
}

func (s *PostStore) Create(_ context.Context, post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	post.CreatedAt = time.Now()
	post.Likes = []models.Like{}
	post.Comments = []models.Comment{}
	clone := clonePost(post)
	s.posts[post.ID] = clone
	return nil
}

func (s *PostStore) GetByID(_ context.Context, id string) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	post, ok := s.posts[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return clonePost(post), nil
}

func (s *PostStore) List(_ context.Context) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Post
	for _, post := range s.posts {
		out = append(out, *clonePost(post))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *PostStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[id]; !ok {
		return repo.ErrNotFound
	}
	delete(s.posts, id)
	return nil
}

func (s *PostStore) Like(_ context.Context, postID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	post, ok := s.posts[postID]
	if !ok {
		return repo.ErrNotFound
	}
	for _, like := range post.Likes {
		if like.UserID == userID {
			return repo.ErrDuplicate
		}
	}
	post.Likes = append(post.Likes, models.Like{UserID: userID})
	return nil
}

func (s *PostStore) Unlike(_ context.Context, postID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	post, ok := s.posts[postID]
	if !ok {
		return repo.ErrNotFound
	}
	for i, like := range post.Likes {
		if like.UserID == userID {
			post.Likes = append(post.Likes[:i], post.Likes[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

func (s *PostStore) AddComment(_ context.Context, postID string, comment *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	post, ok := s.posts[postID]
	if !ok {
		return repo.ErrNotFound
	}
	comment.CreatedAt = time.Now()
	post.Comments = append([]models.Comment{*comment}, post.Comments...)
	return nil
}

func (s *PostStore) DeleteComment(_ context.Context, postID, commentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	post, ok := s.posts[postID]
	if !ok {
		return repo.ErrNotFound
	}
	for i, comment := range post.Comments {
		if comment.ID == commentID {
			post.Comments = append(post.Comments[:i], post.Comments[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

func clonePost(post *models.Post) *models.Post {
	clone := *post
	clone.Likes = append([]models.Like{}, post.Likes...)
	clone.Comments = append([]models.Comment{}, post.Comments...)
	return &clone
}
