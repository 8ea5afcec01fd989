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

type ProfileStore interface {
	Upsert(ctx context.Context, profile *models.Profile) error
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)
	GetByHandle(ctx context.Context, handle string) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	AddExperience(ctx context.Context, userID string, exp models.Experience) (*models.Profile, error)
	AddEducation(ctx context.Context, userID string, edu models.Education) (*models.Profile, error)
}

type ProfileService struct {
	profiles ProfileStore
}

func NewProfileService(profiles ProfileStore) *ProfileService {
	return &ProfileService{profiles: profiles}
}

func (s *ProfileService) GetCurrent(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, errNoProfile()
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

func (s *ProfileService) GetByHandle(ctx context.Context, handle string) (*models.Profile, error) {
	profile, err := s.profiles.GetByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, errNoProfile()
		}
		return nil, fmt.Errorf("get profile by handle: %w", err)
	}
	return profile, nil
}

func (s *ProfileService) List(ctx context.Context) ([]models.Profile, error) {
	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	if len(profiles) == 0 {
		return nil, utils.NewSingleFieldError(http.StatusNotFound, "noprofile", "There are no profiles")
	}
	return profiles, nil
}

func (s *ProfileService) Upsert(ctx context.Context, userID string, profile *models.Profile) (*models.Profile, error) {
	if errs := validation.Profile(profile.Handle, profile.Status, profile.Skills); !errs.Valid() {
		return nil, utils.NewFieldError(http.StatusBadRequest, errs)
	}

	profile.ID = uuid.NewString()
	profile.UserID = userID
	if err := s.profiles.Upsert(ctx, profile); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, utils.NewSingleFieldError(http.StatusBadRequest, "handle", "That handle already exists")
		}
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	return s.GetCurrent(ctx, userID)
}

func (s *ProfileService) AddExperience(ctx context.Context, userID string, exp models.Experience) (*models.Profile, error) {
	if errs := validation.Experience(exp.Title, exp.Company, !exp.From.IsZero()); !errs.Valid() {
		return nil, utils.NewFieldError(http.StatusBadRequest, errs)
	}

	exp.ID = uuid.NewString()
	profile, err := s.profiles.AddExperience(ctx, userID, exp)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, errNoProfile()
		}
		return nil, fmt.Errorf("add experience: %w", err)
	}
	return profile, nil
}

func (s *ProfileService) AddEducation(ctx context.Context, userID string, edu models.Education) (*models.Profile, error) {
	if errs := validation.Education(edu.School, edu.Degree, edu.FieldOfStudy, !edu.From.IsZero()); !errs.Valid() {
		return nil, utils.NewFieldError(http.StatusBadRequest, errs)
	}

	edu.ID = uuid.NewString()
	profile, err := s.profiles.AddEducation(ctx, userID, edu)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, errNoProfile()
		}
		return nil, fmt.Errorf("add education: %w", err)
	}
	return profile, nil
}

func errNoProfile() error {
	return utils.NewSingleFieldError(http.StatusNotFound, "noprofile", "There is no profile for this user")
}
