package services_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RayBDev/devconnector/internal/models"
	"github.com/RayBDev/devconnector/internal/services"
	"github.com/RayBDev/devconnector/internal/testutil"
)

func validProfile() *models.Profile {
	return &models.Profile{
		Handle: "raybernard",
		Status: "Developer",
		Skills: []string{"Go", "PostgreSQL"},
	}
}

func TestProfileGetCurrentMissing(t *testing.T) {
	svc := services.NewProfileService(testutil.NewProfileStore())

	_, err := svc.GetCurrent(context.Background(), "user-1")
	status, fields := fieldsOf(t, err)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "There is no profile for this user", fields["noprofile"])
}

func TestProfileUpsertAndFetch(t *testing.T) {
	svc := services.NewProfileService(testutil.NewProfileStore())

	created, err := svc.Upsert(context.Background(), "user-1", validProfile())
	require.NoError(t, err)
	assert.Equal(t, "raybernard", created.Handle)
	assert.Equal(t, "user-1", created.UserID)

	fetched, err := svc.GetByHandle(context.Background(), "raybernard")
	require.NoError(t, err)
	assert.Equal(t, created.UserID, fetched.UserID)
}

func TestProfileUpsertValidation(t *testing.T) {
	svc := services.NewProfileService(testutil.NewProfileStore())

	_, err := svc.Upsert(context.Background(), "user-1", &models.Profile{})
	status, fields := fieldsOf(t, err)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Profile handle is required", fields["handle"])
	assert.Equal(t, "Status field is required", fields["status"])
	assert.Equal(t, "Skills field is required", fields["skills"])
}

func TestProfileHandleTaken(t *testing.T) {
	svc := services.NewProfileService(testutil.NewProfileStore())

	_, err := svc.Upsert(context.Background(), "user-1", validProfile())
	require.NoError(t, err)

	_, err = svc.Upsert(context.Background(), "user-2", validProfile())
	_, fields := fieldsOf(t, err)
	assert.Equal(t, "That handle already exists", fields["handle"])
}

func TestProfileListEmpty(t *testing.T) {
	svc := services.NewProfileService(testutil.NewProfileStore())

	_, err := svc.List(context.Background())
	status, fields := fieldsOf(t, err)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "There are no profiles", fields["noprofile"])
}

func TestProfileAddExperience(t *testing.T) {
	svc := services.NewProfileService(testutil.NewProfileStore())

	_, err := svc.Upsert(context.Background(), "user-1", validProfile())
	require.NoError(t, err)

	profile, err := svc.AddExperience(context.Background(), "user-1", models.Experience{
		Title:   "Backend Developer",
		Company: "Example Corp",
		From:    time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, profile.Experience, 1)
	assert.NotEmpty(t, profile.Experience[0].ID)
}

func TestProfileAddExperienceValidation(t *testing.T) {
	svc := services.NewProfileService(testutil.NewProfileStore())

	_, err := svc.AddExperience(context.Background(), "user-1", models.Experience{})
	_, fields := fieldsOf(t, err)
	assert.Equal(t, "Job title field is required", fields["title"])
	assert.Equal(t, "Company field is required", fields["company"])
	assert.Equal(t, "From date field is required", fields["from"])
}

func TestProfileAddEducationNoProfile(t *testing.T) {
	svc := services.NewProfileService(testutil.NewProfileStore())

	_, err := svc.AddEducation(context.Background(), "user-1", models.Education{
		School:       "Example University",
		Degree:       "BSc",
		FieldOfStudy: "Computer Science",
		From:         time.Date(2015, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	status, fields := fieldsOf(t, err)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "There is no profile for this user", fields["noprofile"])
}
