package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RayBDev/devconnector/internal/services"
	"github.com/RayBDev/devconnector/internal/testutil"
)

func TestPostCreateAndList(t *testing.T) {
	svc := services.NewPostService(testutil.NewPostStore())

	post, err := svc.Create(context.Background(), "user-1", "a perfectly fine post", "Ray Bernard", "")
	require.NoError(t, err)
	assert.NotEmpty(t, post.ID)
	assert.Empty(t, post.Likes)

	posts, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestPostCreateValidation(t *testing.T) {
	svc := services.NewPostService(testutil.NewPostStore())

	_, err := svc.Create(context.Background(), "user-1", "short", "", "")
	status, fields := fieldsOf(t, err)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Post must be between 10 and 300 characters", fields["text"])
}

func TestPostDeleteOwnerOnly(t *testing.T) {
	svc := services.NewPostService(testutil.NewPostStore())

	post, err := svc.Create(context.Background(), "user-1", "a perfectly fine post", "", "")
	require.NoError(t, err)

	err = svc.Delete(context.Background(), post.ID, "user-2")
	status, fields := fieldsOf(t, err)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "User not authorized", fields["notauthorized"])

	require.NoError(t, svc.Delete(context.Background(), post.ID, "user-1"))
}

func TestPostLikeOncePerUser(t *testing.T) {
	svc := services.NewPostService(testutil.NewPostStore())

	post, err := svc.Create(context.Background(), "user-1", "a perfectly fine post", "", "")
	require.NoError(t, err)

	liked, err := svc.Like(context.Background(), post.ID, "user-2")
	require.NoError(t, err)
	assert.Len(t, liked.Likes, 1)

	_, err = svc.Like(context.Background(), post.ID, "user-2")
	status, fields := fieldsOf(t, err)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "User already liked this post", fields["alreadyliked"])
}

func TestPostUnlikeRequiresLike(t *testing.T) {
	svc := services.NewPostService(testutil.NewPostStore())

	post, err := svc.Create(context.Background(), "user-1", "a perfectly fine post", "", "")
	require.NoError(t, err)

	_, err = svc.Unlike(context.Background(), post.ID, "user-2")
	_, fields := fieldsOf(t, err)
	assert.Equal(t, "You have not yet liked this post", fields["notliked"])

	_, err = svc.Like(context.Background(), post.ID, "user-2")
	require.NoError(t, err)
	unliked, err := svc.Unlike(context.Background(), post.ID, "user-2")
	require.NoError(t, err)
	assert.Empty(t, unliked.Likes)
}

func TestPostComments(t *testing.T) {
	svc := services.NewPostService(testutil.NewPostStore())

	post, err := svc.Create(context.Background(), "user-1", "a perfectly fine post", "", "")
	require.NoError(t, err)

	commented, err := svc.AddComment(context.Background(), post.ID, "user-2", "what a great post", "Brad", "")
	require.NoError(t, err)
	require.Len(t, commented.Comments, 1)

	_, err = svc.DeleteComment(context.Background(), post.ID, "no-such-comment")
	status, fields := fieldsOf(t, err)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Comment does not exist", fields["commentnotexists"])

	cleaned, err := svc.DeleteComment(context.Background(), post.ID, commented.Comments[0].ID)
	require.NoError(t, err)
	assert.Empty(t, cleaned.Comments)
}

func TestPostGetMissing(t *testing.T) {
	svc := services.NewPostService(testutil.NewPostStore())

	_, err := svc.GetByID(context.Background(), "missing")
	status, fields := fieldsOf(t, err)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "No post found with that ID", fields["nopostfound"])
}
