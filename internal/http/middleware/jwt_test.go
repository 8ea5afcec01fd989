package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RayBDev/devconnector/internal/auth"
	"github.com/RayBDev/devconnector/internal/http/middleware"
)

func newProtectedEngine(issuer *auth.TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/protected", middleware.JWTAuth(issuer), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	return engine
}

func get(engine *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthValidToken(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour, 10*time.Minute)
	engine := newProtectedEngine(issuer)

	token, err := issuer.IssueSession("user-123", "Ray", "")
	require.NoError(t, err)

	rec := get(engine, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user-123")
}

func TestJWTAuthRejectionsLookAlike(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour, 10*time.Minute)
	engine := newProtectedEngine(issuer)

	expiredIssuer := auth.NewTokenIssuer("test-secret", -time.Second, -time.Second)
	expired, err := expiredIssuer.IssueSession("user-123", "", "")
	require.NoError(t, err)

	forgedIssuer := auth.NewTokenIssuer("other-secret", time.Hour, 10*time.Minute)
	forged, err := forgedIssuer.IssueSession("user-123", "", "")
	require.NoError(t, err)

	expiredRec := get(engine, "Bearer "+expired)
	forgedRec := get(engine, "Bearer "+forged)
	malformedRec := get(engine, "Bearer not.a.jwt")

	// The reason for rejection must not leak through the response.
	assert.Equal(t, http.StatusUnauthorized, expiredRec.Code)
	assert.Equal(t, http.StatusUnauthorized, forgedRec.Code)
	assert.Equal(t, http.StatusUnauthorized, malformedRec.Code)
	assert.Equal(t, expiredRec.Body.String(), forgedRec.Body.String())
	assert.Equal(t, expiredRec.Body.String(), malformedRec.Body.String())
}

func TestJWTAuthMissingHeader(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour, 10*time.Minute)
	engine := newProtectedEngine(issuer)

	rec := get(engine, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	limiter := middleware.NewRateLimiter(2)
	engine.GET("/limited", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/limited", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}
