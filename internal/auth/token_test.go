package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueSessionAndValidate(t *testing.T) {
	issuer := NewTokenIssuer("super-secret", time.Hour, 10*time.Minute)

	token, err := issuer.IssueSession("user-123", "Ray Bernard", "https://gravatar.example/abc")
	require.NoError(t, err)

	claims, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "Ray Bernard", claims.Name)
	assert.Equal(t, "https://gravatar.example/abc", claims.Avatar)
}

func TestIssueResetCarriesOnlyID(t *testing.T) {
	issuer := NewTokenIssuer("super-secret", time.Hour, 10*time.Minute)

	token, err := issuer.IssueReset("user-123")
	require.NoError(t, err)

	claims, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Empty(t, claims.Name)
	assert.Empty(t, claims.Avatar)
}

func TestValidateExpired(t *testing.T) {
	issuer := NewTokenIssuer("super-secret", -time.Second, -time.Second)

	token, err := issuer.IssueSession("user-123", "", "")
	require.NoError(t, err)

	_, err = issuer.Validate(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("right-secret", time.Hour, 10*time.Minute)
	other := NewTokenIssuer("wrong-secret", time.Hour, 10*time.Minute)

	token, err := issuer.IssueSession("user-123", "", "")
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateMalformed(t *testing.T) {
	issuer := NewTokenIssuer("super-secret", time.Hour, 10*time.Minute)

	_, err := issuer.Validate("not.a.jwt")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestStripBearer(t *testing.T) {
	assert.Equal(t, "abc.def.ghi", StripBearer("Bearer abc.def.ghi"))
	assert.Equal(t, "abc.def.ghi", StripBearer("abc.def.ghi"))
}
