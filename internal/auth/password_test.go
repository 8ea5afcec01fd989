package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordNeverStoresPlaintext(t *testing.T) {
	hash, err := HashPassword("123mnb!")
	require.NoError(t, err)

	assert.NotEqual(t, "123mnb!", hash)
	assert.True(t, VerifyPassword("123mnb!", hash))
}

func TestHashPasswordFreshSalt(t *testing.T) {
	first, err := HashPassword("123mnb!")
	require.NoError(t, err)
	second, err := HashPassword("123mnb!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyPasswordWrongPassword(t *testing.T) {
	hash, err := HashPassword("123mnb!")
	require.NoError(t, err)

	assert.False(t, VerifyPassword("123mnb?", hash))
}

func TestVerifyPasswordGarbageDigest(t *testing.T) {
	assert.False(t, VerifyPassword("123mnb!", "not-a-bcrypt-digest"))
}
