package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	tok, exp, err := m.GenerateAccessToken(7, "sid-1")
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	claims, err := m.ParseAccessToken(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "sid-1", claims.SessionID)
}

func TestJWTRejectsForeignSecretAndExpiry(t *testing.T) {
	tok, _, err := NewJWTManager("other", time.Hour).GenerateAccessToken(7, "s")
	require.NoError(t, err)
	_, err = NewJWTManager("secret", time.Hour).ParseAccessToken(tok)
	assert.Error(t, err)

	expired, _, err := NewJWTManager("secret", -time.Minute).GenerateAccessToken(7, "s")
	require.NoError(t, err)
	_, err = NewJWTManager("secret", time.Hour).ParseAccessToken(expired)
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("securepassword123")
	require.NoError(t, err)
	assert.NotEqual(t, "securepassword123", hash)
	assert.True(t, CompareHashAndPassword(hash, "securepassword123"))
	assert.False(t, CompareHashAndPassword(hash, "nope"))
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "https://storage.googleapis.com/b/profile-pics/1/x.png", PublicURL("b", "profile-pics/1/x.png"))
}

func TestPasswordTooLong(t *testing.T) {
	long := make([]byte, 73)
	for i := range long {
		long[i] = 'a'
	}
	_, err := HashPassword(string(long))
	assert.Error(t, err)
}
