package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	m, err := NewJWTManager("secret", "HS256", time.Hour)
	require.NoError(t, err)

	token, exp, err := m.GenerateAccessToken(42)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	userID, err := m.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestJWTExpiredTokenRejected(t *testing.T) {
	m, err := NewJWTManager("secret", "HS256", -time.Minute)
	require.NoError(t, err)

	token, _, err := m.GenerateAccessToken(42)
	require.NoError(t, err)

	_, err = m.ParseAccessToken(token)
	assert.Error(t, err)
}

func TestJWTWrongSecretRejected(t *testing.T) {
	m1, err := NewJWTManager("secret-one", "HS256", time.Hour)
	require.NoError(t, err)
	m2, err := NewJWTManager("secret-two", "HS256", time.Hour)
	require.NoError(t, err)

	token, _, err := m1.GenerateAccessToken(42)
	require.NoError(t, err)

	_, err = m2.ParseAccessToken(token)
	assert.Error(t, err)
}

func TestJWTMalformedTokenRejected(t *testing.T) {
	m, err := NewJWTManager("secret", "HS256", time.Hour)
	require.NoError(t, err)

	_, err = m.ParseAccessToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTAlgorithmValidation(t *testing.T) {
	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		_, err := NewJWTManager("secret", alg, time.Hour)
		assert.NoError(t, err, alg)
	}
	for _, alg := range []string{"RS256", "none", "bogus"} {
		_, err := NewJWTManager("secret", alg, time.Hour)
		assert.Error(t, err, alg)
	}
}
