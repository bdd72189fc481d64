package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateJWT(99281932, secret)
	require.NoError(t, err)

	userID, err := ParseJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, int64(99281932), userID)
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(1, []byte("secret-a"))
	require.NoError(t, err)

	_, err = ParseJWT(token, []byte("secret-b"))
	assert.Error(t, err)
}

func TestParseJWTGarbage(t *testing.T) {
	_, err := ParseJWT("not.a.token", []byte("secret"))
	assert.Error(t, err)
}
