package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndParseToken(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateToken(testSecret, userID, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, uuid.New(), time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("other-secret", token)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	token, err := GenerateToken(testSecret, uuid.New(), -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken(testSecret, "not-a-token")
	assert.Error(t, err)
}
