package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	service := NewJWTService()
	userID := uuid.New().String()

	token := service.GenerateToken(userID)
	require.NotEmpty(t, token)

	got, err := service.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestGetUserIDByTokenRejectsGarbage(t *testing.T) {
	service := NewJWTService()

	_, err := service.GetUserIDByToken("not.a.token")
	assert.Error(t, err)
}
