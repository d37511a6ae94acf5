package utils_test

import (
	"strings"
	"testing"
	"time"

	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret-key"
	testIssuer = "likebike-backend"
)

func TestGenerateAndParseToken(t *testing.T) {
	for _, kind := range []string{utils.TokenKindAccess, utils.TokenKindRefresh} {
		t.Run(kind, func(t *testing.T) {
			tokenString, err := utils.GenerateToken(42, kind, testSecret, 15*time.Minute, testIssuer)
			require.NoError(t, err)
			require.NotEmpty(t, tokenString)

			claims, err := utils.ParseToken(tokenString, testSecret)
			require.NoError(t, err)

			userID, err := claims.UserID()
			require.NoError(t, err)
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, kind, claims.TokenType)
			assert.Equal(t, testIssuer, claims.Issuer)
			assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
		})
	}
}

func TestParseTokenExpired(t *testing.T) {
	tokenString, err := utils.GenerateToken(7, utils.TokenKindAccess, testSecret, -time.Minute, testIssuer)
	require.NoError(t, err)

	_, err = utils.ParseToken(tokenString, testSecret)
	assert.Error(t, err)
}

func TestParseTokenWrongSecret(t *testing.T) {
	tokenString, err := utils.GenerateToken(7, utils.TokenKindAccess, testSecret, time.Minute, testIssuer)
	require.NoError(t, err)

	_, err = utils.ParseToken(tokenString, "a-different-secret")
	assert.Error(t, err)
}

func TestParseTokenTampered(t *testing.T) {
	tokenString, err := utils.GenerateToken(7, utils.TokenKindAccess, testSecret, time.Minute, testIssuer)
	require.NoError(t, err)

	// Flip a character in the payload segment.
	parts := strings.Split(tokenString, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	parts[1] = string(payload)

	_, err = utils.ParseToken(strings.Join(parts, "."), testSecret)
	assert.Error(t, err)
}

func TestHashRefreshToken(t *testing.T) {
	hash := utils.HashRefreshToken("some-refresh-token")
	assert.Len(t, hash, 64)
	assert.True(t, utils.CompareRefreshTokenHash("some-refresh-token", hash))
	assert.False(t, utils.CompareRefreshTokenHash("another-token", hash))
}
