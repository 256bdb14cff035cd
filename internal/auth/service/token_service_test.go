package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenService(t *testing.T) {
	tests := []struct {
		name           string
		accessSecret   string
		refreshSecret  string
		accessMinutes  int
		refreshMinutes int
	}{
		{
			name:           "valid parameters",
			accessSecret:   "access-secret-key",
			refreshSecret:  "refresh-secret-key",
			accessMinutes:  30,
			refreshMinutes: 10080,
		},
		{
			name:           "empty secrets",
			accessSecret:   "",
			refreshSecret:  "",
			accessMinutes:  15,
			refreshMinutes: 1440,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenService(tt.accessSecret, tt.refreshSecret, tt.accessMinutes, tt.refreshMinutes)

			assert.NotNil(t, ts)
			assert.Equal(t, tt.accessSecret, ts.AccessTokenSecret)
			assert.Equal(t, tt.refreshSecret, ts.RefreshTokenSecret)
			assert.Equal(t, time.Duration(tt.accessMinutes)*time.Minute, ts.AccessTokenExpiry)
			assert.Equal(t, time.Duration(tt.refreshMinutes)*time.Minute, ts.RefreshTokenExpiry)
		})
	}
}

func TestTokenService_Generate(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		username string
		email    string
	}{
		{
			name:     "successful token generation",
			userID:   "user-123",
			username: "alice",
			email:    "alice@example.com",
		},
		{
			name:     "empty user data",
			userID:   "",
			username: "",
			email:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenService("test-access-secret-key-123", "test-refresh-secret-key-456", 30, 10080)

			beforeGenerate := time.Now()
			accessToken, refreshToken, err := ts.Generate(tt.userID, tt.username, tt.email)

			require.NoError(t, err)
			assert.NotEmpty(t, accessToken)
			assert.NotEmpty(t, refreshToken)
			assert.NotEqual(t, accessToken, refreshToken)

			// The minted access token must round-trip through verification
			// with the exact payload it was minted from.
			claims, err := ts.VerifyAccessToken(accessToken)
			require.NoError(t, err)
			assert.Equal(t, tt.userID, claims.UserID)
			assert.Equal(t, tt.username, claims.Username)
			assert.Equal(t, tt.email, claims.Email)
			require.NotNil(t, claims.ExpiresAt)
			assert.True(t, claims.ExpiresAt.After(beforeGenerate.Add(29*time.Minute)))

			refreshClaims, err := ts.VerifyRefreshToken(refreshToken)
			require.NoError(t, err)
			assert.Equal(t, tt.userID, refreshClaims.UserID)
			assert.Equal(t, tt.username, refreshClaims.Username)
			assert.Equal(t, tt.email, refreshClaims.Email)
		})
	}
}

func TestTokenService_DistinctSecrets(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 30, 10080)

	accessToken, refreshToken, err := ts.Generate("user-123", "alice", "alice@example.com")
	require.NoError(t, err)

	t.Run("access token fails refresh verification", func(t *testing.T) {
		claims, err := ts.VerifyRefreshToken(accessToken)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("refresh token fails access verification", func(t *testing.T) {
		claims, err := ts.VerifyAccessToken(refreshToken)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})
}

func TestTokenService_Verify(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 30, 10080)

	t.Run("malformed token", func(t *testing.T) {
		claims, err := ts.VerifyAccessToken("not-a-jwt")
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("token signed with wrong secret", func(t *testing.T) {
		other := NewTokenService("other-secret", "other-refresh-secret", 30, 10080)
		accessToken, _, err := other.Generate("user-123", "alice", "alice@example.com")
		require.NoError(t, err)

		claims, err := ts.VerifyAccessToken(accessToken)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := NewTokenService("access-secret", "refresh-secret", -1, -1)
		accessToken, refreshToken, err := expired.Generate("user-123", "alice", "alice@example.com")
		require.NoError(t, err)

		_, err = ts.VerifyAccessToken(accessToken)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)

		_, err = ts.VerifyRefreshToken(refreshToken)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("rejects non-HMAC signing method", func(t *testing.T) {
		// alg=none tokens must never pass.
		token := jwt.NewWithClaims(jwt.SigningMethodNone, JWTCustomClaims{UserID: "user-123"})
		tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		claims, err := ts.VerifyAccessToken(tokenString)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})
}
