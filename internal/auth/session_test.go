package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackathon-registration-backend/config"
)

const testSecret = "test-session-secret"

func newTestVerifier() *JWTVerifier {
	return NewJWTVerifier(&config.SessionConfig{Secret: testSecret})
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestJWTVerifier_Verify(t *testing.T) {
	v := newTestVerifier()

	t.Run("accepts a valid session and returns the email", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"email": "alice@example.com",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})

		email, err := v.Verify(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", email)
	})

	t.Run("rejects an expired session distinctly", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"email": "alice@example.com",
			"exp":   time.Now().Add(-time.Hour).Unix(),
		})

		_, err := v.Verify(context.Background(), token)
		assert.ErrorIs(t, err, ErrSessionExpired)
	})

	t.Run("rejects a token signed with the wrong secret", func(t *testing.T) {
		token := signToken(t, "some-other-secret", jwt.MapClaims{
			"email": "alice@example.com",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})

		_, err := v.Verify(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("rejects a token without an email claim", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		_, err := v.Verify(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := v.Verify(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidSession)
	})
}

func TestJWTVerifier_IssuerCheck(t *testing.T) {
	v := NewJWTVerifier(&config.SessionConfig{Secret: testSecret, Issuer: "registrationd"})

	token := signToken(t, testSecret, jwt.MapClaims{
		"email": "alice@example.com",
		"iss":   "someone-else",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	_, err := v.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}
