package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenServiceRoundTrip(t *testing.T) {
	s := NewTokenService("test-secret")

	token, err := s.Issue("64b0c8f2a1d2e3f4a5b6c7d8", "client@example.com", "client")
	require.NoError(t, err)

	claims, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "64b0c8f2a1d2e3f4a5b6c7d8", claims.ID)
	assert.Equal(t, "client@example.com", claims.Email)
	assert.Equal(t, "client", claims.Role)
}

func TestTokenServiceRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a").Issue("id", "a@b.c", "doctor")
	require.NoError(t, err)

	_, err = NewTokenService("secret-b").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenServiceRejectsGarbage(t *testing.T) {
	s := NewTokenService("test-secret")

	_, err := s.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenServiceRejectsExpired(t *testing.T) {
	secret := []byte("test-secret")
	claims := &Claims{
		ID:   "id",
		Role: "client",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)

	_, err = NewTokenService("test-secret").Verify(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenServiceRejectsNonHMAC(t *testing.T) {
	// alg=none style tokens must never verify.
	claims := jwt.MapClaims{"id": "x", "role": "admin"}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenService("test-secret").Verify(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
