package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasherRoundTrip(t *testing.T) {
	h := NewPasswordHasher("server-pepper", bcrypt.MinCost)

	hash, err := h.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, h.Verify("s3cret-pass", hash))
	assert.False(t, h.Verify("wrong-pass", hash))
}

func TestPasswordHasherPepperMatters(t *testing.T) {
	h1 := NewPasswordHasher("pepper-one", bcrypt.MinCost)
	h2 := NewPasswordHasher("pepper-two", bcrypt.MinCost)

	hash, err := h1.Hash("same-password")
	require.NoError(t, err)

	// A hasher with a different pepper must not accept the same plaintext.
	assert.False(t, h2.Verify("same-password", hash))
	assert.True(t, h1.Verify("same-password", hash))
}

func TestPasswordHasherClampsInvalidCost(t *testing.T) {
	h := NewPasswordHasher("pepper", 99)

	hash, err := h.Hash("password")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
