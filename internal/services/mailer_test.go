package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderConfirmation(t *testing.T) {
	body, err := renderConfirmation("Sara", "https://booking.example.com", "code-123")
	require.NoError(t, err)

	assert.Contains(t, body, "Hello Sara")
	assert.Contains(t, body, `href="https://booking.example.com/confirm/code-123"`)
}

func TestRenderConfirmationEscapesName(t *testing.T) {
	body, err := renderConfirmation("<script>", "https://booking.example.com", "code")
	require.NoError(t, err)

	assert.NotContains(t, body, "<script>")
}

func TestRenderPasswordReset(t *testing.T) {
	body, err := renderPasswordReset("https://booking.example.com", "token-456")
	require.NoError(t, err)

	assert.Contains(t, body, `href="https://booking.example.com/verifyToken/token-456"`)
}
