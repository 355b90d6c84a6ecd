package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionKeysDeterministic(t *testing.T) {
	a1, e1, err := SessionKeys("secret")
	require.NoError(t, err)
	a2, e2, err := SessionKeys("secret")
	require.NoError(t, err)

	assert.Len(t, a1, 32)
	assert.Len(t, e1, 32)
	assert.Equal(t, a1, a2)
	assert.Equal(t, e1, e2)
	assert.NotEqual(t, a1, e1)

	a3, _, err := SessionKeys("other")
	require.NoError(t, err)
	assert.NotEqual(t, a1, a3)
}

func TestSessionKeysRandomWhenEmpty(t *testing.T) {
	a1, _, err := SessionKeys("")
	require.NoError(t, err)
	a2, _, err := SessionKeys("")
	require.NoError(t, err)
	assert.NotEqual(t, a1, a2)
}
