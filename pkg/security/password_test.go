package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoPasswordRoundTrip(t *testing.T) {
	hash, err := HashDemoPassword("password123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "password123", hash)

	assert.NoError(t, CompareDemoPassword(hash, "password123"))
	assert.Error(t, CompareDemoPassword(hash, "password124"))
	assert.Error(t, CompareDemoPassword(hash, ""))
}
