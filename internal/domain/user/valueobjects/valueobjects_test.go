package valueobjects

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	e, err := NewEmail("  Agent@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "agent@example.com", e.String())

	for _, bad := range []string{"", "no-at-sign", "a@b", strings.Repeat("a", 250) + "@x.com"} {
		_, err := NewEmail(bad)
		assert.Error(t, err, bad)
	}
}

func TestNewPassword(t *testing.T) {
	_, err := NewPassword("secret12")
	assert.NoError(t, err)

	for _, bad := range []string{"short1", "lettersonly", "12345678", strings.Repeat("a1", 40)} {
		_, err := NewPassword(bad)
		assert.Error(t, err, bad)
	}
}

func TestToken(t *testing.T) {
	tok, err := GenerateToken()
	require.NoError(t, err)
	assert.Len(t, tok.Value(), 64)
	assert.True(t, MatchesHash(tok.Value(), tok.Hash()))
	assert.False(t, MatchesHash("other", tok.Hash()))
	assert.False(t, MatchesHash("", ""))
}
