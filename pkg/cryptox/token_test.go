package cryptox

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken(TokenSize256)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// base64url decodes back to the requested byte length
	raw, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err)
	require.Len(t, raw, TokenSize256)
}

func TestGenerateToken_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for range 100 {
		token, err := GenerateToken(TokenSize128)
		require.NoError(t, err)

		_, dup := seen[token]
		require.False(t, dup, "tokens must not collide")
		seen[token] = struct{}{}
	}
}

func TestGenerateToken_InvalidSize(t *testing.T) {
	_, err := GenerateToken(0)
	require.Error(t, err)

	_, err = GenerateToken(-5)
	require.Error(t, err)
}
