package auth

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateState_URLSafe(t *testing.T) {
	state, err := GenerateState()
	require.NoError(t, err)
	assert.NotEmpty(t, state)

	// The token has to survive a round trip through query strings and cookies.
	decoded, err := base64.RawURLEncoding.DecodeString(state)
	require.NoError(t, err)
	assert.Len(t, decoded, stateTokenBytes)
}

func TestGenerateState_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for range 100 {
		state, err := GenerateState()
		require.NoError(t, err)

		_, dup := seen[state]
		assert.False(t, dup, "state token repeated")
		seen[state] = struct{}{}
	}
}

func TestStateGenerator_Generate(t *testing.T) {
	gen := NewStateGenerator()

	state, err := gen.Generate()
	require.NoError(t, err)
	assert.NotEmpty(t, state)
}
