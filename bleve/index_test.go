package bleve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/jarvis-tokens/tokens"
)

func newIndex(t *testing.T) *TokenIndex {
	ti, err := NewTokenIndex(tokens.DefaultTokens())
	require.NoError(t, err)
	t.Cleanup(func() { ti.Close() })
	return ti
}

func TestSearchBySymbol(t *testing.T) {
	ti := newIndex(t)

	results, scores, err := ti.Search("LINK")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "LINK", results[0].Symbol)
	assert.Len(t, scores, len(results))
}

func TestSearchToleratesTypo(t *testing.T) {
	ti := newIndex(t)

	results, _, err := ti.Search("tethr")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "USDT", results[0].Symbol)
}

func TestSearchNoHit(t *testing.T) {
	ti := newIndex(t)

	results, scores, err := ti.Search("zzzzzzzz")
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Empty(t, scores)

	results, _, err = ti.Search("   ")
	require.NoError(t, err)
	assert.Empty(t, results)
}
