package embedding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashProvider_Dimension(t *testing.T) {
	p := NewHashProvider()
	assert.Equal(t, DefaultDimension, p.Dimension())

	vec, err := p.Embed("golang developer")
	require.NoError(t, err)
	assert.Len(t, vec, DefaultDimension)
}

func TestHashProvider_Deterministic(t *testing.T) {
	p := NewHashProvider()

	vec1, err := p.Embed("senior backend engineer with go and postgres")
	require.NoError(t, err)
	vec2, err := p.Embed("senior backend engineer with go and postgres")
	require.NoError(t, err)

	assert.Equal(t, vec1, vec2)
}

func TestHashProvider_UnitLength(t *testing.T) {
	p := NewHashProvider()
	vec, err := p.Embed("javascript react node.js")
	require.NoError(t, err)

	var sumSquares float64
	for _, v := range vec {
		sumSquares += v * v
	}
	assert.InDelta(t, 1.0, math.Sqrt(sumSquares), 1e-9)
}

func TestHashProvider_EmptyTextYieldsZeroVector(t *testing.T) {
	p := NewHashProvider()

	for _, text := range []string{"", "   ", "\n\t"} {
		vec, err := p.Embed(text)
		require.NoError(t, err)
		require.Len(t, vec, DefaultDimension)
		for _, v := range vec {
			assert.Zero(t, v)
		}
	}
}

func TestHashProvider_CaseInsensitive(t *testing.T) {
	p := NewHashProvider()

	lower, err := p.Embed("python machine learning")
	require.NoError(t, err)
	mixed, err := p.Embed("Python Machine Learning")
	require.NoError(t, err)

	assert.Equal(t, lower, mixed)
}

func TestHashProvider_DistinctTextsDiffer(t *testing.T) {
	p := NewHashProvider()

	a, err := p.Embed("frontend javascript react")
	require.NoError(t, err)
	b, err := p.Embed("embedded c firmware")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
