package compat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navadha/navadha/compat"
)

// TestDescribe_NotablePair: the curated 22-4 life-path text fires on the
// unfolded master pair, in either order.
func TestDescribe_NotablePair(t *testing.T) {
	a := set(22, 8, 6, 3, 9)
	b := set(4, 8, 6, 3, 9)

	res, err := compat.Score(a, b, compat.Romantic)
	require.NoError(t, err)
	assert.Contains(t, res.Strengths, "master builder 22 grounds and amplifies the practical 4")

	rev, err := compat.Score(b, a, compat.Romantic)
	require.NoError(t, err)
	assert.Contains(t, rev.Strengths, "master builder 22 grounds and amplifies the practical 4")
}

// TestDescribe_Band: the generic band string lands under strengths for
// scores of 60+ and under challenges below.
func TestDescribe_Band(t *testing.T) {
	high, err := compat.Score(set(4, 8, 6, 3, 9), set(4, 8, 6, 3, 9), compat.Family)
	require.NoError(t, err)
	assert.Contains(t, high.Strengths, "excellent overall compatibility")

	// Maximally distant digits everywhere → every factor scores 40; debts on
	// one side shave 10 more.
	far := set(1, 1, 1, 1, 1)
	near := set(8, 8, 8, 8, 8)
	far.KarmicDebts = []int{19}
	low, err := compat.Score(far, near, compat.Business)
	require.NoError(t, err)
	assert.LessOrEqual(t, low.Score, 40)
	assert.Contains(t, low.Challenges, "low overall compatibility")
}
