package rajyog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navadha/navadha/rajyog"
)

// TestDetect_LeadershipPair: the documented fixture. Life Path 1 and
// Destiny 8 with no optional numbers.
func TestDetect_LeadershipPair(t *testing.T) {
	res := rajyog.Detect(1, 8)

	assert.True(t, res.Detected)
	assert.Equal(t, "leadership", res.Type)
	assert.Equal(t, 85, res.Strength)
	require.Len(t, res.Combinations, 1)
	assert.Equal(t, rajyog.Combination{Type: "leadership", Strength: 85}, res.Combinations[0])
}

// TestDetect_PairTableOrdered: the table is ordered — (8,1) is "material",
// not "leadership".
func TestDetect_PairTableOrdered(t *testing.T) {
	res := rajyog.Detect(8, 1)
	assert.Equal(t, "material", res.Type)
	assert.Equal(t, 80, res.Strength)

	res = rajyog.Detect(7, 9)
	assert.Equal(t, "spiritual", res.Type)
	assert.Equal(t, 85, res.Strength)

	// (9,7) is neither in the table nor master; 9+7 = 16 is not a multiple
	// of 9 and {9,7} is not complementary → nothing.
	res = rajyog.Detect(9, 7)
	assert.False(t, res.Detected)
	assert.Equal(t, 0, res.Strength)
}

// TestDetect_MasterRule: a master on either side scores 90 and outranks any
// pair match on the normalized values.
func TestDetect_MasterRule(t *testing.T) {
	res := rajyog.Detect(11, 5)
	assert.True(t, res.Detected)
	assert.Equal(t, "master", res.Type)
	assert.Equal(t, 90, res.Strength)

	// 22 normalizes to 4; destiny 5 → (4,5) would be complementary, but the
	// master rule already matched, so fallbacks stay silent.
	res = rajyog.Detect(22, 5)
	assert.Equal(t, "master", res.Type)
	require.Len(t, res.Combinations, 1)
}

// TestDetect_MasterPlusPair: with Life Path 11 (→2) and Destiny 7 both the
// master rule and the (2,7) harmony pair match; master wins as primary and
// both matches are recorded strongest-first.
func TestDetect_MasterPlusPair(t *testing.T) {
	res := rajyog.Detect(11, 7)

	require.Len(t, res.Combinations, 2)
	assert.Equal(t, "master", res.Combinations[0].Type)
	assert.Equal(t, "harmony", res.Combinations[1].Type)
	assert.Equal(t, "master", res.Type)
	assert.Equal(t, 90, res.Strength)
}

// TestDetect_CompletionFallback: (4,5) sums to 9; with no master and no pair
// entry the completion fallback fires first, shadowing the complementary one.
func TestDetect_CompletionFallback(t *testing.T) {
	res := rajyog.Detect(4, 5)
	assert.True(t, res.Detected)
	assert.Equal(t, "completion", res.Type)
	assert.Equal(t, 65, res.Strength)

	// (9,9) sums to 18, also a multiple of 9.
	res = rajyog.Detect(9, 9)
	assert.Equal(t, "completion", res.Type)
}

// TestDetect_Bonuses: each optional number matching a normalized core adds
// +5; the total caps at 100.
func TestDetect_Bonuses(t *testing.T) {
	// Base 85 + soul urge hit + personality hit = 95.
	res := rajyog.Detect(1, 8, rajyog.WithSoulUrge(1), rajyog.WithPersonality(8))
	assert.Equal(t, 95, res.Strength)

	// Soul urge 19 normalizes to 1 → +5 only.
	res = rajyog.Detect(1, 8, rajyog.WithSoulUrge(19), rajyog.WithPersonality(3))
	assert.Equal(t, 90, res.Strength)

	// Master base 90 + both bonuses tops out at the cap of 100.
	res = rajyog.Detect(11, 2, rajyog.WithSoulUrge(11), rajyog.WithPersonality(2))
	assert.Equal(t, 100, res.Strength)
}

// TestDetect_NoBonusWithoutMatch: bonuses never apply when nothing matched.
func TestDetect_NoBonusWithoutMatch(t *testing.T) {
	res := rajyog.Detect(9, 7, rajyog.WithSoulUrge(9), rajyog.WithPersonality(7))
	assert.False(t, res.Detected)
	assert.Equal(t, 0, res.Strength)
	assert.Empty(t, res.Combinations)
}

// TestOptions_PanicOnInvalid: option constructors validate eagerly.
func TestOptions_PanicOnInvalid(t *testing.T) {
	assert.Panics(t, func() { rajyog.WithSoulUrge(0) })
	assert.Panics(t, func() { rajyog.WithPersonality(-3) })
}
