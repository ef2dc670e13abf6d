package compat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/navadha/navadha/compat"
	"github.com/navadha/navadha/profile"
)

// set builds a NumberSet carrying only the five scored factors.
func set(lp, d, su, p, at int) profile.NumberSet {
	return profile.NumberSet{
		LifePath:    lp,
		Destiny:     d,
		SoulUrge:    su,
		Personality: p,
		Attitude:    at,
	}
}

// TestScore_IdenticalSets: all five factors equal → the weighted base is 100
// under every profile; with no masters and no debts the modifiers leave it
// alone.
func TestScore_IdenticalSets(t *testing.T) {
	ns := set(4, 8, 6, 3, 9)
	for _, rel := range []compat.Relationship{
		compat.Romantic, compat.Business, compat.Friendship, compat.Family,
	} {
		res, err := compat.Score(ns, ns, rel)
		require.NoError(t, err)
		assert.Equalf(t, 100, res.Score, "profile %v", rel)
		assert.Len(t, res.Factors, 5)
	}
}

// TestScore_OrderIndependence: swapping the inputs never changes the score.
func TestScore_OrderIndependence(t *testing.T) {
	a := set(1, 2, 11, 4, 5)
	b := set(9, 7, 3, 22, 1)

	ab, err := compat.Score(a, b, compat.Friendship)
	require.NoError(t, err)
	ba, err := compat.Score(b, a, compat.Friendship)
	require.NoError(t, err)

	assert.Equal(t, ab.Score, ba.Score)
}

// TestScore_DifferenceTable walks the plain-digit difference ladder through
// the romantic profile with a worked-out expectation.
func TestScore_DifferenceTable(t *testing.T) {
	a := set(1, 2, 3, 4, 5)
	b := set(2, 4, 6, 8, 1)
	// Diffs 1,2,3,4,4 → scores 90,80,70,60,60.
	// Romantic weights .30/.20/.25/.15/.10 → base 75.5.
	// Life paths 1 (fire) and 2 (water) are complementary → +5 → 80.5 → 81.
	res, err := compat.Score(a, b, compat.Romantic)
	require.NoError(t, err)

	assert.Equal(t, 81, res.Score)
	require.Len(t, res.Factors, 5)
	wantScores := []int{90, 80, 70, 60, 60}
	for i, fs := range res.Factors {
		assert.Equalf(t, wantScores[i], fs.Score, "factor %s", fs.Factor)
	}
}

// TestScore_MasterFolding: masters fold to digits for scoring, not to 100.
func TestScore_MasterFolding(t *testing.T) {
	cases := []struct {
		name string
		a, b int
		want int
	}{
		{"FoldedEqual", 11, 2, 90},
		{"FoldedNear", 11, 3, 75}, // |2−3| = 1
		{"FoldedFar", 11, 5, 60},  // |2−5| = 3
		{"BothMastersEqual", 22, 22, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := set(tc.a, 5, 5, 5, 5)
			b := set(tc.b, 5, 5, 5, 5)
			res, err := compat.Score(a, b, compat.Friendship)
			require.NoError(t, err)
			require.NotEmpty(t, res.Factors)
			assert.Equal(t, "life_path", res.Factors[0].Factor)
			assert.Equal(t, tc.want, res.Factors[0].Score)
		})
	}
}

// TestScore_SharedMasterBonus: identical masters on the same factor add 15,
// and the clamp keeps the total at or below 100.
func TestScore_SharedMasterBonus(t *testing.T) {
	a := set(11, 5, 5, 5, 5)
	b := set(11, 6, 5, 5, 5)
	res, err := compat.Score(a, b, compat.Family)
	require.NoError(t, err)

	// Base: life_path 100, destiny 90, rest 100 → under family weights
	// (.30/.25/.15/.10/.20): 100−2.5 = 97.5; +15 shared master, clamp → 100.
	assert.Equal(t, 100, res.Score)
}

// TestScore_KarmicDebtModifiers: any debt on either side costs 10; the
// complementary pair {13,16} hands 8 back.
func TestScore_KarmicDebtModifiers(t *testing.T) {
	clean := set(4, 8, 6, 3, 9)

	indebted := clean
	indebted.KarmicDebts = []int{13}
	res, err := compat.Score(clean, indebted, compat.Romantic)
	require.NoError(t, err)
	assert.Equal(t, 90, res.Score, "100 − 10 debt penalty")

	other := clean
	other.KarmicDebts = []int{16}
	res, err = compat.Score(indebted, other, compat.Romantic)
	require.NoError(t, err)
	assert.Equal(t, 98, res.Score, "100 − 10 + 8 complementary debts")
}

// TestScore_MissingFactorExcluded: a zero factor on either side drops out of
// numerator and denominator; identical remaining factors still reach 100.
func TestScore_MissingFactorExcluded(t *testing.T) {
	a := set(4, 8, 6, 3, 9)
	b := a
	b.SoulUrge = 0

	res, err := compat.Score(a, b, compat.Romantic)
	require.NoError(t, err)
	assert.Equal(t, 100, res.Score)
	assert.Len(t, res.Factors, 4, "soul_urge excluded")
}

// TestScore_UnknownRelationship is the one hard failure, raised before any
// computation.
func TestScore_UnknownRelationship(t *testing.T) {
	_, err := compat.Score(set(1, 1, 1, 1, 1), set(1, 1, 1, 1, 1), compat.Relationship(99))
	assert.ErrorIs(t, err, compat.ErrUnknownRelationship)
}

// TestScore_SoftDegradeLogsOnce: a modifier that cannot be computed (no
// life path → no element) contributes zero, logs exactly once, and never
// aborts the score.
func TestScore_SoftDegradeLogsOnce(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	log := zap.New(core)

	a := set(0, 8, 6, 3, 9) // life path missing entirely
	b := set(4, 8, 6, 3, 9)

	res, err := compat.Score(a, b, compat.Business, compat.WithLogger(log))
	require.NoError(t, err)
	assert.Equal(t, 100, res.Score, "remaining factors are identical")

	entries := logs.FilterMessage("compatibility modifier unavailable").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "complementary_elements", entries[0].ContextMap()["modifier"])
}

// TestWithLogger_PanicsOnNil: option constructors validate eagerly.
func TestWithLogger_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { compat.WithLogger(nil) })
}
