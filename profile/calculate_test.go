package profile_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navadha/navadha/letters"
	"github.com/navadha/navadha/profile"
)

// TestCalculate_Golden is the end-to-end regression fixture:
// "John Smith", 1990-06-15, Pythagorean, reference date pinned.
func TestCalculate_Golden(t *testing.T) {
	ns, err := profile.Calculate("John Smith", date(1990, time.June, 15), letters.Pythagorean,
		profile.WithReferenceDate(date(2024, time.March, 7)))
	require.NoError(t, err)

	want := profile.NumberSet{
		LifePath:         4,
		Destiny:          8,
		SoulUrge:         6,
		Personality:      11,
		Attitude:         3,
		Birthday:         6,
		Driver:           6,
		Conductor:        4,
		Maturity:         3, // 4+8 = 12 → 3
		Balance:          2,
		HiddenPassion:    8,
		SubconsciousSelf: 7,
		PersonalYear:     2,
		PersonalMonth:    5,
		PersonalDay:      3,
		KarmicDebts:      nil,
		KarmicLessons:    []int{3, 7},
		Pinnacles:        [4]int{3, 7, 1, 8},
		Challenges:       [4]int{0, 5, 5, 0},
	}
	assert.Equal(t, want, ns)
}

// TestCalculate_UnknownSystem: a system outside the enum is a configuration
// error, surfaced before any computation.
func TestCalculate_UnknownSystem(t *testing.T) {
	_, err := profile.Calculate("John Smith", date(1990, time.June, 15), letters.System(42))
	require.Error(t, err)
	assert.ErrorIs(t, err, letters.ErrUnknownSystem)
}

// TestCalculate_Deterministic: equal inputs yield equal outputs; the
// NumberSet is computed fresh and never aliased.
func TestCalculate_Deterministic(t *testing.T) {
	ref := profile.WithReferenceDate(date(2024, time.January, 1))
	a, err := profile.Calculate("Ada Lovelace", date(1915, time.December, 10), letters.Chaldean, ref)
	require.NoError(t, err)
	b, err := profile.Calculate("Ada Lovelace", date(1915, time.December, 10), letters.Chaldean, ref)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestNumberSet_JSONKeys locks the wire names the orchestration layer
// persists under.
func TestNumberSet_JSONKeys(t *testing.T) {
	ns, err := profile.Calculate("John Smith", date(1990, time.June, 15), letters.Pythagorean,
		profile.WithReferenceDate(date(2024, time.March, 7)))
	require.NoError(t, err)

	raw, err := json.Marshal(ns)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for _, key := range []string{
		"life_path", "destiny", "soul_urge", "personality", "attitude",
		"birthday", "driver", "conductor", "maturity", "balance",
		"hidden_passion", "subconscious_self",
		"personal_year", "personal_month", "personal_day",
		"karmic_debt_numbers", "karmic_lessons", "pinnacles", "challenges",
	} {
		assert.Contains(t, decoded, key)
	}
}

// TestWithReferenceDate_PanicsOnZero: option constructors validate and panic
// on programmer error.
func TestWithReferenceDate_PanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { profile.WithReferenceDate(time.Time{}) })
}
