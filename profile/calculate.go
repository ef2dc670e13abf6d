package profile

import (
	"fmt"
	"time"

	"github.com/navadha/navadha/digits"
	"github.com/navadha/navadha/letters"
)

// Option customizes a Calculate call by mutating its resolved config.
type Option func(*config)

// config carries resolved Calculate options. Immutable after resolution.
type config struct {
	ref time.Time
}

// WithReferenceDate pins the reference date used by the Personal Year/Month/
// Day cycle. Defaults to time.Now(). Panics on the zero time to surface
// programmer error early.
func WithReferenceDate(t time.Time) Option {
	if t.IsZero() {
		panic("profile: WithReferenceDate(zero time)")
	}
	return func(c *config) {
		c.ref = t
	}
}

// Calculate derives the complete NumberSet for one person under the given
// mapping system. Inputs are assumed structurally valid (the navadha root
// API validates name and date range); the one error path here is an
// unsupported system.
//
// Determinism: equal inputs and an equal reference date produce identical
// NumberSets. The default reference date is time.Now(), so callers wanting
// reproducible personal cycles should pass WithReferenceDate.
//
// Complexity: O(len(name) + digit count of the date); a handful of
// reductions, no allocation beyond the result's slices.
func Calculate(fullName string, birth time.Time, s letters.System, opts ...Option) (NumberSet, error) {
	if !s.Valid() {
		return NumberSet{}, fmt.Errorf("profile: %w: %d", letters.ErrUnknownSystem, int(s))
	}

	cfg := config{ref: time.Now()}
	for _, opt := range opts {
		opt(&cfg)
	}

	ns := NumberSet{
		LifePath:         LifePath(birth),
		Destiny:          Destiny(fullName, s),
		SoulUrge:         SoulUrge(fullName, s),
		Personality:      Personality(fullName, s),
		Attitude:         Attitude(birth),
		Birthday:         Birthday(birth),
		Driver:           Driver(birth),
		Conductor:        Conductor(birth),
		Balance:          Balance(fullName, s),
		HiddenPassion:    HiddenPassion(fullName, s),
		SubconsciousSelf: SubconsciousSelf(fullName, s),
		PersonalYear:     PersonalYear(birth, cfg.ref.Year()),
		PersonalMonth:    PersonalMonth(birth, cfg.ref.Year(), cfg.ref.Month()),
		PersonalDay:      PersonalDay(birth, cfg.ref),
		KarmicDebts:      KarmicDebts(fullName, birth, s),
		KarmicLessons:    KarmicLessons(fullName, s),
		Pinnacles:        Pinnacles(birth),
		Challenges:       Challenges(birth),
	}

	// Maturity is the one number derived from two others.
	ns.Maturity = digits.Reduce(ns.LifePath+ns.Destiny, true)

	return ns, nil
}
