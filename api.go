package navadha

import (
	"errors"
	"fmt"
	"time"

	"github.com/navadha/navadha/compat"
	"github.com/navadha/navadha/letters"
	"github.com/navadha/navadha/loshu"
	"github.com/navadha/navadha/profile"
	"github.com/navadha/navadha/rajyog"
)

// Sentinel validation errors for the engine's entry points.
var (
	// ErrNoLetters indicates a full name without a single alphabetic
	// character; letter arithmetic would be vacuous.
	ErrNoLetters = errors.New("navadha: full name must contain at least one letter")

	// ErrDateOutOfRange indicates a birth date before 1900-01-01 or in the
	// future.
	ErrDateOutOfRange = errors.New("navadha: birth date must lie within [1900-01-01, today]")
)

// minBirthDate is the lower bound of the accepted birth-date range.
var minBirthDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// PersonInput is the validated primary input: one person's full name and
// birth date.
type PersonInput struct {
	FullName  string    `json:"full_name"`
	BirthDate time.Time `json:"birth_date"`
}

// Validate enforces the structural invariants: the name carries at least one
// alphabetic character and the birth date lies within [1900-01-01, today].
// Violations are hard errors, raised before any computation.
func (p PersonInput) Validate() error {
	hasLetter := false
	for _, r := range p.FullName {
		if letters.IsLetter(r) {
			hasLetter = true
			break
		}
	}
	if !hasLetter {
		return fmt.Errorf("%w: %q", ErrNoLetters, p.FullName)
	}

	if p.BirthDate.Before(minBirthDate) || p.BirthDate.After(time.Now()) {
		return fmt.Errorf("%w: %s", ErrDateOutOfRange, p.BirthDate.Format("2006-01-02"))
	}
	return nil
}

// CalculateAll validates the input and derives the complete NumberSet under
// the requested mapping system.
//
// Errors: ErrNoLetters / ErrDateOutOfRange for structurally invalid input,
// letters.ErrUnknownSystem for an unsupported system. All are raised before
// any number is computed; there are no partial results.
func CalculateAll(fullName string, birthDate time.Time, system letters.System, opts ...profile.Option) (profile.NumberSet, error) {
	if err := (PersonInput{FullName: fullName, BirthDate: birthDate}).Validate(); err != nil {
		return profile.NumberSet{}, err
	}
	return profile.Calculate(fullName, birthDate, system, opts...)
}

// CalculateLoShuGrid validates the input and builds the Lo Shu grid.
//
// The grid is a birth-date construct; the name participates only in
// validation, keeping the contract uniform with CalculateAll.
func CalculateLoShuGrid(fullName string, birthDate time.Time) (loshu.Grid, error) {
	if err := (PersonInput{FullName: fullName, BirthDate: birthDate}).Validate(); err != nil {
		return loshu.Grid{}, err
	}
	return loshu.Build(birthDate), nil
}

// DetectRajYog evaluates the auspicious-combination rules over the given
// core numbers. Optional Soul Urge and Personality values are supplied via
// rajyog.WithSoulUrge / rajyog.WithPersonality.
func DetectRajYog(lifePath, destiny int, opts ...rajyog.Option) rajyog.Result {
	return rajyog.Detect(lifePath, destiny, opts...)
}

// ScoreCompatibility rates two previously calculated NumberSets under a
// relationship profile. See compat.Score for the scoring model and the
// soft-degradation policy of its modifiers.
func ScoreCompatibility(a, b profile.NumberSet, rel compat.Relationship, opts ...compat.Option) (compat.Result, error) {
	return compat.Score(a, b, rel, opts...)
}
