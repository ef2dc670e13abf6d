package letters

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSystem indicates a system identifier outside the supported set.
var ErrUnknownSystem = errors.New("letters: unknown numerology system")

// System selects one of the supported alphabetic mapping traditions.
type System int

const (
	// Pythagorean cycles the alphabet through 1–9: A=1 .. I=9, J=1 ...
	Pythagorean System = iota
	// Chaldean uses sound-based values 1–8; no letter is valued 9.
	Chaldean
	// Vedic coincides numerically with Pythagorean.
	Vedic
)

// pythagorean holds values for 'A'+i. The same table serves Vedic.
var pythagorean = [26]int{
	1, 2, 3, 4, 5, 6, 7, 8, 9, // A–I
	1, 2, 3, 4, 5, 6, 7, 8, 9, // J–R
	1, 2, 3, 4, 5, 6, 7, 8, // S–Z
}

// chaldean holds values for 'A'+i. The value 9 never appears: the Chaldean
// tradition excludes it from letter mapping.
var chaldean = [26]int{
	1, 2, 3, 4, 5, 8, 3, 5, 1, // A–I
	1, 2, 3, 4, 5, 7, 8, 1, 2, // J–R
	3, 4, 6, 6, 6, 5, 1, 7, // S–Z
}

// Valid reports whether s is one of the supported systems.
func (s System) Valid() bool {
	return s == Pythagorean || s == Chaldean || s == Vedic
}

// String returns the lowercase identifier of the system.
func (s System) String() string {
	switch s {
	case Pythagorean:
		return "pythagorean"
	case Chaldean:
		return "chaldean"
	case Vedic:
		return "vedic"
	default:
		return fmt.Sprintf("System(%d)", int(s))
	}
}

// Parse maps a case-insensitive identifier to a System.
// Returns ErrUnknownSystem for anything outside {pythagorean, chaldean, vedic}.
func Parse(name string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pythagorean":
		return Pythagorean, nil
	case "chaldean":
		return Chaldean, nil
	case "vedic":
		return Vedic, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSystem, name)
	}
}

// Value returns the digit assigned to r under system s.
// Non-alphabetic runes (digits, spaces, punctuation, non-Latin scripts)
// contribute 0. An invalid system also yields 0; callers are expected to
// validate the system once via Valid or Parse before letter arithmetic.
func Value(r rune, s System) int {
	idx := letterIndex(r)
	if idx < 0 {
		return 0
	}
	switch s {
	case Pythagorean, Vedic:
		return pythagorean[idx]
	case Chaldean:
		return chaldean[idx]
	default:
		return 0
	}
}

// IsVowel reports whether r is one of {A, E, I, O, U}, case-insensitively.
// Y is always treated as a consonant.
func IsVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return true
	default:
		return false
	}
}

// IsLetter reports whether r is an ASCII Latin letter covered by the tables.
func IsLetter(r rune) bool {
	return letterIndex(r) >= 0
}

// letterIndex maps ASCII letters to 0–25, anything else to -1.
func letterIndex(r rune) int {
	switch {
	case r >= 'A' && r <= 'Z':
		return int(r - 'A')
	case r >= 'a' && r <= 'z':
		return int(r - 'a')
	default:
		return -1
	}
}
