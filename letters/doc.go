// Package letters defines the alphabetic mapping systems used by the
// navadha numerology engine and the static A–Z → digit value tables.
//
// What:
//
//   - System enumerates the supported mapping traditions: Pythagorean,
//     Chaldean and Vedic.
//   - Value(r, system) returns the digit (1–9) assigned to a letter under a
//     system; non-alphabetic runes contribute 0.
//   - IsVowel classifies {A, E, I, O, U} case-insensitively.
//
// Why:
//
//	Every derived number upstream (Destiny, Soul Urge, Personality, ...)
//	is a digit-reduction over these table values, so the tables are the
//	single source of truth for letter arithmetic.
//
// Notes:
//
//   - Pythagorean and Vedic coincide numerically (both cycle A=1..I=9, J=1..).
//     They are kept as distinct systems because they diverge in the
//     interpretation layer owned by callers.
//   - The Chaldean table assigns no letter the value 9: tradition reserves 9
//     as sacred and excludes it from letter mapping. This is intentional and
//     observable (e.g. a Chaldean Hidden Passion can never be 9).
//   - Non-Latin scripts are not mapped; their runes contribute 0. This is a
//     documented limitation, not an error.
//
// Errors:
//
//   - ErrUnknownSystem: the system identifier is not one of the three
//     supported traditions.
package letters
