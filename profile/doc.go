// Package profile derives the full set of numerology numbers for one person
// from a full name and a birth date.
//
// What:
//
//   - Name numbers: Destiny, Soul Urge, Personality, Balance, Hidden Passion,
//     Subconscious Self — sums of letter values under a chosen mapping system,
//     filtered to all letters, vowels only, or consonants only.
//   - Date numbers: Life Path, Attitude, Birthday, Driver, Conductor,
//     Maturity, the Personal Year/Month/Day cycle, four Pinnacles and four
//     Challenges.
//   - Karmic analysis: Karmic Debt numbers {13, 14, 16, 19} detected over the
//     raw un-reduced sums, and Karmic Lessons (digits 1–9 absent from the
//     name's letter values).
//
// Calculate assembles everything into a NumberSet in one pass. Personal
// cycles depend on a reference date, which defaults to time.Now() and can be
// pinned with WithReferenceDate for reproducible results.
//
// Why:
//
//	The NumberSet is the engine's central currency: the Lo Shu grid, Raj Yog
//	detection and compatibility scoring all consume it. Keeping every
//	derivation in one package keeps the reduction rules (master-number
//	preservation, vowel classification, initials) consistent across numbers.
//
// Intentional asymmetries (locked by tests, do not "fix"):
//
//   - Driver does not preserve master numbers while Birthday, computed from
//     the same day-of-month, does. Tradition treats the Driver as a plain
//     digit.
//   - Balance reduces without master preservation.
//
// Concurrency:
//
//	Pure functions; no shared mutable state. Safe for concurrent use.
//
// Errors:
//
//	Calculate returns letters.ErrUnknownSystem (wrapped) for an unsupported
//	system. Name and date validation belongs to the navadha root API; the
//	functions here compute over whatever they are handed.
package profile
