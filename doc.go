// Package navadha is a deterministic, stateless numerology engine: it turns
// a person's full name and birth date into a structured set of derived
// numbers and builds secondary constructs purely from those integers.
//
// 🔢 What is navadha?
//
//	A pure calculation library that brings together:
//		• Letter tables: Pythagorean, Chaldean and Vedic A–Z → digit mappings
//		• Digit reduction with master-number (11/22/33) preservation rules
//		• Name numbers: Destiny, Soul Urge, Personality, Balance, Hidden
//		  Passion, Subconscious Self
//		• Date numbers: Life Path, Attitude, Birthday, Driver, Conductor,
//		  Maturity, Personal Year/Month/Day, Pinnacles, Challenges
//		• Karmic analysis: debt numbers {13,14,16,19} and missing-digit lessons
//		• Lo Shu grid: 3×3 digit-frequency square with personality arrows
//		• Raj Yog: rule-table pattern matching with strength scoring
//		• Compatibility: weighted multi-factor scoring with relationship
//		  profiles and nonlinear modifiers
//
// ✨ Why choose navadha?
//
//   - Deterministic — equal inputs always produce identical results
//   - Stateless — no I/O, no globals beyond immutable tables, safe from any
//     number of goroutines without locking
//   - Explicit errors — hard validation up front, soft degradation for
//     optional enrichments, never a partial hard failure
//
// Everything is organized under focused subpackages:
//
//	letters/ — mapping systems and the static letter-value tables
//	digits/  — digit reduction and expansion primitives
//	profile/ — the full NumberSet calculator (name + date + karmic)
//	loshu/   — Lo Shu grid builder and arrow detection
//	rajyog/  — auspicious-combination detector
//	compat/  — relationship compatibility scorer
//
// This package carries the external call contract: CalculateAll,
// CalculateLoShuGrid, DetectRajYog and ScoreCompatibility, with input
// validation applied once at this boundary. The orchestration layer around
// the engine owns persistence, transport and concurrency; every call here
// returns its full result synchronously.
package navadha
