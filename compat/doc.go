// Package compat scores the compatibility of two people from their derived
// number sets.
//
// What:
//
//	Score compares two profile.NumberSets over five factors — life path,
//	destiny, soul urge, personality, attitude — under a relationship-specific
//	weight profile (romantic, business, friendship, family; weights sum to
//	1.0 per profile).
//
//	Per-factor scoring: equal values → 100; a master number on either side
//	folds to its digit (11→2, 22→4, 33→6) and scores 90 on folded equality,
//	75 when the folded difference is ≤ 2, else 60; otherwise an
//	absolute-difference table applies (0→100, 1→90, 2→80, 3→70, 4→60, 5→50,
//	≥6→40).
//
//	The weighted total normalizes over the factors present on BOTH sides: a
//	factor missing on either side (zero value) drops out of numerator and
//	denominator alike, degrading gracefully instead of failing.
//
//	Post-normalization modifiers, clamped into [0,100]: +15 for an identical
//	master number on the same factor; +5 for complementary Life-Path elements
//	(fire 1/4/7, water 2/5/8, air 3/6/9; fire→water, water→air, air→fire);
//	−10 when either side carries a Karmic Debt number; +8 when the two debt
//	sets pair up as {13,16} or {14,19} in either order.
//
// Error policy:
//
//	Each modifier computes independently and returns an explicit result. A
//	modifier that cannot be evaluated contributes 0 and is logged once per
//	call through the configured zap logger (a no-op logger by default);
//	it never aborts the score. The one hard error is an unknown relationship
//	type, surfaced before any computation.
//
// Text:
//
//	Curated strength/challenge strings are appended when a factor pair hits
//	the notable-combination table, plus one generic band string keyed to the
//	final score (≥80 excellent, ≥60 good, ≥40 mixed, else low).
//
// Concurrency:
//
//	Pure computation over immutable tables; safe for concurrent use.
package compat
