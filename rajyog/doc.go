// Package rajyog matches "auspicious combination" patterns over a person's
// core numbers and scores their strength.
//
// What:
//
//	Detect takes the Life Path and Destiny numbers (original values, masters
//	allowed) plus optional Soul Urge and Personality, and evaluates a fixed
//	rule table:
//
//	 1. Master rule — Life Path or Destiny ∈ {11,22,33}: "master", 90.
//	 2. Ordered-pair table on the normalized (single-digit) pair:
//	    (1,8) leadership 85    (8,1) material 80    (7,9) spiritual 85
//	    (3,6) creative 75      (6,3) service 75     (2,7) harmony 70
//	 3. Fallback, only when nothing above matched — normalized pair sums to
//	    a multiple of 9: "completion", 65.
//	 4. Fallback, only when nothing above matched — unordered pair in
//	    {(1,8),(2,7),(3,6),(4,5)}: "complementary", 60.
//
//	Every match is recorded; the highest-strength one is primary. Bonuses on
//	top of the primary strength, capped at 100: +5 when the normalized Soul
//	Urge equals either normalized core number, +5 more for Personality.
//
// Normalization collapses masters for rule matching (11→2, 22→4, 33→6); the
// original values are the caller's to display.
//
// Concurrency:
//
//	Pure function over a static rule table; safe for concurrent use.
package rajyog
