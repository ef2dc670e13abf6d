package compat

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/navadha/navadha/digits"
	"github.com/navadha/navadha/profile"
)

// diffTable maps the absolute difference of two plain digits to a score.
// Differences of 6 or more floor at 40.
var diffTable = [6]int{100, 90, 80, 70, 60, 50}

// foldMaster collapses a master number to its digit (11→2, 22→4, 33→6) and
// leaves anything else untouched.
func foldMaster(n int) int {
	if digits.IsMaster(n) {
		return digits.Reduce(n, false)
	}
	return n
}

// factorScore rates one factor pair. Both values are assumed present
// (non-zero); Score filters absent factors before calling.
func factorScore(a, b int) int {
	if a == b {
		return 100
	}
	if digits.IsMaster(a) || digits.IsMaster(b) {
		fa, fb := foldMaster(a), foldMaster(b)
		switch d := abs(fa - fb); {
		case d == 0:
			return 90
		case d <= 2:
			return 75
		default:
			return 60
		}
	}
	if d := abs(a - b); d < len(diffTable) {
		return diffTable[d]
	}
	return 40
}

// factorValues projects the five scored factors out of a NumberSet in fixed
// order.
func factorValues(ns profile.NumberSet) map[string]int {
	return map[string]int{
		"life_path":   ns.LifePath,
		"destiny":     ns.Destiny,
		"soul_urge":   ns.SoulUrge,
		"personality": ns.Personality,
		"attitude":    ns.Attitude,
	}
}

// Score rates the compatibility of two number sets under the given
// relationship profile.
//
// The base score is the weighted mean of the per-factor scores, normalized
// over the factors present on both sides, so it is symmetric in a and b and
// reaches exactly 100 for identical sets. Modifiers then adjust it (see the
// package doc); a modifier that cannot be computed degrades to 0 and is
// logged once through the configured logger. The final score is clamped to
// [0,100].
//
// Errors: ErrUnknownRelationship for a relationship outside the four
// profiles, returned before any computation.
func Score(a, b profile.NumberSet, rel Relationship, opts ...Option) (Result, error) {
	if !rel.Valid() {
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownRelationship, int(rel))
	}

	cfg := config{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	weights := weightProfiles[rel]
	av, bv := factorValues(a), factorValues(b)

	var (
		factors  []FactorScore
		weighted float64
		ceiling  float64
	)
	for _, f := range factorOrder {
		x, y := av[f], bv[f]
		if x == 0 || y == 0 {
			// Absent on either side: excluded from numerator and denominator.
			continue
		}
		s := factorScore(x, y)
		w := weights[f]
		factors = append(factors, FactorScore{Factor: f, A: x, B: y, Weight: w, Score: s})
		weighted += w * float64(s)
		ceiling += w * 100
	}

	base := 0.0
	if ceiling > 0 {
		base = weighted / ceiling * 100
	}

	// Modifiers apply after normalization; each one degrades to a zero
	// contribution on failure rather than aborting the score.
	total := base
	for _, m := range modifiers {
		delta, err := m.apply(a, b)
		if err != nil {
			cfg.log.Warn("compatibility modifier unavailable",
				zap.String("modifier", m.name), zap.Error(err))
			continue
		}
		total += float64(delta)
	}

	score := int(math.Round(total))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	res := Result{Score: score, Factors: factors}
	res.Strengths, res.Challenges = describe(factors, score)
	return res, nil
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
