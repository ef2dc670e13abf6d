package compat

import (
	"errors"
	"fmt"

	"github.com/navadha/navadha/digits"
	"github.com/navadha/navadha/profile"
)

// errNoElement indicates a life-path value without an element binding; the
// affected modifier degrades to a zero contribution.
var errNoElement = errors.New("compat: no element for value")

// modifier is one post-normalization adjustment. Failure is an explicit
// result, never a panic: the aggregator logs and moves on.
type modifier struct {
	name  string
	apply func(a, b profile.NumberSet) (int, error)
}

// modifiers run in fixed order after the weighted base score.
var modifiers = []modifier{
	{"shared_master", sharedMaster},
	{"complementary_elements", complementaryElements},
	{"karmic_debt_penalty", karmicDebtPenalty},
	{"complementary_debts", complementaryDebts},
}

// sharedMaster awards +15 when both sides carry the identical master number
// on the same factor.
func sharedMaster(a, b profile.NumberSet) (int, error) {
	av, bv := factorValues(a), factorValues(b)
	for _, f := range factorOrder {
		if av[f] != 0 && av[f] == bv[f] && digits.IsMaster(av[f]) {
			return 15, nil
		}
	}
	return 0, nil
}

// element buckets for life-path values after folding to a single-digit-range
// value by repeated −9.
type element int

const (
	fire  element = iota // 1, 4, 7
	water                // 2, 5, 8
	air                  // 3, 6, 9
)

// complement is directional: fire feeds water, water feeds air, air feeds
// fire. Complementarity of a pair is a hit in either direction.
var complement = map[element]element{fire: water, water: air, air: fire}

// elementOf folds n below 10 and buckets it. A value outside [1,9] after
// folding has no element.
func elementOf(n int) (element, error) {
	for n > 9 {
		n -= 9
	}
	switch n {
	case 1, 4, 7:
		return fire, nil
	case 2, 5, 8:
		return water, nil
	case 3, 6, 9:
		return air, nil
	default:
		return 0, fmt.Errorf("%w: %d", errNoElement, n)
	}
}

// complementaryElements awards +5 when the two Life-Path elements feed each
// other in either direction.
func complementaryElements(a, b profile.NumberSet) (int, error) {
	ea, err := elementOf(a.LifePath)
	if err != nil {
		return 0, err
	}
	eb, err := elementOf(b.LifePath)
	if err != nil {
		return 0, err
	}
	if complement[ea] == eb || complement[eb] == ea {
		return 5, nil
	}
	return 0, nil
}

// karmicDebtPenalty deducts 10 when either side carries any Karmic Debt.
func karmicDebtPenalty(a, b profile.NumberSet) (int, error) {
	if len(a.KarmicDebts) > 0 || len(b.KarmicDebts) > 0 {
		return -10, nil
	}
	return 0, nil
}

// debtComplements pairs the debts that soften each other.
var debtComplements = [][2]int{{13, 16}, {14, 19}}

// complementaryDebts awards +8 back when the two debt sets form one of the
// complementary pairs in either order.
func complementaryDebts(a, b profile.NumberSet) (int, error) {
	for _, p := range debtComplements {
		if (hasDebt(a, p[0]) && hasDebt(b, p[1])) || (hasDebt(a, p[1]) && hasDebt(b, p[0])) {
			return 8, nil
		}
	}
	return 0, nil
}

// hasDebt reports whether the set carries the given debt number.
func hasDebt(ns profile.NumberSet, debt int) bool {
	for _, d := range ns.KarmicDebts {
		if d == debt {
			return true
		}
	}
	return false
}
