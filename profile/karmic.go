package profile

import (
	"sort"
	"time"

	"github.com/navadha/navadha/digits"
	"github.com/navadha/navadha/letters"
)

// debtNumbers is the traditional Karmic Debt set.
var debtNumbers = map[int]bool{13: true, 14: true, 16: true, 19: true}

// debtBehind checks one candidate against the debt set: a hit is the
// candidate itself, or the result of exactly one digit-summation step of it.
// The check is deliberately two-level only; deeper reductions do not count.
func debtBehind(candidate int) (int, bool) {
	if debtNumbers[candidate] {
		return candidate, true
	}
	if s := digits.Sum(candidate); debtNumbers[s] {
		return s, true
	}
	return 0, false
}

// KarmicDebts scans the raw un-reduced sums behind the core numbers — the
// birth day of month and the totals behind Life Path, Destiny, Soul Urge and
// Personality — for Karmic Debt numbers {13, 14, 16, 19}. The result is
// sorted and deduplicated; empty means no debt.
func KarmicDebts(name string, birth time.Time, s letters.System) []int {
	candidates := []int{
		birth.Day(),
		lifePathRaw(birth),
		SumName(name, s, FilterAll),
		SumName(name, s, FilterVowels),
		SumName(name, s, FilterConsonants),
	}

	seen := map[int]bool{}
	var debts []int
	for _, c := range candidates {
		if d, ok := debtBehind(c); ok && !seen[d] {
			seen[d] = true
			debts = append(debts, d)
		}
	}
	sort.Ints(debts)
	return debts
}
