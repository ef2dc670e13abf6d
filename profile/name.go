package profile

import (
	"sort"

	"github.com/navadha/navadha/digits"
	"github.com/navadha/navadha/letters"
)

// SumName accumulates the letter values of name under system s, restricted
// by the filter. Non-alphabetic runes contribute 0 and are skipped, so
// hyphens, apostrophes and spaces never disturb a sum. For any purely
// alphabetic name, SumName(FilterAll) == SumName(FilterVowels) +
// SumName(FilterConsonants).
func SumName(name string, s letters.System, f Filter) int {
	total := 0
	for _, r := range name {
		if !letters.IsLetter(r) {
			continue
		}
		switch f {
		case FilterVowels:
			if !letters.IsVowel(r) {
				continue
			}
		case FilterConsonants:
			if letters.IsVowel(r) {
				continue
			}
		}
		total += letters.Value(r, s)
	}
	return total
}

// initialsSum adds the letter values of the first alphabetic character of
// each whitespace-separated word. Words with no alphabetic characters are
// skipped entirely.
func initialsSum(name string, s letters.System) int {
	total := 0
	taken := false
	for _, r := range name {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			taken = false
			continue
		}
		if !taken && letters.IsLetter(r) {
			total += letters.Value(r, s)
			taken = true
		}
	}
	return total
}

// valueCounts tallies how often each letter value 1–9 occurs in the name.
// Index 0 is unused; the domain of letter values is closed to 1–9.
func valueCounts(name string, s letters.System) [10]int {
	var counts [10]int
	for _, r := range name {
		if v := letters.Value(r, s); v > 0 {
			counts[v]++
		}
	}
	return counts
}

// HiddenPassion returns the letter value with the highest occurrence
// frequency in the name; ties resolve to the largest value. Returns 0 for a
// name without alphabetic characters. Under Chaldean the result can never be
// 9 (no letter carries that value there).
func HiddenPassion(name string, s letters.System) int {
	counts := valueCounts(name, s)
	best, bestCount := 0, 0
	for v := 1; v <= 9; v++ {
		// >= keeps the largest value on ties.
		if counts[v] > 0 && counts[v] >= bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best
}

// KarmicLessons returns the sorted digits 1–9 that never occur among the
// name's letter values. Under Chaldean, 9 is always a lesson.
func KarmicLessons(name string, s letters.System) []int {
	counts := valueCounts(name, s)
	var missing []int
	for v := 1; v <= 9; v++ {
		if counts[v] == 0 {
			missing = append(missing, v)
		}
	}
	sort.Ints(missing)
	return missing
}

// SubconsciousSelf is 9 minus the number of Karmic Lessons.
func SubconsciousSelf(name string, s letters.System) int {
	return 9 - len(KarmicLessons(name, s))
}

// Destiny reduces the full-name sum, preserving master numbers.
func Destiny(name string, s letters.System) int {
	return digits.Reduce(SumName(name, s, FilterAll), true)
}

// SoulUrge reduces the vowels-only sum, preserving master numbers.
func SoulUrge(name string, s letters.System) int {
	return digits.Reduce(SumName(name, s, FilterVowels), true)
}

// Personality reduces the consonants-only sum, preserving master numbers.
func Personality(name string, s letters.System) int {
	return digits.Reduce(SumName(name, s, FilterConsonants), true)
}

// Balance reduces the sum of word-initial letter values. Masters are not
// preserved here.
func Balance(name string, s letters.System) int {
	return digits.Reduce(initialsSum(name, s), false)
}
