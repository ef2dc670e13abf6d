package rajyog

import (
	"sort"

	"github.com/navadha/navadha/digits"
)

// Combination is one matched rule: its type label and base strength.
type Combination struct {
	Type     string `json:"type"`
	Strength int    `json:"strength"`
}

// Result is the outcome of Detect. Combinations are ordered by strength
// descending; the first one is the primary match whose strength (plus
// bonuses, capped at 100) becomes the overall score.
type Result struct {
	Detected     bool          `json:"is_detected"`
	Type         string        `json:"yog_type,omitempty"`
	Strength     int           `json:"strength_score"`
	Combinations []Combination `json:"combinations,omitempty"`
}

// Option supplies the optional core numbers to Detect.
type Option func(*config)

type config struct {
	soulUrge    int
	personality int
}

// WithSoulUrge supplies the Soul Urge number (master values allowed).
// Panics on values below 1; the number domain starts there.
func WithSoulUrge(n int) Option {
	if n < 1 {
		panic("rajyog: WithSoulUrge requires a positive number")
	}
	return func(c *config) { c.soulUrge = n }
}

// WithPersonality supplies the Personality number (master values allowed).
// Panics on values below 1.
func WithPersonality(n int) Option {
	if n < 1 {
		panic("rajyog: WithPersonality requires a positive number")
	}
	return func(c *config) { c.personality = n }
}

// pairRule is one entry of the exact ordered-pair table.
type pairRule struct {
	lifePath, destiny int
	typ               string
	strength          int
}

// pairTable holds the exact ordered (lifePath, destiny) combinations.
var pairTable = []pairRule{
	{1, 8, "leadership", 85},
	{8, 1, "material", 80},
	{7, 9, "spiritual", 85},
	{3, 6, "creative", 75},
	{6, 3, "service", 75},
	{2, 7, "harmony", 70},
}

// complementaryPairs lists the unordered pairs accepted by the final
// fallback.
var complementaryPairs = [][2]int{{1, 8}, {2, 7}, {3, 6}, {4, 5}}

// Detect evaluates the rule table over the given core numbers.
//
// lifePath and destiny are the original values and may carry masters; rule
// matching happens on their single-digit normalization. The fallback rules
// fire only when neither the master rule nor the pair table matched.
// Detected is true when at least one rule matched; an empty Result with
// Strength 0 means no combination.
func Detect(lifePath, destiny int, opts ...Option) Result {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	nlp := digits.Reduce(lifePath, false)
	nd := digits.Reduce(destiny, false)

	var combos []Combination
	if digits.IsMaster(lifePath) || digits.IsMaster(destiny) {
		combos = append(combos, Combination{Type: "master", Strength: 90})
	}
	for _, r := range pairTable {
		if nlp == r.lifePath && nd == r.destiny {
			combos = append(combos, Combination{Type: r.typ, Strength: r.strength})
		}
	}

	// Fallbacks apply only when no primary rule matched.
	if len(combos) == 0 {
		switch {
		case nlp+nd > 0 && (nlp+nd)%9 == 0:
			combos = append(combos, Combination{Type: "completion", Strength: 65})
		case isComplementary(nlp, nd):
			combos = append(combos, Combination{Type: "complementary", Strength: 60})
		}
	}

	if len(combos) == 0 {
		return Result{}
	}

	// Highest strength first; table order breaks ties deterministically.
	sort.SliceStable(combos, func(i, j int) bool {
		return combos[i].Strength > combos[j].Strength
	})

	strength := combos[0].Strength
	if cfg.soulUrge > 0 {
		if n := digits.Reduce(cfg.soulUrge, false); n == nlp || n == nd {
			strength += 5
		}
	}
	if cfg.personality > 0 {
		if n := digits.Reduce(cfg.personality, false); n == nlp || n == nd {
			strength += 5
		}
	}
	if strength > 100 {
		strength = 100
	}

	return Result{
		Detected:     true,
		Type:         combos[0].Type,
		Strength:     strength,
		Combinations: combos,
	}
}

// isComplementary reports membership of the unordered pair in the
// complementary table.
func isComplementary(a, b int) bool {
	for _, p := range complementaryPairs {
		if (a == p[0] && b == p[1]) || (a == p[1] && b == p[0]) {
			return true
		}
	}
	return false
}
