package compat

// notable is one curated factor-pair annotation. Pairs match unordered.
type notable struct {
	factor   string
	pair     [2]int
	text     string
	strength bool // true → strengths list, false → challenges list
}

// notableTable holds the curated combinations. Master values match as-is,
// before any folding, so (22,4) is distinct from (4,4).
var notableTable = []notable{
	{"life_path", [2]int{1, 1}, "two pioneering 1 life paths: drive and independence align", true},
	{"life_path", [2]int{2, 7}, "the 2-7 life path pairing balances intuition with analysis", true},
	{"life_path", [2]int{22, 4}, "master builder 22 grounds and amplifies the practical 4", true},
	{"life_path", [2]int{11, 2}, "the 11-2 pairing shares one sensitivity at two intensities", true},
	{"life_path", [2]int{1, 8}, "1 and 8 are both used to holding the wheel; leadership collides", false},
	{"life_path", [2]int{4, 5}, "stability-seeking 4 strains against freedom-loving 5", false},
	{"destiny", [2]int{3, 5}, "creative 3 destiny thrives on adventurous 5 momentum", true},
	{"destiny", [2]int{8, 8}, "twin 8 destinies can turn partnership into rivalry", false},
	{"soul_urge", [2]int{6, 6}, "twin 6 soul urges share a devotion to home and care", true},
	{"personality", [2]int{5, 9}, "expressive 5 meets generous 9: an easy public face", true},
	{"attitude", [2]int{1, 9}, "attitudes 1 and 9 read each other as stubborn and aloof", false},
}

// bandText keys a generic reading to the final score.
func bandText(score int) string {
	switch {
	case score >= 80:
		return "excellent overall compatibility"
	case score >= 60:
		return "good overall compatibility"
	case score >= 40:
		return "mixed overall compatibility"
	default:
		return "low overall compatibility"
	}
}

// describe assembles the strengths and challenges lists: curated entries for
// every notable factor pair hit, plus the one band string, filed under
// strengths for scores of 60 and above and under challenges below that.
func describe(factors []FactorScore, score int) (strengths, challenges []string) {
	for _, fs := range factors {
		for _, n := range notableTable {
			if n.factor != fs.Factor {
				continue
			}
			if !pairMatches(n.pair, fs.A, fs.B) {
				continue
			}
			if n.strength {
				strengths = append(strengths, n.text)
			} else {
				challenges = append(challenges, n.text)
			}
		}
	}

	band := bandText(score)
	if score >= 60 {
		strengths = append(strengths, band)
	} else {
		challenges = append(challenges, band)
	}
	return strengths, challenges
}

// pairMatches compares an unordered notable pair against a factor pair.
func pairMatches(p [2]int, a, b int) bool {
	return (p[0] == a && p[1] == b) || (p[0] == b && p[1] == a)
}
