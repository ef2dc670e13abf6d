package compat

// factorOrder fixes the order of the breakdown and of weight application.
var factorOrder = []string{"life_path", "destiny", "soul_urge", "personality", "attitude"}

// weightProfiles assigns per-factor weights by relationship. Each profile
// sums to exactly 1.0; the normalization in Score relies on that only for
// readability, not correctness (missing factors renormalize anyway).
var weightProfiles = map[Relationship]map[string]float64{
	Romantic: {
		"life_path":   0.30,
		"destiny":     0.20,
		"soul_urge":   0.25,
		"personality": 0.15,
		"attitude":    0.10,
	},
	Business: {
		"life_path":   0.25,
		"destiny":     0.30,
		"soul_urge":   0.10,
		"personality": 0.20,
		"attitude":    0.15,
	},
	Friendship: {
		"life_path":   0.25,
		"destiny":     0.15,
		"soul_urge":   0.20,
		"personality": 0.20,
		"attitude":    0.20,
	},
	Family: {
		"life_path":   0.30,
		"destiny":     0.25,
		"soul_urge":   0.15,
		"personality": 0.10,
		"attitude":    0.20,
	},
}
