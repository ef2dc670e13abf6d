package compat

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ErrUnknownRelationship indicates a relationship type outside the four
// supported profiles.
var ErrUnknownRelationship = errors.New("compat: unknown relationship type")

// Relationship selects one of the weight profiles.
type Relationship int

const (
	// Romantic emphasizes soul urge and life path.
	Romantic Relationship = iota
	// Business emphasizes destiny and personality.
	Business
	// Friendship spreads weight evenly across the outer factors.
	Friendship
	// Family emphasizes life path and destiny.
	Family
)

// Valid reports whether r is a supported relationship.
func (r Relationship) Valid() bool {
	return r >= Romantic && r <= Family
}

// String returns the lowercase identifier of the relationship.
func (r Relationship) String() string {
	switch r {
	case Romantic:
		return "romantic"
	case Business:
		return "business"
	case Friendship:
		return "friendship"
	case Family:
		return "family"
	default:
		return fmt.Sprintf("Relationship(%d)", int(r))
	}
}

// ParseRelationship maps a case-insensitive identifier to a Relationship.
func ParseRelationship(name string) (Relationship, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "romantic":
		return Romantic, nil
	case "business":
		return Business, nil
	case "friendship":
		return Friendship, nil
	case "family":
		return Family, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownRelationship, name)
	}
}

// FactorScore is one row of the per-factor breakdown.
type FactorScore struct {
	Factor string  `json:"factor"`
	A      int     `json:"a"`
	B      int     `json:"b"`
	Weight float64 `json:"weight"`
	Score  int     `json:"score"`
}

// Result is the outcome of Score.
type Result struct {
	Score      int           `json:"score"`
	Strengths  []string      `json:"strengths"`
	Challenges []string      `json:"challenges"`
	Factors    []FactorScore `json:"factors"`
}

// Option customizes a Score call.
type Option func(*config)

type config struct {
	log *zap.Logger
}

// WithLogger routes soft-degradation warnings to the given logger. The
// default is zap.NewNop(): the engine stays silent unless asked. Panics on
// nil.
func WithLogger(log *zap.Logger) Option {
	if log == nil {
		panic("compat: WithLogger(nil)")
	}
	return func(c *config) { c.log = log }
}
