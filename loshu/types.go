package loshu

// Strength classifies how firmly a digit is represented in the grid.
type Strength int

const (
	// Missing: the digit never occurs in the birth date.
	Missing Strength = iota
	// Present: the digit occurs exactly once.
	Present
	// Strong: the digit occurs two or more times.
	Strong
)

// String returns the lowercase label used in serialized output.
func (s Strength) String() string {
	switch s {
	case Missing:
		return "missing"
	case Present:
		return "present"
	case Strong:
		return "strong"
	default:
		return "unknown"
	}
}

// MarshalText lets Strength serialize as its label rather than an integer.
func (s Strength) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Cell is one fixed position of the grid: its canonical number, the
// occurrence count of that digit in the birth date, and the derived strength.
type Cell struct {
	Number   int      `json:"number"`
	Count    int      `json:"count"`
	Strength Strength `json:"strength"`
}

// layout is the traditional magic-square arrangement, row-major.
var layout = [3][3]int{
	{4, 9, 2},
	{3, 5, 7},
	{8, 1, 6},
}

// Grid is the immutable result of Build: nine cells in row-major canonical
// order (4,9,2,3,5,7,8,1,6).
type Grid struct {
	Cells [9]Cell `json:"cells"`
}

// ArrowStatus tells whether an arrow arises from uniform presence or uniform
// absence of its three digits.
type ArrowStatus int

const (
	// ArrowPresent: all three digits occur in the birth date.
	ArrowPresent ArrowStatus = iota
	// ArrowAbsent: none of the three digits occur.
	ArrowAbsent
)

// String returns the lowercase label of the status.
func (a ArrowStatus) String() string {
	if a == ArrowAbsent {
		return "absent"
	}
	return "present"
}

// MarshalText lets ArrowStatus serialize as its label.
func (a ArrowStatus) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Arrow is a detected personality arrow: one full line of the square, its
// traditional name, and whether it is a presence or absence arrow.
type Arrow struct {
	Name    string      `json:"name"`
	Numbers [3]int      `json:"numbers"`
	Status  ArrowStatus `json:"status"`
}

// arrowLines enumerates the 8 lines of the canonical square with their
// traditional names, rows first, then columns, then diagonals.
var arrowLines = []struct {
	name    string
	numbers [3]int
}{
	{"intellect", [3]int{4, 9, 2}},
	{"spirituality", [3]int{3, 5, 7}},
	{"practicality", [3]int{8, 1, 6}},
	{"planning", [3]int{4, 3, 8}},
	{"willpower", [3]int{9, 5, 1}},
	{"action", [3]int{2, 7, 6}},
	{"determination", [3]int{4, 5, 6}},
	{"compassion", [3]int{2, 5, 8}},
}
