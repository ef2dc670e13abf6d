package profile

// Filter selects which letters of a name participate in a sum.
type Filter int

const (
	// FilterAll sums every alphabetic character.
	FilterAll Filter = iota
	// FilterVowels sums only {A, E, I, O, U}.
	FilterVowels
	// FilterConsonants sums only alphabetic non-vowels (Y included).
	FilterConsonants
)

// NumberSet is the complete, immutable result of Calculate for one person.
// Values are single digits 1–9 unless the field's rule preserves master
// numbers, in which case 11, 22 or 33 may appear. Slices are sorted
// ascending; a nil or empty slice means "none detected".
type NumberSet struct {
	LifePath         int `json:"life_path"`
	Destiny          int `json:"destiny"`
	SoulUrge         int `json:"soul_urge"`
	Personality      int `json:"personality"`
	Attitude         int `json:"attitude"`
	Birthday         int `json:"birthday"`
	Driver           int `json:"driver"`
	Conductor        int `json:"conductor"`
	Maturity         int `json:"maturity"`
	Balance          int `json:"balance"`
	HiddenPassion    int `json:"hidden_passion"`
	SubconsciousSelf int `json:"subconscious_self"`

	PersonalYear  int `json:"personal_year"`
	PersonalMonth int `json:"personal_month"`
	PersonalDay   int `json:"personal_day"`

	KarmicDebts   []int `json:"karmic_debt_numbers"`
	KarmicLessons []int `json:"karmic_lessons"`

	Pinnacles  [4]int `json:"pinnacles"`
	Challenges [4]int `json:"challenges"`
}
