package profile

import (
	"time"

	"github.com/navadha/navadha/digits"
)

// lifePathRaw is the un-reduced digit total behind the Life Path: the digit
// sums of year, month and day added together. Kept separate because the
// karmic-debt check needs the raw value.
func lifePathRaw(birth time.Time) int {
	y, m, d := birth.Year(), int(birth.Month()), birth.Day()
	return digits.Sum(y) + digits.Sum(m) + digits.Sum(d)
}

// LifePath reduces the combined digit total of year, month and day,
// preserving master numbers. 1987-05-16 → (1+9+8+7)+(5)+(1+6) = 37 → 1.
func LifePath(birth time.Time) int {
	return digits.Reduce(lifePathRaw(birth), true)
}

// Attitude reduces day+month, preserving masters.
func Attitude(birth time.Time) int {
	return digits.Reduce(birth.Day()+int(birth.Month()), true)
}

// Birthday reduces the day of month, preserving masters.
func Birthday(birth time.Time) int {
	return digits.Reduce(birth.Day(), true)
}

// Driver reduces the day of month WITHOUT master preservation. The asymmetry
// with Birthday on the identical input is traditional; tests lock it in.
func Driver(birth time.Time) int {
	return digits.Reduce(birth.Day(), false)
}

// Conductor digit-sums the arithmetic total day+month+year, then reduces
// preserving masters. Unlike LifePath, the components are added before
// digit expansion, so the two can disagree on master hits.
func Conductor(birth time.Time) int {
	total := birth.Day() + int(birth.Month()) + birth.Year()
	return digits.Reduce(digits.Sum(total), true)
}

// PersonalYear locates birth day+month within the given calendar year.
// Every term is pre-reduced without master preservation; the cycle numbers
// are always plain digits.
func PersonalYear(birth time.Time, year int) int {
	sum := digits.Reduce(birth.Day(), false) +
		digits.Reduce(int(birth.Month()), false) +
		digits.Reduce(year, false)
	return digits.Reduce(sum, false)
}

// PersonalMonth folds the month of the reference date into the Personal Year.
func PersonalMonth(birth time.Time, year int, month time.Month) int {
	return digits.Reduce(PersonalYear(birth, year)+digits.Reduce(int(month), false), false)
}

// PersonalDay folds the reference day into the Personal Month.
func PersonalDay(birth time.Time, ref time.Time) int {
	pm := PersonalMonth(birth, ref.Year(), ref.Month())
	return digits.Reduce(pm+digits.Reduce(ref.Day(), false), false)
}

// Pinnacles returns the four life-period peaks. Month, day and year are each
// collapsed to plain digits first; the pairwise sums then reduce with master
// preservation.
func Pinnacles(birth time.Time) [4]int {
	rm := digits.Reduce(int(birth.Month()), false)
	rd := digits.Reduce(birth.Day(), false)
	ry := digits.Reduce(birth.Year(), false)

	var p [4]int
	p[0] = digits.Reduce(rm+rd, true)
	p[1] = digits.Reduce(rd+ry, true)
	p[2] = digits.Reduce(p[0]+p[1], true)
	p[3] = digits.Reduce(p[1]+p[2], true)
	return p
}

// Challenges returns the four life-period challenges: absolute differences
// over the same pre-reduced month/day/year digits the Pinnacles use, then
// over the first two results. A challenge of 0 is valid and common.
func Challenges(birth time.Time) [4]int {
	rm := digits.Reduce(int(birth.Month()), false)
	rd := digits.Reduce(birth.Day(), false)
	ry := digits.Reduce(birth.Year(), false)

	var c [4]int
	c[0] = digits.Reduce(abs(rm-rd), true)
	c[1] = digits.Reduce(abs(rd-ry), true)
	c[2] = digits.Reduce(abs(c[0]-c[1]), true)
	c[3] = digits.Reduce(abs(c[1]-c[2]), true)
	return c
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
