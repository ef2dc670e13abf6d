package loshu

import (
	"fmt"
	"strings"
	"time"

	"github.com/navadha/navadha/digits"
)

// Build constructs the Lo Shu grid for a birth date.
//
// Day, month and 4-digit year are expanded into individual decimal digits
// (1990-01-01 → 1,9,9,0,0,1,0,1); occurrences of 1–9 are counted, zeros are
// discarded, and the counts are mapped onto the canonical square.
//
// Complexity: O(1) — at most 8 digits.
func Build(birth time.Time) Grid {
	var counts [10]int
	for _, part := range []int{birth.Year(), int(birth.Month()), birth.Day()} {
		for _, d := range digits.Expand(part) {
			counts[d]++
		}
	}
	// 0 has no slot in the square.
	counts[0] = 0

	var g Grid
	i := 0
	for _, row := range layout {
		for _, n := range row {
			g.Cells[i] = Cell{
				Number:   n,
				Count:    counts[n],
				Strength: strengthOf(counts[n]),
			}
			i++
		}
	}
	return g
}

// strengthOf maps an occurrence count onto the three-level scale.
func strengthOf(count int) Strength {
	switch {
	case count >= 2:
		return Strong
	case count == 1:
		return Present
	default:
		return Missing
	}
}

// Cell returns the cell bound to canonical number n (1–9). The second result
// is false for numbers outside the square.
func (g Grid) Cell(n int) (Cell, bool) {
	for _, c := range g.Cells {
		if c.Number == n {
			return c, true
		}
	}
	return Cell{}, false
}

// Count returns the occurrence count for canonical number n, 0 if n has no
// slot.
func (g Grid) Count(n int) int {
	c, _ := g.Cell(n)
	return c.Count
}

// TotalCount sums all position counts. By construction it equals the number
// of birth-date digits in [1,9].
func (g Grid) TotalCount() int {
	total := 0
	for _, c := range g.Cells {
		total += c.Count
	}
	return total
}

// Arrows detects the personality arrows of the grid: for each of the 8 lines
// of the square, an arrow is emitted only when all three digits are present
// (count > 0) or all three are missing. The order of the result is fixed:
// rows, columns, diagonals.
func (g Grid) Arrows() []Arrow {
	var arrows []Arrow
	for _, line := range arrowLines {
		present, absent := 0, 0
		for _, n := range line.numbers {
			if g.Count(n) > 0 {
				present++
			} else {
				absent++
			}
		}
		switch {
		case present == 3:
			arrows = append(arrows, Arrow{Name: line.name, Numbers: line.numbers, Status: ArrowPresent})
		case absent == 3:
			arrows = append(arrows, Arrow{Name: line.name, Numbers: line.numbers, Status: ArrowAbsent})
		}
	}
	return arrows
}

// String renders the grid as three rows of "number:count" cells, handy for
// CLI output and debugging.
func (g Grid) String() string {
	var b strings.Builder
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			cell := g.Cells[r*3+c]
			if c > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d:%d", cell.Number, cell.Count)
		}
		if r < 2 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
