// Package loshu builds the 3×3 Lo Shu frequency grid from a birth date and
// detects personality arrows over it.
//
// What:
//
//   - Build expands day, month and 4-digit year into decimal digits, counts
//     occurrences of 1–9 (0 has no grid slot and is discarded), and binds the
//     counts to the nine fixed positions of the traditional magic square:
//
//     4 9 2
//     3 5 7
//     8 1 6
//
//     Every row, column and diagonal of canonical numbers sums to 15.
//
//   - Each position carries a strength: "strong" (count ≥ 2), "present"
//     (count == 1) or "missing" (count == 0).
//
//   - Arrows scans the 8 lines of the square (3 rows, 3 columns, 2
//     diagonals). A line emits an arrow only when its three numbers are
//     uniformly present or uniformly absent; mixed lines emit nothing.
//
// The full name plays no part here. The grid is a birth-date construct by
// design; the navadha root API accepts the name only for contract symmetry
// with the other operations.
//
// Invariant:
//
//	The sum of all position counts equals the number of birth-date digits in
//	[1,9]. Zero-padding of day/month only ever adds zeros, which have no slot.
//
// Concurrency:
//
//	Pure construction over stack-local state; safe for concurrent use.
package loshu
