// Package digits implements the digit-reduction arithmetic at the bottom of
// the navadha dependency chain.
//
// What:
//
//   - Reduce(n, preserveMaster) collapses a non-negative integer to a single
//     digit by repeated digit summation, optionally stopping on the master
//     numbers 11, 22, 33.
//   - Sum(n) is a single digit-summation step.
//   - Expand(n) yields the decimal digits of n in order.
//   - IsMaster reports membership in {11, 22, 33}.
//
// Why:
//
//	Every derived numerology number is some reduction of a raw sum; the
//	master-number exception is the one rule that threads through all of them,
//	so it lives here once.
//
// Termination:
//
//	For n > 9 the digit sum is strictly smaller than n, so Reduce converges
//	in a handful of steps (at most 3 for any value this engine produces).
//
// Concurrency:
//
//	Pure functions over stack-local state; safe from any number of goroutines.
package digits
