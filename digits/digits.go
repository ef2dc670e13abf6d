package digits

// masters is the traditional master-number set, exempt from reduction when
// preservation is requested.
var masters = map[int]bool{11: true, 22: true, 33: true}

// IsMaster reports whether n is one of {11, 22, 33}.
func IsMaster(n int) bool {
	return masters[n]
}

// Sum performs one digit-summation step: 1987 → 1+9+8+7 = 25.
// Sum(n) == n for 0 ≤ n ≤ 9. Negative input is summed by absolute value.
func Sum(n int) int {
	if n < 0 {
		n = -n
	}
	s := 0
	for n > 0 {
		s += n % 10
		n /= 10
	}
	return s
}

// Reduce collapses n to a single digit by repeated digit summation.
//
// When preserveMaster is true, reduction stops the moment the running value
// lands in {11, 22, 33} — including when n itself is a master number.
// Reduce(0, _) == 0. Negative input is reduced by absolute value.
//
// Reduce(n, false) is idempotent: reducing an already-reduced value is a
// no-op, which downstream calculators rely on when chaining sums.
func Reduce(n int, preserveMaster bool) int {
	if n < 0 {
		n = -n
	}
	for n > 9 {
		if preserveMaster && masters[n] {
			return n
		}
		n = Sum(n)
	}
	return n
}

// Expand returns the decimal digits of n in most-significant-first order.
// Expand(0) == [0]. Negative input is expanded by absolute value.
func Expand(n int) []int {
	if n < 0 {
		n = -n
	}
	if n == 0 {
		return []int{0}
	}
	// Collect least-significant first, then reverse in place.
	ds := make([]int, 0, 4)
	for n > 0 {
		ds = append(ds, n%10)
		n /= 10
	}
	for l, r := 0, len(ds)-1; l < r; l, r = l+1, r-1 {
		ds[l], ds[r] = ds[r], ds[l]
	}
	return ds
}
