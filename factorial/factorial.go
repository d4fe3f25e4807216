// Package factorial computes factorials over unsigned 64-bit integers.
package factorial

// Of returns n! using the recursive definition: 1 for n <= 1, else n * (n-1)!.
// Results beyond 20! wrap around silently; wraparound is accepted behavior,
// not an error.
func Of(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	return n * Of(n-1)
}

// Sequence returns the factorials 0! through n!, inclusive.
func Sequence(n uint64) []uint64 {
	seq := make([]uint64, n+1)
	seq[0] = 1
	for i := uint64(1); i <= n; i++ {
		seq[i] = seq[i-1] * i
	}
	return seq
}
