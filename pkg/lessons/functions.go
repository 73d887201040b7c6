package lessons

// DoubleValue returns 2*x. The caller's variable is not touched.
func DoubleValue(x int) int {
	return 2 * x
}

// DoubleInPlace doubles the variable p points to.
func DoubleInPlace(p *int) {
	*p *= 2
}

// Squares allocates a slice of n ints holding i*i at index i.
func Squares(n int) []int {
	if n < 0 {
		n = 0
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i * i
	}
	return out
}
