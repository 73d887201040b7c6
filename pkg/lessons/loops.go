package lessons

// CountFor, CountWhile and CountUntil all return 0..n-1, each written with a
// different loop form. They return an empty slice for n <= 0.

func CountFor(n int) []int {
	out := []int{}
	for i := 0; i < n; i++ {
		out = append(out, i)
	}
	return out
}

func CountWhile(n int) []int {
	out := []int{}
	j := 0
	for j < n {
		out = append(out, j)
		j++
	}
	return out
}

func CountUntil(n int) []int {
	out := []int{}
	if n <= 0 {
		return out
	}
	k := 0
	for {
		out = append(out, k)
		k++
		if k == n {
			break
		}
	}
	return out
}
