package maxfind

import "golang.org/x/exp/constraints"

// FindMax returns the largest element of seq, or Absent if seq is empty.
// seq is only read.
func FindMax[T constraints.Signed](seq []T) Result[T] {
	if len(seq) == 0 {
		return Absent[T]()
	}

	m := seq[0]
	for _, v := range seq[1:] {
		if v > m {
			m = v
		}
	}
	return Present(m)
}
