package lessons

import (
	"errors"
	"fmt"
)

var ErrIndexOutOfRange = errors.New("index out of range")

// RemoveAt returns a copy of s without the element at i. s is left untouched.
func RemoveAt(s []int, i int) ([]int, error) {
	if i < 0 || i >= len(s) {
		return nil, fmt.Errorf("remove %d from slice of length %d: %w", i, len(s), ErrIndexOutOfRange)
	}
	out := make([]int, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...), nil
}
