package maxfind

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Result is either Present(value) or Absent. The zero value is Absent.
// Results are comparable with ==.
type Result[T constraints.Signed] struct {
	value   T
	present bool
}

// Present returns a Result holding v.
func Present[T constraints.Signed](v T) Result[T] {
	return Result[T]{value: v, present: true}
}

// Absent returns the empty Result.
func Absent[T constraints.Signed]() Result[T] {
	return Result[T]{}
}

// Get returns the value and whether it is present.
func (r Result[T]) Get() (T, bool) {
	return r.value, r.present
}

func (r Result[T]) IsPresent() bool {
	return r.present
}

// ValueOr returns the held value, or def when absent.
func (r Result[T]) ValueOr(def T) T {
	if !r.present {
		return def
	}
	return r.value
}

func (r Result[T]) String() string {
	if !r.present {
		return "Absent"
	}
	return fmt.Sprintf("Present(%d)", r.value)
}
