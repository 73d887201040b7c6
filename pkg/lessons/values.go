package lessons

import (
	"fmt"
	"strings"
)

// Variables declares values the long and the short way and reassigns one.
func Variables() []string {
	var x int = 5
	y := "five"
	z := true
	lines := []string{
		fmt.Sprintf("The value of x is: %d", x),
		fmt.Sprintf("The value of y is: %s", y),
		fmt.Sprintf("The value of z is: %t", z),
	}
	x = 6
	lines = append(lines, fmt.Sprintf("The value of x is now: %d", x))

	const limit = 100_000
	lines = append(lines, fmt.Sprintf("The constant limit is: %d", limit))
	return lines
}

// Compare describes how n relates to pivot.
func Compare(n, pivot int) string {
	if n > pivot {
		return fmt.Sprintf("Number is greater than %d", pivot)
	} else if n < pivot {
		return fmt.Sprintf("Number is less than %d", pivot)
	}
	return fmt.Sprintf("Number is equal to %d", pivot)
}

// CountWords counts whitespace separated words in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
