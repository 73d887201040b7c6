// Package lessons holds small, self-contained demonstrations of basic Go
// mechanics. Each lesson produces the lines it would print; rendering is left
// to the caller.
package lessons

import (
	"fmt"
	"strings"

	"github.com/amirkhaki/gobasics/pkg/maxfind"
)

// Lesson is a single runnable demonstration.
type Lesson struct {
	Kind  Kind
	Title string
	Run   func() []string
}

var registry = []Lesson{
	{KindVariables, "Variables and constants", Variables},
	{KindLoops, "Loops", loopsLesson},
	{KindFunctions, "Functions", functionsLesson},
	{KindStructs, "Structs", structsLesson},
	{KindMethods, "Methods", methodsLesson},
	{KindBorrowing, "Passing by reference", borrowingLesson},
	{KindPointers, "Pointers", pointersLesson},
	{KindConditionals, "Conditionals", conditionalsLesson},
	{KindArrays, "Arrays", arraysLesson},
	{KindSlices, "Slices", slicesLesson},
	{KindAllocation, "Dynamic allocation", allocationLesson},
}

// All returns every lesson ordered by Kind.
func All() []Lesson {
	out := make([]Lesson, len(registry))
	copy(out, registry)
	return out
}

func Lookup(k Kind) (Lesson, bool) {
	for _, l := range registry {
		if l.Kind == k {
			return l, true
		}
	}
	return Lesson{}, false
}

func loopsLesson() []string {
	var lines []string
	for _, i := range CountFor(3) {
		lines = append(lines, fmt.Sprintf("Value of i is: %d", i))
	}
	for _, j := range CountWhile(3) {
		lines = append(lines, fmt.Sprintf("Value of j is: %d", j))
	}
	for _, k := range CountUntil(3) {
		lines = append(lines, fmt.Sprintf("Value of k is: %d", k))
	}
	return lines
}

func maxLine(numbers []int) string {
	if m, ok := maxfind.FindMax(numbers).Get(); ok {
		return fmt.Sprintf("The maximum value is: %d", m)
	}
	return "The sequence is empty"
}

func functionsLesson() []string {
	num := 5
	lines := []string{
		maxLine([]int{3, 5, 2, 1, 4}),
		maxLine(nil),
		fmt.Sprintf("Doubled: %d", DoubleValue(num)),
		fmt.Sprintf("num after DoubleValue: %d", num),
	}
	DoubleInPlace(&num)
	return append(lines, fmt.Sprintf("num after DoubleInPlace: %d", num))
}

func structsLesson() []string {
	p := NewPerson("John Doe", 30)
	return []string{p.Details()}
}

func methodsLesson() []string {
	b := NewBook(300, 4)
	return []string{b.PageCountLine(), b.RatingLine()}
}

func borrowingLesson() []string {
	msg := "Go is awesome!"
	n := CountWords(msg)
	return []string{
		fmt.Sprintf("Words: %d", n),
		fmt.Sprintf("Message: %s", msg),
	}
}

func pointersLesson() []string {
	x := 5
	p := &x
	SetThrough(p, 10)
	lines := []string{fmt.Sprintf("The value of x is: %d", x)}

	pp := &p
	SetThroughTwice(pp, 20)
	return append(lines, fmt.Sprintf("The value of x is: %d", x))
}

func conditionalsLesson() []string {
	return []string{Compare(10, 5), Compare(3, 5), Compare(5, 5)}
}

func arraysLesson() []string {
	var numbers [5]int
	for i := range numbers {
		numbers[i] = (i + 1) * 10
	}
	lines := []string{
		fmt.Sprint(numbers),
		fmt.Sprintf("First: %d, Last: %d", numbers[0], numbers[len(numbers)-1]),
	}
	numbers[1] = 25
	return append(lines,
		fmt.Sprintf("Modified: %d", numbers[1]),
		fmt.Sprintf("Length: %d", len(numbers)),
	)
}

func slicesLesson() []string {
	var numbers []int
	numbers = append(numbers, 10, 20, 30)
	numbers[1] = 25
	numbers = append(numbers, 40, 50)
	lines := []string{fmt.Sprint(numbers), fmt.Sprintf("Length: %d", len(numbers))}

	trimmed, err := RemoveAt(numbers, 2)
	if err != nil {
		return append(lines, err.Error())
	}
	return append(lines,
		fmt.Sprintf("Removed index 2: %v", trimmed),
		fmt.Sprintf("Original: %v", numbers),
	)
}

func allocationLesson() []string {
	squares := Squares(10)
	return []string{
		strings.Trim(fmt.Sprint(squares), "[]"),
		fmt.Sprintf("Length: %d, Capacity: %d", len(squares), cap(squares)),
	}
}
