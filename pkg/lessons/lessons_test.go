package lessons_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirkhaki/gobasics/pkg/lessons"
)

func TestKindRoundTrip(t *testing.T) {
	for _, l := range lessons.All() {
		k, err := lessons.ParseKind(l.Kind.String())
		require.NoError(t, err)
		assert.Equal(t, l.Kind, k)
	}

	_, err := lessons.ParseKind("generics")
	assert.ErrorIs(t, err, lessons.ErrUnknownKind)
	assert.Equal(t, "invalid(0)", lessons.KindInvalid.String())

	var k lessons.Kind
	require.NoError(t, k.UnmarshalText([]byte("pointers")))
	assert.Equal(t, lessons.KindPointers, k)
	assert.Error(t, k.UnmarshalText([]byte("nope")))
	assert.Equal(t, lessons.KindPointers, k)
}

func TestAllOrderedAndLookup(t *testing.T) {
	all := lessons.All()
	require.Len(t, all, 11)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Kind, all[i].Kind)
	}

	l, ok := lessons.Lookup(lessons.KindSlices)
	require.True(t, ok)
	assert.Equal(t, "Slices", l.Title)

	_, ok = lessons.Lookup(lessons.KindInvalid)
	assert.False(t, ok)

	// callers cannot reorder the registry
	all[0] = lessons.Lesson{}
	assert.Equal(t, lessons.KindVariables, lessons.All()[0].Kind)
}

func TestLessonOutput(t *testing.T) {
	var payloads = []struct {
		kind     lessons.Kind
		expected []string
	}{
		{lessons.KindVariables, []string{
			"The value of x is: 5",
			"The value of y is: five",
			"The value of z is: true",
			"The value of x is now: 6",
			"The constant limit is: 100000",
		}},
		{lessons.KindFunctions, []string{
			"The maximum value is: 5",
			"The sequence is empty",
			"Doubled: 10",
			"num after DoubleValue: 5",
			"num after DoubleInPlace: 10",
		}},
		{lessons.KindAllocation, []string{
			"0 1 4 9 16 25 36 49 64 81",
			"Length: 10, Capacity: 10",
		}},
		{lessons.KindStructs, []string{"Name: John Doe, Age: 30"}},
		{lessons.KindMethods, []string{"Book has 300 pages", "Book has a rating of 4/5"}},
		{lessons.KindBorrowing, []string{"Words: 3", "Message: Go is awesome!"}},
		{lessons.KindPointers, []string{"The value of x is: 10", "The value of x is: 20"}},
		{lessons.KindConditionals, []string{
			"Number is greater than 5",
			"Number is less than 5",
			"Number is equal to 5",
		}},
		{lessons.KindArrays, []string{
			"[10 20 30 40 50]",
			"First: 10, Last: 50",
			"Modified: 25",
			"Length: 5",
		}},
		{lessons.KindSlices, []string{
			"[10 25 30 40 50]",
			"Length: 5",
			"Removed index 2: [10 25 40 50]",
			"Original: [10 25 30 40 50]",
		}},
		{lessons.KindLoops, []string{
			"Value of i is: 0", "Value of i is: 1", "Value of i is: 2",
			"Value of j is: 0", "Value of j is: 1", "Value of j is: 2",
			"Value of k is: 0", "Value of k is: 1", "Value of k is: 2",
		}},
	}

	for _, p := range payloads {
		t.Run(p.kind.String(), func(t *testing.T) {
			l, ok := lessons.Lookup(p.kind)
			require.True(t, ok)
			if diff := cmp.Diff(p.expected, l.Run()); diff != "" {
				t.Errorf("lesson %s mismatch (-want +got):\n%s", p.kind, diff)
			}
		})
	}
}

func TestEveryLessonProducesOutput(t *testing.T) {
	for _, l := range lessons.All() {
		assert.NotEmpty(t, l.Run(), l.Kind.String())
	}
}

func TestLoops(t *testing.T) {
	for _, n := range []int{-1, 0, 1, 5} {
		want := lessons.CountFor(n)
		assert.Equal(t, want, lessons.CountWhile(n), "n=%d", n)
		assert.Equal(t, want, lessons.CountUntil(n), "n=%d", n)
		assert.Len(t, want, max(n, 0))
	}
}

func TestPointers(t *testing.T) {
	x := 1
	p := &x
	lessons.SetThrough(p, 2)
	assert.Equal(t, 2, x)

	lessons.SetThroughTwice(&p, 3)
	assert.Equal(t, 3, x)
	assert.Equal(t, 3, *p)
}

func TestDoubling(t *testing.T) {
	num := 7
	assert.Equal(t, 14, lessons.DoubleValue(num))
	assert.Equal(t, 7, num)

	lessons.DoubleInPlace(&num)
	assert.Equal(t, 14, num)

	neg := -3
	lessons.DoubleInPlace(&neg)
	assert.Equal(t, -6, neg)
}

func TestSquares(t *testing.T) {
	assert.Equal(t, []int{0, 1, 4, 9}, lessons.Squares(4))
	assert.Empty(t, lessons.Squares(0))
	assert.Empty(t, lessons.Squares(-2))
}

func TestCountWords(t *testing.T) {
	assert.Equal(t, 0, lessons.CountWords(""))
	assert.Equal(t, 0, lessons.CountWords(" \t\n"))
	assert.Equal(t, 3, lessons.CountWords("  Go is\tawesome!\n"))
}

func TestRemoveAt(t *testing.T) {
	in := []int{10, 25, 30}

	out, err := lessons.RemoveAt(in, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{25, 30}, out)
	assert.Equal(t, []int{10, 25, 30}, in)

	out, err = lessons.RemoveAt(in, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 25}, out)

	_, err = lessons.RemoveAt(in, 3)
	assert.ErrorIs(t, err, lessons.ErrIndexOutOfRange)
	_, err = lessons.RemoveAt(in, -1)
	assert.ErrorIs(t, err, lessons.ErrIndexOutOfRange)
}

func TestRecords(t *testing.T) {
	b := lessons.NewBook(120, 5)
	assert.Equal(t, "Book has 120 pages", b.PageCountLine())
	assert.Equal(t, "Book has a rating of 5/5", b.RatingLine())

	p := lessons.NewPerson("Ada", 36)
	assert.Equal(t, "Name: Ada, Age: 36", p.Details())
}
