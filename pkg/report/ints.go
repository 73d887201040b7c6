package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

func isSeparator(r rune) bool {
	return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func parseInt(field string) (int64, error) {
	v, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse integer %q: %w", field, err)
	}
	return v, nil
}

// ParseInts parses integers from tokens. A token may hold several values
// separated by commas or whitespace, so "1,2" and "1 2" both give [1 2].
func ParseInts(tokens []string) ([]int64, error) {
	out := []int64{}
	for _, tok := range tokens {
		for _, field := range strings.FieldsFunc(tok, isSeparator) {
			v, err := parseInt(field)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}
	return out, nil
}

// scanNumbers is a bufio.SplitFunc yielding one token per value, so the
// scanner buffer only has to hold a single number, not a whole line.
func scanNumbers(data []byte, atEOF bool) (int, []byte, error) {
	start := 0
	for start < len(data) && isSeparator(rune(data[start])) {
		start++
	}
	for i := start; i < len(data); i++ {
		if isSeparator(rune(data[i])) {
			return i + 1, data[start:i], nil
		}
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

// ReadInts reads integers separated by commas or whitespace from r until EOF.
func ReadInts(r io.Reader) ([]int64, error) {
	sc := bufio.NewScanner(r)
	sc.Split(scanNumbers)

	out := []int64{}
	for sc.Scan() {
		v, err := parseInt(sc.Text())
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return out, nil
}
