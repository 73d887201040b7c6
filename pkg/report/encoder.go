// Package report renders MaxFinder results and lessons as text or JSON lines.
package report

import (
	"bufio"
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/amirkhaki/gobasics/pkg/lessons"
	"github.com/amirkhaki/gobasics/pkg/maxfind"
)

type maxRecord struct {
	Input   []int64 `json:"input"`
	Present bool    `json:"present"`
	Max     *int64  `json:"max,omitempty"`
}

type lessonRecord struct {
	Lesson lessons.Kind `json:"lesson"`
	Title  string       `json:"title"`
	Lines  []string     `json:"lines"`
}

// Encoder writes records to an underlying writer. Output is buffered until
// Flush is called.
type Encoder struct {
	format Format
	w      *bufio.Writer
	enc    *json.Encoder
}

// NewEncoder returns an Encoder writing to w. The zero Format means text.
func NewEncoder(w io.Writer, f Format) *Encoder {
	if f == "" {
		f = FormatText
	}
	bw := bufio.NewWriter(w)
	return &Encoder{format: f, w: bw, enc: json.NewEncoder(bw)}
}

// WriteMax writes the result of a max search over input.
func (e *Encoder) WriteMax(input []int64, r maxfind.Result[int64]) error {
	m, ok := r.Get()
	if e.format == FormatJSON {
		rec := maxRecord{Input: input, Present: ok}
		if rec.Input == nil {
			rec.Input = []int64{}
		}
		if ok {
			rec.Max = &m
		}
		if err := e.enc.Encode(rec); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		return nil
	}

	var err error
	if ok {
		_, err = fmt.Fprintf(e.w, "The maximum value is: %d\n", m)
	} else {
		_, err = fmt.Fprintln(e.w, "The sequence is empty")
	}
	return err
}

// WriteLesson runs l and writes its output.
func (e *Encoder) WriteLesson(l lessons.Lesson) error {
	lines := l.Run()
	if e.format == FormatJSON {
		if lines == nil {
			lines = []string{}
		}
		if err := e.enc.Encode(lessonRecord{Lesson: l.Kind, Title: l.Title, Lines: lines}); err != nil {
			return fmt.Errorf("failed to encode lesson %s: %w", l.Kind, err)
		}
		return nil
	}

	if _, err := fmt.Fprintf(e.w, "== %s ==\n", l.Title); err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(e.w, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteKinds lists lessons, one per line in text mode.
func (e *Encoder) WriteKinds(ls []lessons.Lesson) error {
	for _, l := range ls {
		var err error
		if e.format == FormatJSON {
			err = e.enc.Encode(lessonRecord{Lesson: l.Kind, Title: l.Title, Lines: []string{}})
		} else {
			_, err = fmt.Fprintf(e.w, "%-13s %s\n", l.Kind, l.Title)
		}
		if err != nil {
			return fmt.Errorf("failed to list lesson %s: %w", l.Kind, err)
		}
	}
	return nil
}

func (e *Encoder) Flush() error {
	return e.w.Flush()
}
