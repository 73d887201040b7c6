package report

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
)

var ErrUnknownFormat = errors.New("unknown format")

// Format selects how an Encoder renders output.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

var _ pflag.Value = (*Format)(nil)

// ParseFormat accepts "text" or "json". The empty string means text.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w %q (want text or json)", ErrUnknownFormat, s)
	}
}

func (f *Format) Set(s string) error {
	v, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f Format) String() string {
	if f == "" {
		return string(FormatText)
	}
	return string(f)
}

func (f *Format) Type() string {
	return "format"
}

// UnmarshalText for setting values with configs, env, etc.
func (f *Format) UnmarshalText(text []byte) error {
	return f.Set(string(text))
}
