package lessons

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when a lesson name does not match any Kind.
var ErrUnknownKind = errors.New("unknown lesson")

// Kind identifies a lesson
type Kind uint8

const (
	KindInvalid Kind = iota
	KindVariables
	KindLoops
	KindFunctions
	KindStructs
	KindMethods
	KindBorrowing
	KindPointers
	KindConditionals
	KindArrays
	KindSlices
	KindAllocation
)

var kindNames = map[Kind]string{
	KindVariables:    "variables",
	KindLoops:        "loops",
	KindFunctions:    "functions",
	KindStructs:      "structs",
	KindMethods:      "methods",
	KindBorrowing:    "borrowing",
	KindPointers:     "pointers",
	KindConditionals: "conditionals",
	KindArrays:       "arrays",
	KindSlices:       "slices",
	KindAllocation:   "allocation",
}

func (k Kind) String() string {
	v, ok := kindNames[k]
	if !ok {
		return fmt.Sprintf("invalid(%d)", k)
	}
	return v
}

// ParseKind maps a lesson name to its Kind.
func ParseKind(name string) (Kind, error) {
	for k, v := range kindNames {
		if v == name {
			return k, nil
		}
	}
	return KindInvalid, fmt.Errorf("%w %q", ErrUnknownKind, name)
}

// UnmarshalText for setting kinds from flags and config.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("%w %d", ErrUnknownKind, k)
	}
	return []byte(k.String()), nil
}
