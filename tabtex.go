package tabtex

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedDialect = errors.New("unsupported dialect")
	ErrUnparseable        = errors.New("table could not be parsed")
	ErrColumnOutOfRange   = errors.New("column out of range")
	ErrInvalidAlignment   = errors.New("invalid alignment")
	ErrInvalidStyle       = errors.New("invalid style")
	ErrInvalidTemplate    = errors.New("invalid template")
)

// Dialect identifies the tabular text format of an input.
type Dialect string

const (
	Auto     Dialect = "auto"
	Markdown Dialect = "markdown"
	CSV      Dialect = "csv"
	TSV      Dialect = "tsv"
	Space    Dialect = "space"
)

var dialects = []Dialect{Markdown, CSV, TSV, Space}

// String returns the dialect name.
func (d Dialect) String() string { return string(d) }

// Dialects returns the concrete dialects. Auto is not included because it is
// resolved by [Detect] before parsing.
func Dialects() []Dialect {
	out := make([]Dialect, len(dialects))
	copy(out, dialects)
	return out
}

// ParseDialect parses a dialect name. Recognizes "auto", every concrete
// dialect, and "space-delimited" as an alias for [Space].
func ParseDialect(s string) (Dialect, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", string(Auto):
		return Auto, nil
	case "space-delimited":
		return Space, nil
	}
	for _, d := range dialects {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedDialect, s)
}

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Code returns the array column specifier for the alignment: l, c or r.
func (a Alignment) Code() string {
	switch a {
	case AlignCenter:
		return "c"
	case AlignRight:
		return "r"
	default:
		return "l"
	}
}

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlignment accepts a full name or a column specifier letter.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "left":
		return AlignLeft, nil
	case "c", "center", "centre":
		return AlignCenter, nil
	case "r", "right":
		return AlignRight, nil
	default:
		return AlignLeft, fmt.Errorf("%w: %q", ErrInvalidAlignment, s)
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (a Alignment) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (a *Alignment) UnmarshalText(b []byte) error {
	v, err := ParseAlignment(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// ParseAlignments parses a comma-separated list such as "l,c,r".
func ParseAlignments(s string) ([]Alignment, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]Alignment, len(parts))
	for i, p := range parts {
		a, err := ParseAlignment(p)
		if err != nil {
			return nil, err
		}
		out[i] = a
	}
	return out, nil
}

// fillAligns returns a fresh alignment sequence of length n, all left.
func fillAligns(n int) []Alignment {
	return make([]Alignment, n)
}

// extendAligns pads or truncates aligns to exactly n entries. Missing entries
// default to AlignLeft.
func extendAligns(aligns []Alignment, n int) []Alignment {
	if len(aligns) >= n {
		return aligns[:n]
	}
	extended := make([]Alignment, n)
	copy(extended, aligns)
	return extended
}
