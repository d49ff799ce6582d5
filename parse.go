package tabtex

import "fmt"

// Table is the result of parsing raw input in one dialect.
type Table struct {
	Dialect Dialect `json:"dialect"`
	Rows    Grid    `json:"rows"`
	// Hints holds positional column alignments taken from a Markdown
	// separator line. Nil for other dialects or when no separator was seen.
	Hints []Alignment `json:"hints,omitempty"`
}

// Parse splits raw into lines and parses them as dialect d. [Auto] runs
// [Detect] first. Parsing itself never fails: a line without the expected
// separator becomes a single-cell row. The only error is an unknown dialect.
// Callers decide whether an empty result is a failure.
func Parse(raw string, d Dialect) (*Table, error) {
	lines := Lines(raw)
	if d == Auto || d == "" {
		d = Detect(lines)
	}
	t := &Table{Dialect: d}
	switch d {
	case Markdown:
		t.Rows, t.Hints = parseMarkdown(lines)
	case CSV:
		t.Rows = parseCSV(lines)
	case TSV:
		t.Rows = parseTSV(lines)
	case Space:
		t.Rows = parseSpace(lines)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDialect, d)
	}
	return t, nil
}
