package tabtex

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
)

// Result describes the state after a successful [Session.Convert].
type Result struct {
	Dialect    Dialect     `json:"dialect"`
	Grid       Grid        `json:"grid"`
	Alignments []Alignment `json:"alignments"`
	Markup     string      `json:"markup"`
	// Layout changes whenever the alignments were reset to a new column
	// count. Per-column controls built for an older layout are stale.
	Layout int `json:"layout"`
	// Cleared is set when the input was empty and the session was reset.
	Cleared bool `json:"cleared,omitempty"`
}

// Option configures a [Session].
type Option func(*Session)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithStyle sets the initial style.
func WithStyle(st Style) Option {
	return func(s *Session) { s.style = st }
}

// Session owns the current grid, column alignments, style and markup. The
// grid and alignments are replaced together on every successful conversion
// and cleared together on empty input. Alignments survive restyling and are
// reset only when the column count changes.
//
// A Session is not safe for concurrent use.
type Session struct {
	logger *slog.Logger
	style  Style
	grid   Grid
	aligns []Alignment
	markup string
	layout int
}

// NewSession returns an empty session using [DefaultStyle] unless overridden.
func NewSession(opts ...Option) *Session {
	s := &Session{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		style:  DefaultStyle(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Convert parses raw in dialect d ([Auto] detects it) and regenerates the
// markup. Whitespace-only input clears the session and is not an error. When
// parsing yields no rows, Convert returns [ErrUnparseable] and leaves the
// previous state untouched.
func (s *Session) Convert(raw string, d Dialect) (*Result, error) {
	if strings.TrimSpace(raw) == "" {
		s.Clear()
		return &Result{Layout: s.layout, Cleared: true}, nil
	}
	t, err := Parse(raw, d)
	if err != nil {
		return nil, err
	}
	if t.Rows.Empty() {
		s.logger.Debug("no rows parsed", "dialect", t.Dialect)
		return nil, fmt.Errorf("%w: dialect %s yielded no rows", ErrUnparseable, t.Dialect)
	}

	s.grid = t.Rows.Normalize()
	cols := s.grid.Columns()
	if len(s.aligns) != cols {
		s.aligns = fillAligns(cols)
		s.layout++
		s.logger.Debug("column alignments reset", "columns", cols, "layout", s.layout)
	}
	for i, a := range t.Hints {
		if i < cols {
			s.aligns[i] = a
		}
	}
	s.regenerate()
	s.logger.Debug("converted table",
		"dialect", t.Dialect,
		"rows", len(s.grid),
		"columns", cols,
	)
	return &Result{
		Dialect:    t.Dialect,
		Grid:       s.Grid(),
		Alignments: s.Alignments(),
		Markup:     s.markup,
		Layout:     s.layout,
	}, nil
}

// Restyle validates and stores st, then regenerates the markup when a table
// is present. Column alignments are kept.
func (s *Session) Restyle(st Style) (string, error) {
	if err := st.Validate(); err != nil {
		return s.markup, err
	}
	s.style = st
	if !s.grid.Empty() {
		s.regenerate()
	}
	return s.markup, nil
}

// SetColumnAlignment changes one column's alignment and regenerates the
// markup.
func (s *Session) SetColumnAlignment(col int, a Alignment) ([]Alignment, error) {
	if col < 0 || col >= len(s.aligns) {
		return s.Alignments(), fmt.Errorf("%w: %d of %d", ErrColumnOutOfRange, col, len(s.aligns))
	}
	s.aligns[col] = a
	s.regenerate()
	return s.Alignments(), nil
}

// SetAlignments applies aligns position by position, ignoring entries past
// the column count, and regenerates the markup.
func (s *Session) SetAlignments(aligns []Alignment) []Alignment {
	for i, a := range aligns {
		if i < len(s.aligns) {
			s.aligns[i] = a
		}
	}
	if !s.grid.Empty() {
		s.regenerate()
	}
	return s.Alignments()
}

// AlignAll sets every column to a and regenerates the markup. It is a one
// shot action: columns added by a later conversion start out left aligned.
func (s *Session) AlignAll(a Alignment) []Alignment {
	for i := range s.aligns {
		s.aligns[i] = a
	}
	if !s.grid.Empty() {
		s.regenerate()
	}
	return s.Alignments()
}

// Clear drops the grid, alignments and markup. The style is kept.
func (s *Session) Clear() {
	if len(s.aligns) > 0 {
		s.layout++
	}
	s.grid = nil
	s.aligns = nil
	s.markup = ""
}

// Export returns the markup as it should be copied: transformed by
// [ExportTransform] when export mode is on, unchanged otherwise.
func (s *Session) Export() string {
	if s.style.Export && s.markup != "" {
		return ExportTransform(s.markup)
	}
	return s.markup
}

// Grid returns a copy of the current grid.
func (s *Session) Grid() Grid {
	if s.grid == nil {
		return nil
	}
	out := make(Grid, len(s.grid))
	for i, row := range s.grid {
		out[i] = slices.Clone(row)
	}
	return out
}

// Alignments returns a copy of the current column alignments.
func (s *Session) Alignments() []Alignment { return slices.Clone(s.aligns) }

// Markup returns the last generated markup.
func (s *Session) Markup() string { return s.markup }

// Style returns the current style.
func (s *Session) Style() Style { return s.style }

// Columns returns the current column count.
func (s *Session) Columns() int { return len(s.aligns) }

// Layout returns the current alignment layout counter. See [Result.Layout].
func (s *Session) Layout() int { return s.layout }

func (s *Session) regenerate() {
	s.markup = Generate(s.grid, s.aligns, s.style)
}
