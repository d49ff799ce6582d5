package tabtex

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// BorderStyle controls the characters of a text preview.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─┬─╮ │ ╰─┴─╯
	BorderNone                       // Columns separated by two spaces
	BorderASCII                      // +-+ |
)

// ParseBorderStyle parses "rounded", "ascii" or "none".
func ParseBorderStyle(s string) (BorderStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rounded":
		return BorderRounded, nil
	case "ascii":
		return BorderASCII, nil
	case "none":
		return BorderNone, nil
	default:
		return BorderRounded, fmt.Errorf("%w: border %q", ErrInvalidStyle, s)
	}
}

// edge is one horizontal line of a frame: the characters at its two ends,
// between columns, and repeated across each column.
type edge struct {
	left, fill, join, right string
}

type frame struct {
	top, header, bottom edge
	// row holds the vertical separators; its fill is unused.
	row edge
	// pad surrounds every cell on both sides.
	pad string
}

var frames = map[BorderStyle]frame{
	BorderRounded: {
		top:    edge{"╭", "─", "┬", "╮"},
		header: edge{"├", "─", "┼", "┤"},
		bottom: edge{"╰", "─", "┴", "╯"},
		row:    edge{"│", "", "│", "│"},
		pad:    " ",
	},
	BorderASCII: {
		top:    edge{"+", "-", "+", "+"},
		header: edge{"+", "-", "+", "+"},
		bottom: edge{"+", "-", "+", "+"},
		row:    edge{"|", "", "|", "|"},
		pad:    " ",
	},
	BorderNone: {
		header: edge{"", "-", "  ", ""},
		row:    edge{"", "", "  ", ""},
	},
}

// textTable lays out a normalized grid in fixed-width columns.
type textTable struct {
	w      io.Writer
	f      frame
	widths []int
	aligns []Alignment
}

// WriteText draws g as a terminal table, a plain-text stand-in for the
// typeset preview. Columns follow aligns and are sized by display width.
// A rule separates the first row when st.BoldHeader is set.
func WriteText(w io.Writer, g Grid, aligns []Alignment, st Style, border BorderStyle) error {
	if g.Empty() {
		return nil
	}
	f, ok := frames[border]
	if !ok {
		f = frames[BorderRounded]
	}
	rows := g.Normalize()
	t := &textTable{
		w:      w,
		f:      f,
		widths: displayWidths(rows),
		aligns: extendAligns(aligns, g.Columns()),
	}

	if err := t.rule(f.top); err != nil {
		return err
	}
	for i, row := range rows {
		if err := t.line(row); err != nil {
			return err
		}
		if i == 0 && st.BoldHeader && len(rows) > 1 {
			if err := t.rule(f.header); err != nil {
				return err
			}
		}
	}
	return t.rule(f.bottom)
}

// displayWidths returns the widest cell of each column in terminal cells.
func displayWidths(rows Grid) []int {
	widths := make([]int, rows.Columns())
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	return widths
}

// rule draws a horizontal line. An edge without fill is skipped.
func (t *textTable) rule(e edge) error {
	if e.fill == "" {
		return nil
	}
	parts := make([]string, len(t.widths))
	for i, width := range t.widths {
		parts[i] = strings.Repeat(e.fill, width+2*len(t.f.pad))
	}
	return t.emit(e.left + strings.Join(parts, e.join) + e.right)
}

func (t *textTable) line(cells []string) error {
	parts := make([]string, len(t.widths))
	for i, width := range t.widths {
		parts[i] = t.f.pad + alignCell(cells[i], width, t.aligns[i]) + t.f.pad
	}
	e := t.f.row
	return t.emit(e.left + strings.Join(parts, e.join) + e.right)
}

func (t *textTable) emit(s string) error {
	_, err := fmt.Fprintln(t.w, strings.TrimRight(s, " "))
	return err
}

// alignCell pads s with spaces to width display cells. Text wider than the
// column is returned unchanged.
func alignCell(s string, width int, align Alignment) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + s
	case AlignCenter:
		before := gap / 2
		return strings.Repeat(" ", before) + s + strings.Repeat(" ", gap-before)
	default:
		return s + strings.Repeat(" ", gap)
	}
}
