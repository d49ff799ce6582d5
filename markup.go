package tabtex

import (
	"bytes"
	"io"
	"strconv"
	"strings"
)

// Markup tokens.
const (
	ExportDelimiter = "$$"
	ColumnSeparator = " & "
	RowBreak        = `\\`
	HLine           = `\hline`
	columnBorder    = "|"
)

// WriteMarkup writes the array markup for g to w. Rows shorter than the
// widest row are padded with empty cells, and aligns is padded with
// [AlignLeft] or truncated to the column count. An empty grid writes nothing.
func WriteMarkup(w io.Writer, g Grid, aligns []Alignment, st Style) error {
	if g.Empty() {
		return nil
	}
	cols := g.Columns()
	aligns = extendAligns(aligns, cols)

	var b strings.Builder
	if st.Export {
		b.WriteString(ExportDelimiter + "\n")
	}
	if d := st.Size.Directive(); d != "" {
		b.WriteString(d + " ")
	}
	b.WriteString(`\def\arraystretch{` + formatSpacing(st.RowSpacing) + "}\n")
	b.WriteString(`\begin{array}{` + columnSpec(aligns) + "} " + HLine + "\n")
	for i, row := range g {
		b.WriteString("  ")
		b.WriteString(strings.Join(markupCells(row, i, cols, st), ColumnSeparator))
		b.WriteString(" " + RowBreak + " " + HLine + "\n")
	}
	b.WriteString(`\end{array}`)
	if st.Export {
		b.WriteString("\n" + ExportDelimiter)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Generate returns the array markup for g. See [WriteMarkup].
func Generate(g Grid, aligns []Alignment, st Style) string {
	var buf bytes.Buffer
	_ = WriteMarkup(&buf, g, aligns, st) // bytes.Buffer writes do not fail
	return buf.String()
}

// columnSpec builds a spec like "|l|c|r|".
func columnSpec(aligns []Alignment) string {
	var b strings.Builder
	for _, a := range aligns {
		b.WriteString(columnBorder + a.Code())
	}
	b.WriteString(columnBorder)
	return b.String()
}

// markupCells escapes and decorates one row, padded to cols cells. Padding
// cells stay empty and undecorated.
func markupCells(row []string, rowIdx, cols int, st Style) []string {
	cells := make([]string, cols)
	for i, cell := range row {
		content := Escape(cell)
		strong := (rowIdx == 0 && st.BoldHeader) || (i == 0 && st.BoldFirstColumn)
		if strong {
			content = bold(content)
		}
		if st.Text == TextSans {
			content = sans(content)
		}
		cells[i] = content
	}
	return cells
}

func formatSpacing(f float64) string {
	if f <= 0 {
		f = 1
	}
	return strconv.FormatFloat(f, 'f', 2, 64)
}
