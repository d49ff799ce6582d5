package tabtex

// Grid is an ordered sequence of rows of raw cell text. Rows may differ in
// length until [Grid.Normalize] pads them.
type Grid [][]string

// Columns returns the length of the longest row, or 0 for an empty grid.
func (g Grid) Columns() int {
	n := 0
	for _, row := range g {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// Empty reports whether the grid has no rows.
func (g Grid) Empty() bool { return len(g) == 0 }

// Normalize returns a rectangular copy of g. Short rows are right-padded with
// empty cells up to [Grid.Columns].
func (g Grid) Normalize() Grid {
	n := g.Columns()
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = padRow(row, n)
	}
	return out
}

// padRow returns a copy of cells with exactly n entries.
func padRow(cells []string, n int) []string {
	row := make([]string, n)
	copy(row, cells)
	return row
}
