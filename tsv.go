package tabtex

import "strings"

func parseTSV(lines []string) Grid {
	rows := make(Grid, 0, len(lines))
	for _, ln := range lines {
		rows = append(rows, trimAll(strings.Split(ln, "\t")))
	}
	return rows
}

func trimAll(cells []string) []string {
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}
