package tabtex

import "regexp"

// reSpaceRun separates space-delimited columns.
var reSpaceRun = regexp.MustCompile(` {2,}`)

// parseSpace splits each line on runs of two or more spaces, so single
// spaces stay inside a cell.
func parseSpace(lines []string) Grid {
	rows := make(Grid, 0, len(lines))
	for _, ln := range lines {
		rows = append(rows, trimAll(reSpaceRun.Split(ln, -1)))
	}
	return rows
}
