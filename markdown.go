package tabtex

import (
	"regexp"
	"strings"
)

var (
	// reMDSeparator matches a separator row: only hyphens, colons, pipes and
	// whitespace.
	reMDSeparator = regexp.MustCompile(`^[-:|\s]+$`)
	// reMDSepToken matches one alignment token inside a separator row.
	reMDSepToken = regexp.MustCompile(`[-:]+`)
)

// parseMarkdown returns the data rows of a pipe table and the alignment hints
// of its separator row. Separator rows are never emitted as data. When more
// than one separator row is present, later tokens overwrite earlier ones
// position by position.
func parseMarkdown(lines []string) (Grid, []Alignment) {
	var (
		rows  Grid
		hints []Alignment
	)
	for _, ln := range lines {
		if reMDSeparator.MatchString(ln) {
			for i, tok := range reMDSepToken.FindAllString(ln, -1) {
				if i >= len(hints) {
					hints = append(hints, AlignLeft)
				}
				hints[i] = parseMDAlignment(tok)
			}
			continue
		}
		if cells := splitPipeCells(ln); len(cells) > 0 {
			rows = append(rows, cells)
		}
	}
	return rows, hints
}

// splitPipeCells splits a row on pipes and trims each cell. A leading and a
// trailing empty cell, produced by a row bounded by pipes, are dropped.
func splitPipeCells(line string) []string {
	parts := strings.Split(line, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	last := len(parts) - 1
	start, end := 0, len(parts)
	if parts[0] == "" {
		start = 1
	}
	if last > 0 && parts[last] == "" {
		end = last
	}
	if start >= end {
		return nil
	}
	return parts[start:end]
}

// parseMDAlignment maps a separator token like ":---:", "---:" or ":---" to
// an alignment. Colons on both ends mean center; a trailing colon alone means
// right; anything else is left.
func parseMDAlignment(tok string) Alignment {
	left := strings.HasPrefix(tok, ":")
	right := strings.HasSuffix(tok, ":")
	switch {
	case left && right:
		return AlignCenter
	case right:
		return AlignRight
	default:
		return AlignLeft
	}
}
