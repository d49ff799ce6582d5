package tabtex

import "strings"

// Lines splits raw input into rows. Carriage returns before the newline are
// dropped, as are lines containing only whitespace.
func Lines(raw string) []string {
	parts := strings.Split(raw, "\n")
	lines := make([]string, 0, len(parts))
	for _, ln := range parts {
		ln = strings.TrimSuffix(ln, "\r")
		if strings.TrimSpace(ln) == "" {
			continue
		}
		lines = append(lines, ln)
	}
	return lines
}

// Detect classifies lines as one dialect. The first rule that matches wins:
// a pipe anywhere means Markdown, then a tab means TSV, then a comma means
// CSV. Anything else is space-delimited.
func Detect(lines []string) Dialect {
	for _, probe := range []struct {
		sep     string
		dialect Dialect
	}{
		{"|", Markdown},
		{"\t", TSV},
		{",", CSV},
	} {
		for _, ln := range lines {
			if strings.Contains(ln, probe.sep) {
				return probe.dialect
			}
		}
	}
	return Space
}
