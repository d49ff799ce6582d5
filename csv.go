package tabtex

import "strings"

// parseCSV splits each line on commas outside double quotes. Quotes toggle
// the quoted state and are not kept. Doubled quotes are not an escape.
func parseCSV(lines []string) Grid {
	rows := make(Grid, 0, len(lines))
	for _, ln := range lines {
		rows = append(rows, splitCSVLine(ln))
	}
	return rows
}

func splitCSVLine(line string) []string {
	var (
		fields  []string
		field   strings.Builder
		inQuote bool
	)
	for _, ch := range line {
		switch {
		case ch == '"':
			inQuote = !inQuote
		case ch == ',' && !inQuote:
			fields = append(fields, strings.TrimSpace(field.String()))
			field.Reset()
		default:
			field.WriteRune(ch)
		}
	}
	return append(fields, strings.TrimSpace(field.String()))
}
