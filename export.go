package tabtex

import "strings"

// ExportTransform collapses generated markup for publishing surfaces that
// reflow newlines. Every line between delimiters is joined onto one line,
// and each [ExportDelimiter] stays on a line of its own.
func ExportTransform(markup string) string {
	var b strings.Builder
	for _, ln := range strings.Split(markup, "\n") {
		ln = strings.TrimSpace(ln)
		switch {
		case ln == ExportDelimiter:
			b.WriteString(ln + "\n")
		case ln != "":
			b.WriteString(ln + " ")
		}
	}
	out := b.String()
	if strings.HasSuffix(out, " "+ExportDelimiter+"\n") {
		out = strings.TrimSuffix(out, " "+ExportDelimiter+"\n") + "\n" + ExportDelimiter
	}
	return strings.TrimRight(out, " \t\r\n")
}
