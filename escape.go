package tabtex

import (
	"regexp"
	"strings"
)

// reservedReplacer escapes reserved characters in a single left-to-right
// pass, so the braces and backslashes it inserts are never escaped again.
var reservedReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

var (
	reBoldStars       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	reBoldUnderscores = regexp.MustCompile(`__([^_]+)__`)
)

// Escape converts raw cell text into safe array markup. Reserved characters
// are escaped first. Then **text** and __text__ become bold spans, stray
// asterisks are removed, and remaining underscores are escaped.
func Escape(cell string) string {
	s := reservedReplacer.Replace(cell)
	s = reBoldStars.ReplaceAllString(s, bold("${1}"))
	s = reBoldUnderscores.ReplaceAllString(s, bold("${1}"))
	s = strings.ReplaceAll(s, "*", "")
	return strings.ReplaceAll(s, "_", `\_`)
}

func bold(s string) string { return `\textbf{` + s + `}` }

func sans(s string) string { return `\textsf{` + s + `}` }
