// Package highlight colors generated markup for terminal display.
package highlight

import (
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const (
	// DefaultStyle is used when no style name is configured.
	DefaultStyle = "catppuccin-mocha"
	lexerName    = "tex"
	formatter    = "terminal256"
)

// Write tokenizes src as TeX and writes it to w with ANSI colors. Unknown
// style names fall back to the chroma default style.
func Write(w io.Writer, src, styleName string) error {
	lexer := lexers.Get(lexerName)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	if styleName == "" {
		styleName = DefaultStyle
	}
	style := styles.Get(styleName)

	f := formatters.Get(formatter)
	if f == nil {
		f = formatters.Fallback
	}

	it, err := lexer.Tokenise(nil, src)
	if err != nil {
		return err
	}
	return f.Format(w, style, it)
}
