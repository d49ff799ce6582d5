package tabtex

import (
	"encoding/json"
	"fmt"
	"html"
	"io"
	"strconv"
)

const katexCDN = "https://cdn.jsdelivr.net/npm/katex@0.16.11/dist"

// HTMLRenderer renders preview source as an HTML fragment that KaTeX
// typesets in the browser. Malformed markup is reported by KaTeX inline when
// ThrowOnError is false, so Render itself only fails on encoding errors.
type HTMLRenderer struct{}

// Render implements [Renderer].
func (HTMLRenderer) Render(src string, opts RenderOptions) (string, error) {
	srcJSON, err := json.Marshal(src)
	if err != nil {
		return "", err
	}
	optsJSON, err := json.Marshal(opts)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`<div class="tabtex-preview"></div>
<script>katex.render(%s, document.currentScript.previousElementSibling, %s);</script>`, srcJSON, optsJSON), nil
}

// WritePreviewPage writes a standalone HTML page showing p. The scale is
// applied as a CSS transform anchored at the top left.
func WritePreviewPage(w io.Writer, title string, p Preview) error {
	lines := []string{
		"<!DOCTYPE html>",
		"<html>",
		"<head>",
		`  <meta charset="utf-8">`,
		fmt.Sprintf("  <title>%s</title>", html.EscapeString(title)),
		fmt.Sprintf(`  <link rel="stylesheet" href="%s/katex.min.css">`, katexCDN),
		fmt.Sprintf(`  <script src="%s/katex.min.js"></script>`, katexCDN),
		"</head>",
		"<body>",
		fmt.Sprintf(`<div style="%s">`, scaleStyle(p.Scale)),
		p.Content,
		"</div>",
		"</body>",
		"</html>",
	}
	for _, ln := range lines {
		if _, err := fmt.Fprintln(w, ln); err != nil {
			return err
		}
	}
	return nil
}

func scaleStyle(scale float64) string {
	if scale <= 0 {
		scale = 1
	}
	return "transform: scale(" + strconv.FormatFloat(scale, 'f', -1, 64) + "); transform-origin: top left"
}
