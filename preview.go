package tabtex

import (
	"fmt"
	"html"
	"regexp"
)

var (
	reLeadingDelim  = regexp.MustCompile(`^\$\$\n?`)
	reTrailingDelim = regexp.MustCompile(`\n?\$\$$`)
	reArrayStretch  = regexp.MustCompile(`\\def\\arraystretch\{[^}]*\}\n?`)
	reSizeDirective = regexp.MustCompile(`\\(?:small|large)\s*`)
)

// RenderOptions configures a math rendering engine.
type RenderOptions struct {
	// ThrowOnError makes malformed input fail instead of rendering an
	// inline error marker.
	ThrowOnError bool `json:"throwOnError"`
	DisplayMode  bool `json:"displayMode"`
	// Trust allows sizing and color directives embedded in the source.
	Trust  bool `json:"trust"`
	Strict bool `json:"strict"`
}

// PreviewOptions are the options every preview render uses.
var PreviewOptions = RenderOptions{
	ThrowOnError: false,
	DisplayMode:  true,
	Trust:        true,
	Strict:       false,
}

// Renderer turns preview source into displayable content.
type Renderer interface {
	Render(src string, opts RenderOptions) (string, error)
}

// Preview is the outcome of one preview render.
type Preview struct {
	Source  string
	Content string
	Scale   float64
	// Err is set when the renderer failed. Content then holds an inline
	// error message instead of the rendering.
	Err error
}

// PreviewSource strips what preview engines do not support from markup:
// export delimiters, the row spacing definition, and size directives.
func PreviewSource(markup string) string {
	src := reLeadingDelim.ReplaceAllString(markup, "")
	src = reTrailingDelim.ReplaceAllString(src, "")
	src = reArrayStretch.ReplaceAllString(src, "")
	return reSizeDirective.ReplaceAllString(src, "")
}

// RenderPreview renders markup through r with [PreviewOptions]. A renderer
// failure never propagates: it is reported in the returned Preview as a
// visible error message.
func RenderPreview(r Renderer, markup string, size Size) Preview {
	p := Preview{
		Source: PreviewSource(markup),
		Scale:  size.Scale(),
	}
	content, err := r.Render(p.Source, PreviewOptions)
	if err != nil {
		p.Err = err
		p.Content = previewError(err)
		return p
	}
	p.Content = content
	return p
}

func previewError(err error) string {
	return fmt.Sprintf(`<span style="color: red;">preview error: %s</span>`, html.EscapeString(err.Error()))
}
