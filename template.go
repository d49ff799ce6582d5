package tabtex

import (
	"fmt"
	"io"
	"strings"
	"text/template"
)

// templateFuncs are available inside every [Template].
var templateFuncs = template.FuncMap{
	"export":  ExportTransform,
	"preview": PreviewSource,
	"join":    strings.Join,
}

// Template renders a [Result] through text/template. Besides the builtins,
// templates can call export and preview on markup, and join on a row.
type Template struct {
	tmpl *template.Template
}

// ParseTemplate parses text as a result template.
func ParseTemplate(text string) (*Template, error) {
	tmpl, err := template.New("result").Funcs(templateFuncs).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	return &Template{tmpl: tmpl}, nil
}

// Execute writes r through the template followed by a newline.
func (t *Template) Execute(w io.Writer, r *Result) error {
	if err := t.tmpl.Execute(w, r); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
