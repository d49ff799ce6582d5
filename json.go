package tabtex

import (
	"encoding/json"
	"io"
)

// WriteJSON encodes r as one JSON document. An empty indent writes compact
// JSON. Markup is not HTML-escaped.
func (r *Result) WriteJSON(w io.Writer, indent string) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(r)
}
