package tabtex

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LoadStyle decodes a YAML style document over base and validates the
// result. Keys missing from the document keep their base value; unknown keys
// are rejected. Pass [DefaultStyle] as base when nothing else applies.
func LoadStyle(r io.Reader, base Style) (Style, error) {
	st := base
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&st); err != nil && !errors.Is(err, io.EOF) {
		return Style{}, fmt.Errorf("%w: %v", ErrInvalidStyle, err)
	}
	if err := st.Validate(); err != nil {
		return Style{}, err
	}
	return st, nil
}

// WriteStyle encodes st as a YAML document that [LoadStyle] accepts.
func WriteStyle(w io.Writer, st Style) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(st); err != nil {
		return err
	}
	return enc.Close()
}
