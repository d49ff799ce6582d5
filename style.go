package tabtex

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Size selects the size directive placed before the array.
type Size string

const (
	SizeNormal Size = "normal"
	SizeSmall  Size = "small"
	SizeLarge  Size = "large"
)

// Directive returns the size command, or "" for normal size.
func (s Size) Directive() string {
	switch s {
	case SizeSmall:
		return `\small`
	case SizeLarge:
		return `\large`
	default:
		return ""
	}
}

// Scale returns the visual scale a preview applies in place of the size
// directive, which preview engines ignore.
func (s Size) Scale() float64 {
	switch s {
	case SizeSmall:
		return 0.85
	case SizeLarge:
		return 1.2
	default:
		return 1
	}
}

// ParseSize parses a size name.
func ParseSize(s string) (Size, error) {
	switch v := Size(strings.ToLower(strings.TrimSpace(s))); v {
	case SizeNormal, SizeSmall, SizeLarge:
		return v, nil
	case "":
		return SizeNormal, nil
	default:
		return "", fmt.Errorf("%w: size %q", ErrInvalidStyle, s)
	}
}

// TextStyle selects the cell font family.
type TextStyle string

const (
	TextSerif TextStyle = "serif"
	TextSans  TextStyle = "sans"
)

// ParseTextStyle parses a text style name.
func ParseTextStyle(s string) (TextStyle, error) {
	switch v := TextStyle(strings.ToLower(strings.TrimSpace(s))); v {
	case TextSerif, TextSans:
		return v, nil
	case "":
		return TextSerif, nil
	default:
		return "", fmt.Errorf("%w: text style %q", ErrInvalidStyle, s)
	}
}

// Style configures markup generation. It is a plain value; each generation
// reads it once.
type Style struct {
	BoldHeader      bool      `yaml:"bold_header" json:"bold_header"`
	BoldFirstColumn bool      `yaml:"bold_first_column" json:"bold_first_column"`
	Size            Size      `yaml:"size" json:"size"`
	Text            TextStyle `yaml:"text_style" json:"text_style"`
	RowSpacing      float64   `yaml:"row_spacing" json:"row_spacing"`
	// Export wraps the markup in display-math delimiters and enables
	// [ExportTransform] on copy.
	Export bool `yaml:"export" json:"export"`
}

// DefaultStyle returns the style used before any configuration is applied.
func DefaultStyle() Style {
	return Style{
		Size:       SizeNormal,
		Text:       TextSerif,
		RowSpacing: 1,
	}
}

// Validate checks enumerated fields and requires a positive row spacing.
// Empty Size and Text are accepted and mean normal and serif.
func (s Style) Validate() error {
	err := validation.ValidateStruct(&s,
		validation.Field(&s.Size, validation.In(SizeNormal, SizeSmall, SizeLarge)),
		validation.Field(&s.Text, validation.In(TextSerif, TextSans)),
		validation.Field(&s.RowSpacing, validation.Required, validation.Min(0.0).Exclusive()),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStyle, err)
	}
	return nil
}
