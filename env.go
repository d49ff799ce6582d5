package tabtex

import (
	"fmt"
	"strconv"
)

// Environment variables read by [StyleFromEnv].
const (
	EnvBoldHeader      = "TABTEX_BOLD_HEADER"
	EnvBoldFirstColumn = "TABTEX_BOLD_FIRST_COLUMN"
	EnvSize            = "TABTEX_SIZE"
	EnvTextStyle       = "TABTEX_TEXT_STYLE"
	EnvRowSpacing      = "TABTEX_ROW_SPACING"
	EnvExport          = "TABTEX_EXPORT"
)

// StyleFromEnv overlays variables found through getenv onto base. Unset or
// empty variables leave the base value alone. Pass [os.Getenv] in production.
func StyleFromEnv(base Style, getenv func(string) string) (Style, error) {
	st := base
	for _, b := range []struct {
		key string
		dst *bool
	}{
		{EnvBoldHeader, &st.BoldHeader},
		{EnvBoldFirstColumn, &st.BoldFirstColumn},
		{EnvExport, &st.Export},
	} {
		v := getenv(b.key)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return base, fmt.Errorf("%w: %s=%q", ErrInvalidStyle, b.key, v)
		}
		*b.dst = parsed
	}
	if v := getenv(EnvSize); v != "" {
		size, err := ParseSize(v)
		if err != nil {
			return base, err
		}
		st.Size = size
	}
	if v := getenv(EnvTextStyle); v != "" {
		text, err := ParseTextStyle(v)
		if err != nil {
			return base, err
		}
		st.Text = text
	}
	if v := getenv(EnvRowSpacing); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return base, fmt.Errorf("%w: %s=%q", ErrInvalidStyle, EnvRowSpacing, v)
		}
		st.RowSpacing = f
	}
	if err := st.Validate(); err != nil {
		return base, err
	}
	return st, nil
}
