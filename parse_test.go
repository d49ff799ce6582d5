package tabtex_test

import (
	"testing"

	"github.com/bjaus/tabtex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	t.Parallel()
	got := tabtex.Lines("a\r\n\n   \n\tb\n\n")
	assert.Equal(t, []string{"a", "\tb"}, got)
	assert.Empty(t, tabtex.Lines(" \n\t\n"))
}

func TestDetect(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  tabtex.Dialect
	}{
		"pipe":           {input: "| a | b |", want: tabtex.Markdown},
		"pipe and comma": {input: "a,b\nc | d", want: tabtex.Markdown},
		"pipe and tab":   {input: "a\tb\nc|d", want: tabtex.Markdown},
		"tab":            {input: "a\tb\nc\td", want: tabtex.TSV},
		"tab and comma":  {input: "a,b\tc", want: tabtex.TSV},
		"comma":          {input: "a,b\nc,d", want: tabtex.CSV},
		"spaces":         {input: "a  b\nc  d", want: tabtex.Space},
		"single word":    {input: "hello", want: tabtex.Space},
		"empty":          {input: "", want: tabtex.Space},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tabtex.Detect(tabtex.Lines(tt.input)))
		})
	}
}

func TestParseRectangular(t *testing.T) {
	t.Parallel()
	want := tabtex.Grid{
		{"Name", "Age", "City"},
		{"Alice", "30", "New York"},
		{"Bob", "25", "Paris"},
	}
	tests := map[string]struct {
		input   string
		dialect tabtex.Dialect
	}{
		"markdown": {
			input:   "| Name | Age | City |\n|------|-----|------|\n| Alice | 30 | New York |\n| Bob | 25 | Paris |",
			dialect: tabtex.Markdown,
		},
		"markdown without outer pipes": {
			input:   "Name | Age | City\n--- | --- | ---\nAlice | 30 | New York\nBob | 25 | Paris",
			dialect: tabtex.Markdown,
		},
		"csv": {
			input:   "Name,Age,City\nAlice, 30 ,New York\nBob,25,Paris\n",
			dialect: tabtex.CSV,
		},
		"tsv": {
			input:   "Name\tAge\tCity\nAlice\t30\tNew York\nBob\t25\tParis",
			dialect: tabtex.TSV,
		},
		"space": {
			input:   "Name   Age  City\nAlice  30   New York\nBob    25   Paris",
			dialect: tabtex.Space,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tabtex.Parse(tt.input, tabtex.Auto)
			require.NoError(t, err)
			assert.Equal(t, tt.dialect, got.Dialect)
			assert.Equal(t, want, got.Rows)
			assert.Equal(t, 3, got.Rows.Columns())
		})
	}
}

func TestParseMarkdownAlignmentHints(t *testing.T) {
	t.Parallel()
	got, err := tabtex.Parse("| a | b |\n|---|:-:|\n| 1 | 2 |", tabtex.Auto)
	require.NoError(t, err)
	assert.Equal(t, tabtex.Grid{{"a", "b"}, {"1", "2"}}, got.Rows)
	assert.Equal(t, []tabtex.Alignment{tabtex.AlignLeft, tabtex.AlignCenter}, got.Hints)
}

func TestParseMarkdownAllAlignments(t *testing.T) {
	t.Parallel()
	got, err := tabtex.Parse("| L | C | R | D |\n|:---|:---:|---:|---|\n| 1 | 2 | 3 | 4 |", tabtex.Markdown)
	require.NoError(t, err)
	assert.Equal(t, []tabtex.Alignment{
		tabtex.AlignLeft, tabtex.AlignCenter, tabtex.AlignRight, tabtex.AlignLeft,
	}, got.Hints)
	assert.Len(t, got.Rows, 2)
}

func TestParseMarkdownRaggedRows(t *testing.T) {
	t.Parallel()
	got, err := tabtex.Parse("| A | B | C |\n|---|---|---|\n| 1 | 2 |\n| 3 | 4 | 5 |", tabtex.Markdown)
	require.NoError(t, err)
	// Rows keep their parsed length; Normalize pads them.
	assert.Equal(t, []string{"1", "2"}, got.Rows[1])
	assert.Equal(t, []string{"1", "2", ""}, got.Rows.Normalize()[1])
}

func TestParseMarkdownEmptyInnerCell(t *testing.T) {
	t.Parallel()
	got, err := tabtex.Parse("| a |  | c |", tabtex.Markdown)
	require.NoError(t, err)
	assert.Equal(t, tabtex.Grid{{"a", "", "c"}}, got.Rows)
	assert.Nil(t, got.Hints)
}

func TestParseMarkdownOnlySeparator(t *testing.T) {
	t.Parallel()
	got, err := tabtex.Parse("|---|---|\n| |", tabtex.Auto)
	require.NoError(t, err)
	assert.True(t, got.Rows.Empty())
}

func TestParseCSVQuotes(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  []string
	}{
		"embedded comma":   {input: `a,"b,c",d`, want: []string{"a", "b,c", "d"}},
		"trailing empty":   {input: `a,b,`, want: []string{"a", "b", ""}},
		"unclosed quote":   {input: `a,"b,c`, want: []string{"a", "b,c"}},
		"doubled quotes":   {input: `"say ""hi""",x`, want: []string{"say hi", "x"}},
		"trimmed":          {input: `  a  ,  " b "  `, want: []string{"a", "b"}},
		"no comma at all":  {input: `single`, want: []string{"single"}},
		"multibyte fields": {input: `名前,"東京,大阪"`, want: []string{"名前", "東京,大阪"}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tabtex.Parse(tt.input, tabtex.CSV)
			require.NoError(t, err)
			require.Len(t, got.Rows, 1)
			assert.Equal(t, tt.want, got.Rows[0])
		})
	}
}

func TestParseTSVKeepsSpaces(t *testing.T) {
	t.Parallel()
	got, err := tabtex.Parse("first name\t last name \nAda Lovelace\tx", tabtex.Auto)
	require.NoError(t, err)
	assert.Equal(t, tabtex.TSV, got.Dialect)
	assert.Equal(t, tabtex.Grid{{"first name", "last name"}, {"Ada Lovelace", "x"}}, got.Rows)
}

func TestParseSpaceSingleSpacesStayInCell(t *testing.T) {
	t.Parallel()
	got, err := tabtex.Parse("New York  8.3 million\nParis     2.1 million", tabtex.Space)
	require.NoError(t, err)
	assert.Equal(t, tabtex.Grid{{"New York", "8.3 million"}, {"Paris", "2.1 million"}}, got.Rows)
}

func TestParseLineWithoutSeparatorIsSingleCell(t *testing.T) {
	t.Parallel()
	for _, d := range tabtex.Dialects() {
		t.Run(d.String(), func(t *testing.T) {
			t.Parallel()
			got, err := tabtex.Parse("hello", d)
			require.NoError(t, err)
			assert.Equal(t, tabtex.Grid{{"hello"}}, got.Rows)
		})
	}
}

func TestParseUnsupportedDialect(t *testing.T) {
	t.Parallel()
	_, err := tabtex.Parse("a,b", tabtex.Dialect("xml"))
	assert.ErrorIs(t, err, tabtex.ErrUnsupportedDialect)
}
