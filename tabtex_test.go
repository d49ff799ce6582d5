package tabtex_test

import (
	"encoding/json"
	"testing"

	"github.com/bjaus/tabtex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDialect(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    tabtex.Dialect
		wantErr require.ErrorAssertionFunc
	}{
		"auto":            {input: "auto", want: tabtex.Auto, wantErr: require.NoError},
		"empty is auto":   {input: "", want: tabtex.Auto, wantErr: require.NoError},
		"markdown":        {input: "markdown", want: tabtex.Markdown, wantErr: require.NoError},
		"csv":             {input: "csv", want: tabtex.CSV, wantErr: require.NoError},
		"tsv upper":       {input: "TSV", want: tabtex.TSV, wantErr: require.NoError},
		"space":           {input: "space", want: tabtex.Space, wantErr: require.NoError},
		"space-delimited": {input: "space-delimited", want: tabtex.Space, wantErr: require.NoError},
		"unknown":         {input: "xml", want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tabtex.ParseDialect(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDialectUnsupportedSentinel(t *testing.T) {
	t.Parallel()
	_, err := tabtex.ParseDialect("xml")
	assert.ErrorIs(t, err, tabtex.ErrUnsupportedDialect)
	assert.Contains(t, err.Error(), `"xml"`)
}

func TestDialects(t *testing.T) {
	t.Parallel()
	got := tabtex.Dialects()
	assert.Equal(t, []tabtex.Dialect{tabtex.Markdown, tabtex.CSV, tabtex.TSV, tabtex.Space}, got)
	// Returned slice must be a copy.
	got[0] = "modified"
	assert.Equal(t, tabtex.Markdown, tabtex.Dialects()[0])
}

func TestDialectString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "markdown", tabtex.Markdown.String())
	assert.Equal(t, "space", tabtex.Space.String())
}

func TestParseAlignment(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    tabtex.Alignment
		wantErr require.ErrorAssertionFunc
	}{
		"l":       {input: "l", want: tabtex.AlignLeft, wantErr: require.NoError},
		"left":    {input: "left", want: tabtex.AlignLeft, wantErr: require.NoError},
		"c":       {input: "c", want: tabtex.AlignCenter, wantErr: require.NoError},
		"center":  {input: "Center", want: tabtex.AlignCenter, wantErr: require.NoError},
		"r":       {input: " r ", want: tabtex.AlignRight, wantErr: require.NoError},
		"right":   {input: "right", want: tabtex.AlignRight, wantErr: require.NoError},
		"unknown": {input: "justify", want: tabtex.AlignLeft, wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tabtex.ParseAlignment(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAlignments(t *testing.T) {
	t.Parallel()
	got, err := tabtex.ParseAlignments("l, c ,right")
	require.NoError(t, err)
	assert.Equal(t, []tabtex.Alignment{tabtex.AlignLeft, tabtex.AlignCenter, tabtex.AlignRight}, got)

	got, err = tabtex.ParseAlignments("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = tabtex.ParseAlignments("l,x")
	assert.ErrorIs(t, err, tabtex.ErrInvalidAlignment)
}

func TestAlignmentCodeAndString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "l", tabtex.AlignLeft.Code())
	assert.Equal(t, "c", tabtex.AlignCenter.Code())
	assert.Equal(t, "r", tabtex.AlignRight.Code())
	assert.Equal(t, "left", tabtex.AlignLeft.String())
	assert.Equal(t, "center", tabtex.AlignCenter.String())
	assert.Equal(t, "right", tabtex.AlignRight.String())
}

func TestAlignmentJSON(t *testing.T) {
	t.Parallel()
	b, err := json.Marshal([]tabtex.Alignment{tabtex.AlignLeft, tabtex.AlignRight})
	require.NoError(t, err)
	assert.JSONEq(t, `["left","right"]`, string(b))

	var got []tabtex.Alignment
	require.NoError(t, json.Unmarshal([]byte(`["c","left"]`), &got))
	assert.Equal(t, []tabtex.Alignment{tabtex.AlignCenter, tabtex.AlignLeft}, got)

	assert.Error(t, json.Unmarshal([]byte(`["up"]`), &got))
}

func TestGridColumnsAndNormalize(t *testing.T) {
	t.Parallel()
	g := tabtex.Grid{{"a"}, {"b", "c", "d"}, {}}
	assert.Equal(t, 3, g.Columns())
	assert.False(t, g.Empty())

	norm := g.Normalize()
	assert.Equal(t, tabtex.Grid{{"a", "", ""}, {"b", "c", "d"}, {"", "", ""}}, norm)
	// Normalize must not modify the receiver.
	assert.Len(t, g[0], 1)

	var empty tabtex.Grid
	assert.True(t, empty.Empty())
	assert.Equal(t, 0, empty.Columns())
	assert.Empty(t, empty.Normalize())
}
