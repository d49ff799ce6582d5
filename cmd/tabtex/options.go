package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/bjaus/tabtex"
)

// Emit modes.
const (
	emitMarkup = "markup"
	emitExport = "export"
	emitJSON   = "json"
	emitHTML   = "html"
	emitJSONL  = "jsonl"
	emitText   = "text"

	// templatePrefix introduces an inline result template, as in
	// -emit 'template={{.Dialect}}: {{export .Markup}}'.
	templatePrefix = "template="
)

var emitModes = []string{emitMarkup, emitExport, emitJSON, emitJSONL, emitHTML, emitText}

// options are the parsed command-line flags.
type options struct {
	dialect    tabtex.Dialect
	stylePath  string
	emit       string
	tmpl       *tabtex.Template
	border     tabtex.BorderStyle
	aligns     []tabtex.Alignment
	alignAll   *tabtex.Alignment
	color      string
	paste      bool
	copy       bool
	watch      bool
	verbose    bool
	printStyle bool
	files      []string

	// Style flags, applied only when set on the command line.
	boldHeader   bool
	boldFirstCol bool
	size         string
	text         string
	spacing      float64
	export       bool
	set          map[string]bool
}

func parseOptions(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("tabtex", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: tabtex [flags] [file...]")
		fs.PrintDefaults()
	}

	dialect := fs.String("dialect", "auto", "Input dialect: auto, markdown, csv, tsv, space")
	o := &options{}
	fs.StringVar(&o.stylePath, "config", "", "YAML style file (default $TABTEX_STYLE_FILE)")
	fs.StringVar(&o.emit, "emit", emitMarkup, "Output: "+strings.Join(emitModes, ", ")+", or "+templatePrefix+"TEXT")
	border := fs.String("border", "rounded", "Border for -emit text: rounded, ascii, none")
	aligns := fs.String("align", "", "Per-column alignment list, e.g. l,c,r")
	alignAll := fs.String("align-all", "", "Set every column to one alignment: l, c, r")
	fs.StringVar(&o.color, "color", "auto", "Highlight markup: auto, always, never")
	fs.BoolVar(&o.paste, "paste", false, "Read the table from the clipboard")
	fs.BoolVar(&o.copy, "copy", false, "Copy the result to the clipboard")
	fs.BoolVar(&o.watch, "watch", false, "Re-convert the input file whenever it changes")
	fs.BoolVar(&o.verbose, "v", false, "Enable debug logging")
	fs.BoolVar(&o.printStyle, "print-style", false, "Print the resolved style as YAML and exit")

	fs.BoolVar(&o.boldHeader, "bold-header", false, "Bold the first row")
	fs.BoolVar(&o.boldFirstCol, "bold-first-col", false, "Bold the first column")
	fs.StringVar(&o.size, "size", "normal", "Table size: normal, small, large")
	fs.StringVar(&o.text, "text", "serif", "Text style: serif, sans")
	fs.Float64Var(&o.spacing, "spacing", 1, "Row spacing factor")
	fs.BoolVar(&o.export, "export", false, "Wrap in $$ delimiters and collapse rows on copy")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	o.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })

	var err error
	if o.dialect, err = tabtex.ParseDialect(*dialect); err != nil {
		return nil, err
	}
	if o.border, err = tabtex.ParseBorderStyle(*border); err != nil {
		return nil, err
	}
	if o.aligns, err = tabtex.ParseAlignments(*aligns); err != nil {
		return nil, err
	}
	if *alignAll != "" {
		a, err := tabtex.ParseAlignment(*alignAll)
		if err != nil {
			return nil, err
		}
		o.alignAll = &a
	}
	if text, ok := strings.CutPrefix(o.emit, templatePrefix); ok {
		if o.tmpl, err = tabtex.ParseTemplate(text); err != nil {
			return nil, err
		}
	} else if !slices.Contains(emitModes, o.emit) {
		return nil, fmt.Errorf("unknown -emit %q (want one of %s)", o.emit, strings.Join(emitModes, ", "))
	}
	switch o.color {
	case "auto", "always", "never":
	default:
		return nil, fmt.Errorf("unknown -color %q", o.color)
	}

	o.files = fs.Args()
	if o.paste && len(o.files) > 0 {
		return nil, errors.New("-paste does not take input files")
	}
	if o.watch && len(o.files) != 1 {
		return nil, errors.New("-watch requires exactly one input file")
	}
	return o, nil
}

// applyStyle overwrites the fields whose flags were given explicitly.
func (o *options) applyStyle(st *tabtex.Style) error {
	if o.set["bold-header"] {
		st.BoldHeader = o.boldHeader
	}
	if o.set["bold-first-col"] {
		st.BoldFirstColumn = o.boldFirstCol
	}
	if o.set["size"] {
		size, err := tabtex.ParseSize(o.size)
		if err != nil {
			return err
		}
		st.Size = size
	}
	if o.set["text"] {
		text, err := tabtex.ParseTextStyle(o.text)
		if err != nil {
			return err
		}
		st.Text = text
	}
	if o.set["spacing"] {
		st.RowSpacing = o.spacing
	}
	if o.set["export"] {
		st.Export = o.export
	}
	return nil
}
