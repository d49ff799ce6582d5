// Package tabtex converts tabular text into typeset array markup.
//
// Input may be a Markdown pipe table, CSV, TSV, or whitespace-aligned text.
// The output is an array environment suitable for display-mode math
// renderers such as KaTeX, with optional bold header and first column, size,
// font family, row spacing, and per-column alignment.
//
// # Pipeline
//
// Conversion runs in fixed stages:
//
//   - [Lines] splits raw input and drops blank lines
//   - [Detect] picks a [Dialect] unless one is given explicitly
//   - [Parse] turns the lines into a [Grid]; Markdown also yields alignment hints
//   - [Grid.Normalize] pads rows to the widest row
//   - [Generate] escapes every cell with [Escape] and assembles the markup
//   - [ExportTransform] collapses the markup for copy when export mode is on
//
// # Detection
//
// The first matching rule wins:
//
//   - any line contains "|" → [Markdown]
//   - any line contains a tab → [TSV]
//   - any line contains "," → [CSV]
//   - otherwise → [Space] (columns separated by two or more spaces)
//
// Every input maps to a dialect. An input that parses to no rows is reported
// by [Session.Convert] as [ErrUnparseable].
//
// # Sessions
//
// [Session] holds the state an editor needs between events: the current
// grid, column alignments, style and markup.
//
//	s := tabtex.NewSession(tabtex.WithStyle(st))
//	res, err := s.Convert(input, tabtex.Auto)
//	s.SetColumnAlignment(1, tabtex.AlignRight)
//	s.Restyle(other)
//	clip := s.Export()
//
// Alignments are reset to left whenever the column count changes, and
// [Result.Layout] changes with them. Restyling keeps them.
//
// [Session.ConvertAll] and [Session.ConvertChan] run a sequence of inputs
// through one session, such as successive saves of a file being edited:
//
//	for res, err := range s.ConvertChan(edits, tabtex.Auto) {
//		...
//	}
//
// # Templates
//
// A [Template] renders a [Result] with text/template. The helpers export,
// preview and join are available:
//
//	{{.Dialect}}: {{export .Markup}}
//
// # Styles
//
// A [Style] can be built in code, loaded from YAML with [LoadStyle], or read
// from TABTEX_* variables with [StyleFromEnv]:
//
//	bold_header: true
//	size: small
//	text_style: sans
//	row_spacing: 1.25
//	export: true
//
// # Previews
//
// [RenderPreview] strips directives preview engines ignore and hands the
// rest to a [Renderer]. [HTMLRenderer] and [WritePreviewPage] produce a
// browser preview; [WriteText] draws a terminal table instead.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedDialect] — unknown dialect name
//   - [ErrUnparseable] — non-empty input produced no rows
//   - [ErrColumnOutOfRange] — alignment index outside the table
//   - [ErrInvalidAlignment] — unknown alignment name
//   - [ErrInvalidStyle] — style failed validation
//   - [ErrInvalidTemplate] — invalid template syntax
package tabtex
