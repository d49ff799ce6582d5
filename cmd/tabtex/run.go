package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/bjaus/tabtex"
	"github.com/bjaus/tabtex/internal/clipboard"
	"github.com/bjaus/tabtex/internal/highlight"
	"github.com/bjaus/tabtex/internal/notify"
)

func (c *cli) run(ctx context.Context, args []string) error {
	o, err := parseOptions(args, c.stderr)
	if err != nil {
		return err
	}
	logger := c.newLogger(o.verbose)
	notes := notify.New(c.stderr, isTerminal(c.stderr))

	st, err := c.resolveStyle(o)
	if err != nil {
		return err
	}
	if o.printStyle {
		return tabtex.WriteStyle(c.stdout, st)
	}

	sess := tabtex.NewSession(tabtex.WithLogger(logger), tabtex.WithStyle(st))
	if o.watch {
		return c.watch(ctx, sess, o, logger, notes)
	}

	inputs, err := c.readInputs(o)
	if err != nil {
		if o.paste {
			notes.Errorf(notify.MsgPasteFailed)
		}
		return err
	}
	for res, convErr := range sess.ConvertAll(slices.Values(inputs), o.dialect) {
		if err := c.handle(sess, o, res, convErr, logger, notes); err != nil {
			return err
		}
	}
	return nil
}

// readInputs returns the raw table text from the clipboard, the input
// files, or stdin, in that order of preference.
func (c *cli) readInputs(o *options) ([]string, error) {
	switch {
	case o.paste:
		text, err := c.clip.ReadText()
		if err != nil {
			return nil, fmt.Errorf("read clipboard: %w", err)
		}
		return []string{text}, nil
	case len(o.files) > 0:
		inputs := make([]string, 0, len(o.files))
		for _, path := range o.files {
			b, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("read input: %w", err)
			}
			inputs = append(inputs, string(b))
		}
		return inputs, nil
	default:
		if isTerminal(c.stdin) {
			return nil, errors.New("no input: pass a file, pipe a table on stdin, or use -paste")
		}
		b, err := io.ReadAll(c.stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return []string{string(b)}, nil
	}
}

// handle finishes one conversion: it applies the alignment flags, emits the
// result and copies it when asked. Empty input clears the session and emits
// nothing.
func (c *cli) handle(sess *tabtex.Session, o *options, res *tabtex.Result, err error, logger *slog.Logger, notes *notify.Notifier) error {
	if err != nil {
		if errors.Is(err, tabtex.ErrUnparseable) {
			notes.Errorf(notify.MsgUnparseable)
		}
		return err
	}
	if res.Cleared {
		logger.Debug("input empty, session cleared")
		if o.copy {
			c.copy(sess, notes)
		}
		return nil
	}
	if o.alignAll != nil {
		sess.AlignAll(*o.alignAll)
	}
	if len(o.aligns) > 0 {
		if len(o.aligns) > sess.Columns() {
			logger.Warn("more alignments than columns", "alignments", len(o.aligns), "columns", sess.Columns())
		}
		sess.SetAlignments(o.aligns)
	}

	res.Alignments = sess.Alignments()
	res.Markup = sess.Markup()
	if err := c.emit(sess, o, res); err != nil {
		return err
	}
	if o.copy {
		c.copy(sess, notes)
	}
	return nil
}

func (c *cli) emit(sess *tabtex.Session, o *options, res *tabtex.Result) error {
	if o.tmpl != nil {
		return o.tmpl.Execute(c.stdout, res)
	}
	st := sess.Style()
	switch o.emit {
	case emitJSON:
		return res.WriteJSON(c.stdout, "  ")
	case emitJSONL:
		return res.WriteJSON(c.stdout, "")
	case emitHTML:
		p := tabtex.RenderPreview(tabtex.HTMLRenderer{}, sess.Markup(), st.Size)
		return tabtex.WritePreviewPage(c.stdout, "tabtex preview", p)
	case emitText:
		return tabtex.WriteText(c.stdout, sess.Grid(), sess.Alignments(), st, o.border)
	case emitExport:
		return c.writeMarkup(o, sess.Export())
	default:
		return c.writeMarkup(o, sess.Markup())
	}
}

func (c *cli) writeMarkup(o *options, markup string) error {
	useColor := o.color == "always" || (o.color == "auto" && isTerminal(c.stdout))
	if useColor {
		if err := highlight.Write(c.stdout, markup, c.cfg.HighlightStyle); err != nil {
			return err
		}
		_, err := fmt.Fprintln(c.stdout)
		return err
	}
	_, err := fmt.Fprintln(c.stdout, markup)
	return err
}

// copy puts the export form of the markup on the clipboard. Failures are
// reported as notices and never abort the command.
func (c *cli) copy(sess *tabtex.Session, notes *notify.Notifier) {
	text := sess.Export()
	if text == "" {
		notes.Infof(notify.MsgNothingToCopy)
		return
	}
	if err := clipboard.Copy(c.clip, c.fallback, text); err != nil {
		notes.Errorf("copy failed: %v", err)
		return
	}
	notes.Successf(notify.MsgCopied)
}
