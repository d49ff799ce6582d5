// Command tabtex converts a Markdown, CSV, TSV or space-aligned table into
// array markup for display-math renderers.
//
// Usage:
//
//	tabtex [flags] [file...]
//
// Input is read from the files in order, from stdin, or from the clipboard
// with -paste.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/bjaus/tabtex"
	"github.com/bjaus/tabtex/internal/clipboard"
	"github.com/bjaus/tabtex/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	c := &cli{
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		clip:     clipboard.System{},
		fallback: clipboard.OSC52{W: os.Stderr},
		cfg:      cfg,
	}
	if err := c.run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// cli carries the streams and collaborators of one invocation.
type cli struct {
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	clip     clipboard.Clipboard
	fallback clipboard.Clipboard
	cfg      *config.Config
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

func (c *cli) newLogger(verbose bool) *slog.Logger {
	level := c.cfg.LogLevel
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: level}))
}

// resolveStyle layers the style file and explicitly set flags over the
// environment defaults.
func (c *cli) resolveStyle(o *options) (tabtex.Style, error) {
	st := c.cfg.Style
	path := o.stylePath
	if path == "" {
		path = c.cfg.StylePath
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return st, fmt.Errorf("open style file: %w", err)
		}
		defer f.Close()
		st, err = tabtex.LoadStyle(f, st)
		if err != nil {
			return st, fmt.Errorf("%s: %w", path, err)
		}
	}
	if err := o.applyStyle(&st); err != nil {
		return st, err
	}
	return st, st.Validate()
}
