package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/bjaus/tabtex"
	"github.com/bjaus/tabtex/internal/debounce"
	"github.com/bjaus/tabtex/internal/notify"
)

const watchKey = "input"

// watch converts o.files[0] once, then again after each burst of changes
// settles, until ctx is done. A failed conversion leaves the previous output
// and alignments in place.
func (c *cli) watch(ctx context.Context, sess *tabtex.Session, o *options, logger *slog.Logger, notes *notify.Notifier) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	// The directory is watched rather than the file so editors that replace
	// the file on save keep triggering.
	path := filepath.Clean(o.files[0])
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	inputs := make(chan string)
	go c.feed(ctx, w, path, string(first), inputs, logger)

	layout := sess.Layout()
	for res, convErr := range sess.ConvertChan(inputs, o.dialect) {
		if err := c.handle(sess, o, res, convErr, logger, notes); err != nil {
			if !errors.Is(err, tabtex.ErrUnparseable) {
				notes.Errorf("%v", err)
			}
			continue
		}
		if sess.Layout() != layout {
			layout = sess.Layout()
			logger.Debug("column count changed, alignments reset", "columns", sess.Columns())
		}
	}
	return nil
}

// feed sends first, then the file contents after every debounced change,
// and closes inputs when ctx is done or the watcher shuts down.
func (c *cli) feed(ctx context.Context, w *fsnotify.Watcher, path, first string, inputs chan<- string, logger *slog.Logger) {
	defer close(inputs)

	send := func(text string) bool {
		select {
		case inputs <- text:
			return true
		case <-ctx.Done():
			return false
		}
	}
	if !send(first) {
		return
	}

	deb := debounce.New(c.cfg.Debounce)
	defer deb.Stop()
	trigger := make(chan struct{}, 1)

	logger.Info("watching for changes", "file", path, "debounce", deb.Wait())
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != path || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			deb.Schedule(watchKey, func() {
				select {
				case trigger <- struct{}{}:
				default:
				}
			})
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Warn("watcher error", "error", err)
		case <-trigger:
			b, err := os.ReadFile(path)
			if err != nil {
				logger.Warn("read input", "file", path, "error", err)
				continue
			}
			if !send(string(b)) {
				return
			}
		}
	}
}
