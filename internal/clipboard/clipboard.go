// Package clipboard reads and writes plain text on the system clipboard,
// with a terminal escape-sequence fallback for copying when no clipboard
// utility is available.
package clipboard

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned by operations a clipboard cannot perform.
var ErrUnsupported = errors.New("clipboard operation not supported")

// Clipboard is a plain-text clipboard.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// System uses the platform clipboard utilities.
type System struct{}

// ReadText implements [Clipboard].
func (System) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnsupported
	}
	return clipboard.ReadAll()
}

// WriteText implements [Clipboard].
func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// OSC52 copies by writing the OSC 52 escape sequence to a terminal, which
// forwards it to the clipboard of the machine running the terminal. It
// cannot read.
type OSC52 struct {
	W io.Writer
}

// ReadText always fails with [ErrUnsupported].
func (OSC52) ReadText() (string, error) { return "", ErrUnsupported }

// WriteText implements [Clipboard].
func (o OSC52) WriteText(text string) error {
	if o.W == nil {
		return ErrUnsupported
	}
	_, err := fmt.Fprintf(o.W, "\x1b]52;c;%s\a", base64.StdEncoding.EncodeToString([]byte(text)))
	return err
}

// Copy writes text to primary, falling back to fallback when primary fails.
// The error joins both failures when neither succeeds.
func Copy(primary, fallback Clipboard, text string) error {
	err := primary.WriteText(text)
	if err == nil {
		return nil
	}
	if fallback == nil {
		return fmt.Errorf("copy: %w", err)
	}
	if ferr := fallback.WriteText(text); ferr != nil {
		return fmt.Errorf("copy: %w", errors.Join(err, ferr))
	}
	return nil
}
